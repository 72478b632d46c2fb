// Package syntax implements AAC bitstream syntax parsing.
// This file contains window grouping information calculation.
package syntax

import (
	"github.com/averten/go-aacdec/internal/tables"
)

// WindowGroupingInfo calculates window grouping information for an ICS.
// It sets up the number of windows, window groups, and SFB offsets
// based on the window sequence and sample rate.
func WindowGroupingInfo(ics *ICStream, sfIndex uint8) error {
	if sfIndex >= 12 {
		return ErrInvalidSRIndex
	}

	switch ics.WindowSequence {
	case OnlyLongSequence, LongStartSequence, LongStopSequence:
		return windowGroupingLong(ics, sfIndex)
	case EightShortSequence:
		return windowGroupingShort(ics, sfIndex)
	default:
		return ErrInvalidWindowSequence
	}
}

func windowGroupingLong(ics *ICStream, sfIndex uint8) error {
	ics.NumWindows = 1
	ics.NumWindowGroups = 1
	ics.WindowGroupLength[0] = 1

	numSWB, err := tables.GetNumSWB(sfIndex, false)
	if err != nil {
		return err
	}
	ics.NumSWB = numSWB

	if ics.MaxSFB > ics.NumSWB {
		return ErrMaxSFBTooLarge
	}

	offsets, err := tables.GetSWBOffset(sfIndex, false)
	if err != nil {
		return err
	}

	// Copy to sect_sfb_offset[0] and swb_offset
	for i := uint8(0); i < ics.NumSWB; i++ {
		ics.SectSFBOffset[0][i] = offsets[i]
		ics.SWBOffset[i] = offsets[i]
	}
	ics.SectSFBOffset[0][ics.NumSWB] = FrameLength
	ics.SWBOffset[ics.NumSWB] = FrameLength
	ics.SWBOffsetMax = FrameLength

	return nil
}

func windowGroupingShort(ics *ICStream, sfIndex uint8) error {
	ics.NumWindows = 8
	ics.NumWindowGroups = 1
	ics.WindowGroupLength[0] = 1

	numSWB, err := tables.GetNumSWB(sfIndex, true)
	if err != nil {
		return err
	}
	ics.NumSWB = numSWB

	if ics.MaxSFB > ics.NumSWB {
		return ErrMaxSFBTooLarge
	}

	offsets, err := tables.GetSWBOffset(sfIndex, true)
	if err != nil {
		return err
	}

	for i := uint8(0); i < ics.NumSWB; i++ {
		ics.SWBOffset[i] = offsets[i]
	}
	ics.SWBOffset[ics.NumSWB] = ShortWindowLen
	ics.SWBOffsetMax = ShortWindowLen

	// Calculate window groups from scale_factor_grouping.
	// Bit N=0 means a new group starts at window N+1.
	for i := uint8(0); i < 7; i++ {
		if !bitSet(ics.ScaleFactorGrouping, 6-i) {
			ics.NumWindowGroups++
			ics.WindowGroupLength[ics.NumWindowGroups-1] = 1
		} else {
			ics.WindowGroupLength[ics.NumWindowGroups-1]++
		}
	}

	// Calculate sect_sfb_offset for each group. Band widths are scaled
	// by the group length so grouped spectra pack contiguously.
	for g := uint8(0); g < ics.NumWindowGroups; g++ {
		sectSFB := uint8(0)
		offset := uint16(0)

		for i := uint8(0); i < ics.NumSWB; i++ {
			var width uint16
			if i+1 == ics.NumSWB {
				width = ShortWindowLen - offsets[i]
			} else {
				width = offsets[i+1] - offsets[i]
			}
			width *= uint16(ics.WindowGroupLength[g])
			ics.SectSFBOffset[g][sectSFB] = offset
			sectSFB++
			offset += width
		}
		ics.SectSFBOffset[g][sectSFB] = offset
	}

	return nil
}

// bitSet returns true if bit b is set in a.
func bitSet(a uint8, b uint8) bool {
	return (a & (1 << b)) != 0
}
