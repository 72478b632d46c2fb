package syntax

import "github.com/averten/go-aacdec/internal/bits"

// ParseFillElement parses a fill element (FIL) and its extension
// payloads. Fill elements pad the frame to the target bitrate and may
// carry dynamic range control data.
//
// The 4-bit count is extended by an escape byte when saturated. The
// escape contribution is clamped to non-negative so an escape byte of
// zero yields a payload length of 15 rather than wrapping around.
func ParseFillElement(r *bits.Reader, drc *DRCInfo) error {
	count := uint16(r.GetBits(4))
	if count == 15 {
		esc := uint16(r.GetBits(8))
		if esc > 0 {
			count += esc - 1
		}
	}

	for count > 0 {
		n := parseExtensionPayload(r, drc, count)
		if n > count {
			break
		}
		count -= n
	}

	if r.Error() {
		return ErrBitstreamRead
	}

	return nil
}

// parseExtensionPayload parses one extension_payload() inside a fill
// element. Returns the number of bytes consumed.
func parseExtensionPayload(r *bits.Reader, drc *DRCInfo, count uint16) uint16 {
	extType := ExtensionType(r.GetBits(4))

	switch extType {
	case ExtDynamicRange:
		drc.Present = true
		return uint16(parseDynamicRangeInfo(r, drc))

	case ExtFillData:
		// fill_nibble (4 bits), then count-1 fill bytes
		_ = r.GetBits(4)
		for i := uint16(0); i < count-1; i++ {
			_ = r.GetBits(LenByte)
		}
		return count

	default:
		// Skip the remaining payload bits
		for i := uint16(0); i < count-1; i++ {
			_ = r.GetBits(LenByte)
		}
		_ = r.GetBits(4)
		return count
	}
}

// parseDynamicRangeInfo parses dynamic_range_info().
// Returns the number of bytes consumed.
func parseDynamicRangeInfo(r *bits.Reader, drc *DRCInfo) uint8 {
	n := uint8(1)
	drc.NumBands = 1

	if r.Get1Bit() != 0 {
		drc.PCEInstanceTag = uint8(r.GetBits(4))
		// drc_tag_reserved_bits
		_ = r.GetBits(4)
		n++
	}

	drc.ExcludedChnsPresent = r.Get1Bit() != 0
	if drc.ExcludedChnsPresent {
		n += parseExcludedChannels(r, drc)
	}

	if r.Get1Bit() != 0 {
		bandIncr := uint8(r.GetBits(4))
		// drc_bands_reserved_bits
		_ = r.GetBits(4)
		n++
		drc.NumBands += bandIncr

		for i := uint8(0); i < drc.NumBands; i++ {
			drc.BandTop[i] = uint8(r.GetBits(8))
			n++
		}
	}

	if r.Get1Bit() != 0 {
		drc.ProgRefLevel = uint8(r.GetBits(7))
		// prog_ref_level_reserved_bits
		_ = r.Get1Bit()
		n++
	}

	for i := uint8(0); i < drc.NumBands; i++ {
		drc.DynRngSgn[i] = r.Get1Bit()
		drc.DynRngCtl[i] = uint8(r.GetBits(7))
		n++
	}

	return n
}

// parseExcludedChannels parses the excluded_channels() element for DRC.
// Returns the number of bytes consumed.
func parseExcludedChannels(r *bits.Reader, drc *DRCInfo) uint8 {
	var n uint8
	numExclChan := 7

	for i := 0; i < 7; i++ {
		drc.ExcludeMask[i] = r.Get1Bit()
	}
	n++

	for {
		additionalBit := r.Get1Bit()
		drc.AdditionalExcludedChns[n-1] = additionalBit

		if additionalBit == 0 {
			break
		}

		if numExclChan >= MaxChannels-7 {
			return n
		}

		for i := numExclChan; i < numExclChan+7; i++ {
			if i < MaxChannels {
				drc.ExcludeMask[i] = r.Get1Bit()
			}
		}
		n++
		numExclChan += 7
	}

	return n
}
