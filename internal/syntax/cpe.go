package syntax

import "github.com/averten/go-aacdec/internal/bits"

// CPEConfig holds configuration for Channel Pair Element parsing.
type CPEConfig struct {
	SFIndex uint8 // Sample rate index (0-11)
}

// CPEResult holds the result of parsing a Channel Pair Element.
type CPEResult struct {
	Element   Element // Parsed element data (contains ICS1 and ICS2)
	SpecData1 []int16 // Spectral coefficients for channel 1 (1024 values)
	SpecData2 []int16 // Spectral coefficients for channel 2 (1024 values)
	Tag       uint8   // Element instance tag (for channel mapping)
}

// ParseChannelPairElement parses a Channel Pair Element (CPE).
// With common_window set, one ics_info and the M/S mask are shared by
// both channels; otherwise each channel carries its own window info.
func ParseChannelPairElement(r *bits.Reader, channel uint8, cfg *CPEConfig) (*CPEResult, error) {
	result := &CPEResult{
		SpecData1: make([]int16, FrameLength),
		SpecData2: make([]int16, FrameLength),
	}

	e := &result.Element
	e.Channel = channel
	e.PairedChannel = int16(channel) + 1

	// element_instance_tag (4 bits)
	e.ElementInstanceTag = uint8(r.GetBits(LenTag))
	result.Tag = e.ElementInstanceTag

	// common_window (1 bit)
	e.CommonWindow = r.Get1Bit() != 0

	ics1 := &e.ICS1
	ics2 := &e.ICS2

	if e.CommonWindow {
		icsInfoCfg := &ICSInfoConfig{
			SFIndex:      cfg.SFIndex,
			CommonWindow: true,
		}
		if err := ParseICSInfo(r, ics1, icsInfoCfg); err != nil {
			return nil, err
		}

		// ms_mask_present (2 bits): 0=none, 1=per-band, 2=all, 3=reserved
		ics1.MSMaskPresent = uint8(r.GetBits(2))
		if ics1.MSMaskPresent == 3 {
			return nil, ErrMSMaskReserved
		}
		if ics1.MSMaskPresent == 1 {
			for g := uint8(0); g < ics1.NumWindowGroups; g++ {
				for sfb := uint8(0); sfb < ics1.MaxSFB; sfb++ {
					ics1.MSUsed[g][sfb] = r.Get1Bit()
				}
			}
		}

		// Both channels share window info and the M/S mask
		*ics2 = *ics1
	} else {
		ics1.MSMaskPresent = 0
	}

	icsCfg := &ICSConfig{
		SFIndex:      cfg.SFIndex,
		CommonWindow: e.CommonWindow,
	}

	if err := ParseIndividualChannelStream(r, ics1, result.SpecData1, icsCfg); err != nil {
		return nil, err
	}

	if err := ParseIndividualChannelStream(r, ics2, result.SpecData2, icsCfg); err != nil {
		return nil, err
	}

	if r.Error() {
		return nil, ErrBitstreamRead
	}

	return result, nil
}
