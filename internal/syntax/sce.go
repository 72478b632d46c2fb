package syntax

import "github.com/averten/go-aacdec/internal/bits"

// SCEConfig holds configuration for Single Channel Element parsing.
type SCEConfig struct {
	SFIndex uint8 // Sample rate index (0-11)
}

// SCEResult holds the result of parsing a Single Channel Element.
type SCEResult struct {
	Element  Element // Parsed element data
	SpecData []int16 // Spectral coefficients (1024 values)
	Tag      uint8   // Element instance tag (for channel mapping)
}

// ParseSingleChannelElement parses a Single Channel Element (SCE) or LFE
// element. SCE and LFE share the same syntax, differing only in their
// semantic use (SCE for mono audio, LFE for the subwoofer channel).
func ParseSingleChannelElement(r *bits.Reader, channel uint8, cfg *SCEConfig) (*SCEResult, error) {
	result := &SCEResult{
		SpecData: make([]int16, FrameLength),
	}

	result.Element.Channel = channel
	result.Element.PairedChannel = -1
	result.Element.CommonWindow = false

	// element_instance_tag (4 bits)
	result.Element.ElementInstanceTag = uint8(r.GetBits(LenTag))
	result.Tag = result.Element.ElementInstanceTag

	icsCfg := &ICSConfig{
		SFIndex:      cfg.SFIndex,
		CommonWindow: false,
	}

	if err := ParseIndividualChannelStream(r, &result.Element.ICS1, result.SpecData, icsCfg); err != nil {
		return nil, err
	}

	// Intensity stereo is not allowed in single channel elements
	if result.Element.ICS1.IsUsed {
		return nil, ErrIntensityStereoInSCE
	}

	return result, nil
}
