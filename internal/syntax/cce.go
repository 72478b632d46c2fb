package syntax

import (
	"github.com/averten/go-aacdec/internal/bits"
	"github.com/averten/go-aacdec/internal/huffman"
)

// CCEConfig holds configuration for Coupling Channel Element parsing.
type CCEConfig struct {
	SFIndex uint8 // Sample rate index (0-11)
}

// CCECoupledElement holds information about a coupled element target.
type CCECoupledElement struct {
	TargetIsCPE bool  // True if target is a CPE (vs SCE)
	TargetTag   uint8 // Target element instance tag (0-15)
	CCL         bool  // Apply coupling to left channel (only if TargetIsCPE)
	CCR         bool  // Apply coupling to right channel (only if TargetIsCPE)
}

// CCEResult holds the result of parsing a Coupling Channel Element.
// CCE payloads are consumed to keep the bitstream aligned but the
// coupling gains are not applied to the target channels.
type CCEResult struct {
	Tag                 uint8                // Element instance tag (0-15)
	IndSwCCEFlag        bool                 // Independently switched CCE
	NumCoupledElements  uint8                // Number of coupled elements (0-7)
	CoupledElements     [8]CCECoupledElement // Coupled element targets
	NumGainElementLists uint8                // Number of gain element lists
	CCDomain            bool                 // Coupling domain (0=before TNS, 1=after TNS)
	GainElementSign     bool                 // Sign of gain elements
	GainElementScale    uint8                // Scale of gain elements (0-3)
	Element             Element              // Parsed ICS element
	SpecData            []int16              // Spectral data (parsed but not applied)
}

// ParseCouplingChannelElement parses a Coupling Channel Element (CCE).
// The element is fully consumed so subsequent elements stay aligned.
func ParseCouplingChannelElement(r *bits.Reader, cfg *CCEConfig) (*CCEResult, error) {
	result := &CCEResult{
		SpecData: make([]int16, FrameLength),
	}

	// element_instance_tag (4 bits)
	result.Tag = uint8(r.GetBits(LenTag))
	result.Element.ElementInstanceTag = result.Tag
	result.Element.PairedChannel = -1

	// ind_sw_cce_flag (1 bit)
	result.IndSwCCEFlag = r.Get1Bit() != 0

	// num_coupled_elements (3 bits), loop runs num_coupled_elements+1 times
	result.NumCoupledElements = uint8(r.GetBits(3))

	for c := uint8(0); c < result.NumCoupledElements+1; c++ {
		result.NumGainElementLists++

		ce := &result.CoupledElements[c]
		ce.TargetIsCPE = r.Get1Bit() != 0
		ce.TargetTag = uint8(r.GetBits(LenTag))

		if ce.TargetIsCPE {
			ce.CCL = r.Get1Bit() != 0
			ce.CCR = r.Get1Bit() != 0
			// Coupling both channels needs an extra gain list
			if ce.CCL && ce.CCR {
				result.NumGainElementLists++
			}
		}
	}

	// cc_domain (1 bit), gain_element_sign (1 bit), gain_element_scale (2 bits)
	result.CCDomain = r.Get1Bit() != 0
	result.GainElementSign = r.Get1Bit() != 0
	result.GainElementScale = uint8(r.GetBits(2))

	icsCfg := &ICSConfig{
		SFIndex:      cfg.SFIndex,
		CommonWindow: false,
	}
	ics := &result.Element.ICS1
	if err := ParseIndividualChannelStream(r, ics, result.SpecData, icsCfg); err != nil {
		return nil, err
	}

	if ics.IsUsed {
		return nil, ErrIntensityStereoInCCE
	}

	// The first gain element list is all zeros and not transmitted
	for c := uint8(1); c < result.NumGainElementLists; c++ {
		cge := uint8(1)
		if !result.IndSwCCEFlag {
			cge = r.Get1Bit()
		}

		if cge != 0 {
			// Common gain element for the whole list
			if _, err := huffman.ScaleFactor(r); err != nil {
				return nil, err
			}
		} else {
			// Per-band gain elements for bands with spectral content
			for g := uint8(0); g < ics.NumWindowGroups; g++ {
				for sfb := uint8(0); sfb < ics.MaxSFB; sfb++ {
					if huffman.Codebook(ics.SFBCB[g][sfb]) != huffman.ZeroHCB {
						if _, err := huffman.ScaleFactor(r); err != nil {
							return nil, err
						}
					}
				}
			}
		}
	}

	if r.Error() {
		return nil, ErrBitstreamRead
	}

	return result, nil
}
