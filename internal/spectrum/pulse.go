package spectrum

import "github.com/averten/go-aacdec/internal/syntax"

// PulseDecode applies pulse data to quantized spectral coefficients.
// Pulses add or subtract amplitude values at specific positions, used
// to efficiently encode transients and attacks.
//
// The function modifies specData in place. It should only be called
// for long blocks (pulse coding is not allowed in short blocks).
func PulseDecode(ics *syntax.ICStream, specData []int16) error {
	pul := &ics.Pul

	// Start position is clamped to swb_offset_max
	k := ics.SWBOffset[pul.PulseStartSFB]
	if k > ics.SWBOffsetMax {
		k = ics.SWBOffsetMax
	}

	numPulses := pul.NumberPulse + 1
	for i := uint8(0); i < numPulses; i++ {
		k += uint16(pul.PulseOffset[i])

		if k >= syntax.FrameLength {
			return syntax.ErrPulsePosition
		}

		if specData[k] > 0 {
			specData[k] += int16(pul.PulseAmp[i])
		} else {
			specData[k] -= int16(pul.PulseAmp[i])
		}
	}

	return nil
}
