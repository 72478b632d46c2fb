package spectrum

import "github.com/averten/go-aacdec/internal/syntax"

// ReconstructConfig holds shared configuration for spectral
// reconstruction.
type ReconstructConfig struct {
	// SRIndex is the sample rate index (0-11)
	SRIndex uint8

	// PNS is the noise generator state
	PNS *PNSState
}

// ReconstructSingleChannel converts the quantized coefficients of an
// SCE or LFE into a processed spectrum ready for the filter bank.
//
// Processing order:
//  1. Pulse decode (quantized domain, long blocks only)
//  2. Inverse quantization and scale factor application
//  3. PNS decode (noise substitution)
//  4. TNS decode (temporal noise shaping)
func ReconstructSingleChannel(ics *syntax.ICStream, quantData []int16, spec []float64, cfg *ReconstructConfig) error {
	if ics.PulseDataPresent {
		if ics.WindowSequence == syntax.EightShortSequence {
			return syntax.ErrPulseInShortBlock
		}
		if err := PulseDecode(ics, quantData); err != nil {
			return err
		}
	}

	if err := Dequantize(ics, quantData, spec); err != nil {
		return err
	}

	if ics.NoiseUsed {
		PNSDecode(spec, nil, ics, nil, cfg.PNS)
	}

	TNSDecodeFrame(spec, ics, cfg.SRIndex)

	return nil
}

// ReconstructChannelPair converts the quantized coefficients of a CPE
// into two processed spectra ready for the filter bank.
//
// Processing order:
//  1. Pulse decode per channel (quantized domain, long blocks only)
//  2. Inverse quantization and scale factor application per channel
//  3. PNS decode (correlated noise for masked bands)
//  4. M/S stereo decode
//  5. Intensity stereo decode
//  6. TNS decode per channel
func ReconstructChannelPair(icsL, icsR *syntax.ICStream, quantL, quantR []int16, specL, specR []float64, cfg *ReconstructConfig) error {
	for _, ch := range []struct {
		ics   *syntax.ICStream
		quant []int16
	}{{icsL, quantL}, {icsR, quantR}} {
		if ch.ics.PulseDataPresent {
			if ch.ics.WindowSequence == syntax.EightShortSequence {
				return syntax.ErrPulseInShortBlock
			}
			if err := PulseDecode(ch.ics, ch.quant); err != nil {
				return err
			}
		}
	}

	if err := Dequantize(icsL, quantL, specL); err != nil {
		return err
	}
	if err := Dequantize(icsR, quantR, specR); err != nil {
		return err
	}

	if icsL.NoiseUsed || icsR.NoiseUsed {
		PNSDecode(specL, specR, icsL, icsR, cfg.PNS)
	}

	MSDecode(specL, specR, icsL, icsR)
	ISDecode(specL, specR, icsL, icsR)

	TNSDecodeFrame(specL, icsL, cfg.SRIndex)
	TNSDecodeFrame(specR, icsR, cfg.SRIndex)

	return nil
}
