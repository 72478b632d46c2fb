// Package syntax implements AAC bitstream syntax parsing.
// This file contains scale factor decoding.
package syntax

import (
	"github.com/averten/go-aacdec/internal/bits"
	"github.com/averten/go-aacdec/internal/huffman"
)

// DecodeScaleFactors decodes scale factors from the bitstream.
// Scale factors are differentially coded relative to the global gain.
//
// The algorithm maintains three separate running totals:
//   - scaleFactor: for spectral codebooks (1-11)
//   - isPosition: for intensity stereo codebooks (14, 15)
//   - noiseEnergy: for noise (PNS) codebook (13)
//
// Zero codebook (0) results in scale factor 0.
func DecodeScaleFactors(r *bits.Reader, ics *ICStream) error {
	scaleFactor := int16(ics.GlobalGain)
	isPosition := int16(0)
	noisePCMFlag := true
	noiseEnergy := int16(ics.GlobalGain) - 90

	for g := uint8(0); g < ics.NumWindowGroups; g++ {
		for sfb := uint8(0); sfb < ics.MaxSFB; sfb++ {
			cb := ics.SFBCB[g][sfb]

			switch huffman.Codebook(cb) {
			case huffman.ZeroHCB:
				// Zero codebook: no spectral data, scale factor is 0
				ics.ScaleFactors[g][sfb] = 0

			case huffman.IntensityHCB, huffman.IntensityHCB2:
				// Intensity stereo: decode position delta
				delta, err := huffman.ScaleFactor(r)
				if err != nil {
					return err
				}
				isPosition += delta
				ics.ScaleFactors[g][sfb] = isPosition

			case huffman.NoiseHCB:
				// PNS: first noise value uses 9-bit PCM, rest use Huffman delta
				if noisePCMFlag {
					noisePCMFlag = false
					t := int16(r.GetBits(9)) - 256
					noiseEnergy += t
				} else {
					delta, err := huffman.ScaleFactor(r)
					if err != nil {
						return err
					}
					noiseEnergy += delta
				}
				ics.ScaleFactors[g][sfb] = noiseEnergy

			default:
				// Spectral codebook: decode scale factor delta
				delta, err := huffman.ScaleFactor(r)
				if err != nil {
					return err
				}
				scaleFactor += delta
				if scaleFactor < 0 || scaleFactor > 255 {
					return ErrScaleFactorRange
				}
				ics.ScaleFactors[g][sfb] = scaleFactor
			}
		}
	}

	return nil
}

// ParseScaleFactorData decodes the scale_factor_data() payload.
// Error-resilient RVLC coding is not supported.
func ParseScaleFactorData(r *bits.Reader, ics *ICStream) error {
	return DecodeScaleFactors(r, ics)
}
