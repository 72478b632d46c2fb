package spectrum

import (
	"math"

	"github.com/averten/go-aacdec/internal/huffman"
	"github.com/averten/go-aacdec/internal/syntax"
	"github.com/averten/go-aacdec/internal/tables"
)

// Dequantize converts grouped quantized coefficients into a
// window-ordered spectrum. Each coefficient is inverse quantized
// (sign(q) * |q|^(4/3)) and multiplied by the band gain
// 2^(0.25 * (sf - 100)).
//
// Grouped short windows pack the spectra of all windows in a group
// band by band; the output interleaves them back into per-window
// order. Zero, noise, and intensity bands produce zeros: noise bands
// are filled by PNSDecode and intensity bands by ISDecode.
func Dequantize(ics *syntax.ICStream, quantData []int16, spec []float64) error {
	k := 0
	gindex := uint16(0)
	winInc := ics.SWBOffset[ics.NumSWB]

	for g := uint8(0); g < ics.NumWindowGroups; g++ {
		j := uint16(0)

		for sfb := uint8(0); sfb < ics.NumSWB; sfb++ {
			width := ics.SWBOffset[sfb+1] - ics.SWBOffset[sfb]

			gain := 0.0
			if sfb < ics.MaxSFB {
				switch cb := huffman.Codebook(ics.SFBCB[g][sfb]); {
				case cb == huffman.ZeroHCB || IsNoise(cb) || IsIntensity(cb) != 0:
					// no transmitted spectrum for this band
				default:
					gain = math.Exp2(0.25 * float64(ics.ScaleFactors[g][sfb]-100))
				}
			}

			wa := gindex + j
			for win := uint8(0); win < ics.WindowGroupLength[g]; win++ {
				wb := wa + uint16(win)*winInc
				for bin := uint16(0); bin < width; bin++ {
					iq, err := tables.IQuant(quantData[k])
					if err != nil {
						return err
					}
					spec[wb+bin] = iq * gain
					k++
				}
			}

			j += width
		}

		gindex += winInc * uint16(ics.WindowGroupLength[g])
	}

	return nil
}
