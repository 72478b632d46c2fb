package spectrum

import (
	"math"

	"github.com/averten/go-aacdec/internal/syntax"
)

// ISDecode applies intensity stereo decoding to spectral coefficients.
// The right channel spectrum is reconstructed from the left channel
// for bands coded with intensity stereo (INTENSITY_HCB or
// INTENSITY_HCB2). The transmitted intensity position scales the copy
// by 2^(-0.25 * position); the M/S mask on the left channel flips the
// direction for marked bands.
//
// The left channel is not modified; only the right channel is written.
func ISDecode(lSpec, rSpec []float64, icsL, icsR *syntax.ICStream) {
	group := uint16(0)

	for g := uint8(0); g < icsR.NumWindowGroups; g++ {
		for b := uint8(0); b < icsR.WindowGroupLength[g]; b++ {
			for sfb := uint8(0); sfb < icsR.MaxSFB; sfb++ {
				dir := IsIntensityICS(icsR, g, sfb)
				if dir == 0 {
					continue
				}

				scale := float64(dir) * float64(invertIntensity(icsL, g, sfb)) *
					math.Exp2(-0.25*float64(icsR.ScaleFactors[g][sfb]))

				start := icsR.SWBOffset[sfb]
				end := icsR.SWBOffset[sfb+1]
				if end > icsR.SWBOffsetMax {
					end = icsR.SWBOffsetMax
				}

				for i := start; i < end; i++ {
					k := group*syntax.ShortWindowLen + i
					rSpec[k] = lSpec[k] * scale
				}
			}
			group++
		}
	}
}
