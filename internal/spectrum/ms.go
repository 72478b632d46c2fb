package spectrum

import "github.com/averten/go-aacdec/internal/syntax"

// MSDecode applies Mid/Side stereo decoding to spectral coefficients
// in-place, converting M/S encoded bands back to L/R: L = M + S,
// R = M - S.
//
// M/S decoding is skipped for bands where the mask is clear, for
// intensity stereo bands (handled by ISDecode), and for noise bands
// (handled by PNSDecode).
func MSDecode(lSpec, rSpec []float64, icsL, icsR *syntax.ICStream) {
	if icsL.MSMaskPresent < 1 {
		return
	}

	group := uint16(0)

	for g := uint8(0); g < icsL.NumWindowGroups; g++ {
		for b := uint8(0); b < icsL.WindowGroupLength[g]; b++ {
			for sfb := uint8(0); sfb < icsL.MaxSFB; sfb++ {
				msEnabled := icsL.MSUsed[g][sfb] != 0 || icsL.MSMaskPresent == 2
				if msEnabled && IsIntensityICS(icsR, g, sfb) == 0 && !IsNoiseICS(icsL, g, sfb) {
					start := icsL.SWBOffset[sfb]
					end := icsL.SWBOffset[sfb+1]
					if end > icsL.SWBOffsetMax {
						end = icsL.SWBOffsetMax
					}

					for i := start; i < end; i++ {
						k := group*syntax.ShortWindowLen + i
						tmp := lSpec[k] - rSpec[k]
						lSpec[k] = lSpec[k] + rSpec[k]
						rSpec[k] = tmp
					}
				}
			}
			group++
		}
	}
}
