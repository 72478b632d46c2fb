package spectrum

import (
	"math"

	"github.com/averten/go-aacdec/internal/syntax"
)

// NoiseOffset is the offset applied to PNS scale factors.
const NoiseOffset = 90

// PNSState holds the random number generator state for PNS decoding.
// The state must be preserved across frames for proper decoder
// behavior.
type PNSState struct {
	R1 uint32
	R2 uint32
}

// NewPNSState creates a new PNS state. The initial values are
// equivalent to seeds (1, 1) advanced by 1024 iterations.
func NewPNSState() *PNSState {
	return &PNSState{
		R1: 0x2bb431ea,
		R2: 0x206155b7,
	}
}

// genRandVector fills spec with a random noise vector whose energy is
// set by the scale factor: the values are normalized to unit energy,
// then multiplied by 2^(0.25 * scale_factor).
func genRandVector(spec []float64, scaleFactor int16, r1, r2 *uint32) {
	size := len(spec)
	if size == 0 {
		return
	}

	// Clamp scale factor to prevent overflow
	sf := scaleFactor
	if sf < -120 {
		sf = -120
	} else if sf > 120 {
		sf = 120
	}

	energy := 0.0
	for i := 0; i < size; i++ {
		tmp := float64(int32(RNG(r1, r2)))
		spec[i] = tmp
		energy += tmp * tmp
	}

	if energy > 0 {
		scale := 1.0 / math.Sqrt(energy)
		scale *= math.Exp2(0.25 * float64(sf))

		for i := 0; i < size; i++ {
			spec[i] *= scale
		}
	}
}

// PNSDecode substitutes noise bands with scaled random vectors.
// For a channel pair, a band that is noise in both channels and
// covered by the M/S mask reuses the same RNG state so the two
// channels receive correlated noise. rSpec and icsR are nil for a
// single channel.
//
// The left channel of a pair carries the M/S mask.
func PNSDecode(lSpec, rSpec []float64, icsL, icsR *syntax.ICStream, state *PNSState) {
	group := uint16(0)

	for g := uint8(0); g < icsL.NumWindowGroups; g++ {
		for b := uint8(0); b < icsL.WindowGroupLength[g]; b++ {
			for sfb := uint8(0); sfb < icsL.MaxSFB; sfb++ {
				var r1Dep, r2Dep uint32

				if IsNoiseICS(icsL, g, sfb) {
					r1Dep = state.R1
					r2Dep = state.R2

					offs := icsL.SWBOffset[sfb]
					end := icsL.SWBOffset[sfb+1]
					if end > icsL.SWBOffsetMax {
						end = icsL.SWBOffsetMax
					}

					base := group * syntax.ShortWindowLen
					genRandVector(lSpec[base+offs:base+end],
						icsL.ScaleFactors[g][sfb], &state.R1, &state.R2)
				}

				if rSpec != nil && icsR != nil && IsNoiseICS(icsR, g, sfb) {
					correlated := (icsL.MSMaskPresent == 1 && icsL.MSUsed[g][sfb] != 0) ||
						icsL.MSMaskPresent == 2
					if correlated && IsNoiseICS(icsL, g, sfb) {
						// Replay the left channel's RNG state
						state.R1 = r1Dep
						state.R2 = r2Dep
					}

					offs := icsR.SWBOffset[sfb]
					end := icsR.SWBOffset[sfb+1]
					if end > icsR.SWBOffsetMax {
						end = icsR.SWBOffsetMax
					}

					base := group * syntax.ShortWindowLen
					genRandVector(rSpec[base+offs:base+end],
						icsR.ScaleFactors[g][sfb], &state.R1, &state.R2)
				}
			}
			group++
		}
	}
}
