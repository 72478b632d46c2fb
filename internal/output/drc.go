package output

import (
	"math"

	"github.com/averten/go-aacdec/internal/syntax"
)

// DRCRefLevel is the dynamic range reference level: -20 dB full scale
// in quarter-dB steps.
const DRCRefLevel = 80

// DRC applies transmitted dynamic range control to spectral data.
// Cut and Boost select how much of the transmitted compression and
// boost is applied (0.0 = none, 1.0 = full).
type DRC struct {
	Cut   float64
	Boost float64
}

// NewDRC creates a DRC processor with the given cut and boost factors.
func NewDRC(cut, boost float64) *DRC {
	return &DRC{
		Cut:   cut,
		Boost: boost,
	}
}

// Apply scales one channel's spectrum by the transmitted gain factors.
// Band boundaries are carried in units of four spectral lines; a
// single-band payload covers the whole spectrum.
func (d *DRC) Apply(info *syntax.DRCInfo, spec []float64) {
	if !info.Present {
		return
	}

	if info.NumBands == 1 {
		info.BandTop[0] = uint8(len(spec)/4 - 1)
	}

	bottom := 0
	numBands := info.NumBands
	if int(numBands) > len(info.BandTop) {
		numBands = uint8(len(info.BandTop))
	}

	for bd := uint8(0); bd < numBands; bd++ {
		top := 4 * (int(info.BandTop[bd]) + 1)
		if top > len(spec) {
			top = len(spec)
		}

		level := float64(info.DynRngCtl[bd]) - float64(DRCRefLevel-int(info.ProgRefLevel))
		var exp float64
		if info.DynRngSgn[bd] != 0 {
			exp = -d.Cut * level / 24.0
		} else {
			exp = d.Boost * level / 24.0
		}
		factor := math.Exp2(exp)

		for i := bottom; i < top; i++ {
			spec[i] *= factor
		}
		bottom = top
	}
}
