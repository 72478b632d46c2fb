package spectrum

import (
	"github.com/averten/go-aacdec/internal/syntax"
	"github.com/averten/go-aacdec/internal/tables"
)

// TNSDecodeFrame applies temporal noise shaping to a channel's
// spectrum. Each transmitted filter covers a region of scale factor
// bands, walked downward from num_swb. The region is clamped to the
// sample-rate dependent TNS band limit and to max_sfb, then filtered
// with the all-pole synthesis filter derived from the transmitted
// reflection coefficients.
func TNSDecodeFrame(spec []float64, ics *syntax.ICStream, srIndex uint8) {
	if !ics.TNSDataPresent {
		return
	}

	isShort := ics.WindowSequence == syntax.EightShortSequence
	tnsMaxBands := tables.MaxTNSSFB(srIndex, isShort)
	if tnsMaxBands > ics.MaxSFB {
		tnsMaxBands = ics.MaxSFB
	}

	var lpc [TNSMaxOrder + 1]float64
	tns := &ics.TNS

	for w := uint8(0); w < ics.NumWindows; w++ {
		bottom := ics.NumSWB

		for f := uint8(0); f < tns.NFilt[w]; f++ {
			top := bottom
			if length := tns.Length[w][f]; length < top {
				bottom = top - length
			} else {
				bottom = 0
			}

			order := tns.Order[w][f]
			if order > TNSMaxOrder {
				order = TNSMaxOrder
			}
			if order == 0 {
				continue
			}

			tnsDecodeCoef(order, tns.CoefRes[w], tns.CoefCompress[w][f],
				tns.Coef[w][f][:], lpc[:])

			startBand := bottom
			if startBand > tnsMaxBands {
				startBand = tnsMaxBands
			}
			start := ics.SWBOffset[startBand]
			if start > ics.SWBOffsetMax {
				start = ics.SWBOffsetMax
			}

			endBand := top
			if endBand > tnsMaxBands {
				endBand = tnsMaxBands
			}
			end := ics.SWBOffset[endBand]
			if end > ics.SWBOffsetMax {
				end = ics.SWBOffsetMax
			}

			size := int(end) - int(start)
			if size <= 0 {
				continue
			}

			inc := 1
			pos := uint16(w)*syntax.ShortWindowLen + start
			if tns.Direction[w][f] != 0 {
				inc = -1
				pos = uint16(w)*syntax.ShortWindowLen + end - 1
			}

			tnsARFilter(spec, int(pos), size, inc, lpc[:], order)
		}
	}
}

// tnsARFilter runs the all-pole TNS synthesis filter over size
// coefficients starting at pos, stepping by inc. lpc[0] is 1 and is
// not applied.
func tnsARFilter(spec []float64, pos, size, inc int, lpc []float64, order uint8) {
	var state [TNSMaxOrder]float64

	for i := 0; i < size; i++ {
		y := spec[pos]
		for j := uint8(0); j < order; j++ {
			y -= state[j] * lpc[j+1]
		}

		for j := order - 1; j > 0; j-- {
			state[j] = state[j-1]
		}
		state[0] = y

		spec[pos] = y
		pos += inc
	}
}

// tnsDecodeCoef converts transmitted TNS reflection coefficient
// indices to direct-form LPC coefficients.
//
//   - order: filter order (1-20)
//   - coefRes: coefficient resolution (0=3-bit, 1=4-bit)
//   - coefCompress: compression flag (0 or 1)
//   - coef: transmitted coefficient indices
//   - lpc: output LPC coefficients (len >= order+1)
func tnsDecodeCoef(order uint8, coefRes uint8, coefCompress uint8, coef []uint8, lpc []float64) {
	tnsCoef := getTNSCoefTable(coefCompress, coefRes)

	var tmp2 [TNSMaxOrder + 1]float64
	for i := uint8(0); i < order; i++ {
		tmp2[i] = tnsCoef[coef[i]]
	}

	// Levinson-Durbin recursion converts reflection coefficients to
	// direct form. a[0] is always 1.
	lpc[0] = 1.0

	var b [TNSMaxOrder + 1]float64
	for m := uint8(1); m <= order; m++ {
		lpc[m] = tmp2[m-1]

		for i := uint8(1); i < m; i++ {
			b[i] = lpc[i] + lpc[m]*lpc[m-i]
		}
		for i := uint8(1); i < m; i++ {
			lpc[i] = b[i]
		}
	}
}
