package filterbank

import "math"

// imdct computes the inverse MDCT of len(out)/2 spectral coefficients
// into len(out) time samples using the direct form
//
//	x[i] = 2/N * sum_k X[k] * cos(pi/N * (i + 1/2 + N/2) * (k + 1/2))
//
// All accumulation is in float64 so the output is defined by the
// formula alone.
func imdct(spec, out []float64) {
	n := len(out)
	n2 := n / 2
	scale := 2.0 / float64(n)
	step := math.Pi / float64(n)

	for i := 0; i < n; i++ {
		phi := step * (float64(i) + 0.5 + float64(n2))
		sum := 0.0
		for k := 0; k < n2; k++ {
			sum += spec[k] * math.Cos(phi*(float64(k)+0.5))
		}
		out[i] = scale * sum
	}
}
