package filterbank

import "math"

// Window shape values as transmitted in ics_info.
const (
	SineWindow = 0
	KBDWindow  = 1
)

// Rising window halves. The falling half is the same table read
// backwards.
var (
	sineLong1024 [nLong]float64
	sineShort128 [nShort]float64
	kbdLong1024  [nLong]float64
	kbdShort128  [nShort]float64
)

func init() {
	fillSine(sineLong1024[:])
	fillSine(sineShort128[:])
	fillKBD(kbdLong1024[:], 4)
	fillKBD(kbdShort128[:], 6)
}

func longWindow(shape uint8) []float64 {
	if shape == KBDWindow {
		return kbdLong1024[:]
	}
	return sineLong1024[:]
}

func shortWindow(shape uint8) []float64 {
	if shape == KBDWindow {
		return kbdShort128[:]
	}
	return sineShort128[:]
}

func fillSine(w []float64) {
	n := float64(len(w))
	for i := range w {
		w[i] = math.Sin(math.Pi / (2 * n) * (float64(i) + 0.5))
	}
}

// fillKBD computes the rising half of a Kaiser-Bessel derived window:
// the square root of the normalized cumulative sum of a Kaiser kernel.
func fillKBD(w []float64, alpha float64) {
	n := len(w)
	kernel := make([]float64, n+1)
	sum := 0.0
	for j := 0; j <= n; j++ {
		x := 2*float64(j)/float64(n) - 1
		kernel[j] = besselI0(math.Pi * alpha * math.Sqrt(1-x*x))
		sum += kernel[j]
	}

	acc := 0.0
	for i := 0; i < n; i++ {
		acc += kernel[i]
		w[i] = math.Sqrt(acc / sum)
	}
}

// besselI0 is the zeroth-order modified Bessel function of the first
// kind, computed by its power series.
func besselI0(x float64) float64 {
	sum := 1.0
	term := 1.0
	half := x / 2
	for k := 1; k < 64; k++ {
		r := half / float64(k)
		term *= r * r
		sum += term
		if term < sum*1e-21 {
			break
		}
	}
	return sum
}
