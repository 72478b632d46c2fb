package tables

import (
	"errors"
	"math"
)

// IQTableSize covers every magnitude the quantizer can produce; spectral
// values are bounded to 8191 by the standard.
const IQTableSize = 8192

// ErrQuantOutOfRange indicates a quantized value outside [-8191, 8191].
var ErrQuantOutOfRange = errors.New("tables: quantized value out of range")

// IQTable holds |q|^(4/3) for q in [0, 8191], filled once at init.
var IQTable [IQTableSize]float64

func init() {
	for q := range IQTable {
		IQTable[q] = math.Pow(float64(q), 4.0/3.0)
	}
}

// IQuant inverse-quantizes one coefficient: sign(q) * |q|^(4/3).
func IQuant(q int16) (float64, error) {
	if q >= 0 {
		if int(q) >= IQTableSize {
			return 0, ErrQuantOutOfRange
		}
		return IQTable[q], nil
	}
	if int(-q) >= IQTableSize {
		return 0, ErrQuantOutOfRange
	}
	return -IQTable[-q], nil
}
