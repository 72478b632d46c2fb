// Package filterbank implements the inverse AAC filter bank: IMDCT,
// windowing and overlap-add.
package filterbank

import "github.com/averten/go-aacdec/internal/syntax"

const (
	nLong  = syntax.FrameLength
	nShort = syntax.ShortWindowLen

	// Flat region before the first short window of an eight-short frame.
	nFlat = (nLong - nShort) / 2

	// Samples of the last short window that still land in the current
	// frame; the rest spills into the overlap buffer.
	nTrans = nShort / 2
)

// FilterBank converts spectral coefficients to time-domain samples.
// The transform buffer is reused across calls, so a FilterBank must
// not be shared between goroutines.
type FilterBank struct {
	transfBuf []float64
}

// NewFilterBank creates a FilterBank for 1024-sample frames.
func NewFilterBank() *FilterBank {
	return &FilterBank{
		transfBuf: make([]float64, 2*nLong),
	}
}

// IFilterBank runs the inverse transform for one channel of one frame.
// freqIn holds 1024 spectral coefficients (window ordered for short
// blocks), timeOut receives 1024 output samples, and overlap carries
// the 1024-sample tail between frames. The left window half uses the
// previous frame's window shape, the right half the current one.
func (fb *FilterBank) IFilterBank(seq syntax.WindowSequence, shape, prevShape uint8, freqIn, timeOut, overlap []float64) {
	buf := fb.transfBuf

	longWin := longWindow(shape)
	longWinPrev := longWindow(prevShape)
	shortWin := shortWindow(shape)
	shortWinPrev := shortWindow(prevShape)

	switch seq {
	case syntax.OnlyLongSequence:
		imdct(freqIn[:nLong], buf[:2*nLong])
		for i := 0; i < nLong; i++ {
			timeOut[i] = overlap[i] + buf[i]*longWinPrev[i]
		}
		for i := 0; i < nLong; i++ {
			overlap[i] = buf[nLong+i] * longWin[nLong-1-i]
		}

	case syntax.LongStartSequence:
		imdct(freqIn[:nLong], buf[:2*nLong])
		for i := 0; i < nLong; i++ {
			timeOut[i] = overlap[i] + buf[i]*longWinPrev[i]
		}
		// Right half: flat top, falling short window, then zeros
		for i := 0; i < nFlat; i++ {
			overlap[i] = buf[nLong+i]
		}
		for i := 0; i < nShort; i++ {
			overlap[nFlat+i] = buf[nLong+nFlat+i] * shortWin[nShort-1-i]
		}
		for i := nFlat + nShort; i < nLong; i++ {
			overlap[i] = 0
		}

	case syntax.EightShortSequence:
		for w := 0; w < 8; w++ {
			imdct(freqIn[w*nShort:(w+1)*nShort], buf[2*nShort*w:2*nShort*(w+1)])
		}
		for i := 0; i < nFlat; i++ {
			timeOut[i] = overlap[i]
		}
		// The first short window overlaps the previous frame's tail;
		// subsequent windows overlap each other at 50%.
		for i := 0; i < nShort; i++ {
			timeOut[nFlat+i] = overlap[nFlat+i] + buf[i]*shortWinPrev[i]
			timeOut[nFlat+1*nShort+i] = overlap[nFlat+1*nShort+i] + buf[nShort*1+i]*shortWin[nShort-1-i] + buf[nShort*2+i]*shortWin[i]
			timeOut[nFlat+2*nShort+i] = overlap[nFlat+2*nShort+i] + buf[nShort*3+i]*shortWin[nShort-1-i] + buf[nShort*4+i]*shortWin[i]
			timeOut[nFlat+3*nShort+i] = overlap[nFlat+3*nShort+i] + buf[nShort*5+i]*shortWin[nShort-1-i] + buf[nShort*6+i]*shortWin[i]
			if i < nTrans {
				timeOut[nFlat+4*nShort+i] = overlap[nFlat+4*nShort+i] + buf[nShort*7+i]*shortWin[nShort-1-i] + buf[nShort*8+i]*shortWin[i]
			}
		}
		for i := 0; i < nShort; i++ {
			if i >= nTrans {
				overlap[nFlat+4*nShort+i-nLong] = buf[nShort*7+i]*shortWin[nShort-1-i] + buf[nShort*8+i]*shortWin[i]
			}
			overlap[nFlat+5*nShort+i-nLong] = buf[nShort*9+i]*shortWin[nShort-1-i] + buf[nShort*10+i]*shortWin[i]
			overlap[nFlat+6*nShort+i-nLong] = buf[nShort*11+i]*shortWin[nShort-1-i] + buf[nShort*12+i]*shortWin[i]
			overlap[nFlat+7*nShort+i-nLong] = buf[nShort*13+i]*shortWin[nShort-1-i] + buf[nShort*14+i]*shortWin[i]
			overlap[nFlat+8*nShort+i-nLong] = buf[nShort*15+i] * shortWin[nShort-1-i]
		}
		for i := nFlat + nShort; i < nLong; i++ {
			overlap[i] = 0
		}

	case syntax.LongStopSequence:
		imdct(freqIn[:nLong], buf[:2*nLong])
		// Left half: zeros, rising short window, then flat top
		for i := 0; i < nFlat; i++ {
			timeOut[i] = overlap[i]
		}
		for i := 0; i < nShort; i++ {
			timeOut[nFlat+i] = overlap[nFlat+i] + buf[nFlat+i]*shortWinPrev[i]
		}
		for i := nFlat + nShort; i < nLong; i++ {
			timeOut[i] = overlap[i] + buf[i]
		}
		for i := 0; i < nLong; i++ {
			overlap[i] = buf[nLong+i] * longWin[nLong-1-i]
		}
	}
}
