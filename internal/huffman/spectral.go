package huffman

import "github.com/averten/go-aacdec/internal/bits"

// spectralCodebook decodes tuples of quantized spectral coefficients.
//
// Books 1-4 decode quads, books 5-11 decode pairs. Books 1, 2, 5 and 6
// carry signed values directly; the others store magnitudes followed by
// one sign bit per non-zero value. Book 11 additionally escapes
// magnitudes equal to escVal into a variable-length extension.
type spectralCodebook struct {
	tree   *tree
	values [][4]int16 // decoded tuple per codeword index
	dim    int        // 2 or 4
	signed bool
	esc    bool
	escVal int16
}

// spectralBooks holds codebooks 1-11, indexed by codebook number.
var spectralBooks [12]*spectralCodebook

func init() {
	spectralBooks[1] = newSpectralCodebook(codes1[:], bits1[:], QuadLen, 3, -1, true, false)
	spectralBooks[2] = newSpectralCodebook(codes2[:], bits2[:], QuadLen, 3, -1, true, false)
	spectralBooks[3] = newSpectralCodebook(codes3[:], bits3[:], QuadLen, 3, 0, false, false)
	spectralBooks[4] = newSpectralCodebook(codes4[:], bits4[:], QuadLen, 3, 0, false, false)
	spectralBooks[5] = newSpectralCodebook(codes5[:], bits5[:], PairLen, 9, -4, true, false)
	spectralBooks[6] = newSpectralCodebook(codes6[:], bits6[:], PairLen, 9, -4, true, false)
	spectralBooks[7] = newSpectralCodebook(codes7[:], bits7[:], PairLen, 8, 0, false, false)
	spectralBooks[8] = newSpectralCodebook(codes8[:], bits8[:], PairLen, 8, 0, false, false)
	spectralBooks[9] = newSpectralCodebook(codes9[:], bits9[:], PairLen, 13, 0, false, false)
	spectralBooks[10] = newSpectralCodebook(codes10[:], bits10[:], PairLen, 13, 0, false, false)
	spectralBooks[11] = newSpectralCodebook(codes11[:], bits11[:], PairLen, 17, 0, false, true)
}

// newSpectralCodebook builds a codebook from codeword tables. mod is the
// number of distinct values per dimension and offset centers signed books.
func newSpectralCodebook(codes []uint16, lens []uint8, dim, mod int, offset int16, signed, esc bool) *spectralCodebook {
	wide := make([]uint32, len(codes))
	for i, c := range codes {
		wide[i] = uint32(c)
	}

	values := make([][4]int16, len(codes))
	for i := range values {
		values[i] = indexToValues(i, dim, mod, offset)
	}

	cb := &spectralCodebook{
		tree:   buildTree(wide, lens, nil),
		values: values,
		dim:    dim,
		signed: signed,
		esc:    esc,
	}
	if esc {
		cb.escVal = int16(mod - 1)
	}
	return cb
}

// indexToValues converts a linear codeword index into its value tuple.
func indexToValues(idx, dim, mod int, offset int16) [4]int16 {
	var vals [4]int16
	if dim == QuadLen {
		m2 := mod * mod
		m3 := m2 * mod
		vals[0] = int16(idx/m3) + offset
		vals[1] = int16(idx/m2%mod) + offset
		vals[2] = int16(idx/mod%mod) + offset
		vals[3] = int16(idx%mod) + offset
	} else {
		vals[0] = int16(idx/mod) + offset
		vals[1] = int16(idx%mod) + offset
	}
	return vals
}

// SpectralData decodes one codeword of the given codebook into dst.
// dst must have room for 4 values (quad books) or 2 values (pair books).
func SpectralData(cb uint8, r *bits.Reader, dst []int16) error {
	if cb == 0 || int(cb) >= len(spectralBooks) || spectralBooks[cb] == nil {
		return ErrInvalidCodebook
	}
	book := spectralBooks[cb]

	idx, err := book.tree.decode(r)
	if err != nil {
		return err
	}
	raw := &book.values[idx]

	for i := 0; i < book.dim; i++ {
		v := raw[i]
		if !book.signed && v != 0 {
			if r.Get1Bit() != 0 {
				v = -v
			}
		}
		if book.esc && (v == book.escVal || v == -book.escVal) {
			mag, err := getEscape(r)
			if err != nil {
				return err
			}
			if v < 0 {
				v = -mag
			} else {
				v = mag
			}
		}
		dst[i] = v
	}

	return nil
}

// getEscape reads an escape sequence: a unary run of ones selecting the
// exponent n (starting at 4), then n mantissa bits. The reconstructed
// magnitude is (1<<n) + mantissa.
func getEscape(r *bits.Reader) (int16, error) {
	n := uint(4)
	for r.Get1Bit() != 0 {
		n++
		if n > 15 {
			return 0, ErrEscapeTooLarge
		}
	}
	mantissa := r.GetBits(n)
	return int16((1 << n) + mantissa), nil
}

// PairDim returns the tuple width of a spectral codebook.
func PairDim(cb uint8) int {
	if Codebook(cb) >= FirstPairHCB {
		return PairLen
	}
	return QuadLen
}
