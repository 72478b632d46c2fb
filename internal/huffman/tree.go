package huffman

import "github.com/averten/go-aacdec/internal/bits"

// maxCodewordLen bounds a single tree walk. The longest codeword in any
// AAC codebook is 19 bits (scale factor book).
const maxCodewordLen = 20

// tree is a binary Huffman tree built at init time from codeword tables.
//
// Each node is a [2]int32 pair of children indexed by the next bit.
// Positive entries are child node indexes, negative entries are leaves
// holding -(value+1), and zero marks an unassigned branch.
type tree struct {
	nodes [][2]int32
}

// buildTree constructs a tree from parallel codeword/length arrays. The
// decoded value for entry i is values[i] when values is non-nil, or i
// itself otherwise.
func buildTree(codes []uint32, lens []uint8, values []int32) *tree {
	t := &tree{nodes: make([][2]int32, 1, 2*len(codes))}

	for i := range codes {
		value := int32(i)
		if values != nil {
			value = values[i]
		}
		leaf := -(value + 1)

		idx := 0
		for bitPos := int(lens[i]) - 1; bitPos >= 0; bitPos-- {
			bit := (codes[i] >> uint(bitPos)) & 1
			if bitPos == 0 {
				t.nodes[idx][bit] = leaf
				break
			}
			if t.nodes[idx][bit] > 0 {
				idx = int(t.nodes[idx][bit])
				continue
			}
			next := len(t.nodes)
			t.nodes = append(t.nodes, [2]int32{})
			t.nodes[idx][bit] = int32(next)
			idx = next
		}
	}

	return t
}

// decode walks the tree one bit at a time and returns the leaf value.
func (t *tree) decode(r *bits.Reader) (int32, error) {
	idx := 0
	for range maxCodewordLen {
		bit := r.Get1Bit()
		child := t.nodes[idx][bit]
		if child < 0 {
			return -(child + 1), nil
		}
		if child == 0 {
			return 0, ErrInvalidCodeword
		}
		idx = int(child)
	}
	return 0, ErrCodewordTooLong
}
