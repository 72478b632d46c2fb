package syntax

import "github.com/averten/go-aacdec/internal/bits"

// ParseDataStreamElement parses a Data Stream Element (DSE).
// DSE carries auxiliary data that is not part of the audio bitstream.
// The data is simply skipped after reading.
//
// Returns the number of data bytes in the element.
func ParseDataStreamElement(r *bits.Reader) uint16 {
	// element_instance_tag (4 bits) - discarded
	_ = r.GetBits(LenTag)

	// data_byte_align_flag (1 bit)
	byteAligned := r.Get1Bit() == 1

	// count (8 bits), extended by a second byte when saturated
	count := uint16(r.GetBits(8))
	if count == 255 {
		count += uint16(r.GetBits(8))
	}

	if byteAligned {
		r.ByteAlign()
	}

	for i := uint16(0); i < count; i++ {
		r.GetBits(LenByte)
	}

	return count
}
