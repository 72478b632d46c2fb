package aacdec

// SampleFormat identifies the in-memory layout of decoded samples.
// Interleaved formats store all channels of one sample point
// consecutively; planar formats keep one buffer per channel.
type SampleFormat uint8

// Sample formats.
const (
	SampleFormatNone SampleFormat = iota
	SampleFormatU8                // unsigned 8-bit, interleaved
	SampleFormatS16               // signed 16-bit, interleaved
	SampleFormatS32               // signed 32-bit, interleaved
	SampleFormatF32               // float32, interleaved
	SampleFormatF64               // float64, interleaved
	SampleFormatU8P               // unsigned 8-bit, planar
	SampleFormatS16P              // signed 16-bit, planar
	SampleFormatS32P              // signed 32-bit, planar
	SampleFormatF32P              // float32, planar
	SampleFormatF64P              // float64, planar
)

// BytesPerSample returns the storage size of one sample, or 0 for
// SampleFormatNone.
func (f SampleFormat) BytesPerSample() int {
	switch f {
	case SampleFormatU8, SampleFormatU8P:
		return 1
	case SampleFormatS16, SampleFormatS16P:
		return 2
	case SampleFormatS32, SampleFormatS32P, SampleFormatF32, SampleFormatF32P:
		return 4
	case SampleFormatF64, SampleFormatF64P:
		return 8
	}
	return 0
}

// IsPlanar reports whether the format stores one buffer per channel.
func (f SampleFormat) IsPlanar() bool {
	switch f {
	case SampleFormatU8P, SampleFormatS16P, SampleFormatS32P,
		SampleFormatF32P, SampleFormatF64P:
		return true
	}
	return false
}

func (f SampleFormat) String() string {
	switch f {
	case SampleFormatU8:
		return "u8"
	case SampleFormatS16:
		return "s16"
	case SampleFormatS32:
		return "s32"
	case SampleFormatF32:
		return "f32"
	case SampleFormatF64:
		return "f64"
	case SampleFormatU8P:
		return "u8p"
	case SampleFormatS16P:
		return "s16p"
	case SampleFormatS32P:
		return "s32p"
	case SampleFormatF32P:
		return "f32p"
	case SampleFormatF64P:
		return "f64p"
	}
	return "none"
}
