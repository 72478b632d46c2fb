package aacdec

// Frame is one decoded frame of audio: 1024 samples per channel.
//
// Exactly one of Data and PCM is populated, selected by Format:
// SampleFormatF32P fills Data with one buffer per channel in the
// layout's slot order, SampleFormatS16 fills PCM with interleaved
// samples.
type Frame struct {
	Format     SampleFormat
	SampleRate uint32
	Layout     ChannelLayout
	NumSamples int
	PTS        int64

	Data [][]float32
	PCM  []int16
}

// Channels returns the number of channels in the frame.
func (f *Frame) Channels() int {
	return f.Layout.Count()
}
