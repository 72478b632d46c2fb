package aacdec

import "math/bits"

// ChannelLayout is a bitmask of output channel positions. Channel
// slots within a frame are ordered by ascending bit position.
type ChannelLayout uint32

// Channel positions.
const (
	ChFrontLeft ChannelLayout = 1 << iota
	ChFrontRight
	ChFrontCenter
	ChLowFrequency
	ChBackLeft
	ChBackRight
	ChSideLeft
	ChSideRight
	ChBackCenter
)

// Common layouts.
const (
	LayoutMono     = ChFrontCenter
	LayoutStereo   = ChFrontLeft | ChFrontRight
	LayoutSurround = LayoutStereo | ChFrontCenter
	Layout4Point0  = LayoutSurround | ChBackCenter
	Layout5Point0  = LayoutSurround | ChBackLeft | ChBackRight
	Layout5Point1  = Layout5Point0 | ChLowFrequency
	Layout7Point1  = Layout5Point1 | ChSideLeft | ChSideRight
)

// Count returns the number of channels in the layout.
func (l ChannelLayout) Count() int {
	return bits.OnesCount32(uint32(l))
}

// slotIndex returns the frame slot of a single channel position.
func (l ChannelLayout) slotIndex(ch ChannelLayout) int {
	return bits.OnesCount32(uint32(l & (ch - 1)))
}

// LayoutForConfig maps an MPEG-4 channel configuration code (1-7) to
// its channel layout.
func LayoutForConfig(config uint8) (ChannelLayout, error) {
	switch config {
	case 1:
		return LayoutMono, nil
	case 2:
		return LayoutStereo, nil
	case 3:
		return LayoutSurround, nil
	case 4:
		return Layout4Point0, nil
	case 5:
		return Layout5Point0, nil
	case 6:
		return Layout5Point1, nil
	case 7:
		return Layout7Point1, nil
	}
	return 0, ErrUnsupported
}
