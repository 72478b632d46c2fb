package output

// Channel positions of the canonical 5.1 layout used by the downmix.
const (
	ChannelCenter     uint8 = 0
	ChannelFrontLeft  uint8 = 1
	ChannelFrontRight uint8 = 2
	ChannelRearLeft   uint8 = 3
	ChannelRearRight  uint8 = 4
	ChannelLFE        uint8 = 5
)

// DownmixStereo folds mapped 5.1 channels to a stereo pair. The
// channel map lists the C, L, R, Ls, Rs input indexes; the LFE
// channel is dropped.
func DownmixStereo(input [][]float64, channelMap []uint8, frameLen uint16) (left, right []float64) {
	left = make([]float64, frameLen)
	right = make([]float64, frameLen)
	for i := uint16(0); i < frameLen; i++ {
		left[i] = getSample(input, 0, i, true, channelMap)
		right[i] = getSample(input, 1, i, true, channelMap)
	}
	return left, right
}
