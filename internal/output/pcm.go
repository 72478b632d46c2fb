// Package output converts decoded channel data to PCM, with optional
// 5.1 to stereo downmix and dynamic range control.
package output

import "math"

// FloatScale normalizes the decoder's 16-bit-range samples to
// [-1.0, 1.0].
const FloatScale = 1.0 / 32768.0

// DMMul is the downmix normalization 1/(1+sqrt(2)+1/sqrt(2)) per
// ITU-R BS.775-1.
const DMMul = 0.3203772410170407

// RSQRT2 is 1/sqrt(2).
const RSQRT2 = 0.7071067811865475244

// clip16 clips and rounds a sample to int16 range, ties to even.
func clip16(sample float64) int16 {
	if sample >= 32767.0 {
		return 32767
	}
	if sample <= -32768.0 {
		return -32768
	}
	return int16(math.RoundToEven(sample))
}

// getSample retrieves a sample, optionally applying 5.1 to stereo
// downmix. With downMatrix set, the mapped channels 0-4 are C, L, R,
// Ls, Rs and only output channels 0 and 1 are meaningful:
//
//	left  = DMMul * (L + C/sqrt(2) + Ls/sqrt(2))
//	right = DMMul * (R + C/sqrt(2) + Rs/sqrt(2))
func getSample(input [][]float64, channel uint8, sample uint16,
	downMatrix bool, channelMap []uint8) float64 {

	if !downMatrix {
		return input[channelMap[channel]][sample]
	}

	if channel == 0 {
		return DMMul * (input[channelMap[1]][sample] +
			input[channelMap[0]][sample]*RSQRT2 +
			input[channelMap[3]][sample]*RSQRT2)
	}
	return DMMul * (input[channelMap[2]][sample] +
		input[channelMap[0]][sample]*RSQRT2 +
		input[channelMap[4]][sample]*RSQRT2)
}

// ToPCM16Bit converts per-channel samples to interleaved 16-bit PCM.
//
//   - input: per-channel samples (input[channel][sample])
//   - channelMap: maps output channels to input channels
//   - channels: number of output channels
//   - frameLen: samples per channel
//   - downMatrix: 5.1 to stereo downmix
//   - upMatrix: mono to stereo duplication
func ToPCM16Bit(input [][]float64, channelMap []uint8, channels uint8,
	frameLen uint16, downMatrix, upMatrix bool, output []int16) {

	switch {
	case channels == 1 && !downMatrix:
		ch := channelMap[0]
		for i := uint16(0); i < frameLen; i++ {
			output[i] = clip16(input[ch][i])
		}

	case channels == 2 && !downMatrix:
		if upMatrix {
			ch := channelMap[0]
			for i := uint16(0); i < frameLen; i++ {
				sample := clip16(input[ch][i])
				output[i*2+0] = sample
				output[i*2+1] = sample
			}
		} else {
			chL := channelMap[0]
			chR := channelMap[1]
			for i := uint16(0); i < frameLen; i++ {
				output[i*2+0] = clip16(input[chL][i])
				output[i*2+1] = clip16(input[chR][i])
			}
		}

	default:
		for ch := uint8(0); ch < channels; ch++ {
			for i := uint16(0); i < frameLen; i++ {
				inp := getSample(input, ch, i, downMatrix, channelMap)
				output[int(i)*int(channels)+int(ch)] = clip16(inp)
			}
		}
	}
}

// ToFloat32 converts per-channel samples to planar float32 in
// [-1.0, 1.0].
func ToFloat32(input [][]float64, channelMap []uint8, channels uint8,
	frameLen uint16, output [][]float32) {

	for ch := uint8(0); ch < channels; ch++ {
		src := input[channelMap[ch]]
		dst := output[ch]
		for i := uint16(0); i < frameLen; i++ {
			dst[i] = float32(src[i] * FloatScale)
		}
	}
}
