package spectrum

import (
	"github.com/averten/go-aacdec/internal/huffman"
	"github.com/averten/go-aacdec/internal/syntax"
)

// IsIntensity returns the intensity stereo direction for a codebook.
// Returns 1 for in-phase (INTENSITY_HCB), -1 for out-of-phase
// (INTENSITY_HCB2), 0 otherwise.
func IsIntensity(cb huffman.Codebook) int8 {
	switch cb {
	case huffman.IntensityHCB:
		return 1
	case huffman.IntensityHCB2:
		return -1
	default:
		return 0
	}
}

// IsNoise returns true if the codebook indicates a PNS (noise) band.
func IsNoise(cb huffman.Codebook) bool {
	return cb == huffman.NoiseHCB
}

// IsIntensityICS returns the intensity direction for a scale factor band.
func IsIntensityICS(ics *syntax.ICStream, g, sfb uint8) int8 {
	return IsIntensity(huffman.Codebook(ics.SFBCB[g][sfb]))
}

// IsNoiseICS returns true if a scale factor band is a PNS band.
func IsNoiseICS(ics *syntax.ICStream, g, sfb uint8) bool {
	return IsNoise(huffman.Codebook(ics.SFBCB[g][sfb]))
}

// invertIntensity returns -1 when the M/S mask flips the intensity
// direction for a band, 1 otherwise. The left channel carries the mask.
func invertIntensity(icsL *syntax.ICStream, g, sfb uint8) int8 {
	if icsL.MSMaskPresent == 1 {
		return 1 - 2*int8(icsL.MSUsed[g][sfb])
	}
	return 1
}
