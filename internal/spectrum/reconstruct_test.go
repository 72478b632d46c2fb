package spectrum

import (
	"testing"

	"github.com/averten/go-aacdec/internal/huffman"
	"github.com/averten/go-aacdec/internal/syntax"
)

func reconstructICS() *syntax.ICStream {
	ics := &syntax.ICStream{
		NumWindowGroups: 1,
		NumWindows:      1,
		MaxSFB:          4,
		NumSWB:          4,
		WindowSequence:  syntax.OnlyLongSequence,
		GlobalGain:      100,
	}
	ics.WindowGroupLength[0] = 1
	ics.SWBOffset[0] = 0
	ics.SWBOffset[1] = 4
	ics.SWBOffset[2] = 8
	ics.SWBOffset[3] = 12
	ics.SWBOffset[4] = 16
	ics.SWBOffsetMax = 1024
	for sfb := 0; sfb < 4; sfb++ {
		ics.SFBCB[0][sfb] = 1
		ics.ScaleFactors[0][sfb] = 100
	}
	return ics
}

func TestReconstructSingleChannel_BasicLC(t *testing.T) {
	ics := reconstructICS()

	quantData := make([]int16, 1024)
	quantData[0] = 1
	quantData[1] = 2
	quantData[2] = -1
	quantData[3] = -2

	spec := make([]float64, 1024)
	cfg := &ReconstructConfig{SRIndex: 4, PNS: NewPNSState()}

	if err := ReconstructSingleChannel(ics, quantData, spec, cfg); err != nil {
		t.Fatalf("ReconstructSingleChannel failed: %v", err)
	}

	if spec[0] != 1.0 {
		t.Errorf("spec[0] = %v, want 1.0", spec[0])
	}
	if spec[1] == 0 {
		t.Error("spec[1] should be non-zero")
	}
	if spec[2] != -1.0 {
		t.Errorf("spec[2] = %v, want -1.0", spec[2])
	}
	if spec[16] != 0 {
		t.Errorf("spec[16] = %v, want 0 (beyond max_sfb)", spec[16])
	}
}

func TestReconstructSingleChannel_WithPulse(t *testing.T) {
	ics := reconstructICS()
	ics.PulseDataPresent = true
	ics.Pul.NumberPulse = 0
	ics.Pul.PulseStartSFB = 0
	ics.Pul.PulseOffset[0] = 2
	ics.Pul.PulseAmp[0] = 5

	quantData := make([]int16, 1024)
	quantData[0] = 1
	quantData[1] = 2
	quantData[2] = 3
	quantData[3] = 4

	spec := make([]float64, 1024)
	cfg := &ReconstructConfig{SRIndex: 4, PNS: NewPNSState()}

	if err := ReconstructSingleChannel(ics, quantData, spec, cfg); err != nil {
		t.Fatalf("ReconstructSingleChannel failed: %v", err)
	}

	// Pulse is applied in the quantized domain before dequantization
	if quantData[2] != 8 {
		t.Errorf("quantData[2] after pulse: got %d, want 8", quantData[2])
	}
	if spec[2] != 16.0 {
		t.Errorf("spec[2] = %v, want 16.0 (8^(4/3))", spec[2])
	}
}

func TestReconstructSingleChannel_PulseInShortBlock(t *testing.T) {
	ics := &syntax.ICStream{
		WindowSequence:   syntax.EightShortSequence,
		PulseDataPresent: true,
	}

	quantData := make([]int16, 1024)
	spec := make([]float64, 1024)
	cfg := &ReconstructConfig{SRIndex: 4, PNS: NewPNSState()}

	err := ReconstructSingleChannel(ics, quantData, spec, cfg)
	if err != syntax.ErrPulseInShortBlock {
		t.Errorf("got error %v, want ErrPulseInShortBlock", err)
	}
}

func TestReconstructSingleChannel_NoiseBand(t *testing.T) {
	ics := reconstructICS()
	ics.MaxSFB = 2
	ics.NumSWB = 2
	ics.SWBOffset[1] = 8
	ics.SWBOffset[2] = 16
	ics.SFBCB[0][0] = uint8(huffman.NoiseHCB)
	ics.ScaleFactors[0][0] = 0
	ics.NoiseUsed = true

	quantData := make([]int16, 1024)
	spec := make([]float64, 1024)
	cfg := &ReconstructConfig{SRIndex: 4, PNS: NewPNSState()}

	if err := ReconstructSingleChannel(ics, quantData, spec, cfg); err != nil {
		t.Fatalf("ReconstructSingleChannel failed: %v", err)
	}

	hasNoise := false
	for i := 0; i < 8; i++ {
		if spec[i] != 0 {
			hasNoise = true
			break
		}
	}
	if !hasNoise {
		t.Error("noise band should have non-zero values")
	}
	for i := 8; i < 16; i++ {
		if spec[i] != 0 {
			t.Errorf("spec[%d] = %v, want 0", i, spec[i])
		}
	}
}

func TestReconstructChannelPair_MSStereo(t *testing.T) {
	icsL := reconstructICS()
	icsR := reconstructICS()
	icsL.MSMaskPresent = 2

	quantL := make([]int16, 1024)
	quantR := make([]int16, 1024)
	quantL[0] = 8 // mid: 8^(4/3) = 16
	quantR[0] = 1 // side: 1

	specL := make([]float64, 1024)
	specR := make([]float64, 1024)
	cfg := &ReconstructConfig{SRIndex: 4, PNS: NewPNSState()}

	err := ReconstructChannelPair(icsL, icsR, quantL, quantR, specL, specR, cfg)
	if err != nil {
		t.Fatalf("ReconstructChannelPair failed: %v", err)
	}

	if specL[0] != 17.0 {
		t.Errorf("specL[0] = %v, want 17.0 (mid + side)", specL[0])
	}
	if specR[0] != 15.0 {
		t.Errorf("specR[0] = %v, want 15.0 (mid - side)", specR[0])
	}
}

func TestReconstructChannelPair_IntensityStereo(t *testing.T) {
	icsL := reconstructICS()
	icsR := reconstructICS()
	icsR.SFBCB[0][0] = uint8(huffman.IntensityHCB)
	icsR.ScaleFactors[0][0] = 0 // scale 1.0

	quantL := make([]int16, 1024)
	quantL[0] = 8
	quantR := make([]int16, 1024)

	specL := make([]float64, 1024)
	specR := make([]float64, 1024)
	cfg := &ReconstructConfig{SRIndex: 4, PNS: NewPNSState()}

	err := ReconstructChannelPair(icsL, icsR, quantL, quantR, specL, specR, cfg)
	if err != nil {
		t.Fatalf("ReconstructChannelPair failed: %v", err)
	}

	if specL[0] != 16.0 {
		t.Errorf("specL[0] = %v, want 16.0", specL[0])
	}
	if specR[0] != 16.0 {
		t.Errorf("specR[0] = %v, want 16.0 (copied from left)", specR[0])
	}
}
