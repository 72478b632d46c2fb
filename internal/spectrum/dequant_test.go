package spectrum

import (
	"math"
	"testing"

	"github.com/averten/go-aacdec/internal/huffman"
	"github.com/averten/go-aacdec/internal/syntax"
)

func dequantICS(numSWB uint8, width uint16) *syntax.ICStream {
	ics := &syntax.ICStream{
		NumWindowGroups: 1,
		NumWindows:      1,
		MaxSFB:          numSWB,
		NumSWB:          numSWB,
		WindowSequence:  syntax.OnlyLongSequence,
	}
	ics.WindowGroupLength[0] = 1
	for sfb := uint8(0); sfb <= numSWB; sfb++ {
		ics.SWBOffset[sfb] = uint16(sfb) * width
	}
	ics.SWBOffsetMax = 1024
	for sfb := uint8(0); sfb < numSWB; sfb++ {
		ics.SFBCB[0][sfb] = 1
		ics.ScaleFactors[0][sfb] = 100
	}
	return ics
}

func TestDequantize_LongBlock(t *testing.T) {
	ics := dequantICS(1, 4)

	// sf = 100 gives a gain of 1.0, so output is sign(q) * |q|^(4/3)
	quantData := []int16{1, 8, -8, 0}
	spec := make([]float64, 4)

	if err := Dequantize(ics, quantData, spec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []float64{1.0, 16.0, -16.0, 0.0}
	for i, v := range spec {
		if v != expected[i] {
			t.Errorf("spec[%d] = %v, want %v", i, v, expected[i])
		}
	}
}

func TestDequantize_ScaleFactorGain(t *testing.T) {
	// sf = 104 gives 2^1 = 2.0, sf = 96 gives 2^-1 = 0.5
	ics := dequantICS(2, 2)
	ics.ScaleFactors[0][0] = 104
	ics.ScaleFactors[0][1] = 96

	quantData := []int16{1, 8, 1, 8}
	spec := make([]float64, 4)

	if err := Dequantize(ics, quantData, spec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []float64{2.0, 32.0, 0.5, 8.0}
	for i, v := range spec {
		if v != expected[i] {
			t.Errorf("spec[%d] = %v, want %v", i, v, expected[i])
		}
	}
}

func TestDequantize_FractionalScaleFactor(t *testing.T) {
	// sf = 101 gives 2^0.25
	ics := dequantICS(1, 4)
	ics.ScaleFactors[0][0] = 101

	quantData := []int16{1, 1, 1, 1}
	spec := make([]float64, 4)

	if err := Dequantize(ics, quantData, spec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := math.Exp2(0.25)
	for i, v := range spec {
		if math.Abs(v-expected) > 1e-12 {
			t.Errorf("spec[%d] = %v, want %v", i, v, expected)
		}
	}
}

func TestDequantize_ZeroNoiseIntensityBands(t *testing.T) {
	ics := dequantICS(3, 4)
	ics.SFBCB[0][0] = uint8(huffman.ZeroHCB)
	ics.SFBCB[0][1] = uint8(huffman.NoiseHCB)
	ics.SFBCB[0][2] = uint8(huffman.IntensityHCB)
	ics.ScaleFactors[0][0] = 120
	ics.ScaleFactors[0][1] = 120
	ics.ScaleFactors[0][2] = 120

	quantData := make([]int16, 12)
	for i := range quantData {
		quantData[i] = 3
	}
	spec := make([]float64, 12)

	if err := Dequantize(ics, quantData, spec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, v := range spec {
		if v != 0 {
			t.Errorf("spec[%d] = %v, want 0 (untransmitted band)", i, v)
		}
	}
}

func TestDequantize_BandsBeyondMaxSFB(t *testing.T) {
	ics := dequantICS(2, 4)
	ics.MaxSFB = 1

	quantData := []int16{1, 1, 1, 1, 1, 1, 1, 1}
	spec := make([]float64, 8)

	if err := Dequantize(ics, quantData, spec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 4; i++ {
		if spec[i] != 1.0 {
			t.Errorf("spec[%d] = %v, want 1.0", i, spec[i])
		}
	}
	for i := 4; i < 8; i++ {
		if spec[i] != 0 {
			t.Errorf("spec[%d] = %v, want 0 (beyond max_sfb)", i, spec[i])
		}
	}
}

func TestDequantize_GroupedShortWindows(t *testing.T) {
	// One group of two short windows with two bands of width 2.
	// Grouped input packs band 0 of both windows, then band 1 of both
	// windows; output is window ordered.
	ics := &syntax.ICStream{
		NumWindowGroups: 1,
		NumWindows:      2,
		MaxSFB:          2,
		NumSWB:          2,
		WindowSequence:  syntax.EightShortSequence,
	}
	ics.WindowGroupLength[0] = 2
	ics.SWBOffset[0] = 0
	ics.SWBOffset[1] = 2
	ics.SWBOffset[2] = 4
	ics.SWBOffsetMax = 128
	ics.SFBCB[0][0] = 1
	ics.SFBCB[0][1] = 1
	ics.ScaleFactors[0][0] = 100
	ics.ScaleFactors[0][1] = 100

	quantData := []int16{1, 1, 8, 8, -1, -1, -8, -8}
	spec := make([]float64, 8)

	if err := Dequantize(ics, quantData, spec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Window 0: band 0 = {1, 1}, band 1 = {-1, -1}
	// Window 1: band 0 = {8, 8}, band 1 = {-8, -8}
	expected := []float64{1, 1, -1, -1, 16, 16, -16, -16}
	for i, v := range spec {
		if v != expected[i] {
			t.Errorf("spec[%d] = %v, want %v", i, v, expected[i])
		}
	}
}
