package output

import (
	"math"
	"testing"

	"github.com/averten/go-aacdec/internal/syntax"
)

func TestDRCRefLevel(t *testing.T) {
	// -20 dB in quarter-dB steps
	if DRCRefLevel != 80 {
		t.Errorf("DRCRefLevel: got %d, want 80", DRCRefLevel)
	}
}

func TestNewDRC(t *testing.T) {
	drc := NewDRC(0.5, 0.75)

	if drc.Cut != 0.5 {
		t.Errorf("Cut: got %v, want 0.5", drc.Cut)
	}
	if drc.Boost != 0.75 {
		t.Errorf("Boost: got %v, want 0.75", drc.Boost)
	}
}

func TestDRCApply_NotPresent(t *testing.T) {
	drc := NewDRC(1.0, 1.0)
	info := &syntax.DRCInfo{Present: false}

	spec := []float64{1.0, 2.0, 3.0, 4.0}
	drc.Apply(info, spec)

	expected := []float64{1.0, 2.0, 3.0, 4.0}
	for i, v := range spec {
		if v != expected[i] {
			t.Errorf("spec[%d] = %v, want %v", i, v, expected[i])
		}
	}
}

func TestDRCApply_SingleBandBoost(t *testing.T) {
	drc := NewDRC(1.0, 1.0)
	info := &syntax.DRCInfo{
		Present:      true,
		NumBands:     1,
		ProgRefLevel: DRCRefLevel,
	}
	// Positive gain: factor = 2^(24/24) = 2.0
	info.DynRngCtl[0] = 24
	info.DynRngSgn[0] = 0

	spec := make([]float64, 1024)
	for i := range spec {
		spec[i] = 1.0
	}

	drc.Apply(info, spec)

	for i, v := range spec {
		if math.Abs(v-2.0) > 1e-12 {
			t.Fatalf("spec[%d] = %v, want 2.0", i, v)
		}
	}
}

func TestDRCApply_SingleBandCut(t *testing.T) {
	drc := NewDRC(1.0, 1.0)
	info := &syntax.DRCInfo{
		Present:      true,
		NumBands:     1,
		ProgRefLevel: DRCRefLevel,
	}
	// Negative gain: factor = 2^(-24/24) = 0.5
	info.DynRngCtl[0] = 24
	info.DynRngSgn[0] = 1

	spec := make([]float64, 1024)
	for i := range spec {
		spec[i] = 1.0
	}

	drc.Apply(info, spec)

	for i, v := range spec {
		if math.Abs(v-0.5) > 1e-12 {
			t.Fatalf("spec[%d] = %v, want 0.5", i, v)
		}
	}
}

func TestDRCApply_CutFactorScalesExponent(t *testing.T) {
	// Cut = 0.5 halves the applied compression exponent
	drc := NewDRC(0.5, 1.0)
	info := &syntax.DRCInfo{
		Present:      true,
		NumBands:     1,
		ProgRefLevel: DRCRefLevel,
	}
	info.DynRngCtl[0] = 24
	info.DynRngSgn[0] = 1

	spec := make([]float64, 1024)
	for i := range spec {
		spec[i] = 1.0
	}

	drc.Apply(info, spec)

	want := math.Exp2(-0.5)
	for i, v := range spec {
		if math.Abs(v-want) > 1e-12 {
			t.Fatalf("spec[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestDRCApply_MultiBand(t *testing.T) {
	drc := NewDRC(1.0, 1.0)
	info := &syntax.DRCInfo{
		Present:      true,
		NumBands:     2,
		ProgRefLevel: DRCRefLevel,
	}
	// First band covers lines 0-7 (band_top in units of 4 lines),
	// second band the rest of the spectrum.
	info.BandTop[0] = 1
	info.BandTop[1] = 255
	info.DynRngCtl[0] = 24
	info.DynRngSgn[0] = 0
	info.DynRngCtl[1] = 0
	info.DynRngSgn[1] = 0

	spec := make([]float64, 1024)
	for i := range spec {
		spec[i] = 1.0
	}

	drc.Apply(info, spec)

	for i := 0; i < 8; i++ {
		if math.Abs(spec[i]-2.0) > 1e-12 {
			t.Errorf("spec[%d] = %v, want 2.0", i, spec[i])
		}
	}
	for i := 8; i < 1024; i++ {
		if math.Abs(spec[i]-1.0) > 1e-12 {
			t.Fatalf("spec[%d] = %v, want 1.0", i, spec[i])
		}
	}
}

func TestDRCApply_ProgRefLevelOffset(t *testing.T) {
	drc := NewDRC(1.0, 1.0)
	info := &syntax.DRCInfo{
		Present:      true,
		NumBands:     1,
		ProgRefLevel: DRCRefLevel - 24,
	}
	// level = ctl - (ref - prog) = 24 - 24 = 0: no change
	info.DynRngCtl[0] = 24
	info.DynRngSgn[0] = 0

	spec := make([]float64, 1024)
	for i := range spec {
		spec[i] = 3.0
	}

	drc.Apply(info, spec)

	for i, v := range spec {
		if math.Abs(v-3.0) > 1e-12 {
			t.Fatalf("spec[%d] = %v, want 3.0", i, v)
		}
	}
}
