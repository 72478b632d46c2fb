package syntax

import (
	"testing"

	"github.com/averten/go-aacdec/internal/bits"
)

// Minimal valid channel stream: long window, max_sfb=2, one zero-book
// section, no pulse/TNS/gain control, no spectral payload.
//
// global_gain: 100 (8 bits)
// ics_info: reserved 0, sequence 00, shape 0, max_sfb 000010, pred 0
// section_data: sect_cb 0000, sect_len_incr 00010
// flags: pulse 0, tns 0, gain control 0
func TestParseIndividualChannelStream_Minimal(t *testing.T) {
	data := []byte{0x64, 0x00, 0x80, 0x20}
	r := bits.NewReader(data)

	ics := &ICStream{}
	spec := make([]int16, FrameLength)
	cfg := &ICSConfig{SFIndex: 4, CommonWindow: false}

	if err := ParseIndividualChannelStream(r, ics, spec, cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ics.GlobalGain != 100 {
		t.Errorf("GlobalGain: got %d, want 100", ics.GlobalGain)
	}
	if ics.WindowSequence != OnlyLongSequence {
		t.Errorf("WindowSequence: got %d, want %d", ics.WindowSequence, OnlyLongSequence)
	}
	if ics.MaxSFB != 2 {
		t.Errorf("MaxSFB: got %d, want 2", ics.MaxSFB)
	}
	if ics.NumSec[0] != 1 {
		t.Errorf("NumSec[0]: got %d, want 1", ics.NumSec[0])
	}
	for sfb := uint8(0); sfb < 2; sfb++ {
		if ics.SFBCB[0][sfb] != 0 {
			t.Errorf("SFBCB[0][%d]: got %d, want 0", sfb, ics.SFBCB[0][sfb])
		}
		if ics.ScaleFactors[0][sfb] != 0 {
			t.Errorf("ScaleFactors[0][%d]: got %d, want 0", sfb, ics.ScaleFactors[0][sfb])
		}
	}
	if ics.PulseDataPresent || ics.TNSDataPresent || ics.GainControlDataPresent {
		t.Error("no tool payloads expected")
	}
}

// Same stream with the gain_control_data_present bit set must be
// rejected: gain control belongs to the SSR profile.
func TestParseIndividualChannelStream_GainControlRejected(t *testing.T) {
	data := []byte{0x64, 0x00, 0x80, 0x22}
	r := bits.NewReader(data)

	ics := &ICStream{}
	spec := make([]int16, FrameLength)
	cfg := &ICSConfig{SFIndex: 4, CommonWindow: false}

	err := ParseIndividualChannelStream(r, ics, spec, cfg)
	if err != ErrGainControlNotSupported {
		t.Errorf("expected ErrGainControlNotSupported, got %v", err)
	}
}
