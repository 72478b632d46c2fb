package syntax

import (
	"github.com/averten/go-aacdec/internal/bits"
)

// ICSInfoConfig holds configuration needed for ICS info parsing.
type ICSInfoConfig struct {
	SFIndex      uint8 // Sample rate index (0-11)
	CommonWindow bool  // True if CPE with common window
}

// ParseICSInfo parses the ics_info() element from the bitstream.
func ParseICSInfo(r *bits.Reader, ics *ICStream, cfg *ICSInfoConfig) error {
	// ics_reserved_bit - must be 0
	if r.Get1Bit() != 0 {
		return ErrICSReservedBit
	}

	// window_sequence (2 bits)
	ics.WindowSequence = WindowSequence(r.GetBits(2))

	// window_shape (1 bit)
	ics.WindowShape = r.Get1Bit()

	if ics.WindowSequence == EightShortSequence {
		// Short blocks: 4 bits for max_sfb
		ics.MaxSFB = uint8(r.GetBits(4))
		// scale_factor_grouping (7 bits)
		ics.ScaleFactorGrouping = uint8(r.GetBits(7))
	} else {
		// Long blocks: 6 bits for max_sfb
		ics.MaxSFB = uint8(r.GetBits(6))
	}

	if err := WindowGroupingInfo(ics, cfg.SFIndex); err != nil {
		return err
	}

	// Predictor data only exists for long blocks. The low complexity
	// profile has no prediction payload, so a set bit means the stream
	// was encoded with a profile we cannot decode.
	if ics.WindowSequence != EightShortSequence {
		ics.PredictorDataPresent = r.Get1Bit() != 0
		if ics.PredictorDataPresent {
			return ErrPredictionNotSupported
		}
	}

	return nil
}
