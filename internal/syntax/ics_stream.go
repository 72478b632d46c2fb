package syntax

import "github.com/averten/go-aacdec/internal/bits"

// ICSConfig holds configuration for individual channel stream parsing.
type ICSConfig struct {
	SFIndex      uint8 // Sample rate index (0-11)
	CommonWindow bool  // True if CPE shares window info
}

// ParseIndividualChannelStream parses an individual_channel_stream():
// global gain, ics_info (unless shared), section data, scale factors,
// optional tool payloads, and finally the Huffman-coded spectral data.
func ParseIndividualChannelStream(r *bits.Reader, ics *ICStream, specData []int16, cfg *ICSConfig) error {
	// global_gain (8 bits)
	ics.GlobalGain = uint8(r.GetBits(LenByte))

	if !cfg.CommonWindow {
		icsInfoCfg := &ICSInfoConfig{
			SFIndex:      cfg.SFIndex,
			CommonWindow: cfg.CommonWindow,
		}
		if err := ParseICSInfo(r, ics, icsInfoCfg); err != nil {
			return err
		}
	}

	if err := ParseSectionData(r, ics); err != nil {
		return err
	}

	if err := ParseScaleFactorData(r, ics); err != nil {
		return err
	}

	// pulse_data_present (1 bit)
	ics.PulseDataPresent = r.Get1Bit() != 0
	if ics.PulseDataPresent {
		// Pulse coding is not allowed in short blocks
		if ics.WindowSequence == EightShortSequence {
			return ErrPulseInShortBlock
		}
		if err := ParsePulseData(r, ics, &ics.Pul); err != nil {
			return err
		}
	}

	// tns_data_present (1 bit)
	ics.TNSDataPresent = r.Get1Bit() != 0
	if ics.TNSDataPresent {
		ParseTNSData(r, ics, &ics.TNS)
	}

	// gain_control_data_present (1 bit) - SSR profile only
	ics.GainControlDataPresent = r.Get1Bit() != 0
	if ics.GainControlDataPresent {
		return ErrGainControlNotSupported
	}

	if err := ParseSpectralData(r, ics, specData); err != nil {
		return err
	}

	if r.Error() {
		return ErrBitstreamRead
	}

	return nil
}
