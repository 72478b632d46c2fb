package aacdec

import (
	"github.com/averten/go-aacdec/internal/bits"
	"github.com/averten/go-aacdec/internal/tables"
)

// ObjectTypeLC is the MPEG-4 audio object type for AAC low complexity,
// the only profile this decoder handles.
const ObjectTypeLC = 2

// Config describes a stream to Open. ObjectType, SampleRateIndex and
// ChannelConfig describe it directly; ExtraData, when set, carries an
// AudioSpecificConfig that overrides all three. A zero ObjectType
// selects ObjectTypeLC.
type Config struct {
	ObjectType      uint8
	SampleRateIndex uint8 // 0-11
	ChannelConfig   uint8 // 1-7
	ExtraData       []byte

	// Format selects the output sample format: SampleFormatF32P
	// (the default) or SampleFormatS16.
	Format SampleFormat

	// Downmix folds 5.1 output to stereo. It has no effect on other
	// layouts.
	Downmix bool

	// DRCCut and DRCBoost scale transmitted dynamic range gains
	// (0 = ignore, 1 = apply fully).
	DRCCut   float64
	DRCBoost float64
}

// audioSpecificConfig is the decoded form of Config.ExtraData.
type audioSpecificConfig struct {
	objectType    uint8
	srIndex       uint8
	sampleRate    uint32
	channelConfig uint8
	frameLen960   bool
}

// parseAudioSpecificConfig reads an AudioSpecificConfig: 5-bit object
// type (31 escapes to 6 more bits), 4-bit frequency index (15 escapes
// to a 24-bit explicit rate), 4-bit channel configuration. For the LC
// object type the GASpecificConfig follows, which carries the
// 960-sample frame flag.
func parseAudioSpecificConfig(data []byte) (*audioSpecificConfig, error) {
	if len(data) < 2 {
		return nil, ErrInvalidData
	}
	r := bits.NewReader(data)

	asc := &audioSpecificConfig{}
	asc.objectType = uint8(r.GetBits(5))
	if asc.objectType == 31 {
		asc.objectType = 32 + uint8(r.GetBits(6))
	}

	asc.srIndex = uint8(r.GetBits(4))
	if asc.srIndex == 15 {
		asc.sampleRate = uint32(r.GetBits(24))
		asc.srIndex = tables.GetSRIndex(asc.sampleRate)
	} else {
		asc.sampleRate = tables.GetSampleRate(asc.srIndex)
	}

	asc.channelConfig = uint8(r.GetBits(4))
	if r.Error() {
		return nil, ErrInvalidData
	}

	if asc.objectType != ObjectTypeLC {
		// Caller rejects the object type; nothing further to parse.
		return asc, nil
	}

	// GASpecificConfig
	asc.frameLen960 = r.Get1Bit() != 0
	if r.Get1Bit() != 0 { // dependsOnCoreCoder
		r.GetBits(14) // coreCoderDelay
	}
	r.Get1Bit() // extensionFlag
	if r.Error() {
		return nil, ErrInvalidData
	}

	return asc, nil
}
