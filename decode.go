package aacdec

import (
	"github.com/averten/go-aacdec/internal/bits"
	"github.com/averten/go-aacdec/internal/output"
	"github.com/averten/go-aacdec/internal/spectrum"
	"github.com/averten/go-aacdec/internal/syntax"
)

// decodeAccessUnit runs the pipeline for one access unit: ADTS strip,
// raw_data_block() parsing, spectral reconstruction, dynamic range
// control, filter bank synthesis and channel layout mapping.
//
// Synthesis state (overlap halves, window shapes) is only touched
// after the whole block parsed cleanly and every channel has a layout
// slot, so a failed packet leaves the next one decodable. Corruption
// scoped to a single element is recovered by substituting silence for
// that element's channels.
func (d *Decoder) decodeAccessUnit(p *Packet) (*Frame, error) {
	data := p.Data
	if isADTS(data) {
		payload, err := d.stripADTS(data)
		if err != nil {
			return nil, err
		}
		data = payload
	}

	r := bits.NewReader(data)
	blk, err := syntax.ParseRawDataBlock(r, &syntax.RawDataBlockConfig{
		SFIndex:              d.srIndex,
		ChannelConfiguration: d.chanConfig,
	}, &d.drcInfo)
	if err != nil {
		return nil, ErrInvalidData
	}
	// The DRC payload covers this block only, decodable or not.
	defer func() { d.drcInfo.Present = false }()

	if int(blk.NumChannels) != d.layout.Count() {
		return nil, ErrInvalidData
	}

	slots, err := d.mapChannels(blk)
	if err != nil {
		return nil, err
	}

	numCh := d.layout.Count()
	specs := make([][]float64, numCh)
	icss := make([]*syntax.ICStream, numCh)
	for i := range specs {
		specs[i] = make([]float64, syntax.FrameLength)
	}

	// A fresh noise generator per access unit keeps PNS output a pure
	// function of the payload.
	cfg := &spectrum.ReconstructConfig{
		SRIndex: d.srIndex,
		PNS:     spectrum.NewPNSState(),
	}

	ch := 0
	for i := range blk.Elements {
		el := &blk.Elements[i]
		switch el.ID {
		case syntax.IDSCE, syntax.IDLFE:
			ics := &el.SCE.Element.ICS1
			if err := spectrum.ReconstructSingleChannel(ics, el.SCE.SpecData, specs[ch], cfg); err != nil {
				zeroSpec(specs[ch])
			}
			icss[ch] = ics
			ch++

		case syntax.IDCPE:
			icsL := &el.CPE.Element.ICS1
			icsR := &el.CPE.Element.ICS2
			if err := spectrum.ReconstructChannelPair(icsL, icsR,
				el.CPE.SpecData1, el.CPE.SpecData2,
				specs[ch], specs[ch+1], cfg); err != nil {
				zeroSpec(specs[ch])
				zeroSpec(specs[ch+1])
			}
			icss[ch] = icsL
			icss[ch+1] = icsR
			ch += 2
		}
	}

	if d.drcInfo.Present {
		for i := 0; i < numCh; i++ {
			d.drc.Apply(&d.drcInfo, specs[i])
		}
	}

	chans := make([][]float64, numCh)
	for i := 0; i < numCh; i++ {
		slot := slots[i]
		out := make([]float64, syntax.FrameLength)
		ics := icss[i]
		d.fb.IFilterBank(ics.WindowSequence, ics.WindowShape,
			d.prevShape[slot], specs[i], out, d.overlap[slot])
		d.prevShape[slot] = ics.WindowShape
		chans[slot] = out
	}

	return d.formatFrame(chans, p.PTS), nil
}

// isADTS reports whether the payload starts with the 0xFFF syncword.
func isADTS(data []byte) bool {
	return len(data) >= 2 && data[0] == 0xFF && data[1]&0xF0 == 0xF0
}

// stripADTS validates the ADTS header against the opened configuration
// and returns the raw data block payload behind it.
func (d *Decoder) stripADTS(data []byte) ([]byte, error) {
	r := bits.NewReader(data)
	h, err := syntax.ParseADTSHeader(r)
	if err != nil {
		return nil, ErrInvalidData
	}
	if h.Layer != 0 || h.ObjectType() != ObjectTypeLC {
		return nil, ErrInvalidData
	}
	if h.SFIndex != d.srIndex {
		return nil, ErrInvalidData
	}
	if h.ChannelConfiguration != 0 && h.ChannelConfiguration != d.chanConfig {
		return nil, ErrInvalidData
	}
	if int(h.AACFrameLength) > len(data) || h.DataSize() <= 0 {
		return nil, ErrInvalidData
	}
	return data[h.HeaderSize():h.AACFrameLength], nil
}

// mapChannels assigns decoded channels to canonical layout slots in
// element order: channel pairs fill the front, side, then back pairs;
// single elements fill front center then back center; LFE elements
// the LFE slot regardless of their position in the bitstream.
func (d *Decoder) mapChannels(blk *syntax.RawDataBlockResult) ([]int, error) {
	var pairSlots [][2]int
	var singleSlots, lfeSlots []int

	for _, p := range [][2]ChannelLayout{
		{ChFrontLeft, ChFrontRight},
		{ChSideLeft, ChSideRight},
		{ChBackLeft, ChBackRight},
	} {
		if d.layout&p[0] != 0 {
			pairSlots = append(pairSlots,
				[2]int{d.layout.slotIndex(p[0]), d.layout.slotIndex(p[1])})
		}
	}
	for _, c := range []ChannelLayout{ChFrontCenter, ChBackCenter} {
		if d.layout&c != 0 {
			singleSlots = append(singleSlots, d.layout.slotIndex(c))
		}
	}
	if d.layout&ChLowFrequency != 0 {
		lfeSlots = append(lfeSlots, d.layout.slotIndex(ChLowFrequency))
	}

	slots := make([]int, 0, d.layout.Count())
	for i := range blk.Elements {
		switch blk.Elements[i].ID {
		case syntax.IDCPE:
			if len(pairSlots) == 0 {
				return nil, ErrInvalidData
			}
			slots = append(slots, pairSlots[0][0], pairSlots[0][1])
			pairSlots = pairSlots[1:]
		case syntax.IDSCE:
			if len(singleSlots) == 0 {
				return nil, ErrInvalidData
			}
			slots = append(slots, singleSlots[0])
			singleSlots = singleSlots[1:]
		case syntax.IDLFE:
			if len(lfeSlots) == 0 {
				return nil, ErrInvalidData
			}
			slots = append(slots, lfeSlots[0])
			lfeSlots = lfeSlots[1:]
		}
	}
	if len(pairSlots) != 0 || len(singleSlots) != 0 || len(lfeSlots) != 0 {
		return nil, ErrInvalidData
	}
	return slots, nil
}

// downmixMap51 indexes the canonical 5.1 slot order (FL FR FC LFE BL
// BR) in the order the downmix expects.
var downmixMap51 = buildDownmixMap()

func buildDownmixMap() []uint8 {
	m := make([]uint8, 5)
	m[output.ChannelCenter] = 2
	m[output.ChannelFrontLeft] = 0
	m[output.ChannelFrontRight] = 1
	m[output.ChannelRearLeft] = 4
	m[output.ChannelRearRight] = 5
	return m
}

// formatFrame converts canonical-order channels to the configured
// output format.
func (d *Decoder) formatFrame(chans [][]float64, pts int64) *Frame {
	if d.downmix {
		left, right := output.DownmixStereo(chans, downmixMap51, syntax.FrameLength)
		chans = [][]float64{left, right}
	}

	numOut := len(chans)
	f := &Frame{
		Format:     d.format,
		SampleRate: d.sampleRate,
		Layout:     d.outLayout,
		NumSamples: syntax.FrameLength,
		PTS:        pts,
	}

	chMap := make([]uint8, numOut)
	for i := range chMap {
		chMap[i] = uint8(i)
	}

	switch d.format {
	case SampleFormatS16:
		f.PCM = make([]int16, numOut*syntax.FrameLength)
		output.ToPCM16Bit(chans, chMap, uint8(numOut), syntax.FrameLength,
			false, false, f.PCM)
	default: // SampleFormatF32P
		f.Data = make([][]float32, numOut)
		for i := range f.Data {
			f.Data[i] = make([]float32, syntax.FrameLength)
		}
		output.ToFloat32(chans, chMap, uint8(numOut), syntax.FrameLength, f.Data)
	}
	return f
}

func zeroSpec(s []float64) {
	for i := range s {
		s[i] = 0
	}
}
