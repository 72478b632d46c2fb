package aacdec

import (
	"github.com/averten/go-aacdec/internal/filterbank"
	"github.com/averten/go-aacdec/internal/output"
	"github.com/averten/go-aacdec/internal/syntax"
	"github.com/averten/go-aacdec/internal/tables"
)

type decoderState uint8

const (
	stateIdle decoderState = iota
	stateConfigured
	stateDecoding
	stateFlushing
	stateClosed
)

// Decoder decodes AAC-LC access units into PCM frames.
//
// The calling pattern is two-phase: SendPacket consumes one access
// unit and ReceiveFrame drains the produced frame. An empty packet or
// Flush starts draining; the tail frame carries the final overlap
// half, after which ReceiveFrame returns ErrEOF and the decoder is
// closed. A Decoder is not safe for concurrent use.
type Decoder struct {
	state decoderState

	format     SampleFormat
	downmix    bool
	layout     ChannelLayout
	outLayout  ChannelLayout
	srIndex    uint8
	chanConfig uint8
	sampleRate uint32

	fb      *filterbank.FilterBank
	drc     *output.DRC
	drcInfo syntax.DRCInfo

	// Per layout slot synthesis state.
	overlap   [][]float64
	prevShape []uint8

	pending *Frame
}

// NewDecoder returns an unconfigured decoder.
func NewDecoder() *Decoder {
	return &Decoder{state: stateIdle}
}

// Open configures the decoder for a stream. On error the decoder
// stays unconfigured and Open may be retried.
func (d *Decoder) Open(cfg Config) error {
	if d.state != stateIdle {
		return ErrInvalidState
	}

	objectType := cfg.ObjectType
	if objectType == 0 {
		objectType = ObjectTypeLC
	}
	srIndex := cfg.SampleRateIndex
	chanConfig := cfg.ChannelConfig
	if len(cfg.ExtraData) > 0 {
		asc, err := parseAudioSpecificConfig(cfg.ExtraData)
		if err != nil {
			return err
		}
		objectType = asc.objectType
		srIndex = asc.srIndex
		chanConfig = asc.channelConfig
		if objectType == ObjectTypeLC && asc.frameLen960 {
			// All tables here are 1024-family.
			return ErrUnsupported
		}
	}

	if objectType != ObjectTypeLC {
		return ErrUnsupported
	}
	if srIndex >= 12 {
		return ErrUnsupported
	}
	layout, err := LayoutForConfig(chanConfig)
	if err != nil {
		return err
	}

	format := cfg.Format
	if format == SampleFormatNone {
		format = SampleFormatF32P
	}
	if format != SampleFormatF32P && format != SampleFormatS16 {
		return ErrUnsupported
	}

	d.format = format
	d.downmix = cfg.Downmix && layout == Layout5Point1
	d.layout = layout
	d.outLayout = layout
	if d.downmix {
		d.outLayout = LayoutStereo
	}
	d.srIndex = srIndex
	d.chanConfig = chanConfig
	d.sampleRate = tables.GetSampleRate(srIndex)

	d.fb = filterbank.NewFilterBank()
	d.drc = output.NewDRC(cfg.DRCCut, cfg.DRCBoost)
	d.drcInfo = syntax.DRCInfo{ProgRefLevel: output.DRCRefLevel}

	numCh := layout.Count()
	d.overlap = make([][]float64, numCh)
	for i := range d.overlap {
		d.overlap[i] = make([]float64, syntax.FrameLength)
	}
	d.prevShape = make([]uint8, numCh)
	d.pending = nil
	d.state = stateConfigured
	return nil
}

// SendPacket feeds one access unit. It returns ErrInvalidState before
// Open, after Close, while draining, or while a produced frame has
// not been drained with ReceiveFrame. An empty packet starts
// draining. Decoding happens eagerly here; a corrupt access unit
// yields a typed error and leaves the decoder usable for the next
// packet.
func (d *Decoder) SendPacket(p *Packet) error {
	switch d.state {
	case stateConfigured, stateDecoding:
	default:
		return ErrInvalidState
	}
	if d.pending != nil {
		return ErrInvalidState
	}

	if p.IsEmpty() {
		d.pending = d.tailFrame()
		d.state = stateFlushing
		return nil
	}

	frame, err := d.decodeAccessUnit(p)
	if err != nil {
		return err
	}
	d.pending = frame
	d.state = stateDecoding
	return nil
}

// Flush is equivalent to sending an empty packet.
func (d *Decoder) Flush() error {
	return d.SendPacket(&Packet{})
}

// ReceiveFrame returns the frame produced by the last SendPacket, or
// ErrNeedMoreData when none is pending. While draining it returns
// exactly one tail frame and then ErrEOF, closing the decoder.
func (d *Decoder) ReceiveFrame() (*Frame, error) {
	switch d.state {
	case stateIdle, stateClosed:
		return nil, ErrInvalidState
	}

	if d.pending != nil {
		f := d.pending
		d.pending = nil
		return f, nil
	}
	if d.state == stateFlushing {
		d.release()
		return nil, ErrEOF
	}
	return nil, ErrNeedMoreData
}

// Close releases the decoder's buffers. Every call after Close
// returns ErrInvalidState.
func (d *Decoder) Close() {
	d.release()
}

func (d *Decoder) release() {
	d.overlap = nil
	d.prevShape = nil
	d.pending = nil
	d.state = stateClosed
}

// tailFrame assembles the final frame from the persisted overlap
// halves.
func (d *Decoder) tailFrame() *Frame {
	chans := make([][]float64, len(d.overlap))
	copy(chans, d.overlap)
	return d.formatFrame(chans, NoPTS)
}
