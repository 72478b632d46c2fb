package aacdec

import "math"

// NoPTS marks a packet or frame that carries no presentation
// timestamp.
const NoPTS int64 = math.MinInt64

// Packet is one compressed access unit handed to SendPacket. Data may
// hold a bare raw_data_block() payload or a complete ADTS frame; the
// decoder never mutates it. An empty packet signals end of stream.
type Packet struct {
	Data        []byte
	PTS         int64
	StreamIndex int
}

// IsEmpty reports whether the packet carries no payload.
func (p *Packet) IsEmpty() bool {
	return p == nil || len(p.Data) == 0
}
