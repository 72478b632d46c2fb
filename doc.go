// Package aacdec implements an AAC-LC audio decoder.
//
// The decoder follows a two-phase calling pattern: SendPacket consumes
// one compressed access unit and ReceiveFrame drains the decoded
// frame. An empty packet (or Flush) switches the decoder to draining,
// where ReceiveFrame yields one tail frame built from the overlap
// history and then ErrEOF:
//
//	dec := aacdec.NewDecoder()
//	if err := dec.Open(aacdec.Config{SampleRateIndex: 4, ChannelConfig: 2}); err != nil {
//		log.Fatal(err)
//	}
//	for _, au := range accessUnits {
//		if err := dec.SendPacket(&aacdec.Packet{Data: au}); err != nil {
//			log.Fatal(err)
//		}
//		frame, err := dec.ReceiveFrame()
//		if err != nil {
//			log.Fatal(err)
//		}
//		// use frame
//	}
//	dec.Flush()
//	tail, _ := dec.ReceiveFrame()
//
// Packets may carry bare raw_data_block() payloads or complete ADTS
// frames; ADTS headers are detected and stripped. Output is planar
// float32 in [-1, 1] by default, or interleaved 16-bit PCM.
package aacdec
