package aacdec

// Error is a decoder error code.
type Error int

// Decoder error codes.
const (
	// ErrInvalidData marks a malformed or truncated access unit.
	ErrInvalidData Error = iota + 1

	// ErrUnsupported marks a stream the decoder cannot handle: a
	// non-LC object type, a reserved sample rate index, an unknown
	// channel configuration, or a 960-sample frame configuration.
	ErrUnsupported

	// ErrNeedMoreData is returned by ReceiveFrame when no frame is
	// pending.
	ErrNeedMoreData

	// ErrEOF is returned by ReceiveFrame once the tail frame has been
	// drained.
	ErrEOF

	// ErrInvalidState marks a call that is not legal in the decoder's
	// current state.
	ErrInvalidState

	// ErrDecoderNotFound is returned by Registry lookups for a codec
	// with no registered constructor.
	ErrDecoderNotFound
)

var errMessages = [...]string{
	ErrInvalidData:     "invalid bitstream data",
	ErrUnsupported:     "unsupported stream configuration",
	ErrNeedMoreData:    "no frame pending",
	ErrEOF:             "end of stream",
	ErrInvalidState:    "operation not valid in current state",
	ErrDecoderNotFound: "no decoder registered for codec",
}

// Error implements the error interface.
func (e Error) Error() string {
	if e <= 0 || int(e) >= len(errMessages) {
		return "unknown error"
	}
	return errMessages[e]
}
