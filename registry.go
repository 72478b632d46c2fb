package aacdec

// CodecID identifies a compressed audio codec.
type CodecID uint32

// Codec identifiers.
const (
	CodecIDNone CodecID = iota
	CodecIDAAC
)

// Registry maps codec identifiers to decoder constructors. Values are
// explicit; there is no package-level default.
type Registry struct {
	factories map[CodecID]func() *Decoder
}

// NewRegistry returns a registry with the built-in decoders
// registered.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[CodecID]func() *Decoder)}
	r.Register(CodecIDAAC, NewDecoder)
	return r
}

// Register adds or replaces the constructor for a codec.
func (r *Registry) Register(id CodecID, newDecoder func() *Decoder) {
	r.factories[id] = newDecoder
}

// NewDecoder constructs a decoder for the codec. It returns
// ErrDecoderNotFound when no constructor is registered.
func (r *Registry) NewDecoder(id CodecID) (*Decoder, error) {
	f, ok := r.factories[id]
	if !ok {
		return nil, ErrDecoderNotFound
	}
	return f(), nil
}
