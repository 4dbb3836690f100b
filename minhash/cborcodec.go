package minhash

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Codec encodes sketches as deterministic CBOR, so equal sketches always
// encode to equal bytes.
type Codec struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

func NewCBORCodec() (Codec, error) {
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return Codec{}, err
	}
	dec, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{enc: enc, dec: dec}, nil
}

func (c Codec) MarshalSketch(s *Sketch) ([]byte, error) {
	return c.enc.Marshal(s)
}

// UnmarshalSketch decodes and validates a sketch.
func (c Codec) UnmarshalSketch(data []byte) (*Sketch, error) {
	var s Sketch
	if err := c.dec.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.KmerSize < 1 || len(s.Signature) == 0 {
		return nil, fmt.Errorf("%w: k=%d size=%d", ErrInvalidSketch, s.KmerSize, len(s.Signature))
	}
	return &s, nil
}
