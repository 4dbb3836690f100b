package minhash

import "errors"

var (
	ErrBadSignatureSize = errors.New("minhash: signature size must be at least 1")
	ErrSignatureSize    = errors.New("minhash: signature sizes do not match")
	ErrKmerSizeMismatch = errors.New("minhash: sketches use different k-mer sizes")
	ErrInvalidSketch    = errors.New("minhash: decoded sketch is invalid")
	ErrLoggerRequired   = errors.New("minhash: a logger is required")
)
