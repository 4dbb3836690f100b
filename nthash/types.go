package nthash

import "errors"

const (
	// HashBytes is the width of a hash value when written as bytes.
	HashBytes = 8
)

var (
	ErrUnsupportedSymbol = errors.New("nthash: unsupported symbol")
	ErrBadK              = errors.New("nthash: k must be at least 1")
	ErrKTooLarge         = errors.New("nthash: k exceeds the sequence length")
	ErrWindowOutOfRange  = errors.New("nthash: window exceeds the sequence bounds")
)
