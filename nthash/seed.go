package nthash

import "fmt"

// seedFwd and seedRC are indexed directly by the input byte. Unsupported
// bytes map to zero, so callers must validate before using them.
var seedFwd = [256]uint64{
	'A': 0x3c8bfbb395c60474,
	'C': 0x3193c18562a02b4c,
	'G': 0x20323ed082572324,
	'T': 0x295549f54be24456,
	'N': 0,
}

// seedRC[x] == seedFwd[complement(x)]
var seedRC = [256]uint64{
	'A': 0x295549f54be24456,
	'C': 0x20323ed082572324,
	'G': 0x3193c18562a02b4c,
	'T': 0x3c8bfbb395c60474,
	'N': 0,
}

var supported = [256]bool{'A': true, 'C': true, 'G': true, 'T': true, 'N': true}

// Seed returns the forward strand seed for symbol c.
func Seed(c byte) (uint64, error) {
	if !supported[c] {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedSymbol, c)
	}
	return seedFwd[c], nil
}

// SeedRC returns the reverse complement seed for symbol c. It is the forward
// seed of the Watson-Crick complement of c, and zero for N.
func SeedRC(c byte) (uint64, error) {
	if !supported[c] {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedSymbol, c)
	}
	return seedRC[c], nil
}

// Supported reports whether c is in {A, C, G, T, N}.
func Supported(c byte) bool { return supported[c] }

// checkSymbols returns an error naming the first unsupported byte in seq.
// offset is added to the reported position so window checks report
// positions in the caller's sequence.
func checkSymbols(seq []byte, offset int) error {
	for i, c := range seq {
		if !supported[c] {
			return fmt.Errorf("%w: %q at offset %d", ErrUnsupportedSymbol, c, offset+i)
		}
	}
	return nil
}
