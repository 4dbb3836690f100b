package nthash

import "fmt"

var complement = [256]byte{'A': 'T', 'C': 'G', 'G': 'C', 'T': 'A', 'N': 'N'}

// ReverseComplement returns a new slice holding the reverse complement of
// seq. N complements to N.
func ReverseComplement(seq []byte) ([]byte, error) {
	n := len(seq)
	if n == 0 {
		return nil, nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrUnsupportedSymbol, seq[n-1-i], n-1-i)
		}
		out[i] = c
	}
	return out, nil
}
