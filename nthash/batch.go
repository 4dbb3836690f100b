package nthash

// checkParams validates k against seq and every symbol of seq.
func checkParams(seq []byte, k int) error {
	if k < 1 {
		return ErrBadK
	}
	if k > len(seq) {
		return ErrKTooLarge
	}
	return checkSymbols(seq, 0)
}

// HashAll returns the canonical hash of every k-mer in seq, in position
// order. Each window is hashed from scratch, so the cost is O(len(seq)*k).
// Prefer New for long sequences; HashAll is the reference the rolling
// implementation must agree with.
//
// The result has len(seq)-k+1 entries.
func HashAll(seq []byte, k int) ([]uint64, error) {
	if err := checkParams(seq, k); err != nil {
		return nil, err
	}
	n := len(seq) - k + 1
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		w := seq[i : i+k]
		out[i] = min(reverse(w), forward(w))
	}
	return out, nil
}
