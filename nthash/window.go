package nthash

import "math/bits"

// forward returns the forward strand hash of w, where len(w) is the k-mer
// size. w must be non empty and contain only supported symbols.
func forward(w []byte) uint64 {
	k := len(w)
	out := seedFwd[w[k-1]]
	for idx := 0; idx < k-1; idx++ {
		out ^= bits.RotateLeft64(seedFwd[w[idx]], k-idx-1)
	}
	return out
}

// reverse returns the reverse complement hash of w. The same preconditions
// as forward apply.
func reverse(w []byte) uint64 {
	k := len(w)
	out := seedRC[w[0]]
	for idx := 0; idx < k-1; idx++ {
		out ^= bits.RotateLeft64(seedRC[w[idx+1]], idx+1)
	}
	return out
}

// roll advances the strand hashes of a k sized window by one base. out is the
// base leaving the window and in the base entering it.
func roll(fh, rh uint64, out, in byte, k int) (uint64, uint64) {
	fh = bits.RotateLeft64(fh, 1) ^ bits.RotateLeft64(seedFwd[out], k) ^ seedFwd[in]
	rh = bits.RotateLeft64(rh, -1) ^ bits.RotateLeft64(seedRC[out], -1) ^ bits.RotateLeft64(seedRC[in], k-1)
	return fh, rh
}

// window checks the bounds and symbols of seq[i:i+k] and returns it.
func window(seq []byte, i, k int) ([]byte, error) {
	if k < 1 {
		return nil, ErrBadK
	}
	if i < 0 || k > len(seq) || i > len(seq)-k {
		return nil, ErrWindowOutOfRange
	}
	w := seq[i : i+k]
	if err := checkSymbols(w, i); err != nil {
		return nil, err
	}
	return w, nil
}

// ForwardHash returns the hash of seq[i:i+k] read in sequence order.
func ForwardHash(seq []byte, i, k int) (uint64, error) {
	w, err := window(seq, i, k)
	if err != nil {
		return 0, err
	}
	return forward(w), nil
}

// ReverseComplementHash returns the hash of the reverse complement of
// seq[i:i+k].
func ReverseComplementHash(seq []byte, i, k int) (uint64, error) {
	w, err := window(seq, i, k)
	if err != nil {
		return 0, err
	}
	return reverse(w), nil
}

// CanonicalHash returns min(ReverseComplementHash, ForwardHash) for
// seq[i:i+k]. A k-mer and its reverse complement have the same canonical
// hash.
//
// Returns ErrBadK if k < 1 and ErrWindowOutOfRange if the window does not
// fit in seq. Nothing outside seq is read in either case.
func CanonicalHash(seq []byte, i, k int) (uint64, error) {
	w, err := window(seq, i, k)
	if err != nil {
		return 0, err
	}
	return min(reverse(w), forward(w)), nil
}
