package nthash

import "iter"

// Hasher produces the canonical hash of every k-mer of a sequence, left to
// right, updating the strand hashes in constant time per window.
//
// The sequence is borrowed, not copied, and must not be modified while the
// Hasher is in use. A Hasher is not safe for concurrent use; independent
// Hashers over the same sequence are.
type Hasher struct {
	seq []byte
	k   int

	fh uint64
	rh uint64

	// next is the start of the next window to emit, max the number of
	// windows.
	next int
	max  int
}

// New returns a Hasher over the k-mers of seq, primed with the strand hashes
// of the first window.
//
// The whole of seq is validated up front: an unsupported symbol anywhere
// fails construction with ErrUnsupportedSymbol. k must satisfy
// 1 <= k <= len(seq), otherwise ErrBadK or ErrKTooLarge is returned.
func New(seq []byte, k int) (*Hasher, error) {
	if err := checkParams(seq, k); err != nil {
		return nil, err
	}
	w := seq[:k]
	return &Hasher{
		seq: seq,
		k:   k,
		fh:  forward(w),
		rh:  reverse(w),
		max: len(seq) - k + 1,
	}, nil
}

// Next returns the canonical hash of the next window. ok is false once
// every window has been produced, and on all calls after that.
func (h *Hasher) Next() (v uint64, ok bool) {
	if h.next == h.max {
		return 0, false
	}
	if h.next > 0 {
		i := h.next - 1
		h.fh, h.rh = roll(h.fh, h.rh, h.seq[i], h.seq[i+h.k], h.k)
	}
	h.next++
	return min(h.rh, h.fh), true
}

// Len returns the exact number of windows not yet produced.
func (h *Hasher) Len() int { return h.max - h.next }

// K returns the window length.
func (h *Hasher) K() int { return h.k }

// Pos returns the start of the window most recently produced by Next, or -1
// if Next has not been called.
func (h *Hasher) Pos() int { return h.next - 1 }

// Strands returns the forward and reverse complement hashes of the window
// most recently produced. Before the first call to Next they are those of
// window 0.
func (h *Hasher) Strands() (fh, rh uint64) { return h.fh, h.rh }

// All returns an iterator over the remaining canonical hashes. Stopping the
// range loop early leaves the Hasher positioned after the last value
// yielded.
func (h *Hasher) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for {
			v, ok := h.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
