package nthash

import (
	"encoding/binary"

	"github.com/chmduquesne/rollinghash"
)

const defaultWindowCap = 64

var _ rollinghash.Hash64 = (*Roller)(nil)

// Roller adapts the ntHash canonical hash to rollinghash.Hash64. The window
// is whatever has been written since the last Reset; Roll slides it one base
// to the right.
//
// hash.Hash has no way to report bad input from Roll, so an unsupported
// symbol latches an error that Err returns. Once latched, Write returns the
// error, Roll does nothing and Sum64 keeps returning the last good value.
// Reset clears it.
type Roller struct {
	// window is a circular buffer; oldest indexes the base that leaves the
	// window on the next Roll.
	window []byte
	oldest int

	fh  uint64
	rh  uint64
	err error
}

// NewRoller returns an empty Roller.
func NewRoller() *Roller {
	return &Roller{window: make([]byte, 0, defaultWindowCap)}
}

// Write appends p to the window and rehashes the whole window.
func (r *Roller) Write(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	if err := checkSymbols(p, len(r.window)); err != nil {
		r.err = err
		return 0, err
	}
	if r.oldest != 0 {
		w := make([]byte, 0, len(r.window)+len(p))
		w = append(w, r.window[r.oldest:]...)
		w = append(w, r.window[:r.oldest]...)
		r.window = w
		r.oldest = 0
	}
	r.window = append(r.window, p...)
	if len(r.window) > 0 {
		r.fh = forward(r.window)
		r.rh = reverse(r.window)
	}
	return len(p), nil
}

// Roll removes the oldest base from the window and appends b.
func (r *Roller) Roll(b byte) {
	if r.err != nil {
		return
	}
	k := len(r.window)
	if k == 0 {
		r.err = ErrBadK
		return
	}
	if !supported[b] {
		r.err = checkSymbols([]byte{b}, k)
		return
	}
	out := r.window[r.oldest]
	r.fh, r.rh = roll(r.fh, r.rh, out, b, k)
	r.window[r.oldest] = b
	r.oldest++
	if r.oldest == k {
		r.oldest = 0
	}
}

// Err returns the latched error, if any.
func (r *Roller) Err() error { return r.err }

// Sum64 returns the canonical hash of the current window, or zero for an
// empty window.
func (r *Roller) Sum64() uint64 { return min(r.rh, r.fh) }

// Sum appends the big endian canonical hash to b.
func (r *Roller) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, r.Sum64())
}

func (r *Roller) Reset() {
	r.window = r.window[:0]
	r.oldest = 0
	r.fh, r.rh = 0, 0
	r.err = nil
}

func (r *Roller) Size() int      { return HashBytes }
func (r *Roller) BlockSize() int { return 1 }
