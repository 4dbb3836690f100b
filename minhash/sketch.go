package minhash

import (
	"math"

	"github.com/forestrie/go-nthash/nthash"
)

// Sketch is a MinHash signature over canonical k-mer hashes.
type Sketch struct {
	KmerSize  int      `cbor:"1,keyasint"`
	Signature []uint64 `cbor:"2,keyasint"`
}

// NewSketch returns an empty sketch with every slot at math.MaxUint64.
func NewSketch(kmerSize, size int) (*Sketch, error) {
	if kmerSize < 1 {
		return nil, nthash.ErrBadK
	}
	if size < 1 {
		return nil, ErrBadSignatureSize
	}
	sig := make([]uint64, size)
	for i := range sig {
		sig[i] = math.MaxUint64
	}
	return &Sketch{KmerSize: kmerSize, Signature: sig}, nil
}

// Add folds every k-mer of seq into the signature. Errors from nthash (an
// unsupported symbol, or seq shorter than the k-mer size) leave the sketch
// unchanged.
func (s *Sketch) Add(seq []byte) error {
	it, err := nthash.New(seq, s.KmerSize)
	if err != nil {
		return err
	}
	for hv := range it.All() {
		for i := range s.Signature {
			if v := nthash.ExtraHash(hv, s.KmerSize, i); v < s.Signature[i] {
				s.Signature[i] = v
			}
		}
	}
	return nil
}

// Merge folds other into s, giving the sketch of the union of both inputs.
func (s *Sketch) Merge(other *Sketch) error {
	if err := s.compatible(other); err != nil {
		return err
	}
	for i, v := range other.Signature {
		s.Signature[i] = min(s.Signature[i], v)
	}
	return nil
}

// Similarity estimates the Jaccard similarity of the k-mer sets behind s and
// other as the fraction of slots holding the same minimum.
func (s *Sketch) Similarity(other *Sketch) (float64, error) {
	if err := s.compatible(other); err != nil {
		return 0, err
	}
	intersect := 0
	for i := range s.Signature {
		if s.Signature[i] == other.Signature[i] {
			intersect++
		}
	}
	return float64(intersect) / float64(len(s.Signature)), nil
}

// Empty reports whether nothing has been added.
func (s *Sketch) Empty() bool {
	for _, v := range s.Signature {
		if v != math.MaxUint64 {
			return false
		}
	}
	return true
}

func (s *Sketch) compatible(other *Sketch) error {
	if s.KmerSize != other.KmerSize {
		return ErrKmerSizeMismatch
	}
	if len(s.Signature) != len(other.Signature) {
		return ErrSignatureSize
	}
	return nil
}
