package minhash

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

type Config struct {
	KmerSize      int
	SignatureSize int
	// SkipInvalid logs and skips sequences nthash rejects instead of
	// failing on the first one.
	SkipInvalid bool
}

// Builder accumulates many sequences into one sketch.
type Builder struct {
	cfg    Config
	log    logger.Logger
	sketch *Sketch

	added   int
	skipped int
}

// NewBuilder returns a Builder for cfg. log must not be nil.
func NewBuilder(cfg Config, log logger.Logger) (*Builder, error) {
	if log == nil {
		return nil, ErrLoggerRequired
	}
	s, err := NewSketch(cfg.KmerSize, cfg.SignatureSize)
	if err != nil {
		return nil, err
	}
	return &Builder{cfg: cfg, log: log, sketch: s}, nil
}

// Add adds one sequence. With SkipInvalid set, a rejected sequence is
// counted as skipped and nil is returned.
func (b *Builder) Add(seq []byte) error {
	err := b.sketch.Add(seq)
	if err == nil {
		b.added++
		return nil
	}
	if !b.cfg.SkipInvalid {
		return err
	}
	b.skipped++
	b.log.Debugf("minhash: skipping sequence of length %d: %v", len(seq), err)
	return nil
}

// AddAll adds seqs in order, stopping at the first error that is not
// skipped.
func (b *Builder) AddAll(seqs [][]byte) error {
	for _, seq := range seqs {
		if err := b.Add(seq); err != nil {
			return err
		}
	}
	b.log.Infof("minhash: k=%d size=%d added=%d skipped=%d",
		b.cfg.KmerSize, b.cfg.SignatureSize, b.added, b.skipped)
	return nil
}

func (b *Builder) Sketch() *Sketch { return b.sketch }

// Counts returns how many sequences were added and skipped so far.
func (b *Builder) Counts() (added, skipped int) { return b.added, b.skipped }
