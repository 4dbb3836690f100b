package nthashtesting

import (
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

const (
	ACGT  = "ACGT"
	ACGTN = "ACGTN"
)

type TestContext struct {
	Log  logger.Logger
	Rand *rand.Rand
	T    testing.TB
}

type TestConfig struct {
	// The RNG is seeded from Seed. It is normal to force it to some fixed
	// value so that the generated sequences are the same from run to run.
	Seed            int64
	TestLabelPrefix string
	LogLevel        string // defaults to NOOP
}

func NewTestContext(t testing.TB, cfg TestConfig) TestContext {
	c := TestContext{
		T:    t,
		Rand: rand.New(rand.NewSource(cfg.Seed)),
	}
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// RandomSequence returns n bases drawn uniformly from alphabet.
func (c *TestContext) RandomSequence(n int, alphabet string) []byte {
	if alphabet == "" {
		c.T.Fatalf("RandomSequence: empty alphabet")
	}
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = alphabet[c.Rand.Intn(len(alphabet))]
	}
	return seq
}

// RandomSequences returns count sequences with lengths in [minLen, maxLen].
func (c *TestContext) RandomSequences(count, minLen, maxLen int, alphabet string) [][]byte {
	if minLen > maxLen {
		c.T.Fatalf("RandomSequences: minLen %d > maxLen %d", minLen, maxLen)
	}
	seqs := make([][]byte, count)
	for i := range seqs {
		seqs[i] = c.RandomSequence(minLen+c.Rand.Intn(maxLen-minLen+1), alphabet)
	}
	return seqs
}
