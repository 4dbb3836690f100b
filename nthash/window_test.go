package nthash

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalHashVectors(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		i, k int
		want uint64
	}{
		{"TGCAG", "TGCAG", 0, 5, 0xbafa6728fc6dabf},
		{"ACGTC", "ACGTC", 0, 5, 0x480202d54e8ebecd},
		{"offset into longer sequence", "ACGTCGANNGTA", 2, 5, 0xd1865edfeb55b037},
		{"ACT", "ACTGC", 0, 3, 0x9b1eda9a185413ce},
		{"CTG", "ACTGC", 1, 3, 0x9f6acfa2235b86fc},
		{"TGC", "ACTGC", 2, 3, 0xd4a29bf149877c5c},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CanonicalHash([]byte(tt.seq), tt.i, tt.k)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got, "got %#x want %#x", got, tt.want)
		})
	}
}

func TestCanonicalIsMinOfStrands(t *testing.T) {
	seq := []byte("ACGTCGTCAGTCGATGCAGT")
	for k := 1; k <= len(seq); k++ {
		for i := 0; i+k <= len(seq); i++ {
			fh, err := ForwardHash(seq, i, k)
			require.NoError(t, err)
			rh, err := ReverseComplementHash(seq, i, k)
			require.NoError(t, err)
			ch, err := CanonicalHash(seq, i, k)
			require.NoError(t, err)
			require.Equal(t, min(fh, rh), ch)
		}
	}
}

func TestSingleBaseWindow(t *testing.T) {
	// k == 1: no rotation, the seeds themselves
	for _, c := range []byte("ACGTN") {
		fh, err := ForwardHash([]byte{c}, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, seedFwd[c], fh)

		rh, err := ReverseComplementHash([]byte{c}, 0, 1)
		require.NoError(t, err)
		assert.Equal(t, seedRC[c], rh)
	}
}

func TestForwardHashExpansion(t *testing.T) {
	// "AC" with k=2: seed(C) ^ rotl(seed(A), 1)
	fh, err := ForwardHash([]byte("AC"), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, seedFwd['C']^bits.RotateLeft64(seedFwd['A'], 1), fh)

	// reverse complement of "AC" is "GT": seedRC(A) ^ rotl(seedRC(C), 1)
	rh, err := ReverseComplementHash([]byte("AC"), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, seedRC['A']^bits.RotateLeft64(seedRC['C'], 1), rh)

	gt, err := ForwardHash([]byte("GT"), 0, 2)
	require.NoError(t, err)
	assert.Equal(t, gt, rh)
}

func TestWindowBounds(t *testing.T) {
	seq := []byte("ACGTA")
	tests := []struct {
		name string
		i, k int
		err  error
	}{
		{"k zero", 0, 0, ErrBadK},
		{"k negative", 0, -1, ErrBadK},
		{"negative start", -1, 2, ErrWindowOutOfRange},
		{"past end", 4, 2, ErrWindowOutOfRange},
		{"start beyond sequence", 10, 1, ErrWindowOutOfRange},
		{"k beyond sequence", 0, 6, ErrWindowOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ForwardHash(seq, tt.i, tt.k)
			require.ErrorIs(t, err, tt.err)
			_, err = ReverseComplementHash(seq, tt.i, tt.k)
			require.ErrorIs(t, err, tt.err)
			_, err = CanonicalHash(seq, tt.i, tt.k)
			require.ErrorIs(t, err, tt.err)
		})
	}

	_, err := CanonicalHash(nil, 0, 1)
	require.ErrorIs(t, err, ErrWindowOutOfRange)
}

func TestWindowSymbols(t *testing.T) {
	seq := []byte("ACGTX")

	// only the window itself is inspected
	_, err := CanonicalHash(seq, 0, 4)
	require.NoError(t, err)

	_, err = CanonicalHash(seq, 1, 4)
	require.ErrorIs(t, err, ErrUnsupportedSymbol)
	assert.Contains(t, err.Error(), "offset 4")

	_, err = ForwardHash([]byte("acgt"), 0, 4)
	require.ErrorIs(t, err, ErrUnsupportedSymbol)
}
