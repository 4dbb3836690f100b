package nthash

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRollerMatchesHashAll(t *testing.T) {
	seq := []byte("ACGTCGTCAGTCGATGCAGTNNACGT")
	for _, k := range []int{1, 3, 5, 12, len(seq)} {
		want, err := HashAll(seq, k)
		require.NoError(t, err)

		r := NewRoller()
		n, err := r.Write(seq[:k])
		require.NoError(t, err)
		require.Equal(t, k, n)
		require.Equal(t, want[0], r.Sum64())

		for i := k; i < len(seq); i++ {
			r.Roll(seq[i])
			require.Equal(t, want[i-k+1], r.Sum64(), "k %d window %d", k, i-k+1)
		}
		require.NoError(t, r.Err())
	}
}

func TestRollerWriteAfterRoll(t *testing.T) {
	seq := []byte("ACGTCGTCAGTCGATGCAGT")

	r := NewRoller()
	_, err := r.Write(seq[:4])
	require.NoError(t, err)
	r.Roll(seq[4])
	r.Roll(seq[5])

	// window is now seq[2:6]; writing extends it to seq[2:9]
	_, err = r.Write(seq[6:9])
	require.NoError(t, err)

	want, err := CanonicalHash(seq, 2, 7)
	require.NoError(t, err)
	require.Equal(t, want, r.Sum64())

	r.Roll(seq[9])
	want, err = CanonicalHash(seq, 3, 7)
	require.NoError(t, err)
	require.Equal(t, want, r.Sum64())
}

func TestRollerSum(t *testing.T) {
	r := NewRoller()
	_, err := r.Write([]byte("ACGTC"))
	require.NoError(t, err)

	sum := r.Sum([]byte{0xaa})
	require.Len(t, sum, 1+HashBytes)
	assert.Equal(t, byte(0xaa), sum[0])
	assert.Equal(t, uint64(0x480202d54e8ebecd), binary.BigEndian.Uint64(sum[1:]))
	assert.Equal(t, HashBytes, r.Size())
	assert.Equal(t, 1, r.BlockSize())
}

func TestRollerLatchesErrors(t *testing.T) {
	r := NewRoller()
	_, err := r.Write([]byte("ACGT"))
	require.NoError(t, err)
	good := r.Sum64()

	r.Roll('x')
	require.ErrorIs(t, r.Err(), ErrUnsupportedSymbol)
	assert.Equal(t, good, r.Sum64())

	// latched: further input is ignored
	r.Roll('A')
	assert.Equal(t, good, r.Sum64())
	_, err = r.Write([]byte("A"))
	require.ErrorIs(t, err, ErrUnsupportedSymbol)

	r.Reset()
	require.NoError(t, r.Err())
	assert.Zero(t, r.Sum64())

	_, err = r.Write([]byte("ACGTC"))
	require.NoError(t, err)
	assert.Equal(t, uint64(0x480202d54e8ebecd), r.Sum64())
}

func TestRollerRollEmptyWindow(t *testing.T) {
	r := NewRoller()
	r.Roll('A')
	require.ErrorIs(t, r.Err(), ErrBadK)
}

func TestRollerWriteRejects(t *testing.T) {
	r := NewRoller()
	n, err := r.Write([]byte("ACGU"))
	require.ErrorIs(t, err, ErrUnsupportedSymbol)
	require.Zero(t, n)
	require.ErrorIs(t, r.Err(), ErrUnsupportedSymbol)
}
