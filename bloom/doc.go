package bloom

/*

# k-mer Bloom filters (in-place)

This package provides primitive building blocks for a Bloom filter over the
k-mers of nucleotide sequences, living inside a caller allocated byte region.
Elements are canonical ntHash values (see the nthash package), so a k-mer and
its reverse complement are the same element.

Like `nthash` it keeps to:

- small, composable functions
- explicit byte layouts
- index arithmetic on byte slices
- a burden of knowledge on the caller for hot paths

## What Bloom filters are (and are not)

Bloom filters provide a *probabilistic prefilter*:

- If the filter says "definitely not present", then the k-mer is not present.
- If the filter says "maybe present", then the k-mer may or may not be present
  (false positives are possible).

## Layout

	+----------------------+  32B header
	| HeaderV1             |    [0:4]   magic "KMB1"
	|                      |    [4]     version
	|                      |    [5]     bit order
	|                      |    [6]     probes
	|                      |    [7]     k-mer size
	|                      |    [8:12]  mBits (big endian)
	|                      |    [12:20] nInserted (big endian)
	+----------------------+  ceil(mBits/8) bytes
	| bitset               |
	+----------------------+

## Indexing and bit numbering

Probe i of canonical hash h sets bit

	nthash.ExtraHash(h, kmerSize, i) % mBits

where probe 0 is h itself. Bit j lives in byte j>>3 at position j&7, counting
from the least significant bit (BitOrderLSB0).

NInserted counts insert operations, not distinct k-mers.

## API versioning: why the `V1` suffix exists

Functions in this package are suffixed with a format version (for example
`InitV1`, `InsertV1`, `MaybeContainsV1`). The suffix means the function
implements region format version 1: the header layout, bit numbering and
probe derivation above. An incompatible change gets a `V2` side by side so
previously persisted regions keep their meaning.

*/
