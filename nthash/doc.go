package nthash

/*

# ntHash: rolling hashes for DNA k-mers

This package hashes every k-mer (length k substring) of a nucleotide sequence
over the alphabet {A, C, G, T, N}. Each base contributes a fixed 64-bit seed,
rotated by its offset in the window, and the contributions are XORed together.
Because rotation distributes over XOR, sliding the window one base to the
right only needs the outgoing and incoming bases:

	fh' = rotl(fh, 1) ^ rotl(seed(out), k) ^ seed(in)
	rh' = rotr(rh, 1) ^ rotr(seedRC(out), 1) ^ rotl(seedRC(in), k-1)

fh is the hash of the window read 5' to 3', rh the hash of its reverse
complement. The externally visible value is the canonical hash min(fh, rh),
which is the same whichever strand the k-mer was read from.

The package is deliberately low level:

- small, composable functions
- explicit, published constants
- a burden of knowledge on the caller for hot paths

## Layers

  - Seed, SeedRC: the per-base seed tables.
  - ForwardHash, ReverseComplementHash, CanonicalHash: a single window from
    scratch, O(k).
  - HashAll: every window independently, O(n*k). This is the oracle the rolling
    implementation is tested against.
  - Hasher: window 0 from scratch then O(1) per step. This is the path to use
    for long sequences.
  - Roller: a rollinghash.Hash64 for code written against
    github.com/chmduquesne/rollinghash.

## Input validation

Any byte outside {A, C, G, T, N} is rejected with ErrUnsupportedSymbol. The
whole operation fails; nothing is substituted. Lower case is not accepted.
Validation happens once per operation so the per-window loops stay branch
free.

The seeds and the rotation scheme must match the reference ntHash
implementation bit for bit. Changing any constant here silently changes every
hash value produced.

*/
