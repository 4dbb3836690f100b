package nthash

const (
	multiSeed  uint64 = 0x90b45d39fb6da1fa
	multiShift        = 27
)

// ExtraHash derives the i'th additional hash of a k-mer from its canonical
// hash h, for consumers that need several independent hashes per k-mer (for
// example the probes of a Bloom filter). ExtraHash(h, k, 0) == h.
func ExtraHash(h uint64, k, i int) uint64 {
	if i == 0 {
		return h
	}
	t := h * (uint64(i) ^ uint64(k)*multiSeed)
	t ^= t >> multiShift
	return t
}
