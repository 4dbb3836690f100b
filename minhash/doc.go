// Package minhash estimates the Jaccard similarity of nucleotide sequences
// from fixed size MinHash signatures of their canonical k-mer hashes.
//
// Slot i of a signature keeps the minimum over all k-mers of
// nthash.ExtraHash(h, k, i), where h is the canonical ntHash value. Slot 0
// is the minimum canonical hash itself.
package minhash
