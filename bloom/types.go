package bloom

import "errors"

const (
	// HeaderBytesV1 is the fixed header size for HeaderV1.
	HeaderBytesV1 = 32

	MagicV1         = "KMB1"
	VersionV1 uint8 = 1

	// BitOrderLSB0 means bit 0 is the least-significant bit of byte 0.
	BitOrderLSB0 uint8 = 0
)

var (
	ErrBadRegionSize  = errors.New("bloom: region buffer too small")
	ErrNotInitialized = errors.New("bloom: header not initialized")

	ErrBadMagic    = errors.New("bloom: header magic invalid")
	ErrBadVersion  = errors.New("bloom: header version invalid")
	ErrBadBitOrder = errors.New("bloom: header bitOrder unsupported")
	ErrBadProbes   = errors.New("bloom: header probe count invalid")
	ErrBadKmerSize = errors.New("bloom: header k-mer size invalid")
	ErrBadMBits    = errors.New("bloom: header mBits invalid")

	ErrMBitsOverflow = errors.New("bloom: mBits overflows supported range")
)

// HeaderV1 describes a k-mer filter region.
//
// Probes is the number of bits set per k-mer. KmerSize is the k every
// sequence is hashed with; a region only answers queries for that k.
type HeaderV1 struct {
	BitOrder  uint8
	Probes    uint8
	KmerSize  uint8
	MBits     uint32
	NInserted uint64
}
