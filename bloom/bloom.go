package bloom

import "github.com/forestrie/go-nthash/nthash"

// InitV1 initializes a zero-filled region with a HeaderV1.
//
// The caller must allocate region with at least RegionBytesV1(mBits), where:
//
//	mBits = uint32(bitsPerElement * kmerCount)
func InitV1(region []byte, kmerCount uint64, bitsPerElement uint64, probes uint8, kmerSize uint8) error {
	if kmerCount == 0 || bitsPerElement == 0 {
		return ErrBadMBits
	}
	if probes == 0 {
		return ErrBadProbes
	}
	if kmerSize == 0 {
		return ErrBadKmerSize
	}
	if err := CheckBPE(bitsPerElement); err != nil {
		return err
	}
	mBits := MBitsSafeCast(MBitsV1(kmerCount, bitsPerElement))
	if mBits == 0 {
		return ErrMBitsOverflow
	}
	need := RegionBytesV1(mBits)
	if uint64(len(region)) < need {
		return ErrBadRegionSize
	}

	// Ensure clean initialization even if region is reused.
	clear(region[:need])

	return EncodeHeaderV1(region, HeaderV1{
		BitOrder:  BitOrderLSB0,
		Probes:    probes,
		KmerSize:  kmerSize,
		MBits:     mBits,
		NInserted: 0,
	})
}

// InsertV1 inserts the canonical k-mer hash h and increments NInserted in the
// header.
func InsertV1(region []byte, h uint64) error {
	hdr, bitset, err := openV1(region)
	if err != nil {
		return err
	}
	setBitsLSB0(bitset, hdr, h)
	hdr.NInserted++
	return EncodeHeaderV1(region, hdr)
}

// MaybeContainsV1 checks membership for the canonical k-mer hash h.
//
// Returns (false,nil) if the filter says "definitely not present".
// Returns (true,nil) if the filter says "maybe present".
func MaybeContainsV1(region []byte, h uint64) (bool, error) {
	hdr, bitset, err := openV1(region)
	if err != nil {
		return false, err
	}
	return testBitsLSB0(bitset, hdr, h), nil
}

// InsertSeqV1 inserts every k-mer of seq, using the k-mer size recorded in
// the header, and returns the number of k-mers inserted.
//
// seq is validated before any bit is set: on error the region is unchanged.
func InsertSeqV1(region []byte, seq []byte) (int, error) {
	hdr, bitset, err := openV1(region)
	if err != nil {
		return 0, err
	}
	it, err := nthash.New(seq, int(hdr.KmerSize))
	if err != nil {
		return 0, err
	}
	n := it.Len()
	for h := range it.All() {
		setBitsLSB0(bitset, hdr, h)
	}
	hdr.NInserted += uint64(n)
	return n, EncodeHeaderV1(region, hdr)
}

// CountHitsV1 returns how many k-mers of seq the filter says may be present,
// along with the number of k-mers examined.
func CountHitsV1(region []byte, seq []byte) (hits int, total int, err error) {
	hdr, bitset, err := openV1(region)
	if err != nil {
		return 0, 0, err
	}
	it, err := nthash.New(seq, int(hdr.KmerSize))
	if err != nil {
		return 0, 0, err
	}
	total = it.Len()
	for h := range it.All() {
		if testBitsLSB0(bitset, hdr, h) {
			hits++
		}
	}
	return hits, total, nil
}

// openV1 decodes the header and returns the bitset it describes.
func openV1(region []byte) (HeaderV1, []byte, error) {
	h, ok, err := DecodeHeaderV1(region)
	if err != nil {
		return HeaderV1{}, nil, err
	}
	if !ok {
		return HeaderV1{}, nil, ErrNotInitialized
	}

	end := RegionBytesV1(h.MBits)
	if uint64(len(region)) < end {
		return HeaderV1{}, nil, ErrBadRegionSize
	}
	return h, region[HeaderBytesV1:end], nil
}

func setBitsLSB0(bitset []byte, hdr HeaderV1, h uint64) {
	mBits := uint64(hdr.MBits)
	for i := 0; i < int(hdr.Probes); i++ {
		j := nthash.ExtraHash(h, int(hdr.KmerSize), i) % mBits
		bitset[j>>3] |= 1 << uint8(j&7)
	}
}

func testBitsLSB0(bitset []byte, hdr HeaderV1, h uint64) bool {
	mBits := uint64(hdr.MBits)
	for i := 0; i < int(hdr.Probes); i++ {
		j := nthash.ExtraHash(h, int(hdr.KmerSize), i) % mBits
		if bitset[j>>3]&(1<<uint8(j&7)) == 0 {
			return false
		}
	}
	return true
}
