package sipbloom

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// maxBitmapBytes is the largest bitmap whose bit offsets fit in a uint.
const maxBitmapBytes = uint64(^uint(0)) >> 3

// Filter is a Bloom filter keyed with two random per-instance hash keys.
//
// Each item is mapped to k bit positions derived from two keyed hash
// evaluations by double hashing. Bits are only ever set, so an item that was
// inserted is always reported present by the same Filter.
//
// A Filter is not safe for concurrent use. Check may run concurrently with
// other calls to Check, but Set and CheckAndSet need exclusive access.
type Filter struct {
	bits       *bitset.BitSet
	bitmapBits uint64 // bitmap size in bits, a multiple of 8
	k          uint32 // hash rounds per item
	keys       [2]Key // keys for h0 and h1
	hasher     Hasher
	count      uint64 // insertions that set at least one new bit
}

// New creates a filter with a bitmap of bitmapSizeBytes bytes for an
// estimated itemsCount items. The number of hash rounds is derived from the
// bits-per-item ratio. Both arguments must be positive.
//
// Every Set and Check costs k bit probes, and k grows with the bits per item:
// a bitmap far larger than itemsCount can push k toward math.MaxUint32.
func New(bitmapSizeBytes, itemsCount uint64, opts ...Option) (*Filter, error) {
	if bitmapSizeBytes == 0 {
		return nil, ErrZeroBitmapSize
	}
	if itemsCount == 0 {
		return nil, ErrZeroItemsCount
	}
	if bitmapSizeBytes > maxBitmapBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrBitmapTooLarge, bitmapSizeBytes)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	keys, err := readKeys(cfg.rand)
	if err != nil {
		return nil, err
	}

	bitmapBits := bitmapSizeBytes * 8
	return &Filter{
		bits:       bitset.New(uint(bitmapBits)),
		bitmapBits: bitmapBits,
		k:          OptimalK(bitmapBits, itemsCount),
		keys:       keys,
		hasher:     cfg.hasher,
	}, nil
}

// NewForFalsePositiveRate creates a filter sized for itemsCount items at the
// false positive rate fpRate, which must be in (0, 1).
func NewForFalsePositiveRate(itemsCount uint64, fpRate float64, opts ...Option) (*Filter, error) {
	size, err := ComputeBitmapSize(itemsCount, fpRate)
	if err != nil {
		return nil, err
	}
	return New(size, itemsCount, opts...)
}

// offset reduces a round hash to a bit index.
func (f *Filter) offset(h uint64) uint {
	return uint(h % f.bitmapBits)
}

// Set records the presence of data. Setting the same data again has no
// further effect.
func (f *Filter) Set(data []byte) {
	var h roundHashes
	added := false
	for i := uint32(0); i < f.k; i++ {
		pos := f.offset(f.roundHash(&h, data, i))
		if !f.bits.Test(pos) {
			f.bits.Set(pos)
			added = true
		}
	}

	if added {
		f.count++
	}
}

// SetString records the presence of s without allocating.
func (f *Filter) SetString(s string) {
	f.Set(stringBytes(s))
}

// Check reports whether data might have been set. False positives are
// possible, false negatives are not.
func (f *Filter) Check(data []byte) bool {
	var h roundHashes
	for i := uint32(0); i < f.k; i++ {
		if !f.bits.Test(f.offset(f.roundHash(&h, data, i))) {
			return false
		}
	}
	return true
}

// CheckString reports whether s might have been set, without allocating.
func (f *Filter) CheckString(s string) bool {
	return f.Check(stringBytes(s))
}

// CheckAndSet records the presence of data and reports whether it appeared
// present before the call. All k rounds are always applied, so data is fully
// inserted whatever the result.
func (f *Filter) CheckAndSet(data []byte) bool {
	var h roundHashes
	found := true
	for i := uint32(0); i < f.k; i++ {
		pos := f.offset(f.roundHash(&h, data, i))
		if !f.bits.Test(pos) {
			found = false
			f.bits.Set(pos)
		}
	}

	if !found {
		f.count++
	}
	return found
}

// CheckAndSetString is CheckAndSet for a string key, without allocating.
func (f *Filter) CheckAndSetString(s string) bool {
	return f.CheckAndSet(stringBytes(s))
}

// NumberOfBits returns the size of the bitmap in bits.
func (f *Filter) NumberOfBits() uint64 {
	return f.bitmapBits
}

// NumberOfHashFunctions returns the number of rounds used by Set and Check.
func (f *Filter) NumberOfHashFunctions() uint32 {
	return f.k
}

// Count returns the number of insertions that set at least one new bit. It
// undercounts distinct items once their bits start to collide.
func (f *Filter) Count() uint64 {
	return f.count
}

// EstimatedFillRatio returns the proportion of bits that are set.
func (f *Filter) EstimatedFillRatio() float64 {
	return float64(f.bits.Count()) / float64(f.bitmapBits)
}

// EstimatedFalsePositiveRate estimates the current false positive rate from
// the number of insertions counted so far.
func (f *Filter) EstimatedFalsePositiveRate() float64 {
	return EstimateFalsePositiveRate(f.bitmapBits, f.k, f.count)
}
