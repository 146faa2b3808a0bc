package sipbloom

import (
	"fmt"
	"math"
)

const (
	// ln2 is the natural logarithm of 2.
	ln2 = 0.6931471805599453
	// ln2Squared is ln(2)^2.
	ln2Squared = 0.4804530139182014
)

// ComputeBitmapSize returns the number of bytes to allocate for itemsCount
// items at the wanted false positive rate fpRate, which must be in (0, 1).
//
//	bytes = ceil(n * ln(p) / (-8 * ln(2)^2))
func ComputeBitmapSize(itemsCount uint64, fpRate float64) (uint64, error) {
	if itemsCount == 0 {
		return 0, ErrZeroItemsCount
	}
	// Written so that NaN fails too.
	if !(fpRate > 0 && fpRate < 1) {
		return 0, fmt.Errorf("%w: got %v", ErrFalsePositiveRate, fpRate)
	}

	size := math.Ceil(float64(itemsCount) * math.Log(fpRate) / (-8 * ln2Squared))
	if size >= math.MaxUint64 {
		return 0, fmt.Errorf("%w: %d items at rate %v", ErrBitmapTooLarge, itemsCount, fpRate)
	}
	return uint64(size), nil
}

// OptimalK returns the number of hash rounds for a bitmap of bitmapBits bits
// holding itemsCount items, never less than 1.
//
//	k = max(1, ceil(m/n * ln(2)))
func OptimalK(bitmapBits, itemsCount uint64) uint32 {
	if itemsCount == 0 {
		return 1
	}

	kFloat := math.Ceil(float64(bitmapBits) / float64(itemsCount) * ln2)
	if kFloat >= math.MaxUint32 {
		return math.MaxUint32
	}
	return max(uint32(kFloat), 1)
}

// EstimateFalsePositiveRate estimates the false positive rate of a filter with
// bitmapBits bits and k rounds after items distinct insertions.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(bitmapBits uint64, k uint32, items uint64) float64 {
	m := float64(bitmapBits)
	n := float64(items)
	kf := float64(k)

	if m == 0 || n == 0 {
		return 0
	}

	return math.Pow(1-math.Exp(-kf*n/m), kf)
}
