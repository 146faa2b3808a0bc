package sipbloom

import "errors"

var (
	// ErrZeroBitmapSize is returned when a filter is requested with a zero-byte bitmap.
	ErrZeroBitmapSize = errors.New("sipbloom: bitmap size must be positive")

	// ErrZeroItemsCount is returned when the expected number of items is zero.
	ErrZeroItemsCount = errors.New("sipbloom: items count must be positive")

	// ErrFalsePositiveRate is returned when the false positive rate is outside (0, 1).
	ErrFalsePositiveRate = errors.New("sipbloom: false positive rate must be in (0, 1)")

	// ErrBitmapTooLarge is returned when the bitmap cannot be addressed on this platform.
	ErrBitmapTooLarge = errors.New("sipbloom: bitmap size too large")

	// ErrRandomSource is returned when the random source cannot produce the hash keys.
	ErrRandomSource = errors.New("sipbloom: reading hash keys from random source")
)
