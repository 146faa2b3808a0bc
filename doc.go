// Package sipbloom provides a keyed Bloom filter for Go.
//
// A bloom filter is a space-efficient probabilistic data structure that tests
// whether an element is a member of a set. False positive matches are possible,
// but false negatives are not – if the filter says an element is not present,
// it definitely is not. If it says an element might be present, it could be a
// false positive.
//
// # Architecture
//
// Keyed hashing: every [Filter] draws two random 128-bit keys at construction
// and hashes items with SipHash-2-4 under those keys. An attacker who cannot
// observe the keys cannot choose inputs that collide in the bitmap, so the
// filter stays usable on untrusted input. Two filters never share keys, which
// means their bitmaps cannot be merged or compared.
//
// Double hashing: instead of computing k independent hash functions, sipbloom
// evaluates the keyed hash twice per item, giving h0 and h1, and derives the
// remaining rounds as
//
//	g_i(x) = h0(x) + (i * h1(x) mod P),  P = 2^64 - 59
//
// following "Less Hashing, Same Performance". The prime modulus close to 2^64
// keeps the low bits used for the final reduction modulo the bitmap size
// unbiased. The cost of an operation is two hash evaluations and k bit
// probes, however large k is.
//
// # Choosing Parameters
//
// Use [NewForFalsePositiveRate] with your expected number of items and desired
// false positive rate:
//
//	// Filter for 1 million items with 1% false positive rate
//	f, err := sipbloom.NewForFalsePositiveRate(1_000_000, 0.01)
//
// The bitmap size comes from [ComputeBitmapSize]:
//
//	bytes = ceil(n * ln(p) / (-8 * ln(2)^2))
//
// To control memory directly, [New] takes the bitmap size in bytes and the
// expected number of items. The number of hash rounds is [OptimalK]:
//
//	k = max(1, ceil(m/n * ln(2)))
//
// Invalid arguments (zero sizes, rates outside (0, 1)) are reported as errors
// and no filter is built.
//
// # Randomness and Hashing
//
// Keys are read from crypto/rand by default. Tests can pass a deterministic
// source with [WithRand]; two filters built from the same bytes and the same
// hasher behave identically. [WithHasher] swaps SipHash for another keyed
// family such as [XXH3Hasher].
//
// # Thread Safety
//
// [Filter] is NOT thread-safe. Use external synchronization: concurrent calls
// to [Filter.Check] are fine, but [Filter.Set] and [Filter.CheckAndSet] need
// exclusive access, e.g. under a sync.RWMutex write lock.
//
// # Limitations
//
// Bits are never cleared, so items cannot be removed. The bitmap is fixed at
// construction; a filter that outgrows its capacity must be rebuilt. Inserting
// more than the expected number of items raises the false positive rate above
// the target, see [Filter.EstimatedFalsePositiveRate].
//
// # References
//
//   - Less Hashing, Same Performance: https://www.eecs.harvard.edu/~michaelm/postscripts/rsa2008.pdf
//   - SipHash: https://www.aumasson.jp/siphash/siphash.pdf
package sipbloom
