package sipbloom

import (
	"math/bits"
	"unsafe"

	"github.com/dchest/siphash"
	"github.com/zeebo/xxh3"
)

// doubleHashPrime is the largest prime below 2^64, 2^64 - 59.
const doubleHashPrime = 0xffffffffffffffc5

// Key is a 128-bit key for a keyed hash function.
type Key [2]uint64

// Hasher is a family of keyed 64-bit hash functions. Sum64 must return the
// same value for the same key and data.
type Hasher interface {
	Sum64(key Key, data []byte) uint64
}

// SipHasher hashes with SipHash-2-4. It is the default Hasher.
type SipHasher struct{}

// Sum64 returns the SipHash-2-4 of data under key.
func (SipHasher) Sum64(key Key, data []byte) uint64 {
	return siphash.Hash(key[0], key[1], data)
}

// XXH3Hasher hashes with seeded XXH3. It is faster than SipHasher but only
// 64 bits of the key reach the seed: the second word is rotated by 32 bits
// and XORed into the first, so distinct keys can share a seed.
type XXH3Hasher struct{}

// Sum64 returns the XXH3 hash of data seeded from key.
func (XXH3Hasher) Sum64(key Key, data []byte) uint64 {
	return xxh3.HashSeed(data, xxh3Seed(key))
}

// xxh3Seed folds a 128-bit key into a 64-bit XXH3 seed.
func xxh3Seed(key Key) uint64 {
	return key[0] ^ bits.RotateLeft64(key[1], 32)
}

// roundHashes holds h0 and h1 for the item of a single operation so that
// rounds past the first two cost no hasher evaluations.
type roundHashes [2]uint64

// roundHash returns the hash of data for round i. Rounds 0 and 1 must be
// requested before any later round.
//
// Later rounds use Kirsch-Mitzenmacher double hashing:
//
//	g_i(x) = h0(x) + (i * h1(x) mod P)
//
// The product is reduced over its full 128 bits.
func (f *Filter) roundHash(h *roundHashes, data []byte, i uint32) uint64 {
	if i < 2 {
		v := f.hasher.Sum64(f.keys[i], data)
		h[i] = v
		return v
	}

	// Not a wrapping uint64 multiply: i*h1 mod P needs the full product.
	hi, lo := bits.Mul64(uint64(i), h[1])
	return h[0] + bits.Rem64(hi, lo, doubleHashPrime)
}

// stringBytes views s as a byte slice without copying. The result must not
// be modified.
func stringBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
