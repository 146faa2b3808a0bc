package sipbloom

import (
	"encoding/binary"
	"fmt"
	"io"
)

// keyBytes is the number of random bytes consumed per Key.
const keyBytes = 16

// readKeys draws two independent keys from r. Each key is two little-endian
// uint64 words.
func readKeys(r io.Reader) ([2]Key, error) {
	var buf [2 * keyBytes]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return [2]Key{}, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	var keys [2]Key
	for i := range keys {
		off := i * keyBytes
		keys[i] = Key{
			binary.LittleEndian.Uint64(buf[off : off+8]),
			binary.LittleEndian.Uint64(buf[off+8 : off+keyBytes]),
		}
	}
	return keys, nil
}
