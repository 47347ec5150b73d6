package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of data. Containers store it for the block index.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
