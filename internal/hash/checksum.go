package hash

import "github.com/cespare/xxhash/v2"

// ChecksumSize is the encoded size of a Checksum in bytes.
const ChecksumSize = 8

// Checksum computes the xxHash64 of data.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
