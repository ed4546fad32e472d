package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a series identifier.
func ID(identifier string) uint64 {
	return xxhash.Sum64String(identifier)
}

// Checksum computes the xxHash64 of a payload body.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}
