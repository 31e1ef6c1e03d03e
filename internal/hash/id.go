// Package hash wraps xxHash64 for sample identifiers and blob checksums.
package hash

import "github.com/cespare/xxhash/v2"

// ID returns the 64-bit identifier of a sample name.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// Checksum returns the xxHash64 digest over parts, hashed as one contiguous stream.
func Checksum(parts ...[]byte) uint64 {
	d := xxhash.New()
	for _, p := range parts {
		_, _ = d.Write(p)
	}

	return d.Sum64()
}
