// Package digest computes the two hashes NEPAK needs: a cryptographic
// BLAKE3 digest for content integrity (raw_hash, index_hash32) and a fast
// non-cryptographic xxHash64 fingerprint used only to bucket logical paths
// for duplicate detection during a build scan.
package digest

import (
	"github.com/cespare/xxhash/v2"
	"lukechampine.com/blake3"
)

// Sum256 returns the 32-byte BLAKE3 digest of data, used for an entry's
// raw_hash (invariant 5).
func Sum256(data []byte) [32]byte {
	return blake3.Sum256(data)
}

// IndexTag returns the first 4 bytes of BLAKE3(data), interpreted
// little-endian, as required for the footer's index_hash32 (§4.2).
func IndexTag(data []byte) uint32 {
	sum := blake3.Sum256(data)
	return uint32(sum[0]) | uint32(sum[1])<<8 | uint32(sum[2])<<16 | uint32(sum[3])<<24
}

// PathKey returns a fast, non-cryptographic fingerprint of a logical path
// for use as a map key when scanning for duplicate paths. It is not a
// substitute for an exact string comparison on collision.
func PathKey(path string) uint64 {
	return xxhash.Sum64String(path)
}
