package endian

import "encoding/hex"

// EncodeHex renders b as lowercase hex, the form EntryInfo reports raw
// hashes in. Wraps the standard library directly: hex encoding has no
// format-specific behavior worth a third-party codec.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}
