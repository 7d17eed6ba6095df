// Package format defines the wire-level constants of the NEPAK v1 archive
// format: magic strings, the payload-kind tag, and the fixed sizes that make
// up the index and footer layout.
package format

// PayloadKind identifies how an entry's on-disk payload bytes decode into
// raw content. The on-disk tag is a single byte; values outside the set
// below invalidate the archive (invariant 6).
type PayloadKind uint8

const (
	// Raw payloads are stored byte-for-byte, uncompressed.
	Raw PayloadKind = 0
	// Zstd payloads are zstd-compressed and must be inflated to recover
	// the raw content.
	Zstd PayloadKind = 1
)

// String renders the payload kind the way EntryInfo reports it: "raw" or
// "zstd".
func (k PayloadKind) String() string {
	switch k {
	case Raw:
		return "raw"
	case Zstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the defined payload kinds.
func (k PayloadKind) Valid() bool {
	return k == Raw || k == Zstd
}

// Header and footer magic strings (§4.1). HeaderMagic also opens the index
// region (§4.2).
var (
	// HeaderMagic is the first 8 bytes of every NEPAK v1 archive, and also
	// the first 8 bytes of the index region.
	HeaderMagic = [8]byte{'N', 'E', 'P', 'A', 'K', 0x01, 0x00, 0x00}
	// FooterMagic is the first 8 bytes of the 32-byte footer.
	FooterMagic = [8]byte{'N', 'E', 'P', 'A', 'K', 'E', 'N', 'D'}
)

// Fixed sizes in the on-disk layout (§4.2).
const (
	MagicSize  = 8
	FooterSize = MagicSize + 8 + 8 + 4 + 4 // magic + index_offset + index_len + index_hash32 + reserved

	// IndexEntryFixedSize is the size of an index entry excluding its
	// variable-length path: payload_offset(8) + payload_len(8) + raw_len(8)
	// + payload_kind(1) + raw_hash(32).
	IndexEntryFixedSize = 8 + 8 + 8 + 1 + 32

	// MaxPathLen is the largest UTF-8 byte length a logical path may have;
	// it is stored as a u16 length prefix.
	MaxPathLen = 65535

	// RawHashSize is the size in bytes of a BLAKE3 content digest.
	RawHashSize = 32
)
