// Package compress implements the two payload codecs NEPAK's wire format
// allows (format.Raw and format.Zstd). A third compression algorithm
// has no on-disk representation in NEPAK v1 (invariant 6 restricts
// payload_kind to {0, 1}), so this package, unlike a general-purpose
// compression toolkit, intentionally supports exactly these two.
package compress

import (
	"github.com/nepak/nepak/errs"
	"github.com/nepak/nepak/format"
)

// Codec compresses and decompresses a single payload kind.
type Codec interface {
	// Compress returns the on-disk payload bytes for raw content.
	Compress(raw []byte) ([]byte, error)
	// Decompress returns the raw content for on-disk payload bytes.
	Decompress(payload []byte) ([]byte, error)
}

// ForKind returns the Codec responsible for encoding/decoding the given
// payload kind.
func ForKind(kind format.PayloadKind) (Codec, error) {
	switch kind {
	case format.Raw:
		return RawCodec{}, nil
	case format.Zstd:
		return NewZstdCodec(), nil
	default:
		return nil, errs.New(errs.Invalid, "unknown payload kind %d", kind)
	}
}

// HasZstd reports whether this build was compiled with zstd support. It is
// the feature gate spec §4.3 step 1 and §9 require: a compress=true build
// request must fail fast with NoZstd before any I/O when this is false.
func HasZstd() bool {
	return zstdAvailable
}
