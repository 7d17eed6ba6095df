//go:build nozstd

package compress

import "github.com/nepak/nepak/errs"

// zstdAvailable is false in a nozstd build: neither zstd backend is linked.
const zstdAvailable = false

// Compress always fails: spec §4.3 step 1 requires builds without zstd
// support to fail fast with NoZstd rather than silently falling back to
// format.Raw.
func (c ZstdCodec) Compress(raw []byte) ([]byte, error) {
	return nil, errs.ErrNoZstd
}

// Decompress always fails for the same reason; a nozstd build cannot read
// zstd payloads either.
func (c ZstdCodec) Decompress(payload []byte) ([]byte, error) {
	return nil, errs.ErrNoZstd
}
