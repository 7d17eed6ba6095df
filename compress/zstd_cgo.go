//go:build cgo && !nozstd

package compress

import (
	"github.com/valyala/gozstd"

	"github.com/nepak/nepak/errs"
)

// zstdAvailable is true in cgo builds: gozstd links libzstd directly.
const zstdAvailable = true

// Compress compresses raw using Zstandard at the codec's configured level.
func (c ZstdCodec) Compress(raw []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, raw, c.level), nil
}

// Decompress decompresses a zstd-compressed payload.
func (c ZstdCodec) Decompress(payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return nil, nil
	}
	raw, err := gozstd.Decompress(nil, payload)
	if err != nil {
		return nil, errs.Wrap(err, "zstd decompress")
	}
	return raw, nil
}
