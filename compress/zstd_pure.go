//go:build !cgo && !nozstd

package compress

import (
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/nepak/nepak/errs"
)

// zstdAvailable is true in the pure-Go build: klauspost/compress/zstd needs
// no cgo.
const zstdAvailable = true

// zstdDecoderPool pools decoders; decoding is level-independent so a single
// pool serves every ZstdCodec instance.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			panic("compress: failed to build zstd decoder: " + err.Error())
		}
		return decoder
	},
}

// encoderLevel maps NEPAK's 1..22 zstd-level scale onto klauspost's coarser
// EncoderLevel buckets.
func encoderLevel(level int) zstd.EncoderLevel {
	switch {
	case level <= 3:
		return zstd.SpeedFastest
	case level <= 6:
		return zstd.SpeedDefault
	case level <= 10:
		return zstd.SpeedBetterCompression
	default:
		return zstd.SpeedBestCompression
	}
}

// Compress compresses raw using Zstandard at the codec's configured level.
// Encoders aren't pooled here since the level varies per ZstdCodec instance.
func (c ZstdCodec) Compress(raw []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(encoderLevel(c.level)),
		zstd.WithEncoderCRC(false),
	)
	if err != nil {
		return nil, errs.Wrap(err, "build zstd encoder")
	}
	defer encoder.Close()
	return encoder.EncodeAll(raw, nil), nil
}

// Decompress decompresses a zstd-compressed payload.
func (c ZstdCodec) Decompress(payload []byte) ([]byte, error) {
	if len(payload) == 0 {
		return nil, nil
	}
	decoder := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	raw, err := decoder.DecodeAll(payload, nil)
	if err != nil {
		return nil, errs.Wrap(err, "zstd decompress")
	}
	return raw, nil
}
