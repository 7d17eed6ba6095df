// Package archive implements the NEPAK v1 builder, reader, and the
// higher-level operations (list, extract, verify) layered on top of them.
// Its structure mirrors the teacher's blob package: a header-driven config
// type configured through functional options (internal/options), a pooled
// buffer (internal/pool) for reading each file's content during a build, and
// fixed-size section types (section) for the on-disk encoding.
package archive

import (
	"github.com/nepak/nepak/endian"
	"github.com/nepak/nepak/format"
)

// entry is the builder/reader's in-memory record for one archived file.
type entry struct {
	path          string
	payloadOffset uint64
	payloadLen    uint64
	rawLen        uint64
	payloadKind   format.PayloadKind
	rawHash       [format.RawHashSize]byte
}

// EntryInfo is the public, read-only view of an archived file returned by
// Entries and used by List.
type EntryInfo struct {
	Path          string
	PayloadOffset uint64
	PayloadLen    uint64
	RawLen        uint64
	// PayloadKind is "raw" or "zstd".
	PayloadKind string
	// RawHashHex is the lowercase hex encoding of the BLAKE3 hash of the
	// file's raw, uncompressed bytes.
	RawHashHex string
}

func (e entry) info() EntryInfo {
	return EntryInfo{
		Path:          e.path,
		PayloadOffset: e.payloadOffset,
		PayloadLen:    e.payloadLen,
		RawLen:        e.rawLen,
		PayloadKind:   e.payloadKind.String(),
		RawHashHex:    endian.EncodeHex(e.rawHash[:]),
	}
}
