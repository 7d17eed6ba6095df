package section

import (
	"bytes"
	"unicode/utf8"

	"github.com/nepak/nepak/endian"
	"github.com/nepak/nepak/errs"
	"github.com/nepak/nepak/format"
)

var wireEngine = endian.GetLittleEndianEngine()

// IndexEntry is the on-disk record for a single archived file: a
// variable-length path followed by the fixed 57-byte block of offsets,
// lengths, payload kind and raw hash.
type IndexEntry struct {
	Path          string
	PayloadOffset uint64
	PayloadLen    uint64
	RawLen        uint64
	PayloadKind   format.PayloadKind
	RawHash       [format.RawHashSize]byte
}

// WriteTo appends the entry's wire encoding to buf.
func (e *IndexEntry) WriteTo(buf *bytes.Buffer) error {
	pathBytes := []byte(e.Path)
	if len(pathBytes) > format.MaxPathLen {
		return errs.New(errs.Invalid, "path too long: %s", e.Path)
	}

	var fixed [2]byte
	wireEngine.PutUint16(fixed[:], uint16(len(pathBytes)))
	buf.Write(fixed[:])
	buf.Write(pathBytes)

	var tail [format.IndexEntryFixedSize]byte
	wireEngine.PutUint64(tail[0:8], e.PayloadOffset)
	wireEngine.PutUint64(tail[8:16], e.PayloadLen)
	wireEngine.PutUint64(tail[16:24], e.RawLen)
	tail[24] = byte(e.PayloadKind)
	copy(tail[25:57], e.RawHash[:])
	buf.Write(tail[:])

	return nil
}

// ParseIndexEntry decodes a single IndexEntry from the start of data and
// returns it along with the number of bytes consumed.
func ParseIndexEntry(data []byte) (IndexEntry, int, error) {
	if len(data) < 2 {
		return IndexEntry{}, 0, errs.New(errs.Invalid, "truncated index entry: missing path length")
	}
	pathLen := int(wireEngine.Uint16(data[0:2]))
	need := 2 + pathLen + format.IndexEntryFixedSize
	if len(data) < need {
		return IndexEntry{}, 0, errs.New(errs.Invalid, "truncated index entry: need %d bytes, have %d", need, len(data))
	}

	pathBytes := data[2 : 2+pathLen]
	if !utf8.Valid(pathBytes) {
		return IndexEntry{}, 0, errs.New(errs.Invalid, "path is not utf8")
	}
	path := string(pathBytes)
	tail := data[2+pathLen : need]

	var e IndexEntry
	e.Path = path
	e.PayloadOffset = wireEngine.Uint64(tail[0:8])
	e.PayloadLen = wireEngine.Uint64(tail[8:16])
	e.RawLen = wireEngine.Uint64(tail[16:24])
	e.PayloadKind = format.PayloadKind(tail[24])
	if !e.PayloadKind.Valid() {
		return IndexEntry{}, 0, errs.New(errs.Invalid, "unknown payload kind %d", tail[24])
	}
	copy(e.RawHash[:], tail[25:57])

	return e, need, nil
}
