// Package section implements the binary layout of the three fixed regions
// of a NEPAK archive: the header magic, the variable-length index entries,
// and the fixed-size footer. It mirrors the teacher's section package
// (NumericHeader/NumericIndexEntry): WriteHeader/Footer.Bytes/
// IndexEntry.WriteTo for encoding, ParseHeader/ParseFooter/ParseIndexEntry
// for decoding, with integer fields driven by an endian.EndianEngine.
package section

import (
	"bytes"

	"github.com/nepak/nepak/errs"
	"github.com/nepak/nepak/format"
)

// WriteHeader appends the NEPAK header magic to buf.
func WriteHeader(buf *bytes.Buffer) {
	buf.Write(format.HeaderMagic[:])
}

// ParseHeader validates that data begins with the NEPAK header magic and
// returns the number of bytes consumed.
func ParseHeader(data []byte) (int, error) {
	if len(data) < format.MagicSize {
		return 0, errs.New(errs.Invalid, "truncated header: need %d bytes, have %d", format.MagicSize, len(data))
	}
	if !bytes.Equal(data[:format.MagicSize], format.HeaderMagic[:]) {
		return 0, errs.New(errs.Invalid, "bad header magic")
	}
	return format.MagicSize, nil
}
