package section

import (
	"bytes"

	"github.com/nepak/nepak/errs"
	"github.com/nepak/nepak/format"
)

// Footer is the fixed 32-byte trailer that locates and authenticates the
// index region.
type Footer struct {
	IndexOffset uint64
	IndexLen    uint64
	IndexHash32 uint32
	Reserved    uint32
}

// Bytes serializes the footer into its fixed 32-byte wire form.
func (f Footer) Bytes() []byte {
	b := make([]byte, format.FooterSize)
	copy(b[0:8], format.FooterMagic[:])
	wireEngine.PutUint64(b[8:16], f.IndexOffset)
	wireEngine.PutUint64(b[16:24], f.IndexLen)
	wireEngine.PutUint32(b[24:28], f.IndexHash32)
	wireEngine.PutUint32(b[28:32], f.Reserved)

	return b
}

// ParseFooter decodes a Footer from exactly format.FooterSize bytes.
func ParseFooter(data []byte) (Footer, error) {
	if len(data) != format.FooterSize {
		return Footer{}, errs.New(errs.Invalid, "footer must be %d bytes, got %d", format.FooterSize, len(data))
	}
	if !bytes.Equal(data[0:8], format.FooterMagic[:]) {
		return Footer{}, errs.New(errs.Invalid, "bad footer magic")
	}

	return Footer{
		IndexOffset: wireEngine.Uint64(data[8:16]),
		IndexLen:    wireEngine.Uint64(data[16:24]),
		IndexHash32: wireEngine.Uint32(data[24:28]),
		Reserved:    wireEngine.Uint32(data[28:32]),
	}, nil
}
