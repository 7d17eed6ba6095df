package archive

import (
	"bytes"
	"os"

	"github.com/nepak/nepak/compress"
	"github.com/nepak/nepak/endian"
	"github.com/nepak/nepak/errs"
	"github.com/nepak/nepak/format"
	"github.com/nepak/nepak/internal/digest"
	"github.com/nepak/nepak/section"
)

// Reader gives random access to an open NEPAK archive's payloads once its
// index has been read and validated.
type Reader struct {
	file    *os.File
	entries []entry
}

// OpenReader opens path, validates its header and footer, reads and
// verifies its index, and returns a Reader positioned to serve Extract and
// Verify.
func OpenReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errs.Wrap(err, "open %s", path)
	}

	entries, err := readIndex(file)
	if err != nil {
		file.Close()
		return nil, err
	}

	return &Reader{file: file, entries: entries}, nil
}

// Close releases the underlying file handle.
func (r *Reader) Close() error {
	return r.file.Close()
}

// Entries returns the public view of every archived file, in index order.
func (r *Reader) Entries() []EntryInfo {
	out := make([]EntryInfo, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.info()
	}
	return out
}

// ReadRaw reads and decompresses the raw bytes of the entry at idx,
// verifying the result against its recorded BLAKE3 hash.
func (r *Reader) ReadRaw(idx int) ([]byte, error) {
	e := r.entries[idx]

	payload := make([]byte, e.payloadLen)
	if _, err := r.file.ReadAt(payload, int64(e.payloadOffset)); err != nil {
		return nil, errs.Wrap(err, "read payload for %s", e.path)
	}

	codec, err := compress.ForKind(e.payloadKind)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(payload)
	if err != nil {
		return nil, err
	}

	if digest.Sum256(raw) != e.rawHash {
		return nil, errs.New(errs.Invalid, "hash mismatch for %s", e.path)
	}

	return raw, nil
}

func readHeader(file *os.File) error {
	magic := make([]byte, format.MagicSize)
	if _, err := file.ReadAt(magic, 0); err != nil {
		return errs.Wrap(err, "read header")
	}
	_, err := section.ParseHeader(magic)
	return err
}

func readFooter(file *os.File) (section.Footer, error) {
	info, err := file.Stat()
	if err != nil {
		return section.Footer{}, errs.Wrap(err, "stat archive")
	}
	if info.Size() < format.FooterSize {
		return section.Footer{}, errs.New(errs.Invalid, "file too small")
	}

	buf := make([]byte, format.FooterSize)
	if _, err := file.ReadAt(buf, info.Size()-format.FooterSize); err != nil {
		return section.Footer{}, errs.Wrap(err, "read footer")
	}

	return section.ParseFooter(buf)
}

// readIndex performs the full validation sequence required before any
// payload can be trusted: header magic, footer, index bounds and hash,
// embedded magic, and sort order. The final loop rejects both out-of-order
// and duplicate adjacent paths (invariant 2), making it the authoritative
// place a duplicate path gets rejected.
func readIndex(file *os.File) ([]entry, error) {
	if err := readHeader(file); err != nil {
		return nil, err
	}

	footer, err := readFooter(file)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		return nil, errs.Wrap(err, "stat archive")
	}
	if footer.IndexOffset+footer.IndexLen > uint64(info.Size()) {
		return nil, errs.New(errs.Invalid, "index outside file")
	}

	indexBuf := make([]byte, footer.IndexLen)
	if _, err := file.ReadAt(indexBuf, int64(footer.IndexOffset)); err != nil {
		return nil, errs.Wrap(err, "read index")
	}

	if digest.IndexTag(indexBuf) != footer.IndexHash32 {
		return nil, errs.New(errs.Invalid, "index hash mismatch")
	}

	n, err := section.ParseHeader(indexBuf)
	if err != nil {
		return nil, errs.New(errs.Invalid, "bad index magic")
	}
	rest := indexBuf[n:]

	if len(rest) < 4 {
		return nil, errs.New(errs.Invalid, "truncated index entry count")
	}
	count := endian.GetLittleEndianEngine().Uint32(rest[:4])
	rest = rest[4:]

	entries := make([]entry, 0, count)
	for i := uint32(0); i < count; i++ {
		ie, consumed, err := section.ParseIndexEntry(rest)
		if err != nil {
			return nil, err
		}
		rest = rest[consumed:]

		entries = append(entries, entry{
			path:          ie.Path,
			payloadOffset: ie.PayloadOffset,
			payloadLen:    ie.PayloadLen,
			rawLen:        ie.RawLen,
			payloadKind:   ie.PayloadKind,
			rawHash:       ie.RawHash,
		})
	}

	for i := 1; i < len(entries); i++ {
		if bytes.Compare([]byte(entries[i-1].path), []byte(entries[i].path)) >= 0 {
			return nil, errs.New(errs.Invalid, "index is not sorted or contains a duplicate path")
		}
	}

	return entries, nil
}
