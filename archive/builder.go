package archive

import (
	"bufio"
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/nepak/nepak/compress"
	"github.com/nepak/nepak/endian"
	"github.com/nepak/nepak/errs"
	"github.com/nepak/nepak/format"
	"github.com/nepak/nepak/internal/dedupe"
	"github.com/nepak/nepak/internal/digest"
	"github.com/nepak/nepak/internal/options"
	"github.com/nepak/nepak/internal/pathnorm"
	"github.com/nepak/nepak/internal/pool"
	"github.com/nepak/nepak/section"
)

// scannedFile pairs a file's canonical logical path with its real
// filesystem location.
type scannedFile struct {
	logical  string
	physical string
}

// scan walks input and returns every regular file under it as a list of
// scannedFiles sorted by logical path bytes. A logical path seen a second
// time is reported as a StageScanning progress event and kept in the list.
// Symlinks are skipped silently, matching the reference builder's
// follow_links(false) plus is_file() filter.
func scan(input string, cfg *buildConfig, tracker *dedupe.Tracker) ([]scannedFile, error) {
	var files []scannedFile

	err := filepath.WalkDir(input, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errs.Wrap(err, "walk %s", path)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, ok := pathnorm.Relative(input, path)
		if !ok {
			return errs.New(errs.Outside, "path outside input root: %s", path)
		}
		logical := pathnorm.WithPrefix(cfg.prefix, rel)
		if pathnorm.Excluded(logical, cfg.excludes) {
			return nil
		}

		if tracker.Track(logical) {
			report(cfg.progress, ProgressEvent{Stage: StageScanning, Current: logical})
		}
		files = append(files, scannedFile{logical: logical, physical: path})

		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return bytes.Compare([]byte(files[i].logical), []byte(files[j].logical)) < 0
	})

	return files, nil
}

// Build creates a NEPAK archive at output from the regular files under
// input, applying the given options.
func Build(input, output string, opts ...BuildOption) error {
	cfg := newBuildConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return err
	}
	if cfg.compress && !compress.HasZstd() {
		return errs.ErrNoZstd
	}

	tracker := dedupe.NewTracker()
	files, err := scan(input, cfg, tracker)
	if err != nil {
		return err
	}
	report(cfg.progress, ProgressEvent{Stage: StageScanning, Done: len(files), Total: len(files)})

	out, err := os.Create(output)
	if err != nil {
		return errs.Wrap(err, "create %s", output)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	var headerBuf bytes.Buffer
	section.WriteHeader(&headerBuf)
	if _, err := w.Write(headerBuf.Bytes()); err != nil {
		return errs.Wrap(err, "write header")
	}
	offset := uint64(headerBuf.Len())

	entries := make([]entry, 0, len(files))
	readBuf := pool.Get()
	defer pool.Put(readBuf)

	for i, f := range files {
		e, n, err := writePayload(w, f, cfg, readBuf)
		if err != nil {
			return err
		}
		e.payloadOffset = offset
		offset += n
		entries = append(entries, e)

		report(cfg.progress, ProgressEvent{
			Stage: StageWritingPayloads, Done: i + 1, Total: len(files), Current: f.logical,
		})
	}

	indexOffset := offset
	indexBuf, err := buildIndex(entries)
	if err != nil {
		return err
	}
	if _, err := w.Write(indexBuf); err != nil {
		return errs.Wrap(err, "write index")
	}
	indexLen := uint64(len(indexBuf))
	report(cfg.progress, ProgressEvent{Stage: StageWritingIndex, Done: len(entries), Total: len(entries)})

	footer := section.Footer{
		IndexOffset: indexOffset,
		IndexLen:    indexLen,
		IndexHash32: digest.IndexTag(indexBuf),
	}
	if _, err := w.Write(footer.Bytes()); err != nil {
		return errs.Wrap(err, "write footer")
	}
	if err := w.Flush(); err != nil {
		return errs.Wrap(err, "flush %s", output)
	}
	report(cfg.progress, ProgressEvent{Stage: StageFinalizing, Done: 1, Total: 1})

	return nil
}

// writePayload reads f's content, hashes and optionally compresses it, and
// writes the resulting payload to w. It returns the partial entry (without
// payloadOffset, filled in by the caller) and the number of bytes written.
func writePayload(w io.Writer, f scannedFile, cfg *buildConfig, buf *pool.ByteBuffer) (entry, uint64, error) {
	info, err := os.Stat(f.physical)
	if err != nil {
		return entry{}, 0, errs.Wrap(err, "stat %s", f.physical)
	}

	file, err := os.Open(f.physical)
	if err != nil {
		return entry{}, 0, errs.Wrap(err, "open %s", f.physical)
	}
	defer file.Close()

	buf.Reset()
	buf.Grow(int(info.Size()))
	buf.B = buf.B[:info.Size()]
	if _, err := io.ReadFull(file, buf.B); err != nil {
		return entry{}, 0, errs.Wrap(err, "read %s", f.physical)
	}
	raw := buf.B

	rawHash := digest.Sum256(raw)

	kind := format.Raw
	payload := raw
	if cfg.compress {
		kind = format.Zstd
		codec := compress.NewZstdCodecLevel(cfg.zstdLevel)
		payload, err = codec.Compress(raw)
		if err != nil {
			return entry{}, 0, err
		}
	}

	if _, err := w.Write(payload); err != nil {
		return entry{}, 0, errs.Wrap(err, "write payload for %s", f.logical)
	}

	e := entry{
		path:        f.logical,
		payloadLen:  uint64(len(payload)),
		rawLen:      uint64(len(raw)),
		payloadKind: kind,
		rawHash:     rawHash,
	}

	return e, uint64(len(payload)), nil
}

// buildIndex serializes the sorted entries into the NEPAK index region:
// header magic, entry count, then each entry in order.
func buildIndex(entries []entry) ([]byte, error) {
	var buf bytes.Buffer
	section.WriteHeader(&buf)

	var countBytes [4]byte
	endian.GetLittleEndianEngine().PutUint32(countBytes[:], uint32(len(entries)))
	buf.Write(countBytes[:])

	for _, e := range entries {
		ie := section.IndexEntry{
			Path:          e.path,
			PayloadOffset: e.payloadOffset,
			PayloadLen:    e.payloadLen,
			RawLen:        e.rawLen,
			PayloadKind:   e.payloadKind,
			RawHash:       e.rawHash,
		}
		if err := ie.WriteTo(&buf); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}
