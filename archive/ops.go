package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nepak/nepak/compress"
	"github.com/nepak/nepak/errs"
	"github.com/nepak/nepak/internal/digest"
	"github.com/nepak/nepak/internal/pathnorm"
)

// Entries reads pak's index and returns the public view of every archived
// file, without touching any payload bytes.
func Entries(pak string) ([]EntryInfo, error) {
	r, err := OpenReader(pak)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.Entries(), nil
}

// List prints one line per archived file to stdout: just the path, or with
// verbose set, the path followed by its offset/length/kind/hash.
func List(pak string, verbose bool) error {
	r, err := OpenReader(pak)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, e := range r.Entries() {
		if verbose {
			fmt.Printf("%s  off=%d len=%d raw=%d kind=%s hash=%s\n",
				e.Path, e.PayloadOffset, e.PayloadLen, e.RawLen, e.PayloadKind, e.RawHashHex)
		} else {
			fmt.Println(e.Path)
		}
	}

	return nil
}

// Extract writes every archived file whose path contains at least one of
// the filter substrings (or every file, if filter is empty) under output,
// verifying each one's content hash before it hits disk.
func Extract(pak, output string, filter []string) error {
	r, err := OpenReader(pak)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := os.MkdirAll(output, 0o755); err != nil {
		return errs.Wrap(err, "create output dir %s", output)
	}

	for idx, e := range r.entries {
		if len(filter) > 0 && !matchesAny(e.path, filter) {
			continue
		}

		raw, err := r.ReadRaw(idx)
		if err != nil {
			return err
		}

		outPath := filepath.Join(output, pathnorm.ToHostPath(e.path))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return errs.Wrap(err, "create dir for %s", outPath)
		}
		if err := os.WriteFile(outPath, raw, 0o644); err != nil {
			return errs.Wrap(err, "write %s", outPath)
		}
	}

	return nil
}

func matchesAny(path string, filter []string) bool {
	for _, s := range filter {
		if strings.Contains(path, s) {
			return true
		}
	}
	return false
}

// Verify checks every archived file's bounds, decompresses its payload, and
// confirms both the raw length and the BLAKE3 hash match the index. On
// success it prints "ok: N entries" to stdout.
func Verify(pak string) error {
	r, err := OpenReader(pak)
	if err != nil {
		return err
	}
	defer r.Close()

	info, err := r.file.Stat()
	if err != nil {
		return errs.Wrap(err, "stat %s", pak)
	}
	fileLen := uint64(info.Size())

	for _, e := range r.entries {
		if e.payloadOffset < 8 {
			return errs.New(errs.Invalid, "payload offset under header: %s", e.path)
		}
		if e.payloadOffset+e.payloadLen > fileLen {
			return errs.New(errs.Invalid, "payload outside file: %s", e.path)
		}

		payload := make([]byte, e.payloadLen)
		if _, err := r.file.ReadAt(payload, int64(e.payloadOffset)); err != nil {
			return errs.Wrap(err, "read payload for %s", e.path)
		}

		codec, err := compress.ForKind(e.payloadKind)
		if err != nil {
			return err
		}
		raw, err := codec.Decompress(payload)
		if err != nil {
			return err
		}

		if uint64(len(raw)) != e.rawLen {
			return errs.New(errs.Invalid, "raw size mismatch: %s", e.path)
		}
		if digest.Sum256(raw) != e.rawHash {
			return errs.New(errs.Invalid, "hash mismatch: %s", e.path)
		}
	}

	fmt.Printf("ok: %d entries\n", len(r.entries))

	return nil
}
