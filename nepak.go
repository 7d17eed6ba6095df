// Package nepak implements NEPAK, a deterministic, content-addressed
// archive format: given the same input tree, prefix, excludes, and
// compression settings, Build always produces a byte-identical archive.
//
// # Basic usage
//
// Building an archive:
//
//	err := nepak.Build("./assets", "bundle.nepak",
//	    nepak.WithPrefix("assets"),
//	    nepak.WithExcludes([]string{".DS_Store"}),
//	    nepak.WithCompression(9),
//	)
//
// Listing, extracting, and verifying:
//
//	_ = nepak.List("bundle.nepak", true)
//	_ = nepak.Extract("bundle.nepak", "./out", nil)
//	_ = nepak.Verify("bundle.nepak")
package nepak

import "github.com/nepak/nepak/archive"

// BuildOption configures a Build call: see WithPrefix, WithExcludes,
// WithCompression, and WithProgress.
type BuildOption = archive.BuildOption

// ProgressEvent reports incremental progress during a Build call.
type ProgressEvent = archive.ProgressEvent

// ProgressFunc receives ProgressEvents synchronously as Build runs.
type ProgressFunc = archive.ProgressFunc

// Stage identifies which phase of Build a ProgressEvent was emitted from.
type Stage = archive.Stage

// EntryInfo is the public view of a single archived file.
type EntryInfo = archive.EntryInfo

// WithPrefix mounts every archived path under prefix.
func WithPrefix(prefix string) BuildOption { return archive.WithPrefix(prefix) }

// WithExcludes filters out any scanned logical path containing one of the
// given substrings.
func WithExcludes(excludes []string) BuildOption { return archive.WithExcludes(excludes) }

// WithCompression enables zstd compression for every payload at the given
// level.
func WithCompression(level int) BuildOption { return archive.WithCompression(level) }

// WithProgress attaches a ProgressFunc invoked synchronously as Build runs.
func WithProgress(fn ProgressFunc) BuildOption { return archive.WithProgress(fn) }

// Build creates a NEPAK archive at output from the regular files under
// input.
func Build(input, output string, opts ...BuildOption) error {
	return archive.Build(input, output, opts...)
}

// BuildWithProgress is Build with prefix, excludes, and compression given
// positionally and a required progress callback, matching the reference
// implementation's gui-facing entry point.
func BuildWithProgress(input, output, prefix string, excludes []string, doCompress bool, zstdLevel int, fn ProgressFunc) error {
	opts := []BuildOption{WithPrefix(prefix), WithExcludes(excludes), WithProgress(fn)}
	if doCompress {
		opts = append(opts, WithCompression(zstdLevel))
	}

	return archive.Build(input, output, opts...)
}

// BuildArchive is Build with every option given positionally, matching the
// reference implementation's build(input, output, prefix, excludes,
// compress, zstd_level) signature.
func BuildArchive(input, output, prefix string, excludes []string, doCompress bool, zstdLevel int) error {
	opts := []BuildOption{WithPrefix(prefix), WithExcludes(excludes)}
	if doCompress {
		opts = append(opts, WithCompression(zstdLevel))
	}

	return archive.Build(input, output, opts...)
}

// Entries reads pak's index and returns the public view of every archived
// file, without touching any payload bytes.
func Entries(pak string) ([]EntryInfo, error) { return archive.Entries(pak) }

// List prints one line per archived file to stdout.
func List(pak string, verbose bool) error { return archive.List(pak, verbose) }

// Extract writes every archived file matching filter (or all files, if
// filter is empty) under output, verifying content hashes as it goes.
func Extract(pak, output string, filter []string) error { return archive.Extract(pak, output, filter) }

// Verify checks every archived file's bounds, decompresses its payload, and
// confirms its recorded length and hash.
func Verify(pak string) error { return archive.Verify(pak) }
