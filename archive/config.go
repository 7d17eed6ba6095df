package archive

import (
	"github.com/nepak/nepak/compress"
	"github.com/nepak/nepak/internal/options"
)

// buildConfig holds a Build call's configuration, assembled from functional
// options before the scan begins. It follows the teacher's
// NumericEncoderConfig pattern: a single mutable struct the option funcs
// close over.
type buildConfig struct {
	prefix    string
	excludes  []string
	compress  bool
	zstdLevel int
	progress  ProgressFunc
}

func newBuildConfig() *buildConfig {
	return &buildConfig{zstdLevel: compress.DefaultZstdLevel}
}

// BuildOption configures a Build call.
type BuildOption = options.Option[*buildConfig]

// WithPrefix mounts every archived path under prefix (spec §4.2: "<prefix>/path").
func WithPrefix(prefix string) BuildOption {
	return options.NoError(func(c *buildConfig) {
		c.prefix = prefix
	})
}

// WithExcludes filters out any scanned logical path containing one of the
// given substrings.
func WithExcludes(excludes []string) BuildOption {
	return options.NoError(func(c *buildConfig) {
		c.excludes = excludes
	})
}

// WithCompression enables zstd compression for every payload at the given
// level (clamped to [compress.MinZstdLevel, compress.MaxZstdLevel]).
func WithCompression(level int) BuildOption {
	return options.NoError(func(c *buildConfig) {
		c.compress = true
		c.zstdLevel = compress.ClampZstdLevel(level)
	})
}

// WithProgress attaches a ProgressFunc invoked synchronously as Build runs.
func WithProgress(fn ProgressFunc) BuildOption {
	return options.NoError(func(c *buildConfig) {
		c.progress = fn
	})
}
