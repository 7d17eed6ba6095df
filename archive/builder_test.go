package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nepak/nepak/compress"
)

func hasZstdForTest() bool { return compress.HasZstd() }

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	return root
}

func TestBuildProducesReadableArchive(t *testing.T) {
	root := writeTree(t, map[string]string{
		"b.txt":     "second",
		"a.txt":     "first",
		"dir/c.txt": "third",
	})
	out := filepath.Join(t.TempDir(), "out.nepak")

	require.NoError(t, Build(root, out))

	infos, err := Entries(out)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	require.Equal(t, []string{"a.txt", "b.txt", "dir/c.txt"}, []string{infos[0].Path, infos[1].Path, infos[2].Path})
	for _, e := range infos {
		require.Equal(t, "raw", e.PayloadKind)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	root := writeTree(t, map[string]string{
		"one.txt": "hello",
		"two.txt": "world",
	})

	out1 := filepath.Join(t.TempDir(), "a.nepak")
	out2 := filepath.Join(t.TempDir(), "b.nepak")
	require.NoError(t, Build(root, out1))
	require.NoError(t, Build(root, out2))

	b1, err := os.ReadFile(out1)
	require.NoError(t, err)
	b2, err := os.ReadFile(out2)
	require.NoError(t, err)
	require.Equal(t, b1, b2)
}

func TestBuildEmptyTree(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(t.TempDir(), "empty.nepak")

	require.NoError(t, Build(root, out))

	infos, err := Entries(out)
	require.NoError(t, err)
	require.Empty(t, infos)
}

func TestBuildEmptyFile(t *testing.T) {
	root := writeTree(t, map[string]string{"empty.txt": ""})
	out := filepath.Join(t.TempDir(), "out.nepak")

	require.NoError(t, Build(root, out))

	infos, err := Entries(out)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, uint64(0), infos[0].RawLen)
	require.Equal(t, uint64(0), infos[0].PayloadLen)
}

func TestBuildWithPrefix(t *testing.T) {
	root := writeTree(t, map[string]string{"file.txt": "x"})
	out := filepath.Join(t.TempDir(), "out.nepak")

	require.NoError(t, Build(root, out, WithPrefix("assets")))

	infos, err := Entries(out)
	require.NoError(t, err)
	require.Equal(t, "assets/file.txt", infos[0].Path)
}

func TestBuildWithExcludes(t *testing.T) {
	root := writeTree(t, map[string]string{
		"keep.txt":     "a",
		"skip.tmp":     "b",
		"dir/skip.tmp": "c",
	})
	out := filepath.Join(t.TempDir(), "out.nepak")

	require.NoError(t, Build(root, out, WithExcludes([]string{".tmp"})))

	infos, err := Entries(out)
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, "keep.txt", infos[0].Path)
}

func TestBuildWithCompressionRoundTrips(t *testing.T) {
	if !hasZstdForTest() {
		t.Skip("zstd unavailable in this build")
	}
	root := writeTree(t, map[string]string{"file.txt": "compressible compressible compressible compressible"})
	out := filepath.Join(t.TempDir(), "out.nepak")

	require.NoError(t, Build(root, out, WithCompression(19)))

	infos, err := Entries(out)
	require.NoError(t, err)
	require.Equal(t, "zstd", infos[0].PayloadKind)

	dest := t.TempDir()
	require.NoError(t, Extract(out, dest, nil))
	data, err := os.ReadFile(filepath.Join(dest, "file.txt"))
	require.NoError(t, err)
	require.Equal(t, "compressible compressible compressible compressible", string(data))
}

func TestBuildWithProgressReportsStages(t *testing.T) {
	root := writeTree(t, map[string]string{"a.txt": "a", "b.txt": "b"})
	out := filepath.Join(t.TempDir(), "out.nepak")

	var stages []Stage
	require.NoError(t, Build(root, out, WithProgress(func(ev ProgressEvent) {
		stages = append(stages, ev.Stage)
	})))

	require.Contains(t, stages, StageWritingPayloads)
	require.Contains(t, stages, StageFinalizing)
}

func TestBuildLongFileName(t *testing.T) {
	name := make([]byte, 250)
	for i := range name {
		name[i] = 'a'
	}
	root := writeTree(t, map[string]string{string(name): "x"})
	out := filepath.Join(t.TempDir(), "out.nepak")

	require.NoError(t, Build(root, out))

	infos, err := Entries(out)
	require.NoError(t, err)
	require.Len(t, infos, 1)
}
