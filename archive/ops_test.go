package archive

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildFixture(t *testing.T, files map[string]string, opts ...BuildOption) string {
	t.Helper()
	root := writeTree(t, files)
	out := filepath.Join(t.TempDir(), "fixture.nepak")
	require.NoError(t, Build(root, out, opts...))
	return out
}

func TestExtractRoundTrip(t *testing.T) {
	pak := buildFixture(t, map[string]string{
		"a.txt":     "hello",
		"dir/b.txt": "world",
	})

	dest := t.TempDir()
	require.NoError(t, Extract(pak, dest, nil))

	a, err := os.ReadFile(filepath.Join(dest, "a.txt"))
	require.NoError(t, err)
	require.Equal(t, "hello", string(a))

	b, err := os.ReadFile(filepath.Join(dest, "dir", "b.txt"))
	require.NoError(t, err)
	require.Equal(t, "world", string(b))
}

func TestExtractWithFilter(t *testing.T) {
	pak := buildFixture(t, map[string]string{
		"keep/a.txt": "a",
		"drop/b.txt": "b",
	})

	dest := t.TempDir()
	require.NoError(t, Extract(pak, dest, []string{"keep/"}))

	_, err := os.Stat(filepath.Join(dest, "keep", "a.txt"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dest, "drop", "b.txt"))
	require.True(t, os.IsNotExist(err))
}

func TestVerifySucceedsOnCleanArchive(t *testing.T) {
	pak := buildFixture(t, map[string]string{"a.txt": "hello"})
	require.NoError(t, Verify(pak))
}

func TestVerifyDetectsPayloadTamper(t *testing.T) {
	pak := buildFixture(t, map[string]string{"a.txt": "hello"})

	data, err := os.ReadFile(pak)
	require.NoError(t, err)
	// Payload for "a.txt" begins right after the 8-byte header magic.
	data[8] ^= 0xFF
	require.NoError(t, os.WriteFile(pak, data, 0o644))

	err = Verify(pak)
	require.Error(t, err)
}

func TestOpenReaderRejectsBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.nepak")
	require.NoError(t, os.WriteFile(path, []byte("not a nepak archive at all"), 0o644))

	_, err := OpenReader(path)
	require.Error(t, err)
}

func TestOpenReaderRejectsTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.nepak")
	require.NoError(t, os.WriteFile(path, []byte("NEPAK\x01\x00\x00"), 0o644))

	_, err := OpenReader(path)
	require.Error(t, err)
}

func TestListDoesNotError(t *testing.T) {
	pak := buildFixture(t, map[string]string{"a.txt": "hello"})
	require.NoError(t, List(pak, false))
	require.NoError(t, List(pak, true))
}
