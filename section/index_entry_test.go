package section

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nepak/nepak/format"
)

func TestIndexEntryRoundTrip(t *testing.T) {
	e := IndexEntry{
		Path:          "assets/icon.png",
		PayloadOffset: 8,
		PayloadLen:    256,
		RawLen:        512,
		PayloadKind:   format.Zstd,
	}
	for i := range e.RawHash {
		e.RawHash[i] = byte(i)
	}

	var buf bytes.Buffer
	require.NoError(t, e.WriteTo(&buf))

	got, n, err := ParseIndexEntry(buf.Bytes())
	require.NoError(t, err)
	require.Equal(t, buf.Len(), n)
	require.Equal(t, e, got)
}

func TestIndexEntryRejectsOversizedPath(t *testing.T) {
	e := IndexEntry{Path: string(make([]byte, format.MaxPathLen+1))}
	var buf bytes.Buffer
	require.Error(t, e.WriteTo(&buf))
}

func TestIndexEntryRejectsUnknownPayloadKind(t *testing.T) {
	e := IndexEntry{Path: "a"}
	var buf bytes.Buffer
	require.NoError(t, e.WriteTo(&buf))

	raw := buf.Bytes()
	raw[len(raw)-1-format.RawHashSize] = 0xFF // corrupt payload_kind byte

	_, _, err := ParseIndexEntry(raw)
	require.Error(t, err)
}

func TestParseIndexEntryTruncated(t *testing.T) {
	_, _, err := ParseIndexEntry([]byte{0x05, 0x00})
	require.Error(t, err)
}

func TestParseIndexEntryRejectsInvalidUTF8Path(t *testing.T) {
	e := IndexEntry{Path: "placeholder"}
	var buf bytes.Buffer
	require.NoError(t, e.WriteTo(&buf))

	raw := buf.Bytes()
	pathLen := int(wireEngine.Uint16(raw[0:2]))
	raw[2] = 0xFF // invalid UTF-8 lead byte, overwrites "placeholder"'s first byte

	_, _, err := ParseIndexEntry(raw[:2+pathLen+format.IndexEntryFixedSize])
	require.Error(t, err)
}

func TestMultipleIndexEntriesSequential(t *testing.T) {
	entries := []IndexEntry{
		{Path: "a", PayloadKind: format.Raw},
		{Path: "b/c", PayloadKind: format.Zstd},
	}

	var buf bytes.Buffer
	for _, e := range entries {
		require.NoError(t, e.WriteTo(&buf))
	}

	data := buf.Bytes()
	offset := 0
	for _, want := range entries {
		got, n, err := ParseIndexEntry(data[offset:])
		require.NoError(t, err)
		require.Equal(t, want, got)
		offset += n
	}
	require.Equal(t, len(data), offset)
}
