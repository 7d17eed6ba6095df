package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFooterRoundTrip(t *testing.T) {
	f := Footer{IndexOffset: 128, IndexLen: 64, IndexHash32: 0xDEADBEEF, Reserved: 0}
	b := f.Bytes()
	require.Len(t, b, 32)

	got, err := ParseFooter(b)
	require.NoError(t, err)
	require.Equal(t, f, got)
}

func TestParseFooterRejectsBadMagic(t *testing.T) {
	f := Footer{IndexOffset: 1, IndexLen: 2, IndexHash32: 3}
	b := f.Bytes()
	b[0] = 'X'

	_, err := ParseFooter(b)
	require.Error(t, err)
}

func TestParseFooterRejectsWrongSize(t *testing.T) {
	_, err := ParseFooter(make([]byte, 31))
	require.Error(t, err)
}
