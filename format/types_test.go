package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPayloadKindString(t *testing.T) {
	require.Equal(t, "raw", Raw.String())
	require.Equal(t, "zstd", Zstd.String())
	require.Equal(t, "unknown", PayloadKind(7).String())
}

func TestPayloadKindValid(t *testing.T) {
	require.True(t, Raw.Valid())
	require.True(t, Zstd.Valid())
	require.False(t, PayloadKind(2).Valid())
}

func TestMagicLengths(t *testing.T) {
	require.Len(t, HeaderMagic, MagicSize)
	require.Len(t, FooterMagic, MagicSize)
}
