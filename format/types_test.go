package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodingType(t *testing.T) {
	tests := []struct {
		name  string
		enc   EncodingType
		str   string
		valid bool
	}{
		{"raw", TypeRaw, "Raw", true},
		{"gorilla", TypeGorilla, "Gorilla", true},
		{"zero", EncodingType(0), "Unknown", false},
		{"unassigned", EncodingType(0x2), "Unknown", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.str, tt.enc.String())
			require.Equal(t, tt.valid, tt.enc.Valid())
		})
	}
}

func TestCompressionType(t *testing.T) {
	for _, c := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4, CompressionSnappy} {
		require.True(t, c.Valid(), c.String())
		require.NotEqual(t, "Unknown", c.String())
	}
	require.False(t, CompressionType(0).Valid())
	require.False(t, CompressionType(6).Valid())
	require.Equal(t, "Unknown", CompressionType(9).String())
}

func TestParse(t *testing.T) {
	enc, ok := ParseEncodingType("GORILLA")
	require.True(t, ok)
	require.Equal(t, TypeGorilla, enc)

	_, ok = ParseEncodingType("delta")
	require.False(t, ok)

	comp, ok := ParseCompressionType("")
	require.True(t, ok)
	require.Equal(t, CompressionNone, comp)

	comp, ok = ParseCompressionType("Lz4")
	require.True(t, ok)
	require.Equal(t, CompressionLZ4, comp)

	comp, ok = ParseCompressionType("snappy")
	require.True(t, ok)
	require.Equal(t, CompressionSnappy, comp)

	_, ok = ParseCompressionType("brotli")
	require.False(t, ok)
}
