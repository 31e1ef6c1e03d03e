package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.id, ID(tt.data))
		})
	}
}

func TestChecksum(t *testing.T) {
	t.Run("split parts hash like one stream", func(t *testing.T) {
		whole := []byte("header|name|payload")
		split := Checksum([]byte("header|"), []byte("name|"), []byte("payload"))
		require.Equal(t, xxhash.Sum64(whole), split)
	})

	t.Run("no parts equals empty input", func(t *testing.T) {
		require.Equal(t, xxhash.Sum64(nil), Checksum())
		require.Equal(t, Checksum(), Checksum(nil, []byte{}))
	})

	t.Run("single byte change alters digest", func(t *testing.T) {
		a := Checksum([]byte{1, 2, 3, 4})
		b := Checksum([]byte{1, 2, 3, 5})
		require.NotEqual(t, a, b)
	})
}
