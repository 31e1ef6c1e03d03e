package endian

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEngines(t *testing.T) {
	little := GetLittleEndianEngine()
	big := GetBigEndianEngine()

	require.True(t, IsLittleEndian(little))
	require.False(t, IsBigEndian(little))
	require.True(t, IsBigEndian(big))
	require.False(t, IsLittleEndian(big))
}

func TestGetNativeEngine(t *testing.T) {
	native := GetNativeEngine()
	require.True(t, IsLittleEndian(native) != IsBigEndian(native))
	require.Equal(t, native, GetNativeEngine())
}

func TestEngines_FloatRoundTrip(t *testing.T) {
	values := []float64{0, -1.5, math.Pi, math.MaxFloat64, math.SmallestNonzeroFloat64}

	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		var buf []byte
		for _, v := range values {
			buf = engine.AppendUint64(buf, math.Float64bits(v))
		}
		require.Len(t, buf, 8*len(values))

		for i, want := range values {
			got := math.Float64frombits(engine.Uint64(buf[i*8:]))
			require.Equal(t, want, got)
		}
	}
}

func TestEngines_ByteLayout(t *testing.T) {
	little := GetLittleEndianEngine().AppendUint16(nil, 0x0102)
	big := GetBigEndianEngine().AppendUint16(nil, 0x0102)

	require.Equal(t, []byte{0x02, 0x01}, little)
	require.Equal(t, []byte{0x01, 0x02}, big)
	require.Equal(t, binary.LittleEndian.Uint16(little), binary.BigEndian.Uint16(big))
}
