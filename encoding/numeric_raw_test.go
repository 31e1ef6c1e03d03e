package encoding

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/numsum/endian"
)

func TestNumericRawEncoder_Write_SingleValue(t *testing.T) {
	encoder := NewNumericRawEncoder(endian.GetLittleEndianEngine())
	defer encoder.Finish()

	encoder.Write(3.14159)

	require.Equal(t, 1, encoder.Len())
	require.Equal(t, 8, encoder.Size())

	data := encoder.Bytes()
	bits := endian.GetLittleEndianEngine().Uint64(data)
	require.Equal(t, 3.14159, math.Float64frombits(bits))
}

func TestNumericRawEncoder_WriteSlice(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{name: "empty", values: []float64{}},
		{name: "single", values: []float64{1.5}},
		{name: "multiple", values: []float64{1.1, 2.2, 3.3, 4.4, 5.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoder := NewNumericRawEncoder(endian.GetLittleEndianEngine())
			defer encoder.Finish()

			encoder.WriteSlice(tt.values)

			require.Equal(t, len(tt.values), encoder.Len())
			require.Equal(t, len(tt.values)*8, encoder.Size())

			decoded := slices.Collect(NewNumericRawDecoder(endian.GetLittleEndianEngine()).All(encoder.Bytes(), encoder.Len()))
			require.Len(t, decoded, len(tt.values))
			for i, v := range tt.values {
				require.Equal(t, v, decoded[i])
			}
		})
	}
}

func TestNumericRawEncoder_MixedWriteAndWriteSlice(t *testing.T) {
	encoder := NewNumericRawEncoder(endian.GetBigEndianEngine())
	defer encoder.Finish()

	encoder.Write(1.0)
	encoder.WriteSlice([]float64{2.0, 3.0})
	encoder.Write(4.0)

	decoded := slices.Collect(NewNumericRawDecoder(endian.GetBigEndianEngine()).All(encoder.Bytes(), encoder.Len()))
	require.Equal(t, []float64{1, 2, 3, 4}, decoded)
}

func TestNumericRawEncoder_Finish(t *testing.T) {
	encoder := NewNumericRawEncoder(endian.GetLittleEndianEngine())
	encoder.WriteSlice([]float64{1, 2, 3})
	encoder.Finish()

	require.Equal(t, 0, encoder.Len())
	require.Panics(t, func() { encoder.Write(1) })
	require.Panics(t, func() { encoder.WriteSlice([]float64{1}) })
	require.Panics(t, func() { _ = encoder.Bytes() })
	require.Panics(t, func() { _ = encoder.Size() })

	// second Finish is a no-op
	require.NotPanics(t, encoder.Finish)
}

func TestNumericRawEncoder_SpecialValues(t *testing.T) {
	values := []float64{
		0,
		math.Copysign(0, -1),
		math.Inf(1),
		math.Inf(-1),
		math.MaxFloat64,
		math.SmallestNonzeroFloat64,
		math.NaN(),
	}

	encoder := NewNumericRawEncoder(endian.GetLittleEndianEngine())
	defer encoder.Finish()
	encoder.WriteSlice(values)

	decoded := slices.Collect(NewNumericRawDecoder(endian.GetLittleEndianEngine()).All(encoder.Bytes(), encoder.Len()))
	require.Len(t, decoded, len(values))
	for i, v := range values {
		require.Equal(t, math.Float64bits(v), math.Float64bits(decoded[i]), "index %d", i)
	}
}

func TestNumericRawDecoder_All_InvalidData(t *testing.T) {
	decoder := NewNumericRawDecoder(endian.GetLittleEndianEngine())

	require.Empty(t, slices.Collect(decoder.All(nil, 3)))
	require.Empty(t, slices.Collect(decoder.All(make([]byte, 8), 0)))
	require.Empty(t, slices.Collect(decoder.All(make([]byte, 15), 2)))
}

func TestNumericRawDecoder_All_EarlyTermination(t *testing.T) {
	encoder := NewNumericRawEncoder(endian.GetLittleEndianEngine())
	defer encoder.Finish()
	encoder.WriteSlice([]float64{1, 2, 3, 4, 5})

	var got []float64
	for v := range NewNumericRawDecoder(endian.GetLittleEndianEngine()).All(encoder.Bytes(), encoder.Len()) {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(t, []float64{1, 2}, got)
}

func TestNumericRawDecoder_At(t *testing.T) {
	encoder := NewNumericRawEncoder(endian.GetLittleEndianEngine())
	defer encoder.Finish()
	encoder.WriteSlice([]float64{10, 20, 30})

	decoder := NewNumericRawDecoder(endian.GetLittleEndianEngine())
	data := encoder.Bytes()

	for i, want := range []float64{10, 20, 30} {
		v, ok := decoder.At(data, i, 3)
		require.True(t, ok)
		require.Equal(t, want, v)
	}

	_, ok := decoder.At(data, -1, 3)
	require.False(t, ok)
	_, ok = decoder.At(data, 3, 3)
	require.False(t, ok)
	_, ok = decoder.At(data[:16], 2, 3)
	require.False(t, ok)
}

func TestNumericRaw_RoundTrip_LargeDataset(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	values := make([]float64, 10000)
	for i := range values {
		values[i] = rng.NormFloat64() * 1000
	}

	for _, engine := range []endian.EndianEngine{endian.GetLittleEndianEngine(), endian.GetBigEndianEngine()} {
		encoder := NewNumericRawEncoder(engine)
		encoder.WriteSlice(values)

		decoded := slices.Collect(NewNumericRawDecoder(engine).All(encoder.Bytes(), encoder.Len()))
		require.Equal(t, values, decoded)
		encoder.Finish()
	}
}
