package stats

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/numsum/errs"
)

func TestMeanStd(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		wantMean float64
		wantStd  float64
	}{
		{name: "single value", data: []float64{42}, wantMean: 42, wantStd: 0},
		{name: "constant", data: []float64{5, 5, 5}, wantMean: 5, wantStd: 0},
		{name: "textbook", data: []float64{2, 4, 4, 4, 5, 5, 7, 9}, wantMean: 5, wantStd: 2},
		{name: "one to five", data: []float64{1, 2, 3, 4, 5}, wantMean: 3, wantStd: math.Sqrt2},
		{name: "negative", data: []float64{-1, -3}, wantMean: -2, wantStd: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std, err := MeanStd(tt.data)
			require.NoError(t, err)
			require.InDelta(t, tt.wantMean, mean, 1e-12)
			require.InDelta(t, tt.wantStd, std, 1e-12)
		})
	}
}

func TestMeanStd_InvalidInput(t *testing.T) {
	_, _, err := MeanStd(nil)
	require.ErrorIs(t, err, errs.ErrEmptySample)
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	_, _, err = MeanStd([]float64{})
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, _, err = MeanStd([]float64{1, bad, 3})
		require.ErrorIs(t, err, errs.ErrNonFiniteValue)
		require.ErrorIs(t, err, errs.ErrInvalidInput)
	}
}

func TestMeanStd_DoesNotModifyInput(t *testing.T) {
	data := []float64{3, 1, 2}
	_, _, err := MeanStd(data)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 1, 2}, data)
}

func TestMeanStd_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for range 200 {
		n := rng.Intn(50) + 1
		data := make([]float64, n)
		for i := range data {
			data[i] = rng.NormFloat64()*rng.Float64()*1e6 + rng.Float64()*100
		}

		mean, std, err := MeanStd(data)
		require.NoError(t, err)
		require.GreaterOrEqual(t, std, 0.0)

		lo, hi := data[0], data[0]
		for _, x := range data {
			lo = min(lo, x)
			hi = max(hi, x)
		}
		require.GreaterOrEqual(t, mean, lo)
		require.LessOrEqual(t, mean, hi)
	}
}

func TestMeanStd_ConstantFraction(t *testing.T) {
	data := []float64{0.1, 0.1, 0.1, 0.1, 0.1, 0.1, 0.1}
	mean, std, err := MeanStd(data)
	require.NoError(t, err)
	require.Equal(t, 0.1, mean)
	require.Equal(t, 0.0, std)
}

func TestMeanStd_ExtremeMagnitudes(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		wantMean float64
		wantStd  float64
	}{
		{name: "symmetric 1e200", data: []float64{1e200, -1e200}, wantMean: 0, wantStd: 1e200},
		{name: "symmetric 1e308", data: []float64{1e308, -1e308}, wantMean: 0, wantStd: 1e308},
		{name: "max float", data: []float64{math.MaxFloat64, -math.MaxFloat64, 0}, wantMean: 0, wantStd: math.MaxFloat64 * math.Sqrt(2.0/3)},
		{name: "constant 1e308", data: []float64{1e308, 1e308, 1e308}, wantMean: 1e308, wantStd: 0},
		{name: "tiny spread", data: []float64{1e-200, 3e-200}, wantMean: 2e-200, wantStd: 1e-200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, std, err := MeanStd(tt.data)
			require.NoError(t, err)
			requireClose(t, tt.wantMean, mean)
			requireClose(t, tt.wantStd, std)
		})
	}
}

func TestMeanStd_ConstantIsExact(t *testing.T) {
	for _, v := range []float64{1e308, -3.7e-301, 0.1} {
		mean, std, err := MeanStd([]float64{v, v, v, v, v})
		require.NoError(t, err)
		require.Equal(t, v, mean)
		require.Zero(t, std)
	}
}

// requireClose compares with a relative tolerance, or an absolute one around zero.
func requireClose(t *testing.T, want, got float64) {
	t.Helper()

	if want == 0 {
		require.InDelta(t, want, got, 1e-12)

		return
	}
	require.InEpsilon(t, want, got, 1e-12)
}
