package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/numsum/errs"
)

func TestLinear(t *testing.T) {
	tests := []struct {
		name          string
		x, y          []float64
		wantSlope     float64
		wantIntercept float64
		wantR2        float64
		wantRMSE      float64
	}{
		{
			name: "perfect line", x: []float64{1, 2, 3, 4}, y: []float64{2, 4, 6, 8},
			wantSlope: 2, wantIntercept: 0, wantR2: 1, wantRMSE: 0,
		},
		{
			name: "noisy", x: []float64{1, 2, 3, 4, 5}, y: []float64{2, 4, 5, 4, 5},
			wantSlope: 0.6, wantIntercept: 2.2, wantR2: 0.6, wantRMSE: math.Sqrt(0.48),
		},
		{
			name: "negative slope", x: []float64{0, 1, 2}, y: []float64{10, 7, 4},
			wantSlope: -3, wantIntercept: 10, wantR2: 1, wantRMSE: 0,
		},
		{
			name: "two points", x: []float64{-1, 1}, y: []float64{0, 4},
			wantSlope: 2, wantIntercept: 2, wantR2: 1, wantRMSE: 0,
		},
		{
			name: "constant y", x: []float64{1, 2, 3}, y: []float64{5, 5, 5},
			wantSlope: 0, wantIntercept: 5, wantR2: 0, wantRMSE: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit, err := Linear(tt.x, tt.y)
			require.NoError(t, err)
			require.InDelta(t, tt.wantSlope, fit.Slope, 1e-12)
			require.InDelta(t, tt.wantIntercept, fit.Intercept, 1e-12)
			require.InDelta(t, tt.wantR2, fit.RSquared, 1e-12)
			require.InDelta(t, tt.wantRMSE, fit.RMSE, 1e-12)
			require.Equal(t, len(tt.x), fit.N)
		})
	}
}

func TestLinear_Errors(t *testing.T) {
	tests := []struct {
		name    string
		x, y    []float64
		wantErr error
	}{
		{name: "length mismatch", x: []float64{1, 2}, y: []float64{5, 5, 5}, wantErr: errs.ErrLengthMismatch},
		{name: "mismatch checked before size", x: []float64{1}, y: nil, wantErr: errs.ErrLengthMismatch},
		{name: "empty", x: nil, y: nil, wantErr: errs.ErrInsufficientData},
		{name: "single point", x: []float64{1}, y: []float64{1}, wantErr: errs.ErrInsufficientData},
		{name: "nan x", x: []float64{1, math.NaN()}, y: []float64{1, 2}, wantErr: errs.ErrNonFiniteValue},
		{name: "inf y", x: []float64{1, 2}, y: []float64{math.Inf(1), 2}, wantErr: errs.ErrNonFiniteValue},
		{name: "zero x variance", x: []float64{3, 3, 3}, y: []float64{1, 2, 3}, wantErr: errs.ErrZeroVariance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Linear(tt.x, tt.y)
			require.ErrorIs(t, err, tt.wantErr)
			require.ErrorIs(t, err, errs.ErrInvalidInput)
		})
	}
}

func TestLinear_ExtremeMagnitudes(t *testing.T) {
	tests := []struct {
		name          string
		x, y          []float64
		wantSlope     float64
		wantIntercept float64
		wantR2        float64
		wantRMSE      float64
	}{
		{
			name: "huge x", x: []float64{1e200, -1e200, 0}, y: []float64{1, -1, 0},
			wantSlope: 1e-200, wantIntercept: 0, wantR2: 1, wantRMSE: 0,
		},
		{
			name: "max range x", x: []float64{1e308, -1e308, 0}, y: []float64{1, -1, 0},
			wantSlope: 1e-308, wantIntercept: 0, wantR2: 1, wantRMSE: 0,
		},
		{
			name: "huge y", x: []float64{1, 2, 3}, y: []float64{1e200, -1e200, 0},
			wantSlope: -5e199, wantIntercept: 1e200, wantR2: 0.25, wantRMSE: math.Sqrt(0.5) * 1e200,
		},
		{
			name: "max range y", x: []float64{1, 2, 3}, y: []float64{1e308, -1e308, 0},
			wantSlope: -5e307, wantIntercept: 1e308, wantR2: 0.25, wantRMSE: math.Sqrt(0.5) * 1e308,
		},
		{
			name: "tiny distinct x", x: []float64{1e-200, 2e-200, 3e-200}, y: []float64{1, 2, 3},
			wantSlope: 1e200, wantIntercept: 0, wantR2: 1, wantRMSE: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fit, err := Linear(tt.x, tt.y)
			require.NoError(t, err)
			requireClose(t, tt.wantSlope, fit.Slope)
			requireClose(t, tt.wantIntercept, fit.Intercept)
			requireClose(t, tt.wantR2, fit.RSquared)
			requireClose(t, tt.wantRMSE, fit.RMSE)
		})
	}
}

func TestLinear_Overflow(t *testing.T) {
	// slope -2e308 is not representable
	_, err := Linear([]float64{1, 2}, []float64{1e308, -1e308})
	require.ErrorIs(t, err, errs.ErrNumericOverflow)
	require.ErrorIs(t, err, errs.ErrInvalidInput)

	// slope 1e200 / 1e-200 is not representable
	_, err = Linear([]float64{0, 1e-200}, []float64{0, 1e200})
	require.ErrorIs(t, err, errs.ErrNumericOverflow)
}

func TestLinear_ZeroVarianceMessage(t *testing.T) {
	_, err := Linear([]float64{3, 3, 3}, []float64{1, 2, 3})
	require.ErrorIs(t, err, errs.ErrZeroVariance)
	require.ErrorContains(t, err, "x values are all equal")
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

func TestLinear_DoesNotModifyInput(t *testing.T) {
	x := []float64{3, 1, 2}
	y := []float64{6, 2, 4}

	_, err := Linear(x, y)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 1, 2}, x)
	require.Equal(t, []float64{6, 2, 4}, y)
}

func TestLinearFit_PredictAndEstimator(t *testing.T) {
	fit, err := Linear([]float64{1, 2, 3, 4}, []float64{3, 5, 7, 9})
	require.NoError(t, err)

	require.InDelta(t, 21.0, fit.Predict(10), 1e-9)

	est := fit.Estimator()
	require.Equal(t, ModelTypeLinear, est.Type())
	require.InDelta(t, fit.Predict(-4), est.Estimate(-4), 1e-12)
	require.Contains(t, fit.String(), "R²=1.0000")
}

func TestLinear_ShiftedData(t *testing.T) {
	// centered sums keep precision for large offsets
	x := []float64{1e9 + 1, 1e9 + 2, 1e9 + 3, 1e9 + 4}
	y := []float64{1, 3, 5, 7}

	fit, err := Linear(x, y)
	require.NoError(t, err)
	require.InDelta(t, 2, fit.Slope, 1e-9)
	require.InDelta(t, 1, fit.RSquared, 1e-9)
}
