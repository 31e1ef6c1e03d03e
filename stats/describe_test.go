package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/numsum/errs"
)

func TestDescribe(t *testing.T) {
	s, err := Describe([]float64{5, 3, 1, 4, 2})
	require.NoError(t, err)

	require.Equal(t, 5, s.Count)
	require.InDelta(t, 3, s.Mean, 1e-12)
	require.InDelta(t, math.Sqrt2, s.StdDev, 1e-12)
	require.Equal(t, 1.0, s.Min)
	require.Equal(t, 5.0, s.Max)
	require.InDelta(t, 3, s.Median, 1e-12)
	// Hyndman-Fan definition 8
	require.InDelta(t, 5.0/3, s.Q25, 1e-12)
	require.InDelta(t, 13.0/3, s.Q75, 1e-12)
	require.InDelta(t, 8.0/3, s.IQR(), 1e-12)
	require.Equal(t, 4.0, s.Range())
}

func TestDescribe_SingleValue(t *testing.T) {
	s, err := Describe([]float64{7})
	require.NoError(t, err)

	require.Equal(t, Summary{Count: 1, Mean: 7, StdDev: 0, Min: 7, Q25: 7, Median: 7, Q75: 7, Max: 7}, s)
	require.Zero(t, s.IQR())
	require.Zero(t, s.Range())
}

func TestDescribe_OrderInvariants(t *testing.T) {
	s, err := Describe([]float64{9.5, -3, 14, 2.25, 2.25, 100, -41, 0})
	require.NoError(t, err)

	require.LessOrEqual(t, s.Min, s.Q25)
	require.LessOrEqual(t, s.Q25, s.Median)
	require.LessOrEqual(t, s.Median, s.Q75)
	require.LessOrEqual(t, s.Q75, s.Max)
	require.GreaterOrEqual(t, s.Mean, s.Min)
	require.LessOrEqual(t, s.Mean, s.Max)
	require.Contains(t, s.String(), "N: 8")
}

func TestDescribe_DoesNotSortInput(t *testing.T) {
	data := []float64{3, 1, 2}
	_, err := Describe(data)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 1, 2}, data)
}

func TestDescribe_InvalidInput(t *testing.T) {
	_, err := Describe(nil)
	require.ErrorIs(t, err, errs.ErrEmptySample)

	_, err = Describe([]float64{1, math.Inf(-1)})
	require.ErrorIs(t, err, errs.ErrNonFiniteValue)
}

func TestDescribe_ExtremeMagnitudes(t *testing.T) {
	s, err := Describe([]float64{1e308, -1e308})
	require.NoError(t, err)
	require.Zero(t, s.Mean)
	require.InEpsilon(t, 1e308, s.StdDev, 1e-12)
	require.Equal(t, -1e308, s.Min)
	require.Equal(t, 1e308, s.Max)
	require.Zero(t, s.Median)
	require.LessOrEqual(t, s.Min, s.Q25)
	require.LessOrEqual(t, s.Q75, s.Max)
	require.False(t, math.IsInf(s.Q25, 0) || math.IsInf(s.Q75, 0))

	s, err = Describe([]float64{1e-200, 2e-200, 3e-200})
	require.NoError(t, err)
	require.InEpsilon(t, 2e-200, s.Mean, 1e-12)
	require.InEpsilon(t, 2e-200, s.Median, 1e-12)
	require.InEpsilon(t, math.Sqrt(2.0/3)*1e-200, s.StdDev, 1e-12)
}
