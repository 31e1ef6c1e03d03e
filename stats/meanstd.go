package stats

import (
	"fmt"
	"math"

	mstats "github.com/aclements/go-moremath/stats"

	"github.com/arloliu/numsum/errs"
	"github.com/arloliu/numsum/internal/pool"
	"github.com/arloliu/numsum/internal/scale"
)

// MeanStd returns the arithmetic mean and population standard deviation of data.
//
// The mean is accumulated as a running mean so a constant sample yields
// exactly that constant. The standard deviation uses divisor N, not N-1.
// Values are rescaled by a power of two before squaring, so large or tiny
// finite inputs neither overflow nor underflow.
//
// Parameters:
//   - data: sample values, must be non-empty and finite
//
// Returns:
//   - mean: arithmetic mean of data
//   - std: population standard deviation of data
//   - err: errs.ErrEmptySample for an empty sample, errs.ErrNonFiniteValue
//     when data contains NaN or ±Inf, errs.ErrNumericOverflow when a result
//     is not representable
func MeanStd(data []float64) (mean, std float64, err error) {
	if err := validateSample(data); err != nil {
		return 0, 0, err
	}

	return meanStd(data)
}

// meanStd assumes data is non-empty and finite.
func meanStd(data []float64) (mean, std float64, err error) {
	m := scaledMomentsOf(data)
	mean, std = scale.Up(m.mean, m.exp), scale.Up(m.std, m.exp)
	if !scale.IsFinite(mean, std) {
		return 0, 0, fmt.Errorf("%w: mean or standard deviation", errs.ErrNumericOverflow)
	}

	return mean, std, nil
}

// scaledMoments holds the mean and standard deviation of data / 2^exp.
type scaledMoments struct {
	exp  int
	mean float64
	std  float64
}

// zscore returns (x - mean) / std, computed in scaled units.
func (m scaledMoments) zscore(x float64) float64 {
	return (scale.Down(x, m.exp) - m.mean) / m.std
}

func scaledMomentsOf(data []float64) scaledMoments {
	exp := scale.Exponent(data)

	scaled, release := pool.GetFloat64Slice(len(data))
	defer release()
	for i, x := range data {
		scaled[i] = scale.Down(x, exp)
	}

	mean := mstats.Mean(scaled)

	var ss float64
	for _, x := range scaled {
		d := x - mean
		ss += d * d
	}

	return scaledMoments{exp: exp, mean: mean, std: math.Sqrt(ss / float64(len(scaled)))}
}

func validateSample(data []float64) error {
	if len(data) == 0 {
		return errs.ErrEmptySample
	}

	return checkFinite(data)
}

func checkFinite(data []float64) error {
	for _, x := range data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return errs.ErrNonFiniteValue
		}
	}

	return nil
}
