package stats

import (
	"fmt"

	mstats "github.com/aclements/go-moremath/stats"

	"github.com/arloliu/numsum/errs"
	"github.com/arloliu/numsum/internal/pool"
	"github.com/arloliu/numsum/internal/scale"
)

// Summary holds the descriptive statistics of a sample.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64 // population standard deviation
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// IQR returns the interquartile range Q75 - Q25. It is +Inf when the range
// exceeds float64.
func (s Summary) IQR() float64 {
	return s.Q75 - s.Q25
}

// Range returns Max - Min. It is +Inf when the range exceeds float64.
func (s Summary) Range() float64 {
	return s.Max - s.Min
}

// String returns a one-line summary.
func (s Summary) String() string {
	return fmt.Sprintf("Summary{N: %d, Mean: %.6g, StdDev: %.6g, Min: %.6g, Q25: %.6g, Median: %.6g, Q75: %.6g, Max: %.6g}",
		s.Count, s.Mean, s.StdDev, s.Min, s.Q25, s.Median, s.Q75, s.Max)
}

// Describe computes the Summary of data.
//
// Quartiles use Hyndman-Fan type 8 interpolation, not the linear (type 7)
// default of many spreadsheet tools.
//
// Parameters:
//   - data: sample values, must be non-empty and finite
//
// Returns:
//   - Summary: count, mean, population standard deviation, bounds and quartiles
//   - error: errs.ErrEmptySample for an empty sample, errs.ErrNonFiniteValue
//     when data contains NaN or ±Inf, errs.ErrNumericOverflow when a
//     statistic is not representable
func Describe(data []float64) (Summary, error) {
	if err := validateSample(data); err != nil {
		return Summary{}, err
	}

	return describe(data)
}

// describe assumes data is non-empty and finite.
func describe(data []float64) (Summary, error) {
	mean, std, err := meanStd(data)
	if err != nil {
		return Summary{}, err
	}

	exp := scale.Exponent(data)
	scratch, release := pool.GetFloat64Slice(len(data))
	defer release()
	sorted := sortedSample(data, scratch, exp)
	lo, hi := mstats.Bounds(data)

	s := Summary{
		Count:  len(data),
		Mean:   mean,
		StdDev: std,
		Min:    lo,
		Q25:    scale.Up(sorted.Quantile(0.25), exp),
		Median: scale.Up(sorted.Quantile(0.5), exp),
		Q75:    scale.Up(sorted.Quantile(0.75), exp),
		Max:    hi,
	}
	if !scale.IsFinite(s.Q25, s.Median, s.Q75) {
		return Summary{}, fmt.Errorf("%w: quartiles", errs.ErrNumericOverflow)
	}

	return s, nil
}

// sortedSample sorts data / 2^exp in scratch, which must hold len(data) values.
func sortedSample(data, scratch []float64, exp int) *mstats.Sample {
	s := mstats.Sample{Xs: scratch[:len(data)]}
	for i, x := range data {
		s.Xs[i] = scale.Down(x, exp)
	}

	return s.Sort()
}
