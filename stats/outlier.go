package stats

import (
	"fmt"
	"math"
	"strings"

	"github.com/arloliu/numsum/errs"
	"github.com/arloliu/numsum/internal/pool"
	"github.com/arloliu/numsum/internal/scale"
)

// OutlierMethod selects the outlier detection rule.
type OutlierMethod uint8

const (
	// OutlierIQR flags values outside [Q25 - t*IQR, Q75 + t*IQR] (Tukey fences).
	OutlierIQR OutlierMethod = iota + 1
	// OutlierZScore flags values whose absolute z-score exceeds t.
	OutlierZScore
)

// Default thresholds for each outlier method.
const (
	DefaultIQRThreshold    = 1.5
	DefaultZScoreThreshold = 3.0
)

// String returns the method name accepted by ParseOutlierMethod.
func (m OutlierMethod) String() string {
	switch m {
	case OutlierIQR:
		return "iqr"
	case OutlierZScore:
		return "zscore"
	default:
		return fmt.Sprintf("OutlierMethod(%d)", uint8(m))
	}
}

// DefaultThreshold returns the conventional threshold for m, or 0 for an unknown method.
func (m OutlierMethod) DefaultThreshold() float64 {
	switch m {
	case OutlierIQR:
		return DefaultIQRThreshold
	case OutlierZScore:
		return DefaultZScoreThreshold
	default:
		return 0
	}
}

// ParseOutlierMethod parses a case-insensitive outlier method name ("iqr" or "zscore").
func ParseOutlierMethod(name string) (OutlierMethod, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "iqr":
		return OutlierIQR, nil
	case "zscore":
		return OutlierZScore, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownMethod, name)
	}
}

// DetectOutliers returns a mask of the same length as data where true marks an outlier.
//
// OutlierIQR flags nothing on a constant sample.
//
// Parameters:
//   - data: sample values, must be non-empty and finite
//   - method: OutlierIQR or OutlierZScore
//   - threshold: fence multiplier (IQR) or z-score limit, finite and positive
//
// Returns:
//   - []bool: outlier mask, one entry per input value
//   - error: errs.ErrUnknownMethod, errs.ErrInvalidThreshold,
//     errs.ErrEmptySample or errs.ErrNonFiniteValue for invalid arguments;
//     errs.ErrZeroVariance when OutlierZScore meets a constant sample
func DetectOutliers(data []float64, method OutlierMethod, threshold float64) ([]bool, error) {
	if method != OutlierIQR && method != OutlierZScore {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownMethod, method)
	}
	if err := validateThreshold(threshold); err != nil {
		return nil, err
	}
	if err := validateSample(data); err != nil {
		return nil, err
	}

	return detectOutliers(data, method, threshold)
}

func validateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold <= 0 {
		return fmt.Errorf("%w: %v", errs.ErrInvalidThreshold, threshold)
	}

	return nil
}

// detectOutliers assumes data is non-empty and finite.
func detectOutliers(data []float64, method OutlierMethod, threshold float64) ([]bool, error) {
	mask := make([]bool, len(data))

	if method == OutlierZScore {
		m := scaledMomentsOf(data)
		if m.std == 0 {
			return nil, errs.ErrZeroVariance
		}
		for i, x := range data {
			mask[i] = math.Abs(m.zscore(x)) > threshold
		}

		return mask, nil
	}

	exp := scale.Exponent(data)
	scratch, release := pool.GetFloat64Slice(len(data))
	defer release()
	sorted := sortedSample(data, scratch, exp)
	q1, q3 := sorted.Quantile(0.25), sorted.Quantile(0.75)
	iqr := q3 - q1
	// fences are compared in scaled units; an infinite fence excludes nothing
	lower, upper := q1-threshold*iqr, q3+threshold*iqr
	for i, x := range data {
		v := scale.Down(x, exp)
		mask[i] = v < lower || v > upper
	}

	return mask, nil
}
