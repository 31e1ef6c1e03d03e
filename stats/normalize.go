package stats

import (
	"fmt"
	"math"
	"strings"

	mstats "github.com/aclements/go-moremath/stats"

	"github.com/arloliu/numsum/errs"
)

// Method selects a normalization scheme.
type Method uint8

const (
	// MethodZScore maps each value to (x - mean) / std.
	MethodZScore Method = iota + 1
	// MethodMinMax maps each value to (x - min) / (max - min).
	MethodMinMax
)

// String returns the method name accepted by ParseMethod.
func (m Method) String() string {
	switch m {
	case MethodZScore:
		return "zscore"
	case MethodMinMax:
		return "minmax"
	default:
		return fmt.Sprintf("Method(%d)", uint8(m))
	}
}

// ParseMethod parses a case-insensitive method name ("zscore" or "minmax").
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "zscore":
		return MethodZScore, nil
	case "minmax":
		return MethodMinMax, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrUnknownMethod, name)
	}
}

// Normalize rescales data with the given method and returns a new slice of the
// same length. data is not modified.
//
// Degenerate samples are rejected instead of being mapped to zeros.
// Both methods work on power-of-two rescaled values, so extreme finite inputs
// still normalize correctly.
//
// Parameters:
//   - data: sample values, must be non-empty and finite
//   - method: MethodZScore or MethodMinMax
//
// Returns:
//   - []float64: normalized values, one per input value
//   - error: errs.ErrUnknownMethod, errs.ErrEmptySample or
//     errs.ErrNonFiniteValue for invalid arguments; errs.ErrZeroVariance
//     when MethodZScore meets a zero standard deviation; errs.ErrZeroRange
//     when MethodMinMax meets max equal to min
func Normalize(data []float64, method Method) ([]float64, error) {
	if method != MethodZScore && method != MethodMinMax {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownMethod, method)
	}
	if err := validateSample(data); err != nil {
		return nil, err
	}

	if method == MethodZScore {
		return zscore(data)
	}

	return minmax(data)
}

func zscore(data []float64) ([]float64, error) {
	m := scaledMomentsOf(data)
	if m.std == 0 {
		return nil, errs.ErrZeroVariance
	}

	out := make([]float64, len(data))
	for i, x := range data {
		out[i] = m.zscore(x)
	}

	return out, nil
}

func minmax(data []float64) ([]float64, error) {
	lo, hi := mstats.Bounds(data)
	span := hi - lo
	if span == 0 {
		return nil, errs.ErrZeroRange
	}

	out := make([]float64, len(data))
	if math.IsInf(span, 0) {
		// range overflows float64; halving is exact for normal values
		half := hi/2 - lo/2
		for i, x := range data {
			out[i] = (x/2 - lo/2) / half
		}

		return out, nil
	}

	for i, x := range data {
		out[i] = (x - lo) / span
	}

	return out, nil
}
