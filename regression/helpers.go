package regression

import (
	"fmt"
	"math"
	"slices"

	mstats "github.com/aclements/go-moremath/stats"

	"github.com/arloliu/numsum/errs"
	"github.com/arloliu/numsum/internal/pool"
	"github.com/arloliu/numsum/internal/scale"
)

// validatePair checks a paired sample in a fixed order: length mismatch,
// then minimum size, then non-finite values.
func validatePair(x, y []float64, minPoints int) error {
	if len(x) != len(y) {
		return fmt.Errorf("%w: %d x values vs %d y values", errs.ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < minPoints {
		return fmt.Errorf("%w: need at least %d points, got %d", errs.ErrInsufficientData, minPoints, len(x))
	}
	if !allFinite(x) || !allFinite(y) {
		return errs.ErrNonFiniteValue
	}

	return nil
}

func allFinite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// lineFit returns the least-squares line y = a + b*x using centered sums.
//
// Both axes are rescaled by a power of two before the sums are formed, so
// extreme finite inputs neither overflow nor underflow. Returns
// errs.ErrZeroVariance when x has no spread and errs.ErrNumericOverflow when
// x or y is not finite or a coefficient is not representable.
func lineFit(x, y []float64) (a, b float64, err error) {
	if !allFinite(x) || !allFinite(y) {
		return 0, 0, fmt.Errorf("%w: transformed values overflow", errs.ErrNumericOverflow)
	}

	ex, ey := scale.Exponent(x), scale.Exponent(y)
	xs, releaseX := scaledCopy(x, ex)
	defer releaseX()
	ys, releaseY := scaledCopy(y, ey)
	defer releaseY()

	meanX := mstats.Mean(xs)
	meanY := mstats.Mean(ys)

	var sxx, sxy float64
	for i := range xs {
		dx := xs[i] - meanX
		sxx += dx * dx
		sxy += dx * (ys[i] - meanY)
	}

	if sxx == 0 {
		if slices.ContainsFunc(x, func(v float64) bool { return v != x[0] }) {
			return 0, 0, fmt.Errorf("%w: x spread too small to represent", errs.ErrZeroVariance)
		}

		return 0, 0, fmt.Errorf("%w: x values are all equal", errs.ErrZeroVariance)
	}

	bs := sxy / sxx
	as := meanY - bs*meanX
	a, b = scale.Up(as, ey), scale.Up(bs, ey-ex)
	if !scale.IsFinite(a, b) {
		return 0, 0, fmt.Errorf("%w: line coefficients", errs.ErrNumericOverflow)
	}

	return a, b, nil
}

// goodnessOfFit returns R² and RMSE of predict against observed y.
//
// R² = 1 - SS_res / SS_tot, reported as 0 when SS_tot is 0 (constant y).
// RMSE = √(SS_res / n). Sums are formed on power-of-two rescaled values.
// Returns errs.ErrNumericOverflow when a prediction, R² or RMSE is not finite.
func goodnessOfFit(x, y []float64, predict func(float64) float64) (r2, rmse float64, err error) {
	n := len(y)
	if n == 0 {
		return 0, 0, nil
	}

	predicted, release := pool.GetFloat64Slice(n)
	defer release()
	for i := range y {
		predicted[i] = predict(x[i])
	}
	if !allFinite(predicted) {
		return 0, 0, fmt.Errorf("%w: fitted values", errs.ErrNumericOverflow)
	}

	exp := scale.Exponent(y, predicted)
	ys, releaseY := scaledCopy(y, exp)
	defer releaseY()
	meanY := mstats.Mean(ys)

	ssTot := 0.0 // Total sum of squares
	ssRes := 0.0 // Residual sum of squares
	for i := range ys {
		dy := ys[i] - meanY
		ssTot += dy * dy
		residual := ys[i] - scale.Down(predicted[i], exp)
		ssRes += residual * residual
	}

	if ssTot == 0 {
		r2 = 0
	} else {
		r2 = 1.0 - ssRes/ssTot
	}
	rmse = scale.Up(math.Sqrt(ssRes/float64(n)), exp)

	if !scale.IsFinite(r2, rmse) {
		return 0, 0, fmt.Errorf("%w: goodness of fit", errs.ErrNumericOverflow)
	}

	return r2, rmse, nil
}

// scaledCopy returns values / 2^exp in a pooled slice and its release function.
func scaledCopy(values []float64, exp int) ([]float64, func()) {
	out, release := pool.GetFloat64Slice(len(values))
	for i, v := range values {
		out[i] = scale.Down(v, exp)
	}

	return out, release
}

// transform maps values through fn into a new slice.
func transform(values []float64, fn func(float64) float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = fn(v)
	}

	return out
}
