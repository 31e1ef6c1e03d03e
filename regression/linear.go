package regression

import "fmt"

// LinearFit is the result of an ordinary least-squares line fit y = Intercept + Slope*x.
type LinearFit struct {
	Slope     float64
	Intercept float64
	// RSquared is 1 - SS_res/SS_tot, or 0 when y is constant.
	RSquared float64
	RMSE     float64
	N        int
}

// Predict returns Intercept + Slope*x.
func (f LinearFit) Predict(x float64) float64 {
	return f.Intercept + f.Slope*x
}

// String returns the fitted line and its R².
func (f LinearFit) String() string {
	return fmt.Sprintf("y = %.6g + %.6g*x (R²=%.4f, RMSE=%.4g, N=%d)", f.Intercept, f.Slope, f.RSquared, f.RMSE, f.N)
}

// Linear fits y = a + b*x by ordinary least squares.
//
//	slope     = Σ(xᵢ-x̄)(yᵢ-ȳ) / Σ(xᵢ-x̄)²
//	intercept = ȳ - slope*x̄
//	R²        = 1 - SS_res/SS_tot (0 when SS_tot = 0)
//
// Sums are formed on power-of-two rescaled values, so large or tiny finite
// inputs fit as accurately as moderate ones.
//
// Parameters:
//   - x: independent values, finite
//   - y: dependent values, finite, same length as x
//
// Returns:
//   - LinearFit: slope, intercept, R², RMSE and point count
//   - error: errs.ErrLengthMismatch when len(x) != len(y), then
//     errs.ErrInsufficientData for fewer than 2 points, then
//     errs.ErrNonFiniteValue for NaN or ±Inf in x or y, then
//     errs.ErrZeroVariance when x has no spread; errs.ErrNumericOverflow when
//     a coefficient, prediction, R² or RMSE is not representable
func Linear(x, y []float64) (LinearFit, error) {
	if err := validatePair(x, y, 2); err != nil {
		return LinearFit{}, err
	}

	a, b, err := lineFit(x, y)
	if err != nil {
		return LinearFit{}, err
	}

	fit := LinearFit{Slope: b, Intercept: a, N: len(x)}
	fit.RSquared, fit.RMSE, err = goodnessOfFit(x, y, fit.Predict)
	if err != nil {
		return LinearFit{}, err
	}

	return fit, nil
}

// Estimator returns the fit as a linear Estimator.
func (f LinearFit) Estimator() Estimator {
	return NewLinearEstimator(f.Intercept, f.Slope)
}
