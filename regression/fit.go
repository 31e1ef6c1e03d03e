package regression

import (
	"fmt"
	"math"

	mstats "github.com/aclements/go-moremath/stats"

	"github.com/arloliu/numsum/errs"
)

// Fit fits a single model to the paired sample (x, y).
//
// Non-linear models are fitted by least squares on transformed coordinates:
//   - Hyperbolic: y against 1/x (requires x != 0)
//   - Logarithmic: y against ln(x) (requires x > 0)
//   - Power: ln(y) against ln(x) (requires x > 0 and y > 0)
//   - Exponential: ln(y) against x (requires y > 0)
//   - Polynomial: normal equations of the quadratic (requires 3 distinct x values)
//
// R² and RMSE are always measured in the original (x, y) space.
//
// Besides the input errors of Linear, Fit returns errs.ErrInvalidModelType,
// errs.ErrOutOfDomain when the data violates the model's domain,
// errs.ErrNumericOverflow when a coefficient or fitted value is not
// representable, and errs.ErrSingularSystem for a degenerate polynomial fit.
func Fit(x, y []float64, modelType ModelType) (*Model, error) {
	if !modelType.Valid() {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidModelType, int(modelType))
	}

	minPoints := 2
	if modelType == ModelTypePolynomial {
		minPoints = 3
	}
	if err := validatePair(x, y, minPoints); err != nil {
		return nil, err
	}

	model, err := fitModel(x, y, modelType)
	if err != nil {
		return nil, fmt.Errorf("%s model: %w", modelType, err)
	}

	return model, nil
}

// fitModel assumes x and y passed validatePair.
func fitModel(x, y []float64, modelType ModelType) (*Model, error) {
	switch modelType {
	case ModelTypeLinear:
		return fitLinear(x, y)
	case ModelTypeHyperbolic:
		return fitHyperbolic(x, y)
	case ModelTypeLogarithmic:
		return fitLogarithmic(x, y)
	case ModelTypePower:
		return fitPower(x, y)
	case ModelTypeExponential:
		return fitExponential(x, y)
	case ModelTypePolynomial:
		return fitPolynomial(x, y)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidModelType, int(modelType))
	}
}

// fitLinear fits y = a + b*x.
func fitLinear(x, y []float64) (*Model, error) {
	a, b, err := lineFit(x, y)
	if err != nil {
		return nil, err
	}

	return newModel(x, y, ModelTypeLinear, fmt.Sprintf("y = %.4g + %.4g*x", a, b), a, b)
}

// fitHyperbolic fits y = a + b/x as a line in (1/x, y).
func fitHyperbolic(x, y []float64) (*Model, error) {
	for _, v := range x {
		if v == 0 {
			return nil, fmt.Errorf("%w: x must be non-zero", errs.ErrOutOfDomain)
		}
	}

	a, b, err := lineFit(transform(x, func(v float64) float64 { return 1 / v }), y)
	if err != nil {
		return nil, err
	}

	return newModel(x, y, ModelTypeHyperbolic, fmt.Sprintf("y = %.4g + %.4g / x", a, b), a, b)
}

// fitLogarithmic fits y = a + b*ln(x) as a line in (ln x, y).
func fitLogarithmic(x, y []float64) (*Model, error) {
	if err := requirePositive(x, "x"); err != nil {
		return nil, err
	}

	a, b, err := lineFit(transform(x, math.Log), y)
	if err != nil {
		return nil, err
	}

	return newModel(x, y, ModelTypeLogarithmic, fmt.Sprintf("y = %.4g + %.4g * ln(x)", a, b), a, b)
}

// fitPower fits y = a*x^b as a line in (ln x, ln y).
func fitPower(x, y []float64) (*Model, error) {
	if err := requirePositive(x, "x"); err != nil {
		return nil, err
	}
	if err := requirePositive(y, "y"); err != nil {
		return nil, err
	}

	logA, b, err := lineFit(transform(x, math.Log), transform(y, math.Log))
	if err != nil {
		return nil, err
	}
	a := math.Exp(logA)

	return newModel(x, y, ModelTypePower, fmt.Sprintf("y = %.4g * x^%.4g", a, b), a, b)
}

// fitExponential fits y = a*e^(b*x) as a line in (x, ln y).
func fitExponential(x, y []float64) (*Model, error) {
	if err := requirePositive(y, "y"); err != nil {
		return nil, err
	}

	logA, b, err := lineFit(x, transform(y, math.Log))
	if err != nil {
		return nil, err
	}
	a := math.Exp(logA)

	return newModel(x, y, ModelTypeExponential, fmt.Sprintf("y = %.4g * e^(%.4g * x)", a, b), a, b)
}

// fitPolynomial fits y = a + b*x + c*x² through the normal equations.
//
// x is centered on its mean before building the system, which keeps the
// power sums well conditioned, and the coefficients are shifted back afterwards.
//
//	[n    Σu   Σu²] [a']   [Σy  ]
//	[Σu   Σu²  Σu³] [b'] = [Σuy ]
//	[Σu²  Σu³  Σu⁴] [c']   [Σu²y]
func fitPolynomial(x, y []float64) (*Model, error) {
	if distinctAtLeast(x, 3) < 3 {
		return nil, fmt.Errorf("%w: quadratic fit needs at least 3 distinct x values", errs.ErrSingularSystem)
	}

	shift := mstats.Mean(x)
	var su, su2, su3, su4, sy, suy, su2y float64
	for i := range x {
		u := x[i] - shift
		u2 := u * u
		su += u
		su2 += u2
		su3 += u2 * u
		su4 += u2 * u2
		sy += y[i]
		suy += u * y[i]
		su2y += u2 * y[i]
	}
	n := float64(len(x))

	det := det3(n, su, su2, su, su2, su3, su2, su3, su4)
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return nil, errs.ErrSingularSystem
	}

	// Cramer's rule
	a0 := det3(sy, su, su2, suy, su2, su3, su2y, su3, su4) / det
	b0 := det3(n, sy, su2, su, suy, su3, su2, su2y, su4) / det
	c0 := det3(n, su, sy, su, su2, suy, su2, su3, su2y) / det

	// y = a0 + b0*(x-s) + c0*(x-s)²
	a := a0 - b0*shift + c0*shift*shift
	b := b0 - 2*c0*shift
	c := c0

	return newModel(x, y, ModelTypePolynomial, fmt.Sprintf("y = %.4g + %.4g*x + %.4g*x²", a, b, c), a, b, c)
}

// det3 returns the determinant of the row-major 3x3 matrix.
func det3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) float64 {
	return m00*(m11*m22-m12*m21) -
		m01*(m10*m22-m12*m20) +
		m02*(m10*m21-m11*m20)
}

// distinctAtLeast counts distinct values in values, stopping once limit is reached.
func distinctAtLeast(values []float64, limit int) int {
	seen := make([]float64, 0, limit)
	for _, v := range values {
		dup := false
		for _, s := range seen {
			if s == v {
				dup = true
				break
			}
		}
		if !dup {
			seen = append(seen, v)
			if len(seen) >= limit {
				break
			}
		}
	}

	return len(seen)
}

func requirePositive(values []float64, axis string) error {
	for _, v := range values {
		if v <= 0 {
			return fmt.Errorf("%w: %s must be positive", errs.ErrOutOfDomain, axis)
		}
	}

	return nil
}

// newModel builds the estimator for coeffs and scores it against (x, y).
func newModel(x, y []float64, modelType ModelType, formula string, coeffs ...float64) (*Model, error) {
	if !allFinite(coeffs) {
		return nil, fmt.Errorf("%w: model coefficients", errs.ErrNumericOverflow)
	}

	estimator, err := NewEstimator(modelType, coeffs)
	if err != nil {
		return nil, err
	}

	r2, rmse, err := goodnessOfFit(x, y, estimator.Estimate)
	if err != nil {
		return nil, err
	}

	return &Model{
		Type:         modelType,
		Coefficients: coeffs,
		RSquared:     r2,
		RMSE:         rmse,
		N:            len(x),
		Formula:      formula,
		Estimator:    estimator,
	}, nil
}
