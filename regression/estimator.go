package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/numsum/errs"
)

// newEmptyEstimator creates an empty estimator for the given ModelType.
// This is used internally by NewEstimator to create estimators and validate coefficients.
func newEmptyEstimator(modelType ModelType) Estimator {
	switch modelType {
	case ModelTypeLinear:
		return NewLinearEstimator(0, 0)
	case ModelTypeHyperbolic:
		return NewHyperbolicEstimator(0, 0)
	case ModelTypeLogarithmic:
		return NewLogarithmicEstimator(0, 0)
	case ModelTypePower:
		return NewPowerEstimator(0, 0)
	case ModelTypeExponential:
		return NewExponentialEstimator(0, 0)
	case ModelTypePolynomial:
		return NewPolynomialEstimator(0, 0, 0)
	default:
		return nil
	}
}

// Estimator predicts y for a given x under a fitted model.
type Estimator interface {
	// Estimate returns the predicted y for x, or NaN when x is outside the model's domain.
	Estimate(x float64) float64
	// Type returns the model type.
	Type() ModelType
	// Coefficients returns the model coefficients.
	// The returned slice is owned by the estimator and is overwritten by the next call.
	Coefficients() []float64
	// SetCoefficients updates the coefficients of the model.
	// The number of coefficients must match the model's expected count:
	// - 2 coefficients: linear, hyperbolic, logarithmic, power, exponential
	// - 3 coefficients: polynomial (quadratic)
	SetCoefficients(coeffs []float64) error
}

func coefficientsError(modelType ModelType, want, got int) error {
	return fmt.Errorf("%w: %s model expects exactly %d coefficients, got %d",
		errs.ErrCoefficientsCount, modelType, want, got)
}

// LinearEstimator implements the linear model: y = a + b*x
type LinearEstimator struct {
	a, b   float64
	coeffs []float64 // Cached coefficient slice to avoid allocations
}

// NewLinearEstimator creates a new linear estimator with intercept a and slope b.
func NewLinearEstimator(a, b float64) *LinearEstimator {
	return &LinearEstimator{a: a, b: b, coeffs: make([]float64, 2)}
}

// Estimate calculates y = a + b*x.
func (l *LinearEstimator) Estimate(x float64) float64 {
	return l.a + l.b*x
}

// Type returns the model type.
func (l *LinearEstimator) Type() ModelType {
	return ModelTypeLinear
}

// Coefficients returns the model coefficients [a, b].
func (l *LinearEstimator) Coefficients() []float64 {
	l.coeffs[0] = l.a
	l.coeffs[1] = l.b

	return l.coeffs
}

// SetCoefficients expects exactly 2 coefficients: [a, b].
func (l *LinearEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return coefficientsError(ModelTypeLinear, 2, len(coeffs))
	}
	l.a = coeffs[0]
	l.b = coeffs[1]

	return nil
}

// HyperbolicEstimator implements the hyperbolic model: y = a + b / x
type HyperbolicEstimator struct {
	a, b   float64
	coeffs []float64 // Cached coefficient slice to avoid allocations
}

// NewHyperbolicEstimator creates a new hyperbolic estimator with the given coefficients.
func NewHyperbolicEstimator(a, b float64) *HyperbolicEstimator {
	return &HyperbolicEstimator{a: a, b: b, coeffs: make([]float64, 2)}
}

// Estimate calculates y = a + b / x. Returns NaN for x = 0.
func (h *HyperbolicEstimator) Estimate(x float64) float64 {
	if x == 0 {
		return math.NaN()
	}

	return h.a + h.b/x
}

// Type returns the model type.
func (h *HyperbolicEstimator) Type() ModelType {
	return ModelTypeHyperbolic
}

// Coefficients returns the model coefficients [a, b].
func (h *HyperbolicEstimator) Coefficients() []float64 {
	h.coeffs[0] = h.a
	h.coeffs[1] = h.b

	return h.coeffs
}

// SetCoefficients expects exactly 2 coefficients: [a, b].
func (h *HyperbolicEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return coefficientsError(ModelTypeHyperbolic, 2, len(coeffs))
	}
	h.a = coeffs[0]
	h.b = coeffs[1]

	return nil
}

// LogarithmicEstimator implements the logarithmic model: y = a + b * ln(x)
type LogarithmicEstimator struct {
	a, b   float64
	coeffs []float64 // Cached coefficient slice to avoid allocations
}

// NewLogarithmicEstimator creates a new logarithmic estimator with the given coefficients.
func NewLogarithmicEstimator(a, b float64) *LogarithmicEstimator {
	return &LogarithmicEstimator{a: a, b: b, coeffs: make([]float64, 2)}
}

// Estimate calculates y = a + b * ln(x). Returns NaN for x <= 0.
func (l *LogarithmicEstimator) Estimate(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}

	return l.a + l.b*math.Log(x)
}

// Type returns the model type.
func (l *LogarithmicEstimator) Type() ModelType {
	return ModelTypeLogarithmic
}

// Coefficients returns the model coefficients [a, b].
func (l *LogarithmicEstimator) Coefficients() []float64 {
	l.coeffs[0] = l.a
	l.coeffs[1] = l.b

	return l.coeffs
}

// SetCoefficients expects exactly 2 coefficients: [a, b].
func (l *LogarithmicEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return coefficientsError(ModelTypeLogarithmic, 2, len(coeffs))
	}
	l.a = coeffs[0]
	l.b = coeffs[1]

	return nil
}

// PowerEstimator implements the power model: y = a * x^b
type PowerEstimator struct {
	a, b   float64
	coeffs []float64 // Cached coefficient slice to avoid allocations
}

// NewPowerEstimator creates a new power estimator with the given coefficients.
func NewPowerEstimator(a, b float64) *PowerEstimator {
	return &PowerEstimator{a: a, b: b, coeffs: make([]float64, 2)}
}

// Estimate calculates y = a * x^b. Returns NaN for x <= 0.
func (p *PowerEstimator) Estimate(x float64) float64 {
	if x <= 0 {
		return math.NaN()
	}

	return p.a * math.Pow(x, p.b)
}

// Type returns the model type.
func (p *PowerEstimator) Type() ModelType {
	return ModelTypePower
}

// Coefficients returns the model coefficients [a, b].
func (p *PowerEstimator) Coefficients() []float64 {
	p.coeffs[0] = p.a
	p.coeffs[1] = p.b

	return p.coeffs
}

// SetCoefficients expects exactly 2 coefficients: [a, b].
func (p *PowerEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return coefficientsError(ModelTypePower, 2, len(coeffs))
	}
	p.a = coeffs[0]
	p.b = coeffs[1]

	return nil
}

// ExponentialEstimator implements the exponential model: y = a * e^(b * x)
type ExponentialEstimator struct {
	a, b   float64
	coeffs []float64 // Cached coefficient slice to avoid allocations
}

// NewExponentialEstimator creates a new exponential estimator with the given coefficients.
func NewExponentialEstimator(a, b float64) *ExponentialEstimator {
	return &ExponentialEstimator{a: a, b: b, coeffs: make([]float64, 2)}
}

// Estimate calculates y = a * e^(b * x).
func (e *ExponentialEstimator) Estimate(x float64) float64 {
	return e.a * math.Exp(e.b*x)
}

// Type returns the model type.
func (e *ExponentialEstimator) Type() ModelType {
	return ModelTypeExponential
}

// Coefficients returns the model coefficients [a, b].
func (e *ExponentialEstimator) Coefficients() []float64 {
	e.coeffs[0] = e.a
	e.coeffs[1] = e.b

	return e.coeffs
}

// SetCoefficients expects exactly 2 coefficients: [a, b].
func (e *ExponentialEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 2 {
		return coefficientsError(ModelTypeExponential, 2, len(coeffs))
	}
	e.a = coeffs[0]
	e.b = coeffs[1]

	return nil
}

// PolynomialEstimator implements the quadratic model: y = a + b*x + c*x²
type PolynomialEstimator struct {
	a, b, c float64
	coeffs  []float64 // Cached coefficient slice to avoid allocations
}

// NewPolynomialEstimator creates a new polynomial estimator with the given coefficients.
func NewPolynomialEstimator(a, b, c float64) *PolynomialEstimator {
	return &PolynomialEstimator{a: a, b: b, c: c, coeffs: make([]float64, 3)}
}

// Estimate calculates y = a + b*x + c*x² using Horner's scheme.
func (p *PolynomialEstimator) Estimate(x float64) float64 {
	return p.a + x*(p.b+x*p.c)
}

// Type returns the model type.
func (p *PolynomialEstimator) Type() ModelType {
	return ModelTypePolynomial
}

// Coefficients returns the model coefficients [a, b, c].
func (p *PolynomialEstimator) Coefficients() []float64 {
	p.coeffs[0] = p.a
	p.coeffs[1] = p.b
	p.coeffs[2] = p.c

	return p.coeffs
}

// SetCoefficients expects exactly 3 coefficients: [a, b, c].
func (p *PolynomialEstimator) SetCoefficients(coeffs []float64) error {
	if len(coeffs) != 3 {
		return coefficientsError(ModelTypePolynomial, 3, len(coeffs))
	}
	p.a = coeffs[0]
	p.b = coeffs[1]
	p.c = coeffs[2]

	return nil
}

// NewEstimator creates an estimator of the given type with coefficients.
//
// Parameters:
//   - modelType: The model type
//   - coeffs: The model coefficients. 3 for polynomial, 2 for every other model
//
// Returns errs.ErrInvalidModelType for an unknown model type and
// errs.ErrCoefficientsCount for a wrong number of coefficients.
//
// Example:
//
//	estimator, err := regression.NewEstimator(regression.ModelTypeHyperbolic, []float64{10.0, 5.0})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := estimator.Estimate(100.0)
func NewEstimator(modelType ModelType, coeffs []float64) (Estimator, error) {
	estimator := newEmptyEstimator(modelType)
	if estimator == nil {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidModelType, int(modelType))
	}

	if err := estimator.SetCoefficients(coeffs); err != nil {
		return nil, err
	}

	return estimator, nil
}
