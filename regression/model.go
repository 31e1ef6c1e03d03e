package regression

import (
	"fmt"
	"strings"
)

// ModelType represents the type of regression model.
type ModelType int

const (
	// ModelTypeUnknown is returned by ModelTypeFromString for unrecognized names.
	ModelTypeUnknown ModelType = -1
)

const (
	// ModelTypeLinear represents the linear model: y = a + b*x
	ModelTypeLinear ModelType = iota
	// ModelTypeHyperbolic represents the hyperbolic model: y = a + b / x
	ModelTypeHyperbolic
	// ModelTypeLogarithmic represents the logarithmic model: y = a + b * ln(x)
	ModelTypeLogarithmic
	// ModelTypePower represents the power model: y = a * x^b
	ModelTypePower
	// ModelTypeExponential represents the exponential model: y = a * e^(b * x)
	ModelTypeExponential
	// ModelTypePolynomial represents the quadratic model: y = a + b*x + c*x²
	ModelTypePolynomial
)

// AllModelTypes lists every supported model in the order Analyze tries them.
var AllModelTypes = []ModelType{
	ModelTypeLinear,
	ModelTypeHyperbolic,
	ModelTypeLogarithmic,
	ModelTypePower,
	ModelTypeExponential,
	ModelTypePolynomial,
}

// modelTypeNames maps ModelType to their string representations.
var modelTypeNames = map[ModelType]string{
	ModelTypeLinear:      "linear",
	ModelTypeHyperbolic:  "hyperbolic",
	ModelTypeLogarithmic: "logarithmic",
	ModelTypePower:       "power",
	ModelTypeExponential: "exponential",
	ModelTypePolynomial:  "polynomial",
}

// String returns the string representation of the model type.
func (mt ModelType) String() string {
	if name, exists := modelTypeNames[mt]; exists {
		return name
	}

	return "unknown"
}

// Valid reports whether mt is a supported model type.
func (mt ModelType) Valid() bool {
	_, ok := modelTypeNames[mt]
	return ok
}

// modelTypeFromString maps string names to ModelType.
var modelTypeFromString = map[string]ModelType{
	"linear":      ModelTypeLinear,
	"hyperbolic":  ModelTypeHyperbolic,
	"logarithmic": ModelTypeLogarithmic,
	"power":       ModelTypePower,
	"exponential": ModelTypeExponential,
	"polynomial":  ModelTypePolynomial,
}

// ModelTypeFromString returns the ModelType for a case-insensitive name.
// Returns ModelTypeUnknown for unknown names.
func ModelTypeFromString(name string) ModelType {
	if modelType, exists := modelTypeFromString[strings.ToLower(strings.TrimSpace(name))]; exists {
		return modelType
	}

	return ModelTypeUnknown
}

// Model is a fitted regression model.
//
// Fields:
//   - Type: The model family
//   - Coefficients: The fitted parameters, in the order of the formula
//   - RSquared: Coefficient of determination in the original (x, y) space
//   - RMSE: Root mean square error in the original (x, y) space
//   - N: Number of points the model was fitted on
//   - Formula: Human-readable formula
//   - Estimator: Concrete implementation for making predictions
type Model struct {
	// Type is the model type.
	Type ModelType
	// Coefficients contains the model coefficients.
	Coefficients []float64
	// RSquared is the coefficient of determination. It is 0 when y is constant.
	RSquared float64
	// RMSE is the root mean square error.
	RMSE float64
	// N is the number of fitted points.
	N int
	// Formula is a human-readable representation of the model.
	Formula string
	// Estimator is the concrete estimator implementation.
	Estimator Estimator
}

// String returns a string representation of the model.
func (m *Model) String() string {
	return fmt.Sprintf("Model{Type: %s, R²: %.4f, RMSE: %.4f, Formula: %s}",
		m.Type, m.RSquared, m.RMSE, m.Formula)
}

// SkippedModel records a candidate model Analyze could not use.
type SkippedModel struct {
	Type   ModelType
	Reason error
}

// Result represents the result of a regression analysis.
//
// Fields:
//   - BestFit: The model with the highest R² value
//   - AllModels: All accepted models ranked by R² (best first)
//   - Skipped: Candidates rejected for domain, conditioning or R² reasons
type Result struct {
	// BestFit is the best-fit model (highest R²).
	BestFit *Model
	// AllModels contains all accepted models ranked by R² (best first).
	AllModels []*Model
	// Skipped lists candidate models that were not fitted or were filtered out.
	Skipped []SkippedModel
}

// String returns a string representation of the result.
func (r *Result) String() string {
	if r.BestFit == nil {
		return "Result{BestFit: nil}"
	}

	return fmt.Sprintf("Result{BestFit: %s, TotalModels: %d, Skipped: %d}",
		r.BestFit, len(r.AllModels), len(r.Skipped))
}
