// Package regression fits least-squares models to paired float64 samples.
//
// # Ordinary Least Squares
//
// Linear fits a straight line and reports slope, intercept, R² and RMSE:
//
//	fit, err := regression.Linear([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
//	// fit.Slope = 2, fit.Intercept = 0, fit.RSquared = 1
//
// Inputs are validated in a fixed order: length mismatch, fewer than two
// points, NaN or ±Inf values, then zero variance in x. Every failure wraps
// errs.ErrInvalidInput. R² is reported as 0 when y is constant.
//
// # Model Types
//
// Fit fits a single model family; Analyze fits several and ranks them:
//
//   - **Linear**: y = a + b*x
//   - **Hyperbolic**: y = a + b / x (x != 0)
//   - **Logarithmic**: y = a + b * ln(x) (x > 0)
//   - **Power**: y = a * x^b (x > 0, y > 0)
//   - **Exponential**: y = a * e^(b * x) (y > 0)
//   - **Polynomial**: y = a + b*x + c*x² (at least 3 distinct x)
//
// Non-linear models are linearized (1/x, ln x, ln y) and solved in closed form.
// R² and RMSE are always measured in the original space, so they are
// comparable across model types.
//
// # Model Selection
//
//	result, err := regression.Analyze(x, y,
//	    regression.WithModels(regression.ModelTypeLinear, regression.ModelTypePower),
//	    regression.WithMinRSquared(0.8),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, model := range result.AllModels {
//	    fmt.Printf("%s: R²=%.4f, Formula=%s\n", model.Type, model.RSquared, model.Formula)
//	}
//	for _, skipped := range result.Skipped {
//	    fmt.Printf("skipped %s: %v\n", skipped.Type, skipped.Reason)
//	}
//
// Candidates outside their domain are skipped rather than failing the whole
// analysis; errs.ErrNoModel is returned only when nothing fits.
//
// # Estimators
//
// Every Model carries an Estimator for predictions. Estimators can also be
// built from stored coefficients, for example coefficients persisted from an
// earlier analysis:
//
//	estimator, err := regression.NewEstimator(regression.ModelTypePower, []float64{2.5, 0.5})
//	y := estimator.Estimate(16) // 10
package regression
