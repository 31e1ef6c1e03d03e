package regression

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arloliu/numsum/errs"
	"github.com/arloliu/numsum/internal/options"
)

// Analyze fits every candidate model to (x, y) and ranks them by R².
//
// The paired sample is validated once up front; the errors of Linear are
// returned unchanged. A candidate whose fit fails (out of domain, singular,
// too few points, constant transformed x) or whose R² is below the configured
// minimum is recorded in Result.Skipped instead of failing the analysis.
// Ties in R² keep the candidate order.
//
// Returns errs.ErrNoModel when no candidate survives.
//
// Example:
//
//	result, err := regression.Analyze(x, y, regression.WithMinRSquared(0.9))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	y := result.BestFit.Estimator.Estimate(100.0)
func Analyze(x, y []float64, opts ...AnalyzeOption) (*Result, error) {
	cfg := defaultAnalyzeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	if err := validatePair(x, y, 2); err != nil {
		return nil, err
	}

	result := &Result{
		AllModels: make([]*Model, 0, len(cfg.Models)),
	}

	for _, mt := range cfg.Models {
		model, err := Fit(x, y, mt)
		if err != nil {
			result.Skipped = append(result.Skipped, SkippedModel{Type: mt, Reason: err})
			continue
		}
		if model.RSquared < cfg.MinRSquared {
			result.Skipped = append(result.Skipped, SkippedModel{
				Type:   mt,
				Reason: fmt.Errorf("R² %.4f below minimum %.4f", model.RSquared, cfg.MinRSquared),
			})

			continue
		}
		result.AllModels = append(result.AllModels, model)
	}

	if len(result.AllModels) == 0 {
		return nil, fmt.Errorf("%w: %d candidates skipped", errs.ErrNoModel, len(result.Skipped))
	}

	// Sort models by R² (best first)
	slices.SortStableFunc(result.AllModels, func(a, b *Model) int {
		return cmp.Compare(b.RSquared, a.RSquared)
	})
	result.BestFit = result.AllModels[0]

	return result, nil
}
