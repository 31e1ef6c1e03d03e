package regression

import (
	"fmt"
	"math"

	"github.com/arloliu/numsum/errs"
	"github.com/arloliu/numsum/internal/options"
)

// AnalyzeConfig holds configuration for Analyze.
type AnalyzeConfig struct {
	// Models lists the candidate model types, tried in order.
	Models []ModelType
	// MinRSquared drops models whose R² is below it. Zero keeps every fitted model.
	MinRSquared float64
}

// defaultAnalyzeConfig returns default config (all models, no R² floor).
func defaultAnalyzeConfig() AnalyzeConfig {
	return AnalyzeConfig{
		Models:      AllModelTypes,
		MinRSquared: 0,
	}
}

// AnalyzeOption is a functional option for AnalyzeConfig.
type AnalyzeOption = options.Option[*AnalyzeConfig]

// WithModels restricts the candidate models. Duplicates are ignored.
func WithModels(models ...ModelType) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		if len(models) == 0 {
			return fmt.Errorf("%w: at least one model is required", errs.ErrInvalidModelType)
		}

		seen := make(map[ModelType]struct{}, len(models))
		selected := make([]ModelType, 0, len(models))
		for _, mt := range models {
			if !mt.Valid() {
				return fmt.Errorf("%w: %d", errs.ErrInvalidModelType, int(mt))
			}
			if _, dup := seen[mt]; dup {
				continue
			}
			seen[mt] = struct{}{}
			selected = append(selected, mt)
		}
		cfg.Models = selected

		return nil
	})
}

// WithMinRSquared drops fitted models whose R² is below minR2.
// minR2 must be in [0, 1].
func WithMinRSquared(minR2 float64) AnalyzeOption {
	return options.New(func(cfg *AnalyzeConfig) error {
		if math.IsNaN(minR2) || minR2 < 0 || minR2 > 1 {
			return fmt.Errorf("%w: minimum R² must be in [0, 1], got %v", errs.ErrInvalidThreshold, minR2)
		}
		cfg.MinRSquared = minR2

		return nil
	})
}
