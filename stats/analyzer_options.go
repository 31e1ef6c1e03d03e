package stats

import (
	"fmt"
	"strings"

	"github.com/arloliu/numsum/errs"
	"github.com/arloliu/numsum/internal/options"
)

// DefaultAnalyzerName is the name of an Analyzer created without WithName.
const DefaultAnalyzerName = "dataset"

// AnalyzerConfig holds the configuration of an Analyzer.
type AnalyzerConfig struct {
	Name             string
	OutlierMethod    OutlierMethod
	OutlierThreshold float64

	thresholdSet bool
}

func defaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		Name:          DefaultAnalyzerName,
		OutlierMethod: OutlierIQR,
	}
}

// AnalyzerOption is a functional option for AnalyzerConfig.
type AnalyzerOption = options.Option[*AnalyzerConfig]

// WithName sets the sample name. The name must not be blank.
func WithName(name string) AnalyzerOption {
	return options.New(func(cfg *AnalyzerConfig) error {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: name must not be empty", errs.ErrInvalidName)
		}
		cfg.Name = name

		return nil
	})
}

// WithOutlierMethod sets the outlier detection method. Defaults to OutlierIQR.
func WithOutlierMethod(method OutlierMethod) AnalyzerOption {
	return options.New(func(cfg *AnalyzerConfig) error {
		if method != OutlierIQR && method != OutlierZScore {
			return fmt.Errorf("%w: %s", errs.ErrUnknownMethod, method)
		}
		cfg.OutlierMethod = method

		return nil
	})
}

// WithOutlierThreshold sets the outlier threshold. When not set, the method's
// DefaultThreshold is used.
func WithOutlierThreshold(threshold float64) AnalyzerOption {
	return options.New(func(cfg *AnalyzerConfig) error {
		if err := validateThreshold(threshold); err != nil {
			return err
		}
		cfg.OutlierThreshold = threshold
		cfg.thresholdSet = true

		return nil
	})
}

// threshold returns the effective outlier threshold.
func (c *AnalyzerConfig) threshold() float64 {
	if c.thresholdSet {
		return c.OutlierThreshold
	}

	return c.OutlierMethod.DefaultThreshold()
}
