package stats

import (
	"fmt"
	"slices"

	"github.com/arloliu/numsum/internal/hash"
	"github.com/arloliu/numsum/internal/options"
)

// Analyzer holds a validated, named copy of a sample and answers statistical
// queries about it.
//
// The sample is copied on construction and never exposed, so an Analyzer is
// immutable and safe for concurrent use.
type Analyzer struct {
	cfg     AnalyzerConfig
	id      uint64
	data    []float64
	summary Summary
}

// NewAnalyzer validates data, copies it and computes its summary.
//
// Parameters:
//   - data: sample values, must be non-empty and finite; the analyzer keeps a copy
//   - opts: analyzer options such as WithName or WithOutlierMethod
//
// Returns:
//   - *Analyzer: analyzer over the copied sample
//   - error: the option's error for an invalid option; errs.ErrEmptySample,
//     errs.ErrNonFiniteValue or errs.ErrNumericOverflow, prefixed with the
//     sample name, for a sample that cannot be summarized
func NewAnalyzer(data []float64, opts ...AnalyzerOption) (*Analyzer, error) {
	cfg := defaultAnalyzerConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}
	if err := validateSample(data); err != nil {
		return nil, fmt.Errorf("sample %q: %w", cfg.Name, err)
	}

	cfg.OutlierThreshold = cfg.threshold()
	cloned := slices.Clone(data)
	summary, err := describe(cloned)
	if err != nil {
		return nil, fmt.Errorf("sample %q: %w", cfg.Name, err)
	}

	return &Analyzer{
		cfg:     cfg,
		id:      hash.ID(cfg.Name),
		data:    cloned,
		summary: summary,
	}, nil
}

// Name returns the sample name.
func (a *Analyzer) Name() string {
	return a.cfg.Name
}

// ID returns the xxHash64 of the sample name.
func (a *Analyzer) ID() uint64 {
	return a.id
}

// Len returns the number of values.
func (a *Analyzer) Len() int {
	return len(a.data)
}

// Values returns a copy of the sample.
func (a *Analyzer) Values() []float64 {
	return slices.Clone(a.data)
}

// Config returns the effective configuration.
func (a *Analyzer) Config() AnalyzerConfig {
	return a.cfg
}

// MeanStd returns the mean and population standard deviation.
func (a *Analyzer) MeanStd() (mean, std float64) {
	return a.summary.Mean, a.summary.StdDev
}

// Summary returns the descriptive statistics computed at construction.
func (a *Analyzer) Summary() Summary {
	return a.summary
}

// Normalize returns the sample rescaled with method.
func (a *Analyzer) Normalize(method Method) ([]float64, error) {
	out, err := Normalize(a.data, method)
	if err != nil {
		return nil, fmt.Errorf("sample %q: %w", a.cfg.Name, err)
	}

	return out, nil
}

// Outliers returns the outlier mask under the configured method and threshold.
func (a *Analyzer) Outliers() ([]bool, error) {
	mask, err := detectOutliers(a.data, a.cfg.OutlierMethod, a.cfg.OutlierThreshold)
	if err != nil {
		return nil, fmt.Errorf("sample %q: %w", a.cfg.Name, err)
	}

	return mask, nil
}

// OutlierValues returns the flagged values in sample order.
func (a *Analyzer) OutlierValues() ([]float64, error) {
	mask, err := a.Outliers()
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0)
	for i, flagged := range mask {
		if flagged {
			out = append(out, a.data[i])
		}
	}

	return out, nil
}
