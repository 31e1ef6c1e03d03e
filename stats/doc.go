// Package stats computes descriptive statistics over in-memory float64 samples.
//
// All functions treat their input as read-only and return freshly allocated
// results. Invalid input is reported through the sentinels in package errs,
// each of which wraps errs.ErrInvalidInput:
//
//   - an empty sample fails with errs.ErrEmptySample
//   - NaN or ±Inf anywhere in the sample fails with errs.ErrNonFiniteValue
//   - z-score normalization of a constant sample fails with errs.ErrZeroVariance
//   - min-max normalization of a constant sample fails with errs.ErrZeroRange
//
// Standard deviation always uses the population divisor N.
//
// # Functions
//
//	mean, std, err := stats.MeanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
//	// mean = 5, std = 2
//
//	scaled, err := stats.Normalize([]float64{1, 2, 3}, stats.MethodMinMax)
//	// scaled = [0 0.5 1]
//
//	summary, err := stats.Describe(values)
//	flags, err := stats.DetectOutliers(values, stats.OutlierIQR, stats.DefaultIQRThreshold)
//
// # Analyzer
//
// Analyzer binds a named copy of a sample to an outlier policy, so repeated
// queries do not need to re-validate or re-pass configuration:
//
//	a, err := stats.NewAnalyzer(values,
//	    stats.WithName("latency_ms"),
//	    stats.WithOutlierMethod(stats.OutlierZScore),
//	)
//	summary := a.Summary()
//	outliers, err := a.OutlierValues()
//
// Quantiles (median, quartiles, IQR) use Hyndman-Fan definition 8 as
// implemented by github.com/aclements/go-moremath/stats.
package stats
