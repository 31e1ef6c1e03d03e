// Package numsum computes numeric summaries over in-memory float64 samples.
//
// numsum covers the small set of statistics most tools reach for first: mean and
// population standard deviation, ordinary least squares regression,
// normalization, descriptive summaries and outlier detection. It also provides
// a compact binary container, the sample blob, for moving a named sample
// between processes.
//
// # Core Features
//
//   - Mean and population standard deviation (divisor N)
//   - Ordinary least squares with R² and RMSE, plus multi-model curve fitting
//   - Z-score and min-max normalization
//   - Five-number summaries with R8 quantiles, IQR and z-score outliers
//   - Sample blobs with Raw or Gorilla values and optional Zstd, S2, LZ4 or Snappy compression
//   - xxHash64 sample IDs and checksums
//
// # Error Model
//
// Every rejected input wraps errs.ErrInvalidInput; the specific sentinel
// (errs.ErrEmptySample, errs.ErrZeroVariance, ...) identifies the condition.
// NaN and ±Inf inside a sample are rejected rather than propagated, and a
// result that does not fit in a float64 fails with errs.ErrNumericOverflow.
//
//	_, _, err := numsum.MeanStd(nil)
//	errors.Is(err, errs.ErrInvalidInput) // true
//	errors.Is(err, errs.ErrEmptySample)  // true
//
// # Basic Usage
//
//	mean, std, err := numsum.MeanStd([]float64{2, 4, 4, 4, 5, 5, 7, 9})
//	// mean = 5, std = 2
//
//	fit, err := numsum.LinearRegression([]float64{1, 2, 3, 4}, []float64{2, 4, 6, 8})
//	// fit.Slope = 2, fit.Intercept = 0, fit.RSquared = 1
//
//	scaled, err := numsum.Normalize([]float64{1, 2, 3}, stats.MethodMinMax)
//	// scaled = [0 0.5 1]
//
// Packing a sample and analyzing it on the other side:
//
//	data, err := numsum.EncodeSample("latency_ms", values,
//	    blob.WithValueEncoding(format.TypeGorilla),
//	    blob.WithCompression(format.CompressionZstd),
//	)
//
//	analyzer, err := numsum.AnalyzeBlob(data)
//	fmt.Println(analyzer.Name(), analyzer.Summary())
//
// # Package Structure
//
// This package provides top-level wrappers around the stats, regression and
// blob packages for the most common use cases. Use those packages directly for
// outlier detection, model selection and fine-grained blob control.
package numsum

import (
	"github.com/arloliu/numsum/blob"
	"github.com/arloliu/numsum/internal/hash"
	"github.com/arloliu/numsum/regression"
	"github.com/arloliu/numsum/stats"
)

// MeanStd returns the arithmetic mean and the population standard deviation of data.
//
// Parameters:
//   - data: Sample values; must be non-empty and finite
//
// Returns:
//   - mean: (1/N)·Σxᵢ
//   - std: sqrt((1/N)·Σ(xᵢ−mean)²)
//   - error: errs.ErrEmptySample or errs.ErrNonFiniteValue
//
// Example:
//
//	mean, std, err := numsum.MeanStd([]float64{1, 2, 3, 4, 5})
//	// mean = 3, std ≈ 1.41421
func MeanStd(data []float64) (mean, std float64, err error) {
	return stats.MeanStd(data)
}

// LinearRegression fits y = Slope·x + Intercept by ordinary least squares.
//
// R² is 1 − SS_res/SS_tot, and 0 when y is constant.
//
// Parameters:
//   - x: Independent values
//   - y: Dependent values, same length as x
//
// Returns:
//   - regression.LinearFit: Slope, intercept, R², RMSE and the point count
//   - error: errs.ErrLengthMismatch, errs.ErrInsufficientData (fewer than 2 points),
//     errs.ErrNonFiniteValue or errs.ErrZeroVariance (all x equal)
//
// Example:
//
//	fit, err := numsum.LinearRegression([]float64{1, 2, 3}, []float64{3, 5, 7})
//	// fit.Slope = 2, fit.Intercept = 1
func LinearRegression(x, y []float64) (regression.LinearFit, error) {
	return regression.Linear(x, y)
}

// Normalize rescales data with the given method into a new slice.
//
// stats.MethodZScore maps each value to (x−mean)/std; stats.MethodMinMax maps
// each value to (x−min)/(max−min). data is not modified.
//
// Parameters:
//   - data: Sample values; must be non-empty and finite
//   - method: stats.MethodZScore or stats.MethodMinMax
//
// Returns:
//   - []float64: Normalized values, same length as data
//   - error: errs.ErrEmptySample, errs.ErrNonFiniteValue, errs.ErrZeroVariance (z-score),
//     errs.ErrZeroRange (min-max) or errs.ErrUnknownMethod
func Normalize(data []float64, method stats.Method) ([]float64, error) {
	return stats.Normalize(data, method)
}

// Describe returns count, mean, standard deviation, extrema and quartiles of data.
func Describe(data []float64) (stats.Summary, error) {
	return stats.Describe(data)
}

// NewAnalyzer creates a stats.Analyzer over a copy of data.
//
// Available options:
//   - stats.WithName(name)
//   - stats.WithOutlierMethod(stats.OutlierIQR|OutlierZScore)
//   - stats.WithOutlierThreshold(t)
func NewAnalyzer(data []float64, opts ...stats.AnalyzerOption) (*stats.Analyzer, error) {
	return stats.NewAnalyzer(data, opts...)
}

// EncodeSample encodes values as a sample blob named name.
//
// The defaults are little-endian, raw values and no compression.
//
// Available options:
//   - blob.WithLittleEndian() / blob.WithBigEndian()
//   - blob.WithValueEncoding(format.TypeRaw|TypeGorilla)
//   - blob.WithCompression(format.CompressionNone|Zstd|S2|LZ4)
//
// Example:
//
//	data, err := numsum.EncodeSample("cpu", values, blob.WithCompression(format.CompressionS2))
func EncodeSample(name string, values []float64, opts ...blob.SampleEncoderOption) ([]byte, error) {
	return blob.EncodeSample(name, values, opts...)
}

// DecodeSample verifies and decodes a sample blob.
//
// The header, checksum, sample ID and value count are all verified; any
// mismatch is reported with the corresponding errs sentinel.
func DecodeSample(data []byte) (blob.SampleBlob, error) {
	return blob.DecodeSample(data)
}

// AnalyzeBlob decodes a sample blob and returns an Analyzer named after the sample.
//
// opts configure outlier detection; a stats.WithName option is overridden by
// the blob's name.
//
// Parameters:
//   - data: Encoded sample blob
//   - opts: Analyzer options
//
// Returns:
//   - *stats.Analyzer: Analyzer over the decoded values
//   - error: Decoding errors, or sample validation errors such as errs.ErrEmptySample
//     and errs.ErrNonFiniteValue
func AnalyzeBlob(data []byte, opts ...stats.AnalyzerOption) (*stats.Analyzer, error) {
	sample, err := blob.DecodeSample(data)
	if err != nil {
		return nil, err
	}

	allOpts := append(append([]stats.AnalyzerOption{}, opts...), stats.WithName(sample.Name()))

	return stats.NewAnalyzer(sample.Values(), allOpts...)
}

// SampleID converts a sample name to its 64-bit xxHash64 identifier.
//
// Sample blobs and analyzers carry this ID, so samples can be matched by
// name across processes without comparing strings.
func SampleID(name string) uint64 {
	return hash.ID(name)
}
