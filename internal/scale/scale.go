// Package scale rescales float64 samples by a power of two so that squared
// deviations and their sums stay within float64 range.
//
// Scaling by 2^e only changes the exponent, so Down and Up are exact unless
// the result leaves the normal float64 range.
package scale

import "math"

// Exponent returns e such that max|v| / 2^e lies in [1, 2), taken over all
// samples.
//
// Every value divided by 2^e then lies in (-2, 2). Returns 0 when the samples
// are empty or all zero. Values must be finite.
func Exponent(samples ...[]float64) int {
	maxAbs := 0.0
	for _, values := range samples {
		for _, v := range values {
			maxAbs = max(maxAbs, math.Abs(v))
		}
	}
	if maxAbs == 0 {
		return 0
	}

	_, exp := math.Frexp(maxAbs)

	return exp - 1
}

// Down returns v / 2^e.
func Down(v float64, e int) float64 {
	return math.Ldexp(v, -e)
}

// Up returns v * 2^e, or ±Inf when the result overflows.
func Up(v float64, e int) float64 {
	return math.Ldexp(v, e)
}

// IsFinite reports whether every value is neither NaN nor ±Inf.
func IsFinite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
