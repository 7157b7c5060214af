package beta

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Estimate computes the beta of an asset against a benchmark from two
// aligned, equal-length return series:
//
//	Beta = Cov(assetReturns, benchReturns) / Var(benchReturns)
//
// Both moments use gonum's sample (n-1) convention, so numerator and
// denominator share the same n and the denominators cancel.
//
// It fails with ErrInsufficientData on fewer than 2 observations and with
// ErrDegenerateBenchmark when the benchmark return variance is zero (a flat
// benchmark makes beta a division by zero, a domain error, not a numeric
// one to mask).
func Estimate(assetReturns, benchReturns []float64) (float64, error) {
	if len(assetReturns) != len(benchReturns) {
		return 0, fmt.Errorf("return series are not aligned: %d vs %d observations", len(assetReturns), len(benchReturns))
	}
	if len(assetReturns) < 2 {
		return 0, fmt.Errorf("%d return observations, need at least 2: %w", len(assetReturns), ErrInsufficientData)
	}

	variance := stat.Variance(benchReturns, nil)
	if variance == 0 {
		return 0, fmt.Errorf("benchmark returns have zero variance: %w", ErrDegenerateBenchmark)
	}

	return stat.Covariance(assetReturns, benchReturns, nil) / variance, nil
}
