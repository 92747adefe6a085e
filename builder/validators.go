// SPDX-License-Identifier: MIT
// Package: motifnull/builder
//
// validators.go: parameter checks shared by constructors.
// Each returns a sentinel wrapped with method context.

package builder

import "fmt"

const (
	probMin = 0.0
	probMax = 1.0
)

// validateMin ensures got ≥ min.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}

// validateRand requires an RNG whenever sampling is genuinely stochastic (0 < p < 1).
func validateRand(method string, cfg builderConfig, p float64) error {
	if cfg.rng == nil && p > probMin && p < probMax {
		return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}

	return nil
}

// bernoulli draws one trial; p ∈ {0,1} never consults the RNG.
func bernoulli(cfg builderConfig, p float64) bool {
	switch {
	case p <= probMin:
		return false
	case p >= probMax:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
