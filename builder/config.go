// SPDX-License-Identifier: MIT
// Package: motifnull/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng    = nil (pure/deterministic unless seeded)
//   • offset = 0   (first vertex index a constructor writes to)

package builder

import "math/rand/v2"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// First vertex index used by index-based constructors.
	offset int
}

// newBuilderConfig applies options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// vertex maps a constructor-local index onto the graph index.
func (c builderConfig) vertex(i int) int { return c.offset + i }
