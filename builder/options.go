// SPDX-License-Identifier: MIT
// Package: motifnull/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand/v2"

// BuilderOption customizes constructor behavior by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a PCG-backed *rand.Rand seeded with (seed, 0).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewPCG(seed, 0))
	}
}

// WithOffset shifts the vertex indices written by index-based constructors,
// so several components can be composed into one graph.
// Panics on negative offsets.
func WithOffset(offset int) BuilderOption {
	if offset < 0 {
		panic("builder: WithOffset(negative)")
	}
	return func(c *builderConfig) { c.offset = offset }
}
