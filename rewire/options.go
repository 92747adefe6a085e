// SPDX-License-Identifier: MIT
// File: options.go
// Role: Functional options for Randomize.
// Contract:
//   - Option constructors panic on meaningless values; Randomize never panics.
//   - Determinism is explicit: a random source must be supplied.

package rewire

import (
	"math/rand/v2"

	"github.com/rs/zerolog"
)

// DefaultFlip is the default number of attempts per edge and arity.
const DefaultFlip = 100

// Observer receives every switch attempt, accepted or rejected.
type Observer interface {
	ObserveSwitch(category string, accepted bool)
}

type nopObserver struct{}

func (nopObserver) ObserveSwitch(string, bool) {}

// Option customizes Randomize.
type Option func(*config)

type config struct {
	flip     int
	policy   Policy
	copy     bool
	rng      *rand.Rand
	observer Observer
	logger   zerolog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		flip:     DefaultFlip,
		policy:   Standard(),
		copy:     true,
		observer: nopObserver{},
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithFlip sets the attempt multiplier per category. Panics on negative values.
func WithFlip(flip int) Option {
	if flip < 0 {
		panic("rewire: WithFlip(negative)")
	}
	return func(c *config) { c.flip = flip }
}

// WithPolicy selects categorization and legality.
func WithPolicy(p Policy) Option {
	return func(c *config) { c.policy = p }
}

// WithCopy controls whether Randomize works on a clone (true, default) or
// mutates the caller's graph.
func WithCopy(enabled bool) Option {
	return func(c *config) { c.copy = enabled }
}

// WithRand provides the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("rewire: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed creates a PCG-backed source seeded with (seed, 0).
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewPCG(seed, 0)) }
}

// WithObserver registers a per-attempt hook. Panics on nil.
func WithObserver(o Observer) Option {
	if o == nil {
		panic("rewire: WithObserver(nil)")
	}
	return func(c *config) { c.observer = o }
}

// WithLogger attaches a logger for per-category summaries.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}
