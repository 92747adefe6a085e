// SPDX-License-Identifier: MIT
// File: options.go
// Role: Functional options for Run.

package ensemble

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/motifnull/metrics"
	"github.com/katalvlaran/motifnull/rewire"
)

// DefaultMembers is the ensemble size used without WithMembers.
const DefaultMembers = 100

// Option customizes Run.
type Option func(*config)

type config struct {
	members int
	workers int
	seed    uint64
	flip    int
	policy  rewire.Policy
	logger  zerolog.Logger
	metrics *metrics.Registry
}

func newConfig(opts ...Option) config {
	cfg := config{
		members: DefaultMembers,
		workers: runtime.GOMAXPROCS(0),
		seed:    1,
		flip:    rewire.DefaultFlip,
		policy:  rewire.Standard(),
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMembers sets the number of randomized graphs. Panics below 1.
func WithMembers(n int) Option {
	if n < 1 {
		panic("ensemble: WithMembers(<1)")
	}
	return func(c *config) { c.members = n }
}

// WithWorkers sets the pool size. Panics below 1.
func WithWorkers(k int) Option {
	if k < 1 {
		panic("ensemble: WithWorkers(<1)")
	}
	return func(c *config) { c.workers = k }
}

// WithSeed sets the base seed. Member i draws from PCG(seed, i), so results
// do not depend on the pool size or scheduling.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.seed = seed }
}

// WithFlip is passed through to rewire.WithFlip. Panics on negative values.
func WithFlip(flip int) Option {
	if flip < 0 {
		panic("ensemble: WithFlip(negative)")
	}
	return func(c *config) { c.flip = flip }
}

// WithPolicy selects the rewiring policy.
func WithPolicy(p rewire.Policy) Option {
	return func(c *config) { c.policy = p }
}

// WithLogger attaches a logger for per-member and summary events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMetrics records switch attempts and member outcomes into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(c *config) { c.metrics = r }
}
