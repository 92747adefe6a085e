// SPDX-License-Identifier: MIT
// File: options.go
// Role: Functional options for Detect.
// Contract:
//   - Option constructors panic on meaningless values; Detect never panics.

package community

import "github.com/rs/zerolog"

// Mode selects which modularity definition Detect applies.
type Mode int

const (
	// ModeAuto follows the graph's directedness.
	ModeAuto Mode = iota
	// ModeUndirected requires an undirected graph.
	ModeUndirected
	// ModeDirected requires a directed graph.
	ModeDirected
)

func (m Mode) String() string {
	switch m {
	case ModeUndirected:
		return "undirected"
	case ModeDirected:
		return "directed"
	default:
		return "auto"
	}
}

// Solver selects the eigen-solver used for each bisection.
type Solver int

const (
	// SolverAuto uses LAPACK-backed gonum EigenSym and falls back to Jacobi
	// rotations when factorization fails.
	SolverAuto Solver = iota
	// SolverJacobi always uses cyclic Jacobi rotations bounded by WithMaxIterations.
	SolverJacobi
)

const (
	defaultErrorMargin   = 1e-12
	defaultMaxIterations = 500
)

// Option customizes Detect.
type Option func(*config)

type config struct {
	errorMargin   float64
	refine        bool
	maxIterations int
	mode          Mode
	solver        Solver
	logger        zerolog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		errorMargin:   defaultErrorMargin,
		refine:        true,
		maxIterations: defaultMaxIterations,
		mode:          ModeAuto,
		solver:        SolverAuto,
		logger:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithErrorMargin sets the ΔQ threshold at or below which a subset is terminal.
// Panics on negative values.
func WithErrorMargin(margin float64) Option {
	if margin < 0 {
		panic("community: WithErrorMargin(negative)")
	}
	return func(c *config) { c.errorMargin = margin }
}

// WithRefine toggles Kernighan–Lin refinement of every accepted split.
func WithRefine(refine bool) Option {
	return func(c *config) { c.refine = refine }
}

// WithMaxIterations bounds the Jacobi sweeps of the fallback eigen-solver.
// Panics on values below 1.
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic("community: WithMaxIterations(<1)")
	}
	return func(c *config) { c.maxIterations = n }
}

// WithMode forces undirected or directed modularity.
func WithMode(m Mode) Option {
	return func(c *config) { c.mode = m }
}

// WithSolver selects the eigen-solver.
func WithSolver(s Solver) Option {
	return func(c *config) { c.solver = s }
}

// WithLogger attaches a logger for per-split debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}
