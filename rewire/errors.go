// SPDX-License-Identifier: MIT
// File: errors.go
// Role: Sentinel errors for edge categorization and rewiring.
// Error policy:
//   - Callers branch with errors.Is; implementations wrap with
//     "<Method>: <detail>: %w".
//   - A rejected switch is never an error; it is a counted no-op.

package rewire

import "errors"

var (
	// ErrMultigraph indicates the graph permits parallel edges.
	ErrMultigraph = errors.New("rewire: not defined for multigraphs")

	// ErrSelfLoop indicates a self-loop under a policy that does not admit them.
	ErrSelfLoop = errors.New("rewire: the standard policy does not allow self-loops")

	// ErrUnsupportedGraphMode indicates a policy that requires a directed graph.
	ErrUnsupportedGraphMode = errors.New("rewire: unsupported graph mode")

	// ErrInvalidDomainConfig indicates pivots or reversibility flags that do not fit the graph.
	ErrInvalidDomainConfig = errors.New("rewire: invalid domain configuration")

	// ErrNeedRandSource indicates Randomize ran without WithSeed or WithRand.
	ErrNeedRandSource = errors.New("rewire: rng is required")

	// ErrCorruptGroup indicates a group whose edges no longer match the graph.
	ErrCorruptGroup = errors.New("rewire: edge group out of sync with graph")
)
