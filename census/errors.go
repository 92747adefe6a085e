// SPDX-License-Identifier: MIT
// File: errors.go
// Role: Sentinel errors for the census package.

package census

import "errors"

var (
	// ErrUndirected indicates the census was requested for an undirected graph.
	ErrUndirected = errors.New("census: not defined for undirected graphs")

	// ErrMultigraph indicates the graph permits parallel edges.
	ErrMultigraph = errors.New("census: multigraphs are not supported")

	// ErrInvalidRanking indicates a ranking that is not a permutation of 0..N-1.
	ErrInvalidRanking = errors.New("census: ranking is not a permutation of the vertices")

	// ErrTooLarge indicates C(N,3) does not fit in an int64 count.
	ErrTooLarge = errors.New("census: too many vertices for a full census")

	// ErrUnknownClass indicates a triad class name outside the sixteen MAN names.
	ErrUnknownClass = errors.New("census: unknown triad class")
)
