// SPDX-License-Identifier: MIT
// File: errors.go
// Role: Sentinel and typed errors for community detection.

package community

import (
	"errors"
	"fmt"
)

var (
	// ErrDirectionMismatch indicates the requested mode disagrees with the graph's directedness.
	ErrDirectionMismatch = errors.New("community: graph direction does not match mode")

	// ErrEmptyGraph indicates a graph without vertices.
	ErrEmptyGraph = errors.New("community: graph does not contain any nodes")

	// ErrNoEdges indicates a graph without edges, for which modularity is undefined.
	ErrNoEdges = errors.New("community: graph does not contain any links")

	// ErrMultigraph indicates the graph permits parallel edges.
	ErrMultigraph = errors.New("community: multigraphs are not supported")

	// ErrNoConvergence is matched by every *ConvergenceError.
	ErrNoConvergence = errors.New("community: eigen-solver did not converge")

	// ErrPartition indicates a partition passed to Score that is not a disjoint cover.
	ErrPartition = errors.New("community: communities do not partition the vertices")
)

// ConvergenceError reports an eigen-solve that hit its iteration bound.
type ConvergenceError struct {
	Iterations int
	Size       int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("community: eigen-solver did not converge on %d×%d subset after %d sweeps",
		e.Size, e.Size, e.Iterations)
}

// Is makes errors.Is(err, ErrNoConvergence) hold for every ConvergenceError.
func (e *ConvergenceError) Is(target error) bool { return target == ErrNoConvergence }
