// SPDX-License-Identifier: MIT
// File: view.go
// Role: Non-mutating graph views (cloning topology with altered identity).
// Concurrency:
//   - Read lock on source; result is a fresh graph instance.

package core

import "fmt"

// Relabel returns a copy of g in which vertex v becomes perm[v].
// perm must be a permutation of 0..N-1, else ErrInvalidPermutation.
// Structural statistics (triad census, degree sequences) are invariant under Relabel.
//
// Complexity: O(V + E).
func Relabel(g *Graph, perm []int) (*Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := len(g.succ)
	if len(perm) != n {
		return nil, fmt.Errorf("Relabel: len(perm)=%d, N=%d: %w", len(perm), n, ErrInvalidPermutation)
	}
	seen := make([]bool, n)
	for i, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, fmt.Errorf("Relabel: perm[%d]=%d: %w", i, p, ErrInvalidPermutation)
		}
		seen[p] = true
	}

	out := NewGraph(g.options()...)
	out.grow(n)
	for u, row := range g.succ {
		for v, c := range row {
			out.succ[perm[u]][perm[v]] = c
		}
	}
	if g.directed {
		for u, row := range g.pred {
			for v, c := range row {
				out.pred[perm[u]][perm[v]] = c
			}
		}
	}
	out.edges = g.edges
	out.loops = g.loops

	return out, nil
}
