// SPDX-License-Identifier: MIT
// Package: motifnull/builder
//
// impl_complete.go: Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Undirected: every unordered pair {i,j}, i<j.
//   • Directed: every ordered pair (i,j), i≠j, so each triad is "300".
//   • Never emits self-loops.
//
// Complexity: O(n²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/motifnull/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, "n", n, minCompleteNodes); err != nil {
			return err
		}
		if err := g.EnsureVertex(cfg.vertex(n - 1)); err != nil {
			return fmt.Errorf("%s: %w", methodComplete, err)
		}
		directed := g.Directed()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || (!directed && j < i) {
					continue
				}
				u, v := cfg.vertex(i), cfg.vertex(j)
				if err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodComplete, u, v, err)
				}
			}
		}

		return nil
	}
}
