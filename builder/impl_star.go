// SPDX-License-Identifier: MIT
// Package: motifnull/builder
//
// impl_star.go: Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Hub is local index 0, leaves are 1..n-1.
//   • Directed graphs get hub→leaf only; use StarIn for leaf→hub.

package builder

import (
	"fmt"

	"github.com/katalvlaran/motifnull/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor for a star with the hub pointing at every leaf.
func Star(n int) Constructor { return star(n, false) }

// StarIn returns a Constructor for a star with every leaf pointing at the hub.
// On undirected graphs it is identical to Star.
func StarIn(n int) Constructor { return star(n, true) }

func star(n int, inward bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, "n", n, minStarNodes); err != nil {
			return err
		}
		hub := cfg.vertex(0)
		for i := 1; i < n; i++ {
			u, v := hub, cfg.vertex(i)
			if inward {
				u, v = v, u
			}
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodStar, u, v, err)
			}
		}

		return nil
	}
}
