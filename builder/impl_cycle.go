// SPDX-License-Identifier: MIT
// Package: motifnull/builder
//
// impl_cycle.go: Cycle(n) and Path(n) constructors.
//
// Contract:
//   • Cycle: n ≥ 3; Path: n ≥ 2 (else ErrTooFewVertices).
//   • Emits edges in stable order i → i+1 (Cycle closes n-1 → 0).
//   • Directed graphs get one orientation per step, so a directed Cycle(3)
//     is the cyclic triad 030C.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/motifnull/core"
)

const (
	methodCycle   = "Cycle"
	methodPath    = "Path"
	minCycleNodes = 3
	minPathNodes  = 2
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, "n", n, minCycleNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			u, v := cfg.vertex(i), cfg.vertex((i+1)%n)
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodCycle, u, v, err)
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, "n", n, minPathNodes); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			u, v := cfg.vertex(i), cfg.vertex(i+1)
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodPath, u, v, err)
			}
		}

		return nil
	}
}
