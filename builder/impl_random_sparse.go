// SPDX-License-Identifier: MIT
// Package: motifnull/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j); allow self-loops iff g.Looped()==true.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - All n vertices exist afterwards, isolated or not.
//
// Complexity:
//   - Time: O(n²) Bernoulli trials.
//
// Determinism:
//   - Stable edge-trial order: for each i asc, j asc (undirected uses j>i).

package builder

import (
	"fmt"

	"github.com/katalvlaran/motifnull/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if err := validateRand(methodRandomSparse, cfg, p); err != nil {
			return err
		}
		if err := g.EnsureVertex(cfg.vertex(n - 1)); err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}

		loops := g.Looped()
		directed := g.Directed()
		var i, j int
		for i = 0; i < n; i++ {
			start := 0
			if !directed {
				start = i + 1
			}
			for j = start; j < n; j++ {
				if i == j && !loops {
					continue
				}
				if !bernoulli(cfg, p) {
					continue
				}
				u, v := cfg.vertex(i), cfg.vertex(j)
				if err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d): %w", methodRandomSparse, u, v, err)
				}
			}
		}

		return nil
	}
}
