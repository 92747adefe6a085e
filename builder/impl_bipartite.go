// SPDX-License-Identifier: MIT
// Package: motifnull/builder
//
// impl_bipartite.go: CompleteBipartite(n1,n2) and RandomBipartite(top,bottom,p).
//
// Contract:
//   • Both partitions non-empty (else ErrTooFewVertices).
//   • Top vertices are local indices 0..top-1, bottom vertices top..top+bottom-1.
//   • RandomBipartite samples bottom→top with probability p; directed graphs
//     additionally sample top→bottom, each trial independent.
//   • CompleteBipartite is RandomBipartite with p = 1 (no RNG needed).
//
// Complexity: O(top·bottom) trials.
//
// Determinism:
//   • RandomBipartite trial order: for each top asc, bottom asc; then (directed)
//     for each bottom asc, top asc.

package builder

import (
	"fmt"

	"github.com/katalvlaran/motifnull/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	methodRandomBipartite   = "RandomBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return bipartite(methodCompleteBipartite, n1, n2, 1)
}

// RandomBipartite returns a Constructor for an Erdős–Rényi-like bipartite
// graph whose links only run between the top and bottom populations.
func RandomBipartite(top, bottom int, p float64) Constructor {
	return bipartite(methodRandomBipartite, top, bottom, p)
}

func bipartite(method string, top, bottom int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(method, "top", top, minPartitionSize); err != nil {
			return err
		}
		if err := validateMin(method, "bottom", bottom, minPartitionSize); err != nil {
			return err
		}
		if err := validateProbability(method, p); err != nil {
			return err
		}
		if err := validateRand(method, cfg, p); err != nil {
			return err
		}
		if err := g.EnsureVertex(cfg.vertex(top + bottom - 1)); err != nil {
			return fmt.Errorf("%s: %w", method, err)
		}

		link := func(u, v int) error {
			if !bernoulli(cfg, p) {
				return nil
			}
			if err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%d→%d): %w", method, u, v, err)
			}
			return nil
		}

		// bottom → top first, matching the undirected orientation.
		for t := 0; t < top; t++ {
			for b := 0; b < bottom; b++ {
				if err := link(cfg.vertex(top+b), cfg.vertex(t)); err != nil {
					return err
				}
			}
		}
		if !g.Directed() {
			return nil
		}
		for b := 0; b < bottom; b++ {
			for t := 0; t < top; t++ {
				if err := link(cfg.vertex(t), cfg.vertex(top+b)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
