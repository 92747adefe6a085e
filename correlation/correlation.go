// SPDX-License-Identifier: MIT
// File: correlation.go
// Role: Degree–degree correlation (Newman's assortativity) over edges.
// Formula (M edges, j/k the degrees at either end of each edge):
//
//	r = (Σjk − (Σ(j+k))²/4M) / (Σ(j²+k²)/2 − (Σ(j+k))²/4M)
//
// Directed graphs pair the source's out-degree with the target's in-degree.

package correlation

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/motifnull/core"
)

var (
	// ErrNoEdges indicates a graph without edges.
	ErrNoEdges = errors.New("correlation: graph has no edges")

	// ErrDegenerate indicates every edge joins the same degree pair, so the
	// coefficient has a zero denominator.
	ErrDegenerate = errors.New("correlation: degree variance is zero")
)

const degenerateTolerance = 1e-12

// DegreeCorrelation returns a Pearson-like coefficient in [-1, 1].
//
// Errors: core.ErrNilGraph, ErrNoEdges, ErrDegenerate.
// Complexity: O(V + E).
func DegreeCorrelation(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, fmt.Errorf("DegreeCorrelation: %w", core.ErrNilGraph)
	}
	edges := g.Edges()
	if len(edges) == 0 {
		return 0, fmt.Errorf("DegreeCorrelation: %w", ErrNoEdges)
	}
	src, tar := g.Degree, g.Degree
	if g.Directed() {
		src, tar = g.OutDegree, g.InDegree
	}

	var product, sum, squares float64
	for _, e := range edges {
		j, k := float64(src(e.From)), float64(tar(e.To))
		product += j * k
		sum += j + k
		squares += j*j + k*k
	}
	mean := sum * sum / float64(4*len(edges))
	den := squares/2 - mean
	if math.Abs(den) < degenerateTolerance*math.Max(1, squares) {
		return 0, fmt.Errorf("DegreeCorrelation: %w", ErrDegenerate)
	}

	return (product - mean) / den, nil
}
