// SPDX-License-Identifier: MIT
// File: modularity.go
// Role: Modularity matrix over a sparse or dense symmetric adjacency.
// Storage:
//   - density < 0.5: one map row per vertex (O(V + E) memory).
//   - otherwise:     gonum mat.Dense (O(V²) memory, O(1) lookups).
//   Only principal submatrices of working subsets are ever materialized.

package community

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/motifnull/core"
)

const denseThreshold = 0.5

// ModularityMatrix is B = A - E[A] for one graph, in symmetrized form.
type ModularityMatrix struct {
	n        int
	m        float64 // number of edges
	directed bool

	// symmetric adjacency: A for undirected (self-loop = 2), A + Aᵀ for directed
	sparse []map[int]float64
	dense  *mat.Dense

	kOut []float64
	kIn  []float64
}

// NewModularityMatrix builds B for g under mode. Self-loops count twice on
// the diagonal of an undirected adjacency and once per direction for a
// directed one, so 2m = Σk in both cases.
//
// Errors: core.ErrNilGraph, ErrDirectionMismatch, ErrMultigraph, ErrEmptyGraph, ErrNoEdges.
// Complexity: O(V + E) sparse, O(V²) dense.
func NewModularityMatrix(g *core.Graph, mode Mode) (*ModularityMatrix, error) {
	if err := validate(g, mode); err != nil {
		return nil, err
	}
	edges := g.Edges()
	n := g.VertexCount()
	b := &ModularityMatrix{
		n:        n,
		m:        float64(len(edges)),
		directed: g.Directed(),
		kOut:     make([]float64, n),
		kIn:      make([]float64, n),
	}
	if g.Density() < denseThreshold {
		b.sparse = make([]map[int]float64, n)
		for i := range b.sparse {
			b.sparse[i] = make(map[int]float64)
		}
	} else {
		b.dense = mat.NewDense(n, n, nil)
	}

	for _, e := range edges {
		b.kOut[e.From]++
		b.kIn[e.To]++
		if !b.directed {
			b.kOut[e.To]++
			b.kIn[e.From]++
		}
		b.addSym(e.From, e.To)
	}

	return b, nil
}

func validate(g *core.Graph, mode Mode) error {
	if g == nil {
		return core.ErrNilGraph
	}
	switch {
	case mode == ModeUndirected && g.Directed():
		return fmt.Errorf("mode %s on directed graph: %w", mode, ErrDirectionMismatch)
	case mode == ModeDirected && !g.Directed():
		return fmt.Errorf("mode %s on undirected graph: %w", mode, ErrDirectionMismatch)
	}
	if g.Multigraph() {
		return ErrMultigraph
	}
	if g.VertexCount() == 0 {
		return ErrEmptyGraph
	}
	if g.EdgeCount() == 0 {
		return ErrNoEdges
	}

	return nil
}

// addSym records edge u→v in the symmetric adjacency: +1 at (u,v) and (v,u),
// which puts 2 on the diagonal for a self-loop.
func (b *ModularityMatrix) addSym(u, v int) {
	if b.dense != nil {
		b.dense.Set(u, v, b.dense.At(u, v)+1)
		b.dense.Set(v, u, b.dense.At(v, u)+1)
		return
	}
	b.sparse[u][v]++
	b.sparse[v][u]++
}

func (b *ModularityMatrix) adj(i, j int) float64 {
	if b.dense != nil {
		return b.dense.At(i, j)
	}

	return b.sparse[i][j]
}

// Len returns the number of vertices.
func (b *ModularityMatrix) Len() int { return b.n }

// Directed reports whether the Leicht–Newman form is used.
func (b *ModularityMatrix) Directed() bool { return b.directed }

// Dense reports whether the adjacency is held as a dense matrix.
func (b *ModularityMatrix) Dense() bool { return b.dense != nil }

// Norm returns 4m, the normalization of sᵀBs into a modularity gain.
func (b *ModularityMatrix) Norm() float64 { return 4 * b.m }

// At returns B_ij.
func (b *ModularityMatrix) At(i, j int) float64 {
	if b.directed {
		return b.adj(i, j) - (b.kOut[i]*b.kIn[j]+b.kOut[j]*b.kIn[i])/b.m
	}

	return b.adj(i, j) - b.kOut[i]*b.kOut[j]/(2*b.m)
}

// Sub returns the generalized modularity matrix B^(S) for the vertex subset
// idx: the principal submatrix with each row's sum subtracted from its diagonal.
// Complexity: O(|S|²).
func (b *ModularityMatrix) Sub(idx []int) *mat.SymDense {
	k := len(idx)
	sub := mat.NewSymDense(k, nil)
	for a := 0; a < k; a++ {
		for c := a; c < k; c++ {
			sub.SetSym(a, c, b.At(idx[a], idx[c]))
		}
	}
	for a := 0; a < k; a++ {
		var row float64
		for c := 0; c < k; c++ {
			row += sub.At(a, c)
		}
		sub.SetSym(a, a, sub.At(a, a)-row)
	}

	return sub
}
