// SPDX-License-Identifier: MIT
// File: methods_edges.go
// Role: Edge lifecycle and queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount,
//       plus feature queries (self-loops, parallel edges, density).
// Determinism:
//   - Edges() returns edges sorted by (From, To) asc; multi-edges repeated.
// Concurrency:
//   - Mutations under the write lock; queries under the read lock.

package core

import "sort"

// AddEdge inserts the edge from→to, growing the vertex set as needed.
//
// Rules:
//   - from < 0 or to < 0 ⇒ ErrInvalidVertex.
//   - from == to without WithLoops ⇒ ErrLoopNotAllowed.
//   - existing edge without WithMultiEdges ⇒ ErrMultiEdgeNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int) error {
	if from < 0 || to < 0 {
		return ErrInvalidVertex
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if hi := max(from, to); hi >= len(g.succ) {
		g.grow(hi + 1 - len(g.succ))
	}
	if !g.allowMulti && g.succ[from][to] > 0 {
		return ErrMultiEdgeNotAllowed
	}
	g.succ[from][to]++
	if g.directed {
		g.pred[to][from]++
	} else if from != to {
		g.succ[to][from]++
	}
	g.edges++
	if from == to {
		g.loops++
	}

	return nil
}

// RemoveEdge deletes one copy of the edge from→to.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to int) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if from < 0 || to < 0 || from >= len(g.succ) || to >= len(g.succ) {
		return ErrInvalidVertex
	}
	if g.succ[from][to] == 0 {
		return ErrEdgeNotFound
	}
	decrement(g.succ[from], to)
	if g.directed {
		decrement(g.pred[to], from)
	} else if from != to {
		decrement(g.succ[to], from)
	}
	g.edges--
	if from == to {
		g.loops--
	}

	return nil
}

func decrement(m map[int]int, k int) {
	if m[k] <= 1 {
		delete(m, k)
		return
	}
	m[k]--
}

// HasEdge reports whether at least one edge from→to exists.
// For undirected graphs the orientation is irrelevant.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if from < 0 || to < 0 || from >= len(g.succ) || to >= len(g.succ) {
		return false
	}

	return g.succ[from][to] > 0
}

// Multiplicity returns the number of parallel edges from→to.
func (g *Graph) Multiplicity(from, to int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if from < 0 || to < 0 || from >= len(g.succ) || to >= len(g.succ) {
		return 0
	}

	return g.succ[from][to]
}

// EdgeCount returns the number of edges, counting multiplicity.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// SelfLoopCount returns the number of self-loops, counting multiplicity.
func (g *Graph) SelfLoopCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.loops
}

// HasParallelEdges reports whether any vertex pair carries more than one edge.
// Complexity: O(V + E).
func (g *Graph) HasParallelEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, row := range g.succ {
		for _, c := range row {
			if c > 1 {
				return true
			}
		}
	}

	return false
}

// Density returns E / (N(N-1)) for directed and 2E / (N(N-1)) for undirected graphs.
// Graphs with fewer than two vertices have density 0.
func (g *Graph) Density() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := float64(len(g.succ))
	if n < 2 {
		return 0
	}
	e := float64(g.edges - g.loops)
	if g.directed {
		return e / (n * (n - 1))
	}

	return 2 * e / (n * (n - 1))
}

// Edges returns every edge sorted by (From, To). Undirected edges are reported
// once with From <= To; parallel edges are repeated.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edges)
	for u, row := range g.succ {
		for v, c := range row {
			if !g.directed && v < u {
				continue
			}
			for k := 0; k < c; k++ {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}
