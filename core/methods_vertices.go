// SPDX-License-Identifier: MIT
// File: methods_vertices.go
// Role: Vertex lifecycle and per-vertex queries.
// Concurrency:
//   - Mutations take the write lock; queries take the read lock.

package core

import "sort"

// AddVertex appends a new isolated vertex and returns its index.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.grow(1)
}

// AddVertices appends n isolated vertices and returns the index of the first.
// n <= 0 is a no-op returning the current vertex count.
// Complexity: O(n).
func (g *Graph) AddVertices(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n <= 0 {
		return len(g.succ)
	}

	return g.grow(n)
}

// EnsureVertex grows the graph so that id is a valid vertex index.
// Complexity: O(id - N) when growing, O(1) otherwise.
func (g *Graph) EnsureVertex(id int) error {
	if id < 0 {
		return ErrInvalidVertex
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if id >= len(g.succ) {
		g.grow(id + 1 - len(g.succ))
	}

	return nil
}

// grow appends n vertices; caller holds the write lock.
func (g *Graph) grow(n int) int {
	first := len(g.succ)
	for i := 0; i < n; i++ {
		g.succ = append(g.succ, make(map[int]int))
		if g.directed {
			g.pred = append(g.pred, make(map[int]int))
		}
	}

	return first
}

// HasVertex reports whether id is a valid vertex index.
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return id >= 0 && id < len(g.succ)
}

// VertexCount returns N.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.succ)
}

// Successors returns the distinct out-neighbors of v in ascending order.
// For undirected graphs this equals Neighbors(v).
// Complexity: O(d log d).
func (g *Graph) Successors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v < 0 || v >= len(g.succ) {
		return nil, ErrInvalidVertex
	}

	return sortedKeys(g.succ[v]), nil
}

// Predecessors returns the distinct in-neighbors of v in ascending order.
// For undirected graphs this equals Neighbors(v).
// Complexity: O(d log d).
func (g *Graph) Predecessors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v < 0 || v >= len(g.succ) {
		return nil, ErrInvalidVertex
	}

	return sortedKeys(g.in(v)), nil
}

// Neighbors returns the union of successors and predecessors of v in ascending order.
// Complexity: O(d log d).
func (g *Graph) Neighbors(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v < 0 || v >= len(g.succ) {
		return nil, ErrInvalidVertex
	}
	if !g.directed {
		return sortedKeys(g.succ[v]), nil
	}
	seen := make(map[int]int, len(g.succ[v])+len(g.pred[v]))
	for u := range g.succ[v] {
		seen[u] = 1
	}
	for u := range g.pred[v] {
		seen[u] = 1
	}

	return sortedKeys(seen), nil
}

// OutDegree returns the number of edges leaving v, counting multiplicity.
// Undirected graphs report Degree(v).
func (g *Graph) OutDegree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v < 0 || v >= len(g.succ) {
		return 0
	}
	if !g.directed {
		return g.undirectedDegree(v)
	}

	return sumValues(g.succ[v])
}

// InDegree returns the number of edges entering v, counting multiplicity.
// Undirected graphs report Degree(v).
func (g *Graph) InDegree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v < 0 || v >= len(g.succ) {
		return 0
	}
	if !g.directed {
		return g.undirectedDegree(v)
	}

	return sumValues(g.pred[v])
}

// Degree returns the total degree of v. Directed graphs report in+out;
// undirected graphs count a self-loop twice.
func (g *Graph) Degree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v < 0 || v >= len(g.succ) {
		return 0
	}
	if !g.directed {
		return g.undirectedDegree(v)
	}

	return sumValues(g.succ[v]) + sumValues(g.pred[v])
}

// undirectedDegree counts a loop twice; caller holds the read lock.
func (g *Graph) undirectedDegree(v int) int {
	return sumValues(g.succ[v]) + g.succ[v][v]
}

// in returns the predecessor map of v; caller holds the read lock.
func (g *Graph) in(v int) map[int]int {
	if g.directed {
		return g.pred[v]
	}

	return g.succ[v]
}

func sortedKeys(m map[int]int) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}

func sumValues(m map[int]int) int {
	total := 0
	for _, c := range m {
		total += c
	}

	return total
}
