// SPDX-License-Identifier: MIT
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with identical flags and vertex count, but no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	clone := NewGraph(g.options()...)
	clone.grow(len(g.succ))

	return clone
}

// Clone returns a deep copy of the Graph: flags, vertices and every edge
// with its multiplicity. Mutating the clone never affects g.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	clone := NewGraph(g.options()...)
	clone.succ = copyRows(g.succ)
	if g.directed {
		clone.pred = copyRows(g.pred)
	}
	clone.edges = g.edges
	clone.loops = g.loops

	return clone
}

func copyRows(rows []map[int]int) []map[int]int {
	out := make([]map[int]int, len(rows))
	for i, row := range rows {
		cp := make(map[int]int, len(row))
		for k, c := range row {
			cp[k] = c
		}
		out[i] = cp
	}

	return out
}

// Clear removes every vertex and edge while preserving configuration flags.
// Complexity: O(1).
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.succ = nil
	g.pred = nil
	g.edges = 0
	g.loops = 0
}
