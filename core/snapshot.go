// SPDX-License-Identifier: MIT
// File: snapshot.go
// Role: Immutable sorted adjacency snapshot for lock-free inner loops.
// Determinism:
//   - Every row is sorted ascending.

package core

// Adjacency is a read-only snapshot of a Graph's distinct neighbor lists.
// Algorithms take one snapshot up front instead of locking per query.
//
// Out[v] and In[v] are distinct successors and predecessors; for undirected
// graphs both alias the same rows.
type Adjacency struct {
	Directed bool
	Out      [][]int
	In       [][]int
}

// Snapshot copies the adjacency of g into sorted neighbor lists.
// Complexity: O(V + E log d).
func (g *Graph) Snapshot() *Adjacency {
	g.mu.RLock()
	defer g.mu.RUnlock()
	a := &Adjacency{Directed: g.directed, Out: make([][]int, len(g.succ))}
	for v := range g.succ {
		a.Out[v] = sortedKeys(g.succ[v])
	}
	if !g.directed {
		a.In = a.Out
		return a
	}
	a.In = make([][]int, len(g.pred))
	for v := range g.pred {
		a.In[v] = sortedKeys(g.pred[v])
	}

	return a
}

// Len returns the number of vertices in the snapshot.
func (a *Adjacency) Len() int { return len(a.Out) }

// OutDegrees returns the distinct out-degree of each vertex.
func (a *Adjacency) OutDegrees() []int {
	out := make([]int, len(a.Out))
	for v, row := range a.Out {
		out[v] = len(row)
	}

	return out
}

// InDegrees returns the distinct in-degree of each vertex.
func (a *Adjacency) InDegrees() []int {
	out := make([]int, len(a.In))
	for v, row := range a.In {
		out[v] = len(row)
	}

	return out
}
