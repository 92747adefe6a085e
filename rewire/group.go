// SPDX-License-Identifier: MIT
// File: group.go
// Role: Index-addressed edge sequence with an endpoint→position lookup.
// Complexity:
//   - At, Set, Position: O(1).

package rewire

import "github.com/katalvlaran/motifnull/core"

// Category names produced by the built-in policies.
const (
	CategoryUnidirectional      = "unidirectional"
	CategoryBidirectional       = "bidirectional"
	CategoryUndirected          = "undirected"
	CategoryProductForward      = "product_forward"
	CategorySubstrateForward    = "substrate_forward"
	CategoryProductReversible   = "product_reversible"
	CategorySubstrateReversible = "substrate_reversible"
)

// EdgeGroup is one rewiring category: a tag, the swap arity (1 for single
// switches, 2 for reciprocal double switches) and the member edges.
// Bidirectional groups list both directions of every pair.
type EdgeGroup struct {
	Category string
	Arity    int

	edges []core.Edge
	index map[core.Edge]int
}

func newGroup(category string, arity int) *EdgeGroup {
	return &EdgeGroup{
		Category: category,
		Arity:    arity,
		index:    make(map[core.Edge]int),
	}
}

func (eg *EdgeGroup) add(e core.Edge) {
	eg.index[e] = len(eg.edges)
	eg.edges = append(eg.edges, e)
}

// Len returns the number of edges in the group.
func (eg *EdgeGroup) Len() int { return len(eg.edges) }

// At returns the edge stored at position i.
func (eg *EdgeGroup) At(i int) core.Edge { return eg.edges[i] }

// Set overwrites position i with e and keeps the lookup consistent.
func (eg *EdgeGroup) Set(i int, e core.Edge) {
	old := eg.edges[i]
	if pos, ok := eg.index[old]; ok && pos == i {
		delete(eg.index, old)
	}
	eg.edges[i] = e
	eg.index[e] = i
}

// Position returns where e is stored.
func (eg *EdgeGroup) Position(e core.Edge) (int, bool) {
	i, ok := eg.index[e]

	return i, ok
}

// Edges returns a copy of the group's edges in positional order.
func (eg *EdgeGroup) Edges() []core.Edge {
	out := make([]core.Edge, len(eg.edges))
	copy(out, eg.edges)

	return out
}
