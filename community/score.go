// SPDX-License-Identifier: MIT
// File: score.go
// Role: Modularity of an arbitrary partition via gonum graph/community.Q.

package community

import (
	"fmt"

	"gonum.org/v1/gonum/graph"
	gcommunity "gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/motifnull/core"
)

// Score returns the modularity of communities on g: Newman's Q for
// undirected graphs and Leicht–Newman's directed Q for directed graphs.
// Self-loops are skipped because gonum simple graphs cannot hold them.
//
// Errors: core.ErrNilGraph, ErrMultigraph, ErrPartition.
// Complexity: O(V + E).
func Score(g *core.Graph, communities [][]int) (float64, error) {
	if g == nil {
		return 0, fmt.Errorf("Score: %w", core.ErrNilGraph)
	}
	if g.Multigraph() {
		return 0, fmt.Errorf("Score: %w", ErrMultigraph)
	}
	n := g.VertexCount()
	seen := make([]bool, n)
	covered := 0
	groups := make([][]graph.Node, len(communities))
	for k, c := range communities {
		for _, v := range c {
			if v < 0 || v >= n || seen[v] {
				return 0, fmt.Errorf("Score: vertex %d: %w", v, ErrPartition)
			}
			seen[v] = true
			covered++
			groups[k] = append(groups[k], simple.Node(int64(v)))
		}
	}
	if covered != n {
		return 0, fmt.Errorf("Score: %d of %d vertices covered: %w", covered, n, ErrPartition)
	}

	return gcommunity.Q(toGonum(g), groups, 1), nil
}

// toGonum copies g into a gonum simple graph, keeping isolated vertices.
func toGonum(g *core.Graph) graph.Graph {
	n := g.VertexCount()
	if g.Directed() {
		dg := simple.NewDirectedGraph()
		for i := 0; i < n; i++ {
			dg.AddNode(simple.Node(int64(i)))
		}
		for _, e := range g.Edges() {
			if !e.IsLoop() {
				dg.SetEdge(simple.Edge{F: simple.Node(int64(e.From)), T: simple.Node(int64(e.To))})
			}
		}
		return dg
	}
	ug := simple.NewUndirectedGraph()
	for i := 0; i < n; i++ {
		ug.AddNode(simple.Node(int64(i)))
	}
	for _, e := range g.Edges() {
		if !e.IsLoop() {
			ug.SetEdge(simple.Edge{F: simple.Node(int64(e.From)), T: simple.Node(int64(e.To))})
		}
	}

	return ug
}
