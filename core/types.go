// SPDX-License-Identifier: MIT
// File: types.go
// Role: Graph, Edge, GraphOption, sentinel errors and the NewGraph constructor.
// Concurrency:
//   - mu guards every field below it; option flags are immutable after NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilGraph indicates a nil *Graph was passed where a graph is required.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrInvalidVertex indicates a negative or out-of-range vertex index.
	ErrInvalidVertex = errors.New("core: invalid vertex index")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrInvalidPermutation indicates a relabeling slice is not a permutation of 0..N-1.
	ErrInvalidPermutation = errors.New("core: invalid permutation")
)

// Edge is an ordered (directed) or canonical unordered (undirected, From <= To) pair.
type Edge struct {
	From int
	To   int
}

// Reverse returns the edge with swapped endpoints.
func (e Edge) Reverse() Edge { return Edge{From: e.To, To: e.From} }

// IsLoop reports whether both endpoints coincide.
func (e Edge) IsLoop() bool { return e.From == e.To }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether edges are ordered pairs.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the in-memory graph shared by census, community detection and rewiring.
//
// succ[v] maps each successor to its multiplicity. For directed graphs pred[v]
// mirrors succ in reverse; for undirected graphs pred is nil and succ holds
// both orientations of every non-loop edge.
type Graph struct {
	directed   bool
	allowLoops bool
	allowMulti bool

	mu    sync.RWMutex
	succ  []map[int]int
	pred  []map[int]int
	edges int // edge count including multiplicity
	loops int // self-loop count including multiplicity
}

// NewGraph creates an empty Graph. By default it is undirected, without
// self-loops and without parallel edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether edges are ordered pairs.
func (g *Graph) Directed() bool { return g.directed }

// Looped reports whether self-loops may be added.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges may be added.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// options reproduces the construction flags, used by Clone and views.
func (g *Graph) options() []GraphOption {
	opts := []GraphOption{WithDirected(g.directed)}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}

	return opts
}
