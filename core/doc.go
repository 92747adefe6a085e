// Package core provides the thread-safe in-memory Graph used by every
// motifnull algorithm.
//
// Vertices are dense integers 0..N-1. External string identifiers are mapped
// onto them with Labels, so algorithms never pay for string hashing in their
// inner loops and callers can supply an explicit node ordering.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Self-loops (WithLoops)
//   - Parallel edges / multigraphs (WithMultiEdges)
//   - Successor and predecessor sets held as map[to]multiplicity, so
//     HasEdge, AddEdge and RemoveEdge are O(1)
//   - A single sync.RWMutex guarding the adjacency, so concurrent read-only
//     scoring of one graph is safe
//
// Determinism:
//
//	Successors, Predecessors, Neighbors and Edges return results sorted
//	ascending, so algorithms that iterate them produce identical output for
//	identical input.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex() int                       // O(1)
//	AddVertices(n int) int                // O(n)
//	EnsureVertex(id int) error            // O(id-N)
//
//	// Edge lifecycle
//	AddEdge(from, to int) error           // O(1) amortized
//	RemoveEdge(from, to int) error        // O(1)
//	HasEdge(from, to int) bool            // O(1)
//
//	// Query
//	Successors / Predecessors / Neighbors // O(d log d)
//	InDegree / OutDegree / Degree         // O(1) / O(d)
//	Edges() []Edge                        // O(E log E)
//	Snapshot() *Adjacency                 // O(V + E)
//
//	// Cloning and views
//	Clone / CloneEmpty / Clear
//	Relabel(g, perm)
//
// Errors:
//
//	ErrNilGraph            - nil *Graph passed to a package function
//	ErrInvalidVertex       - negative or out-of-range vertex index
//	ErrEdgeNotFound        - missing edge
//	ErrLoopNotAllowed      - self-loop when loops are disabled
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled
//	ErrInvalidPermutation  - Relabel received something other than a permutation
package core
