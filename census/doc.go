// Package census counts directed triads (three-node subgraphs) with the
// subquadratic algorithm of Batagelj and Mrvar.
//
// Every unordered node triple of a directed graph falls into exactly one of
// sixteen isomorphism classes, named by the MAN convention ("003", "012",
// "102", "021D", ..., "300"). The census is the count per class.
//
// Algorithm:
//
//	for each node v, for each neighbor u of v with rank(u) > rank(v):
//	    S = N(v) ∪ N(u) \ {u, v}
//	    for w in S:
//	        if rank(u) < rank(w) or (rank(v) < rank(w) < rank(u) and w ∉ N(v)):
//	            count class(tricode(v, u, w))
//
// Each connected triple is visited exactly once. With WithDisconnected the
// dyadic classes are computed in bulk: each (v,u) dyad adds N-|S|-2 to "102"
// when reciprocated and to "012" otherwise, and "003" is C(N,3) minus every
// other class.
//
// Preconditions:
//   - The graph is directed (ErrUndirected otherwise).
//   - No parallel edges: graphs built with core.WithMultiEdges are rejected
//     with ErrMultigraph.
//   - Self-loops are ignored; a node is never its own neighbor.
//
// Complexity: O(m·Δ) time where Δ is the maximum degree, O(N + m) space.
package census
