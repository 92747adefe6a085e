// Package rewire randomizes graphs by degree-preserving edge switching.
//
// Categorize splits the edge set into EdgeGroups that must be switched only
// among themselves:
//
//	Standard (directed):  unidirectional edges, bidirectional pairs
//	Standard (undirected): one undirected group
//	DomainSpecific:        product/substrate × forward/reversible
//
// Randomize then performs flip·|E| switch attempts. Each attempt picks a
// group with probability proportional to its remaining quota, draws two
// distinct members and exchanges their targets: (a,b),(c,d) → (a,d),(c,b).
// Bidirectional groups switch both directions of both pairs at once. An
// attempt is rejected when it would create a self-loop, a duplicate edge or
// a new reciprocal pair, so every vertex keeps its in- and out-degree and
// every group keeps its size.
//
// The random source is always explicit (WithRand or WithSeed); the same
// source and graph yield the same result.
package rewire
