// Package community partitions graphs by recursive spectral bisection of
// the modularity matrix, following Newman (undirected) and Leicht–Newman
// (directed).
//
// Modularity matrix:
//
//	undirected: B_ij = A_ij - k_i k_j / 2m
//	directed:   B_ij = (A_ij + A_ji) - (k_i^out k_j^in + k_j^out k_i^in) / m
//
// The directed matrix is stored pre-symmetrized, so both modes share one
// symmetric eigen-solver. Directed gains are still divided by 4m, not 8m:
// the symmetrized B already counts every edge from both ends, and 4m makes
// the accumulated gain equal the Leicht–Newman Q. For a working subset S the generalized matrix
// B^(S) subtracts each row's in-S sum from its diagonal, so every row of
// B^(S) sums to zero and a split that leaves S whole has gain 0.
//
// Detect keeps a FIFO queue of index subsets seeded with all vertices. For
// each subset it takes the leading eigenvector of B^(S), converts it to a
// sign vector s (x >= 0 → +1), and computes ΔQ = sᵀB^(S)s / 4m. Subsets with
// ΔQ <= error margin become communities; otherwise s is optionally refined
// with KernighanLin, ΔQ is added to the running modularity and both halves
// are queued. At most N-1 splits can occur.
//
// The accumulated modularity equals Score on the returned partition, which
// delegates to gonum's graph/community.Q as an independent reference.
package community
