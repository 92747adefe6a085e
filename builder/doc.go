// Package builder provides functional-options graph constructors used as
// fixtures, CLI inputs and null-model baselines.
//
// The package offers:
//
//   - BuildGraph(gopts, bopts, cons...): one orchestrator that creates a
//     core.Graph and applies Constructors in order.
//   - Options: WithSeed, WithRand (shared PCG stream for stochastic builders),
//     WithOffset (first vertex index used by a constructor).
//   - Topologies: Cycle, Path, Star, Complete, CompleteBipartite.
//   - Random models: RandomSparse (Erdős–Rényi) and RandomBipartite
//     (Erdős–Rényi restricted to a top/bottom bipartition).
//   - Explicit inputs: FromEdges and ReadEdgeList (whitespace separated
//     "from to" lines with '#' comments, string labels mapped via core.Labels).
//
// Guarantees:
//
//   - Determinism: same inputs, options, seed and constructor order produce
//     identical graphs.
//   - Option constructors panic on meaningless values; constructors never
//     panic and return sentinel errors wrapped with method context.
package builder
