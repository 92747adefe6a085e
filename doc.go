// Package motifnull measures structural statistics of directed and
// undirected graphs against a degree-preserving null model.
//
// Packages:
//
//	core/        Graph, Edge and vertex Labels
//	builder/     deterministic graph constructors and edge-list reading
//	census/      triadic census (16 MAN classes)
//	community/   spectral modularity bisection with Kernighan–Lin refinement
//	rewire/      edge categorization and degree-preserving switching
//	correlation/ degree–degree assortativity
//	zscore/      observed-vs-ensemble standardization
//	ensemble/    parallel null-model runs and z-score profiles
//	metrics/     Prometheus instrumentation of switching and ensembles
//	config/      viper configuration and zerolog setup
//	cmd/motifnull command-line entry point
//
// A typical flow builds a graph, scores it with one or more ensemble
// Scorers, and compares the observation with the distribution over
// randomized copies:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Cycle(6))
//	rep, err := ensemble.Run(ctx, g, []ensemble.Scorer{ensemble.CensusScorer{}},
//		ensemble.WithMembers(100), ensemble.WithSeed(7))
package motifnull
