// Package ensemble assesses the significance of graph statistics against a
// null model of degree-preserving randomized graphs.
//
// Run scores the observed graph with every Scorer, then builds N members on
// a worker pool. Each member clones the graph, rewires it with its own PCG
// stream and is scored with the same Scorers. Report.ZScores standardizes
// every observed statistic against the surviving members.
//
// Members that fail are dropped and listed in Report.Failures; only an
// ensemble without survivors is an error. Runs and members are traced with
// OpenTelemetry spans on the global tracer provider and, with WithMetrics,
// counted in a Prometheus registry.
package ensemble
