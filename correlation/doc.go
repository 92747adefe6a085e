// Package correlation measures degree assortativity, one of the statistics
// the null-model ensemble standardizes alongside triad counts and modularity.
package correlation
