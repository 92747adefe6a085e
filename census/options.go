// SPDX-License-Identifier: MIT
// File: options.go
// Role: Functional options for Compute.

package census

// Option customizes a census run.
type Option func(*config)

type config struct {
	rank         []int
	disconnected bool
	record       bool
}

// WithRanking supplies an external node→index ordering. rank[v] is the
// position of vertex v; it must be a permutation of 0..N-1.
// The census is identical for every valid ranking; only the visiting order
// and therefore the recorded triples change.
func WithRanking(rank []int) Option {
	return func(c *config) { c.rank = rank }
}

// WithDisconnected additionally reports "003", "012" and "102".
func WithDisconnected() Option {
	return func(c *config) { c.disconnected = true }
}

// WithRecord stores the (v, u, w) triple of every connected triad per class.
func WithRecord() Option {
	return func(c *config) { c.record = true }
}
