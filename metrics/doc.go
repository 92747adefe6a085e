// Package metrics exposes Prometheus counters and histograms for switch
// attempts and ensemble members. A Registry plugs into rewire as an Observer
// and into ensemble through ensemble.WithMetrics.
package metrics
