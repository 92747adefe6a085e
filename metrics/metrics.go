// SPDX-License-Identifier: MIT
// File: metrics.go
// Role: Prometheus collectors for rewiring and ensemble runs.
// Contract:
//   - Every Registry owns a private prometheus.Registry, so independent runs
//     and tests never collide on collector names.
//   - A nil *Registry is a valid no-op recorder.

package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Member status label values.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Registry holds the motifnull collectors.
type Registry struct {
	SwitchAttemptsTotal  *prometheus.CounterVec
	SwitchSuccessesTotal *prometheus.CounterVec
	MembersTotal         *prometheus.CounterVec
	MemberDuration       prometheus.Histogram
	SuccessRatio         prometheus.Histogram

	registry *prometheus.Registry
}

// NewRegistry creates a Registry with all collectors registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initSwitchMetrics()
	r.initEnsembleMetrics()

	return r
}

func (r *Registry) initSwitchMetrics() {
	r.SwitchAttemptsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "motifnull_switch_attempts_total",
			Help: "Total number of edge switch attempts",
		},
		[]string{"category"},
	)

	r.SwitchSuccessesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "motifnull_switch_successes_total",
			Help: "Total number of accepted edge switches",
		},
		[]string{"category"},
	)
}

func (r *Registry) initEnsembleMetrics() {
	r.MembersTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "motifnull_ensemble_members_total",
			Help: "Total number of ensemble members by outcome",
		},
		[]string{"status"},
	)

	r.MemberDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "motifnull_member_duration_seconds",
			Help:    "Time to randomize and score one ensemble member",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		},
	)

	r.SuccessRatio = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "motifnull_switch_success_ratio",
			Help:    "Ratio of accepted to attempted switches per member",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		},
	)
}

// ObserveSwitch counts one switch attempt. It satisfies rewire.Observer.
func (r *Registry) ObserveSwitch(category string, accepted bool) {
	if r == nil {
		return
	}
	r.SwitchAttemptsTotal.WithLabelValues(category).Inc()
	if accepted {
		r.SwitchSuccessesTotal.WithLabelValues(category).Inc()
	}
}

// RecordMember records the outcome of one ensemble member.
func (r *Registry) RecordMember(status string, ratio float64, duration time.Duration) {
	if r == nil {
		return
	}
	r.MembersTotal.WithLabelValues(status).Inc()
	r.MemberDuration.Observe(duration.Seconds())
	if status == StatusOK {
		r.SuccessRatio.Observe(ratio)
	}
}

// GetPrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// WriteText writes every collected family in the Prometheus text format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err = enc.Encode(mf); err != nil {
			return err
		}
	}

	return nil
}
