// Package metrics provides observability for the membership request lifecycle.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks submission outcomes, admin decisions and the submission
// critical-path duration.
type Metrics struct {
	SubmissionsTotal *prometheus.CounterVec
	DecisionsTotal   *prometheus.CounterVec
	SubmitDuration   prometheus.Histogram
}

// New registers all membership metrics against the given registerer. Pass
// prometheus.DefaultRegisterer in production and a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SubmissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "memberdir_submissions_total",
			Help: "Membership request submissions by outcome",
		}, []string{"outcome"}),
		DecisionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "memberdir_decisions_total",
			Help: "Admin decisions on membership requests by action",
		}, []string{"action"}),
		SubmitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "memberdir_submit_duration_seconds",
			Help:    "Duration of membership request submissions",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

// ObserveSubmission records one submission with its outcome label.
func (m *Metrics) ObserveSubmission(outcome string, started time.Time) {
	m.SubmissionsTotal.WithLabelValues(outcome).Inc()
	m.SubmitDuration.Observe(time.Since(started).Seconds())
}

// IncDecision records one admin decision.
func (m *Metrics) IncDecision(action string) {
	m.DecisionsTotal.WithLabelValues(action).Inc()
}
