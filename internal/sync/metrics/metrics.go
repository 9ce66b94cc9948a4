// Package metrics provides observability for the sync pipeline.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the sync module.
type Metrics struct {
	// Sync outcomes by result
	SyncOutcome *prometheus.CounterVec

	// Badges granted by track
	BadgesGained *prometheus.CounterVec

	// Full pipeline latency
	SyncLatency prometheus.Histogram
}

// New creates a new Metrics instance with all sync module metrics registered.
func New() *Metrics {
	return &Metrics{
		SyncOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rolesync_sync_outcomes_total",
			Help: "Total sync outcomes by result",
		}, []string{"outcome"}), // outcome: "success", "not_linked", "invalid", "error"

		BadgesGained: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "rolesync_badges_gained_total",
			Help: "Total badges newly granted by progression track",
		}, []string{"track"}),

		SyncLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "rolesync_sync_duration_seconds",
			Help:    "Duration of a full sync including store and membership calls",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
	}
}

// IncrementOutcome records a sync outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.SyncOutcome.WithLabelValues(outcome).Inc()
	}
}

// IncrementBadgesGained records newly granted badges for a track.
func (m *Metrics) IncrementBadgesGained(track string, n int) {
	if m != nil && n > 0 {
		m.BadgesGained.WithLabelValues(track).Add(float64(n))
	}
}

// ObserveSyncLatency records the total pipeline duration.
func (m *Metrics) ObserveSyncLatency(d time.Duration) {
	if m != nil {
		m.SyncLatency.Observe(d.Seconds())
	}
}
