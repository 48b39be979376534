// Package metrics registers the service's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mentionwatch"

// Metrics holds all Prometheus collectors for the service.
type Metrics struct {
	RankingComputationsTotal *prometheus.CounterVec
	RankingDurationSeconds   prometheus.Histogram
	SourceFetchesTotal       *prometheus.CounterVec
	SnapshotWritesTotal      *prometheus.CounterVec
	CollectRunsTotal         *prometheus.CounterVec
}

// New creates and registers all collectors. A nil registerer falls back
// to the default registry.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		RankingComputationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ranking_computations_total",
				Help:      "Comprehensive ranking computations by status",
			},
			[]string{"status"},
		),
		RankingDurationSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "ranking_duration_seconds",
				Help:      "Duration of comprehensive ranking computations",
				Buckets:   prometheus.DefBuckets,
			},
		),
		SourceFetchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "source_fetches_total",
				Help:      "Mention source fetches by source and outcome",
			},
			[]string{"source", "outcome"},
		),
		SnapshotWritesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "snapshot_writes_total",
				Help:      "Rank snapshot writes by outcome",
			},
			[]string{"outcome"},
		),
		CollectRunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "collect_runs_total",
				Help:      "Mention collection runs by source and status",
			},
			[]string{"source", "status"},
		),
	}
}
