// Package metrics holds the Prometheus collectors exposed on /metrics.
//
// A single Metrics value is built at startup and handed to the components
// that record into it.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups every collector owned by the process.
type Metrics struct {
	// HTTP API
	httpRequestDuration *prometheus.HistogramVec
	httpRequestsTotal   *prometheus.CounterVec

	// Snapshot state
	cyclesAppliedTotal   prometheus.Counter
	lastCycleTimestamp   prometheus.Gauge
	snapshotTransactions prometheus.Gauge
	snapshotVerdicts     *prometheus.GaugeVec
	entropyPresent       prometheus.Gauge
}

// New creates the collectors and registers them. A nil registry means
// prometheus.DefaultRegisterer.
func New(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "txproof_http_request_duration_seconds",
				Help:    "Duration of HTTP API requests in seconds",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"route", "method", "status"},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "txproof_http_requests_total",
				Help: "Total number of HTTP API requests",
			},
			[]string{"route", "method", "status"},
		),
		cyclesAppliedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "txproof_cycles_applied_total",
				Help: "Verification cycles whose result replaced the snapshot",
			},
		),
		lastCycleTimestamp: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "txproof_last_cycle_timestamp_seconds",
				Help: "Unix time of the last applied snapshot",
			},
		),
		snapshotTransactions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "txproof_snapshot_transactions",
				Help: "Transactions in the current snapshot",
			},
		),
		snapshotVerdicts: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "txproof_snapshot_verdicts",
				Help: "Transactions in the current snapshot by check kind and verdict",
			},
			[]string{"kind", "outcome"},
		),
		entropyPresent: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "txproof_entropy_present",
				Help: "1 when the entropy source currently advertises a key, 0 otherwise",
			},
		),
	}
}

// RecordHTTPRequest records one served API request.
func (m *Metrics) RecordHTTPRequest(route, method string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	m.httpRequestDuration.WithLabelValues(route, method, status).Observe(duration.Seconds())
	m.httpRequestsTotal.WithLabelValues(route, method, status).Inc()
}

// SnapshotStats summarizes an applied snapshot. NewCycle is false when the
// snapshot was republished after an on-demand re-check of the same cycle.
type SnapshotStats struct {
	NewCycle       bool
	UpdatedAt      time.Time
	Transactions   int
	Verdicts       map[string]map[string]int // kind -> outcome -> count
	EntropyPresent bool
}

// RecordSnapshot replaces the snapshot gauges with stats. The cycle counter
// and timestamp only move for a new cycle.
func (m *Metrics) RecordSnapshot(stats SnapshotStats) {
	if stats.NewCycle {
		m.cyclesAppliedTotal.Inc()
		m.lastCycleTimestamp.Set(float64(stats.UpdatedAt.Unix()))
	}
	m.snapshotTransactions.Set(float64(stats.Transactions))

	m.snapshotVerdicts.Reset()
	for kind, outcomes := range stats.Verdicts {
		for outcome, n := range outcomes {
			m.snapshotVerdicts.WithLabelValues(kind, outcome).Set(float64(n))
		}
	}

	if stats.EntropyPresent {
		m.entropyPresent.Set(1)
	} else {
		m.entropyPresent.Set(0)
	}
}
