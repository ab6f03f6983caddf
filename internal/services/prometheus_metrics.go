package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	feedFetchTotal           *prometheus.CounterVec
	feedFetchDuration        prometheus.Histogram
	feedRecords              prometheus.Gauge
	feedSnapshotRestored     prometheus.Counter
	circuitBreakerState      *prometheus.GaugeVec
	filterActionsTotal       *prometheus.CounterVec
	transactionsServedTotal  *prometheus.CounterVec
	transactionsProcessDur   prometheus.Histogram
	transactionsReturnedRows prometheus.Histogram
}

// NewPrometheusMetrics registers the dashboard collectors with reg. A nil reg uses the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		feedFetchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transaction_feed_fetch_total",
				Help: "Total number of transaction feed fetches",
			},
			[]string{"status", "reason"},
		),
		feedFetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transaction_feed_fetch_duration_milliseconds",
				Help:    "Transaction feed fetch duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		feedRecords: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "transaction_feed_records",
				Help: "Number of records in the last fetched feed",
			},
		),
		feedSnapshotRestored: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "transaction_feed_snapshot_restored_total",
				Help: "Total number of times the stored snapshot was served after a failed fetch",
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		filterActionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "filter_actions_total",
				Help: "Total number of filter actions dispatched",
			},
			[]string{"action"},
		),
		transactionsServedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transactions_requests_total",
				Help: "Total number of transaction table requests",
			},
			[]string{"mode"},
		),
		transactionsProcessDur: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transactions_processing_duration_seconds",
				Help:    "Date range processing duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		transactionsReturnedRows: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transactions_matched_rows",
				Help:    "Number of rows matching a transaction table request",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "feed.fetch.success":
		m.feedFetchTotal.WithLabelValues("success", "").Inc()
	case "feed.fetch.failed":
		m.feedFetchTotal.WithLabelValues("failed", tags["reason"]).Inc()
	case "feed.snapshot.restored":
		m.feedSnapshotRestored.Inc()
	case "filter.action":
		if action := tags["action"]; action != "" {
			m.filterActionsTotal.WithLabelValues(action).Inc()
		}
	case "transactions.served":
		if mode := tags["mode"]; mode != "" {
			m.transactionsServedTotal.WithLabelValues(mode).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "feed.fetch":
		m.feedFetchDuration.Observe(float64(duration.Milliseconds()))
	case "transactions.process":
		m.transactionsProcessDur.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "feed.records":
		m.feedRecords.Set(value)
	case "circuit_breaker.state":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	case "transactions.matched":
		m.transactionsReturnedRows.Observe(value)
	}
}
