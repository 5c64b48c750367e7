package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	transactionsRecorded      *prometheus.CounterVec
	transactionsDeleted       prometheus.Counter
	ledgersCleared            prometheus.Counter
	dashboardsComputed        prometheus.Counter
	dashboardComputeDuration  prometheus.Histogram
	budgetsSet                prometheus.Counter
	goalsCreated              prometheus.Counter
	authenticationEventsTotal *prometheus.CounterVec
	seededTransactionsTotal   prometheus.Counter
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		transactionsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transactions_recorded_total",
				Help: "Total number of ledger transactions recorded",
			},
			[]string{"category", "flow"},
		),
		transactionsDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_transactions_deleted_total",
				Help: "Total number of ledger transactions deleted",
			},
		),
		ledgersCleared: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "ledgers_cleared_total",
				Help: "Total number of full ledger clears",
			},
		),
		dashboardsComputed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "dashboards_computed_total",
				Help: "Total number of dashboard snapshots computed",
			},
		),
		dashboardComputeDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_compute_duration_milliseconds",
				Help:    "Dashboard snapshot computation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		budgetsSet: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "budgets_set_total",
				Help: "Total number of monthly budget upserts",
			},
		),
		goalsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "savings_goals_created_total",
				Help: "Total number of savings goals created",
			},
		),
		authenticationEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "authentication_events_total",
				Help: "Total number of authentication events",
			},
			[]string{"event_type"},
		),
		seededTransactionsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "seeded_transactions_total",
				Help: "Total number of transactions generated by the seeder",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "ledger.transaction.recorded":
		m.transactionsRecorded.WithLabelValues(tags["category"], tags["flow"]).Inc()
	case "ledger.transaction.deleted":
		m.transactionsDeleted.Inc()
	case "ledger.cleared":
		m.ledgersCleared.Inc()
	case "dashboard.computed":
		m.dashboardsComputed.Inc()
	case "budget.set":
		m.budgetsSet.Inc()
	case "goal.created":
		m.goalsCreated.Inc()
	case "seed.transaction.generated":
		m.seededTransactionsTotal.Inc()
	case "authentication_event":
		if eventType := tags["event_type"]; eventType != "" {
			m.authenticationEventsTotal.WithLabelValues(eventType).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "dashboard.compute":
		m.dashboardComputeDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	// No gauges yet; the interface keeps the door open for queue-style
	// metrics without touching every service constructor.
}
