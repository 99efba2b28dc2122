package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricSpendOutcome        = "budget.spend"
	MetricBudgetReconciled    = "budget.reconciled"
	MetricEntryAppended       = "ledger.entry.appended"
	MetricPersistenceFailure  = "ledger.persistence.failed"
	MetricEntriesFlushed      = "ledger.entries.flushed"
	MetricPendingEntries      = "ledger.pending"
	MetricPurchaseAmount      = "holdings.purchase.amount"
	MetricForecastRequest     = "forecast.request"
	MetricForecastDuration    = "forecast.duration"
	MetricReconcileDuration   = "budget.reconcile.duration"
	MetricCircuitBreakerState = "circuit_breaker.state"
)

type PrometheusMetrics struct {
	spendOutcomes       *prometheus.CounterVec
	budgetReconciled    *prometheus.CounterVec
	entriesAppended     *prometheus.CounterVec
	persistenceFailures *prometheus.CounterVec
	entriesFlushed      *prometheus.CounterVec
	pendingEntries      *prometheus.GaugeVec
	purchaseAmount      prometheus.Histogram
	forecastRequests    *prometheus.CounterVec
	forecastDuration    prometheus.Histogram
	reconcileDuration   prometheus.Histogram
	circuitBreakerState *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the ledger metrics with reg. Passing nil
// uses the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		spendOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_spend_total",
				Help: "Total number of spend requests by outcome",
			},
			[]string{"outcome"},
		),
		budgetReconciled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_reconciled_total",
				Help: "Total number of budget saves by status",
			},
			[]string{"status"},
		),
		entriesAppended: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_entries_appended_total",
				Help: "Total number of ledger entries appended in memory",
			},
			[]string{"log"},
		),
		persistenceFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_persistence_failures_total",
				Help: "Total number of failed writes to the store",
			},
			[]string{"operation"},
		),
		entriesFlushed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_entries_flushed_total",
				Help: "Total number of pending entries persisted on retry",
			},
			[]string{"log"},
		),
		pendingEntries: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ledger_pending_entries",
				Help: "Entries held in memory awaiting persistence",
			},
			[]string{"log"},
		),
		purchaseAmount: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "holdings_purchase_amount",
				Help:    "Total cost of recorded stock purchases",
				Buckets: prometheus.ExponentialBuckets(1, 10, 8),
			},
		),
		forecastRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "forecast_requests_total",
				Help: "Total number of forecast requests by status",
			},
			[]string{"status"},
		),
		forecastDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "forecast_duration_milliseconds",
				Help:    "Forecast duration including the price provider call",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		reconcileDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_reconcile_duration_milliseconds",
				Help:    "Budget save duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		circuitBreakerState: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricSpendOutcome:
		m.spendOutcomes.WithLabelValues(tags["outcome"]).Inc()
	case MetricBudgetReconciled:
		m.budgetReconciled.WithLabelValues(tags["status"]).Inc()
	case MetricEntryAppended:
		m.entriesAppended.WithLabelValues(tags["log"]).Inc()
	case MetricPersistenceFailure:
		m.persistenceFailures.WithLabelValues(tags["operation"]).Inc()
	case MetricEntriesFlushed:
		m.entriesFlushed.WithLabelValues(tags["log"]).Inc()
	case MetricForecastRequest:
		m.forecastRequests.WithLabelValues(tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricForecastDuration:
		m.forecastDuration.Observe(float64(duration.Milliseconds()))
	case MetricReconcileDuration:
		m.reconcileDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricPendingEntries:
		m.pendingEntries.WithLabelValues(tags["log"]).Set(value)
	case MetricPurchaseAmount:
		m.purchaseAmount.Observe(value)
	case MetricCircuitBreakerState:
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(value)
	}
}
