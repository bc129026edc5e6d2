package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	fundsTotal       *prometheus.CounterVec
	depositsTotal    *prometheus.CounterVec
	withdrawalsTotal *prometheus.CounterVec
	reviewsTotal     *prometheus.CounterVec
	reviewDuration   prometheus.Histogram
	transfersTotal   *prometheus.CounterVec
	transferDuration prometheus.Histogram
	fundBalance      *prometheus.GaugeVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		fundsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_funds_total",
				Help: "Total number of fund lifecycle operations",
			},
			[]string{"operation"},
		),
		depositsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_deposits_total",
				Help: "Total number of deposit submissions",
			},
			[]string{"status"},
		),
		withdrawalsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_withdrawals_total",
				Help: "Total number of withdrawal requests",
			},
			[]string{"status"},
		),
		reviewsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_reviews_total",
				Help: "Total number of deposit and withdrawal reviews",
			},
			[]string{"type", "action", "status"},
		),
		reviewDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_review_duration_milliseconds",
				Help:    "Review processing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		transfersTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_transfers_total",
				Help: "Total number of fund transfers",
			},
			[]string{"status"},
		),
		transferDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ledger_transfer_duration_milliseconds",
				Help:    "Fund transfer duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		fundBalance: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ledger_fund_balance",
				Help: "Current fund balance in base currency units",
			},
			[]string{"fund_id"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "ledger_funds_total":
		if operation := tags["operation"]; operation != "" {
			m.fundsTotal.WithLabelValues(operation).Inc()
		}
	case "ledger_deposits_total":
		if status := tags["status"]; status != "" {
			m.depositsTotal.WithLabelValues(status).Inc()
		}
	case "ledger_withdrawals_total":
		if status := tags["status"]; status != "" {
			m.withdrawalsTotal.WithLabelValues(status).Inc()
		}
	case "ledger_reviews_total":
		m.reviewsTotal.WithLabelValues(tags["type"], tags["action"], tags["status"]).Inc()
	case "ledger_transfers_total":
		if status := tags["status"]; status != "" {
			m.transfersTotal.WithLabelValues(status).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "ledger_review_duration":
		m.reviewDuration.Observe(float64(duration.Milliseconds()))
	case "ledger_transfer_duration":
		m.transferDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "ledger_fund_balance" {
		if fundID := tags["fund_id"]; fundID != "" {
			m.fundBalance.WithLabelValues(fundID).Set(value)
		}
	}
}
