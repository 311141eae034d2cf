package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MarketplaceMetrics holds Prometheus metrics for the marketplace module
type MarketplaceMetrics struct {
	// Job metrics
	JobsSubmitted *prometheus.CounterVec
	JobsCompleted *prometheus.CounterVec
	JobsCancelled prometheus.Counter
	JobsFailed    prometheus.Counter

	// Provider metrics
	ProvidersRegistered prometheus.Counter
	ActiveProviders     prometheus.Gauge

	// Escrow metrics
	EscrowLocked   prometheus.Counter
	EscrowReleased prometheus.Counter
	EscrowRefunded prometheus.Counter
}

var (
	marketplaceMetricsOnce sync.Once
	marketplaceMetrics     *MarketplaceMetrics
)

// NewMarketplaceMetrics creates and registers marketplace metrics (singleton pattern)
func NewMarketplaceMetrics() *MarketplaceMetrics {
	marketplaceMetricsOnce.Do(func() {
		marketplaceMetrics = &MarketplaceMetrics{
			JobsSubmitted: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "medas",
					Subsystem: "marketplace",
					Name:      "jobs_submitted_total",
					Help:      "Total jobs submitted",
				},
				[]string{"job_type"},
			),
			JobsCompleted: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "medas",
					Subsystem: "marketplace",
					Name:      "jobs_completed_total",
					Help:      "Total jobs completed",
				},
				[]string{"job_type"},
			),
			JobsCancelled: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "medas",
					Subsystem: "marketplace",
					Name:      "jobs_cancelled_total",
					Help:      "Total jobs cancelled by clients",
				},
			),
			JobsFailed: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "medas",
					Subsystem: "marketplace",
					Name:      "jobs_failed_total",
					Help:      "Total jobs failed by providers",
				},
			),
			ProvidersRegistered: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "medas",
					Subsystem: "marketplace",
					Name:      "providers_registered_total",
					Help:      "Total provider registrations",
				},
			),
			ActiveProviders: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "medas",
					Subsystem: "marketplace",
					Name:      "active_providers",
					Help:      "Current number of active providers",
				},
			),
			EscrowLocked: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "medas",
					Subsystem: "marketplace",
					Name:      "escrow_locked_total",
					Help:      "Total escrow locked",
				},
			),
			EscrowReleased: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "medas",
					Subsystem: "marketplace",
					Name:      "escrow_released_total",
					Help:      "Total escrow released on completion",
				},
			),
			EscrowRefunded: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "medas",
					Subsystem: "marketplace",
					Name:      "escrow_refunded_total",
					Help:      "Total escrow refunded to clients",
				},
			),
		}
	})

	return marketplaceMetrics
}

// amountValue converts a coin amount to a metric sample. Amounts beyond the
// int64 range lose precision but must not panic.
func amountValue(amount math.Int) float64 {
	f, _ := new(big.Float).SetInt(amount.BigInt()).Float64()
	return f
}
