package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OracleMetrics holds all Prometheus metrics for the oracle module
type OracleMetrics struct {
	// Request lifecycle metrics
	RequestsCreated   prometheus.Counter
	RequestsCancelled prometheus.Counter
	RequestsRefunded  prometheus.Counter

	// Fulfillment metrics
	Fulfillments          *prometheus.CounterVec
	FulfillmentRejections *prometheus.CounterVec

	// Price publication metrics
	PricesPublished *prometheus.CounterVec
	AggregatedPrice *prometheus.GaugeVec

	// Fee metrics
	FeesSettled prometheus.Counter
}

var (
	oracleMetricsOnce sync.Once
	oracleMetrics     *OracleMetrics
)

// NewOracleMetrics creates and registers oracle metrics (singleton pattern)
func NewOracleMetrics() *OracleMetrics {
	oracleMetricsOnce.Do(func() {
		oracleMetrics = &OracleMetrics{
			RequestsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "perp",
					Subsystem: "oracle",
					Name:      "requests_created_total",
					Help:      "Total price requests created",
				},
			),
			RequestsCancelled: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "perp",
					Subsystem: "oracle",
					Name:      "requests_cancelled_total",
					Help:      "Total price requests cancelled by their owner",
				},
			),
			RequestsRefunded: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "perp",
					Subsystem: "oracle",
					Name:      "requests_refunded_total",
					Help:      "Total price requests refunded",
				},
			),
			Fulfillments: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "perp",
					Subsystem: "oracle",
					Name:      "fulfillments_total",
					Help:      "Fulfillment attempts by outcome",
				},
				[]string{"outcome"},
			),
			FulfillmentRejections: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "perp",
					Subsystem: "oracle",
					Name:      "fulfillment_rejections_total",
					Help:      "Rejected fulfillment bundles by reason",
				},
				[]string{"reason"},
			),
			PricesPublished: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "perp",
					Subsystem: "oracle",
					Name:      "prices_published_total",
					Help:      "Price points published per asset index",
				},
				[]string{"asset"},
			),
			AggregatedPrice: promauto.NewGaugeVec(
				prometheus.GaugeOpts{
					Namespace: "perp",
					Subsystem: "oracle",
					Name:      "aggregated_price",
					Help:      "Last aggregated price per asset index, wire scale 1e8",
				},
				[]string{"asset"},
			),
			FeesSettled: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "perp",
					Subsystem: "oracle",
					Name:      "fees_settled_total",
					Help:      "Cumulative fulfillment fees paid to relays",
				},
			),
		}
	})
	return oracleMetrics
}

// GetOracleMetrics returns the singleton oracle metrics instance
func GetOracleMetrics() *OracleMetrics {
	if oracleMetrics == nil {
		return NewOracleMetrics()
	}
	return oracleMetrics
}
