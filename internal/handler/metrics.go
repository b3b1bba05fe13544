package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersPlaced = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "orders_placed_total",
			Help:      "Total number of orders placed over HTTP",
		},
	)

	ordersRejected = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "orders_rejected_total",
			Help:      "Total number of order placements rejected for any reason",
		},
	)

	ordersCancelled = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "http",
			Name:      "orders_cancelled_total",
			Help:      "Total number of orders cancelled by customers",
		},
	)
)

var (
	checkoutsProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_processed_total",
			Help:      "Total number of successfully processed checkout messages",
		},
	)

	checkoutsFailed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_failed_total",
			Help:      "Total number of failed checkout message attempts",
		},
	)

	checkoutsDLQ = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "checkouts_dlq_total",
			Help:      "Total number of checkout messages written to DLQ",
		},
	)

	commitErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	checkoutProcessingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "storefront",
			Subsystem: "kafka_consumer",
			Name:      "checkout_processing_duration_seconds",
			Help:      "Histogram of checkout processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)
)
