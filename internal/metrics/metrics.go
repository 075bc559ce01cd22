// Package metrics declares the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goodwill_http_requests_total",
			Help: "Total number of HTTP requests by route and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "goodwill_http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ValuationsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "goodwill_valuations_created_total",
			Help: "Total number of valuations computed and stored",
		},
		[]string{"kind"},
	)

	DatabaseUp = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "goodwill_database_up",
			Help: "Whether the initial database connection attempt succeeded (1) or not (0)",
		},
	)
)
