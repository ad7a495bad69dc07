package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feiras_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feiras_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ChatUpstreamFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feiras_chat_upstream_failures_total",
			Help: "Total number of failed chat provider calls by reason",
		},
		[]string{"provider", "reason"},
	)

	ChatSnapshotRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "feiras_chat_snapshot_rows",
			Help: "Rows per table in the current chat context snapshot",
		},
		[]string{"table"},
	)
)
