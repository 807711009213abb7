package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decor_http_requests_total",
			Help: "Total HTTP requests by method, path and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "decor_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	StoreReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decor_store_reads_total",
			Help: "Backend reads by storage key",
		},
		[]string{"key"},
	)

	StoreWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "decor_store_writes_total",
			Help: "Committed writes by storage key",
		},
		[]string{"key"},
	)

	// SearchDuration tracks ranking time per query. Observability only; it
	// plays no part in scoring.
	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "decor_search_duration_seconds",
			Help:    "Global search execution time in seconds",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5},
		},
	)

	SearchQueriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "decor_search_queries_total",
			Help: "Total global search queries served",
		},
	)

	NotificationsPurgedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "decor_notifications_purged_total",
			Help: "Notifications removed by the age-based purge",
		},
	)
)
