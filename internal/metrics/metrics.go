package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kinomatch_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kinomatch_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	// Outcome is one of "picked", "empty", "denied", "error".
	DailyPicks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kinomatch_daily_picks_total",
			Help: "Daily movie pick requests by outcome",
		},
		[]string{"outcome"},
	)

	CatalogRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kinomatch_catalog_requests_total",
			Help: "Outbound movie catalog requests by endpoint and result",
		},
		[]string{"endpoint", "result"},
	)

	// 0 closed, 1 half-open, 2 open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "kinomatch_circuit_breaker_state",
			Help: "Circuit breaker state",
		},
		[]string{"name"},
	)

	WebsocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "kinomatch_websocket_connections",
			Help: "Currently connected websocket clients",
		},
	)

	NotificationsPushed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kinomatch_ws_events_pushed_total",
			Help: "Events pushed to websocket clients by type",
		},
		[]string{"type"},
	)
)
