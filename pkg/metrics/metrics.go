package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
		[]string{"service"},
	)

	// Ride metrics
	RideTransitionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ride_transitions_total",
			Help: "Total number of accepted ride actions",
		},
		[]string{"service", "from", "action", "to"},
	)

	RideDenialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ride_denials_total",
			Help: "Total number of ride actions denied in the current state",
		},
		[]string{"service", "state", "action"},
	)

	RideSessionsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ride_sessions_active",
			Help: "Current number of open ride sessions",
		},
		[]string{"service"},
	)

	RideSessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ride_sessions_total",
			Help: "Total number of finished ride sessions by final state",
		},
		[]string{"service", "final_state"},
	)

	ScenarioDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ride_scenario_duration_seconds",
			Help:    "Scripted scenario duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
		},
		[]string{"service", "scenario"},
	)
)

// RecordHTTPMetrics records HTTP request metrics
func RecordHTTPMetrics(service, method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	HttpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(service, method, path, status).Observe(duration.Seconds())
}

// RecordTransition records an accepted ride action
func RecordTransition(service, from, action, to string) {
	RideTransitionsTotal.WithLabelValues(service, from, action, to).Inc()
}

// RecordDenial records a denied ride action
func RecordDenial(service, state, action string) {
	RideDenialsTotal.WithLabelValues(service, state, action).Inc()
}

// SessionOpened increments the active sessions gauge
func SessionOpened(service string) {
	RideSessionsActive.WithLabelValues(service).Inc()
}

// SessionClosed decrements the active sessions gauge and counts the final state
func SessionClosed(service, finalState string) {
	RideSessionsActive.WithLabelValues(service).Dec()
	RideSessionsTotal.WithLabelValues(service, finalState).Inc()
}

// RecordScenario records scenario duration
func RecordScenario(service, scenario string, duration time.Duration) {
	ScenarioDuration.WithLabelValues(service, scenario).Observe(duration.Seconds())
}
