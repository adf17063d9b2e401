package middleware

import (
	"net/http"
	"time"

	"github.com/Temutjin2k/ride-lifecycle/pkg/metrics"
)

// Metrics records request count, latency and in-flight gauge for every path but /metrics.
func (m *Middleware) Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		metrics.HttpRequestsInFlight.WithLabelValues(m.serviceName).Inc()
		defer metrics.HttpRequestsInFlight.WithLabelValues(m.serviceName).Dec()

		rw := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rw, r)

		metrics.RecordHTTPMetrics(m.serviceName, r.Method, r.URL.Path, rw.Status(), time.Since(start))
	})
}
