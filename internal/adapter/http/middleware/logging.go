package middleware

import (
	"net/http"
	"time"
)

// Logging logs start and end of every request.
func (m *Middleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &statusRecorder{ResponseWriter: w}

		m.log.Debug(r.Context(), "started",
			"method", r.Method,
			"URL", r.URL.Path,
			"request-host", r.Host,
		)

		next.ServeHTTP(rw, r)

		m.log.Debug(r.Context(), "completed",
			"method", r.Method,
			"URL", r.URL.Path,
			"status", rw.Status(),
			"duration", time.Since(start),
		)
	})
}

// statusRecorder wraps http.ResponseWriter to track response status
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rw *statusRecorder) WriteHeader(status int) {
	if rw.status == 0 {
		rw.status = status
	}
	rw.ResponseWriter.WriteHeader(status)
}

func (rw *statusRecorder) Write(b []byte) (int, error) {
	if rw.status == 0 {
		rw.status = http.StatusOK
	}
	return rw.ResponseWriter.Write(b)
}

// Status returns 200 when the handler never wrote anything.
func (rw *statusRecorder) Status() int {
	if rw.status == 0 {
		return http.StatusOK
	}
	return rw.status
}
