package middleware

import (
	"net/http"

	"github.com/google/uuid"

	wrap "github.com/Temutjin2k/ride-lifecycle/pkg/logger/wrapper"
)

const RequestIDHeader = "X-Request-ID"

// RequestID puts the incoming X-Request-ID (or a fresh one) into the log context and echoes it back.
func (m *Middleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(wrap.WithRequestID(r.Context(), id)))
	})
}
