package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Temutjin2k/ride-lifecycle/pkg/logger"
	wrap "github.com/Temutjin2k/ride-lifecycle/pkg/logger/wrapper"
)

// StatusSource reports what the running engine is doing.
type StatusSource interface {
	Status(ctx context.Context) map[string]any
}

type Health struct {
	serviceName string
	started     time.Time
	source      StatusSource
	log         logger.Logger
}

// NewHealth creates the health handler. source may be nil.
func NewHealth(serviceName string, source StatusSource, log logger.Logger) *Health {
	return &Health{
		serviceName: serviceName,
		started:     time.Now(),
		source:      source,
		log:         log,
	}
}

// HealthCheck - returns system information.
func (h *Health) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "health_check")

	info := map[string]any{
		"service-name": h.serviceName,
		"uptime":       time.Since(h.started).Round(time.Second).String(),
	}
	if h.source != nil {
		for k, v := range h.source.Status(ctx) {
			info[k] = v
		}
	}

	response := envelope{
		"status":      "available",
		"system_info": info,
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.log.Error(ctx, "healthcheck", err)
		errorResponse(w, http.StatusInternalServerError, "failed to encode health response")
	}
}
