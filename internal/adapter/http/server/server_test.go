package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-lifecycle/config"
	"github.com/Temutjin2k/ride-lifecycle/pkg/logger"
	"github.com/Temutjin2k/ride-lifecycle/pkg/metrics"
)

type staticStatus map[string]any

func (s staticStatus) Status(context.Context) map[string]any { return s }

func newAPI(t *testing.T, addr string) *API {
	t.Helper()
	api, err := New(config.ObservabilityConfig{
		Addr:            addr,
		ServiceName:     "ride-test",
		ShutdownTimeout: time.Second,
	}, staticStatus{"mode": "scenario"}, logger.New(slogt.New(t)))
	require.NoError(t, err)
	return api
}

func TestNew_RequiresAddr(t *testing.T) {
	_, err := New(config.ObservabilityConfig{}, nil, logger.New(slogt.New(t)))
	require.Error(t, err)
}

func TestHealth(t *testing.T) {
	api := newAPI(t, "127.0.0.1:0")

	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	var body struct {
		Status     string         `json:"status"`
		SystemInfo map[string]any `json:"system_info"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "available", body.Status)
	assert.Equal(t, "ride-test", body.SystemInfo["service-name"])
	assert.Equal(t, "scenario", body.SystemInfo["mode"])
}

func TestHealth_MethodNotAllowed(t *testing.T) {
	api := newAPI(t, "127.0.0.1:0")

	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/health", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	api := newAPI(t, "127.0.0.1:0")
	metrics.RecordTransition("ride-test", "Idle", "selectCar", "CarSelected")

	// one request so the http metrics have a sample
	api.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "ride_transitions_total")
	assert.Contains(t, body, `service="ride-test"`)
	assert.Contains(t, body, "http_requests_total")
}

func TestRunStop(t *testing.T) {
	api := newAPI(t, "127.0.0.1:0")

	errCh := make(chan error, 1)
	require.NoError(t, api.Run(context.Background(), errCh))
	require.False(t, strings.HasSuffix(api.Addr(), ":0"))

	resp, err := http.Get(fmt.Sprintf("http://%s/health", api.Addr()))
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.NoError(t, api.Stop(context.Background()))
	select {
	case err := <-errCh:
		t.Fatalf("unexpected serve error: %v", err)
	default:
	}
}
