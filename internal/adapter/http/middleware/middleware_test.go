package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-lifecycle/pkg/logger"
	wrap "github.com/Temutjin2k/ride-lifecycle/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-lifecycle/pkg/metrics"
)

func newMiddleware(t *testing.T) *Middleware {
	return NewMiddleware("mw-test", logger.New(slogt.New(t)))
}

func TestRequestID_KeepsIncoming(t *testing.T) {
	m := newMiddleware(t)

	var seen string
	h := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = wrap.GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
}

func TestRequestID_Generates(t *testing.T) {
	m := newMiddleware(t)

	var seen string
	h := m.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = wrap.GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestRecover(t *testing.T) {
	m := newMiddleware(t)
	h := m.Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "close", rec.Header().Get("Connection"))
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestMetrics_RecordsStatus(t *testing.T) {
	m := newMiddleware(t)
	h := m.Metrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	before := testutil.ToFloat64(metrics.HttpRequestsTotal.WithLabelValues("mw-test", http.MethodGet, "/tea", "418"))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/tea", nil))
	after := testutil.ToFloat64(metrics.HttpRequestsTotal.WithLabelValues("mw-test", http.MethodGet, "/tea", "418"))

	assert.Equal(t, before+1, after)
	assert.Zero(t, testutil.ToFloat64(metrics.HttpRequestsInFlight.WithLabelValues("mw-test")))
}

func TestStatusRecorder_DefaultsToOK(t *testing.T) {
	rw := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	assert.Equal(t, http.StatusOK, rw.Status())

	_, _ = rw.Write([]byte("x"))
	rw.WriteHeader(http.StatusNotFound)
	assert.Equal(t, http.StatusOK, rw.Status())
}
