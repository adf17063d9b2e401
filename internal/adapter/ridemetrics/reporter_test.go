package ridemetrics

import (
	"context"
	"io"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-lifecycle/internal/service/ride"
	"github.com/Temutjin2k/ride-lifecycle/pkg/logger"
	"github.com/Temutjin2k/ride-lifecycle/pkg/metrics"
)

func TestReporter_CountsScenarioOutcomes(t *testing.T) {
	const svc = "ridemetrics-test"
	rep := New(svc)

	_, err := ride.NewRunner(nil, 2, logger.New(slogt.New(t)), rep).
		Run(context.Background(), io.Discard, "cancel-before-confirm", "reselect-car")
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.RideTransitionsTotal.WithLabelValues(svc, "Idle", "selectCar", "CarSelected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RideDenialsTotal.WithLabelValues(svc, "TripCancelled", "confirmOrder")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RideTransitionsTotal.WithLabelValues(svc, "CarSelected", "selectCar", "CarSelected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RideSessionsTotal.WithLabelValues(svc, "TripCancelled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.RideSessionsTotal.WithLabelValues(svc, "CarSelected")))
	assert.Zero(t, testutil.ToFloat64(metrics.RideSessionsActive.WithLabelValues(svc)))
}

func TestReporter_InterruptedScenariosCloseSessions(t *testing.T) {
	const svc = "ridemetrics-cancelled"
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ride.NewRunner(nil, 1, logger.New(slogt.New(t)), New(svc)).
		Run(ctx, io.Discard, "normal-trip", "reselect-car")
	require.ErrorIs(t, err, context.Canceled)

	assert.Zero(t, testutil.ToFloat64(metrics.RideSessionsActive.WithLabelValues(svc)))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.RideSessionsTotal.WithLabelValues(svc, "Idle")))
}
