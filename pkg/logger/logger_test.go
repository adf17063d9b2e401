package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wrap "github.com/Temutjin2k/ride-lifecycle/pkg/logger/wrapper"
)

func TestInitLoggerTo_ContextAttributes(t *testing.T) {
	var buf bytes.Buffer
	l := InitLoggerTo(&buf, "ride", LevelDebug)

	ctx := wrap.WithSessionID(wrap.WithAction(context.Background(), "transition"), "s-1")
	l.Info(ctx, "state changed", "to", "CarSelected")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "state changed", rec["message"])
	assert.Equal(t, "ride", rec["service"])
	assert.Equal(t, "transition", rec["action"])
	assert.Equal(t, "s-1", rec["session_id"])
	assert.Equal(t, "CarSelected", rec["to"])
	assert.Contains(t, rec, "timestamp")
}

func TestInitLoggerTo_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := InitLoggerTo(&buf, "ride", LevelWarn)

	l.Debug(context.Background(), "hidden")
	l.Info(context.Background(), "hidden")
	assert.Zero(t, buf.Len())

	l.Error(context.Background(), "visible", errors.New("boom"))
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, map[string]any{"msg": "boom"}, rec["error"])
}

func TestNew_WrapsSlog(t *testing.T) {
	l := New(slogt.New(t))
	require.NotNil(t, l.GetSlogLogger())
	l.Debug(wrap.WithScenario(context.Background(), "normal-trip"), "routed to t.Log")
}

func TestValidateLogLevel(t *testing.T) {
	for _, lvl := range []string{LevelDebug, LevelInfo, LevelWarn, LevelError} {
		assert.True(t, ValidateLogLevel(lvl), lvl)
	}
	assert.False(t, ValidateLogLevel("TRACE"))
	assert.False(t, ValidateLogLevel("debug"))
}

func TestError_RestoresContextFromError(t *testing.T) {
	var buf bytes.Buffer
	l := InitLoggerTo(&buf, "ride", LevelDebug)

	inner := wrap.WithSessionID(wrap.WithScenario(wrap.WithAction(context.Background(), "scenario_run"), "normal-trip"), "s-9")
	err := wrap.Error(inner, context.Canceled)

	// the caller only knows its own action
	outer := wrap.WithAction(context.Background(), "app_run")
	l.Error(wrap.ErrorCtx(outer, err), "failed to run application", err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "failed to run application", rec["message"])
	assert.Equal(t, "scenario_run", rec["action"])
	assert.Equal(t, "normal-trip", rec["scenario"])
	assert.Equal(t, "s-9", rec["session_id"])
}

func TestError_PlainErrorKeepsCallerContext(t *testing.T) {
	var buf bytes.Buffer
	l := InitLoggerTo(&buf, "ride", LevelDebug)

	ctx := wrap.WithAction(context.Background(), "app_start")
	err := errors.New("bad config")
	l.Error(wrap.ErrorCtx(ctx, err), "failed to configure application", err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "app_start", rec["action"])
	assert.NotContains(t, rec, "scenario")
}
