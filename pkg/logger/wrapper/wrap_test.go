package wrap

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogCtx_MergesExisting(t *testing.T) {
	ctx := WithSessionID(context.Background(), "s-1")
	ctx = WithLogCtx(ctx, LogCtx{Action: "select_car"})

	lc := FromContext(ctx)
	assert.Equal(t, "s-1", lc.SessionID)
	assert.Equal(t, "select_car", lc.Action)
}

func TestWithAction_Overrides(t *testing.T) {
	ctx := WithAction(context.Background(), "first")
	ctx = WithScenario(ctx, "normal-trip")
	ctx = WithAction(ctx, "second")

	lc := FromContext(ctx)
	assert.Equal(t, "second", lc.Action)
	assert.Equal(t, "normal-trip", lc.Scenario)
}

func TestError_Nil(t *testing.T) {
	assert.NoError(t, Error(context.Background(), nil))
}

func TestError_CarriesContext(t *testing.T) {
	base := errors.New("boom")
	ctx := WithSessionID(WithAction(context.Background(), "inner"), "s-2")

	err := Error(ctx, base)
	require.ErrorIs(t, err, base)

	restored := ErrorCtx(context.Background(), err)
	assert.Equal(t, "inner", FromContext(restored).Action)
	assert.Equal(t, "s-2", GetSessionID(restored))
}

func TestError_RewrapKeepsChain(t *testing.T) {
	base := errors.New("boom")
	inner := Error(WithAction(context.Background(), "inner"), base)
	outer := Error(WithAction(context.Background(), "outer"), fmt.Errorf("run: %w", inner))

	require.ErrorIs(t, outer, base)
	assert.Equal(t, "run: boom", outer.Error())
	assert.Equal(t, "outer", FromContext(ErrorCtx(context.Background(), outer)).Action)

	// without a new context the previous one is kept
	kept := Error(context.Background(), inner)
	assert.Equal(t, "inner", FromContext(ErrorCtx(context.Background(), kept)).Action)
}

func TestLogCtxOf(t *testing.T) {
	_, ok := LogCtxOf(errors.New("plain"))
	assert.False(t, ok)

	err := fmt.Errorf("outer: %w", Error(WithScenario(context.Background(), "payment-retry"), errors.New("inner")))
	lc, ok := LogCtxOf(err)
	require.True(t, ok)
	assert.Equal(t, "payment-retry", lc.Scenario)
}

func TestErrorCtx_FillsGapsFromCaller(t *testing.T) {
	err := Error(WithSessionID(context.Background(), "s-1"), errors.New("boom"))

	ctx := ErrorCtx(WithRequestID(WithAction(context.Background(), "app_run"), "r-1"), err)
	assert.Equal(t, LogCtx{Action: "app_run", SessionID: "s-1", RequestID: "r-1"}, FromContext(ctx))
}
