package wrap

import (
	"context"
)

type (
	// LogCtx holds contextual information for logging
	LogCtx struct {
		Action    string
		SessionID string
		Scenario  string
		RequestID string
	}

	// logCtxKeyStruct is an unexported type for context keys defined in this package.
	logCtxKeyStruct struct{}
)

// LogCtxKey is the key for log context values
var LogCtxKey = &logCtxKeyStruct{}

// WithLogCtx returns a new context with the provided LogCtx
func WithLogCtx(ctx context.Context, newLc LogCtx) context.Context {
	// Check if there's an existing LogCtx and merge values
	if lc, ok := ctx.Value(LogCtxKey).(LogCtx); ok {
		if newLc.Action == "" {
			newLc.Action = lc.Action
		}
		if newLc.SessionID == "" {
			newLc.SessionID = lc.SessionID
		}
		if newLc.Scenario == "" {
			newLc.Scenario = lc.Scenario
		}
		if newLc.RequestID == "" {
			newLc.RequestID = lc.RequestID
		}
	}
	return context.WithValue(ctx, LogCtxKey, newLc)
}

// WithSessionID adds or updates the SessionID in the LogCtx within the context
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	lc, _ := ctx.Value(LogCtxKey).(LogCtx)
	lc.SessionID = sessionID
	return context.WithValue(ctx, LogCtxKey, lc)
}

// WithScenario adds or updates the Scenario in the LogCtx within the context
func WithScenario(ctx context.Context, scenario string) context.Context {
	lc, _ := ctx.Value(LogCtxKey).(LogCtx)
	lc.Scenario = scenario
	return context.WithValue(ctx, LogCtxKey, lc)
}

// WithRequestID adds or updates the RequestID in the LogCtx within the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	lc, _ := ctx.Value(LogCtxKey).(LogCtx)
	lc.RequestID = requestID
	return context.WithValue(ctx, LogCtxKey, lc)
}

// WithAction adds or updates the Action in the LogCtx within the context
func WithAction(ctx context.Context, action string) context.Context {
	lc, _ := ctx.Value(LogCtxKey).(LogCtx)
	lc.Action = action
	return context.WithValue(ctx, LogCtxKey, lc)
}

// FromContext returns the LogCtx stored in ctx, or a zero value.
func FromContext(ctx context.Context) LogCtx {
	lc, _ := ctx.Value(LogCtxKey).(LogCtx)
	return lc
}

// GetSessionID returns session_id from the LogCtx, if any.
func GetSessionID(ctx context.Context) string {
	return FromContext(ctx).SessionID
}

// GetRequestID returns request_id from the LogCtx, if any.
func GetRequestID(ctx context.Context) string {
	return FromContext(ctx).RequestID
}
