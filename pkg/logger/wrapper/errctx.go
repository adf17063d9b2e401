package wrap

import (
	"context"
	"errors"
)

// errorWithLogCtx carries the LogCtx that was active where the error happened.
type errorWithLogCtx struct {
	err    error
	logCtx LogCtx
}

func (e *errorWithLogCtx) Error() string {
	return e.err.Error()
}

func (e *errorWithLogCtx) Unwrap() error {
	return e.err
}

// LogCtxOf returns the LogCtx attached to err by Error, if any.
func LogCtxOf(err error) (LogCtx, bool) {
	var e *errorWithLogCtx
	if !errors.As(err, &e) || e == nil {
		return LogCtx{}, false
	}
	return e.logCtx, true
}

// ErrorCtx restores the LogCtx carried by err into ctx before logging it.
// Fields recorded in the error win; fields it lacks keep the values already in ctx.
func ErrorCtx(ctx context.Context, err error) context.Context {
	lc, ok := LogCtxOf(err)
	if !ok {
		return ctx
	}
	return WithLogCtx(ctx, lc)
}
