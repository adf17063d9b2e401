package wrap

import (
	"context"
	"errors"
)

// Error wraps err with the current LogCtx from the context.
// An error that already carries a LogCtx keeps its chain and takes the newer context.
func Error(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	c := FromContext(ctx)

	var e *errorWithLogCtx
	if errors.As(err, &e) {
		if c == (LogCtx{}) {
			c = e.logCtx
		}
		return &errorWithLogCtx{err: err, logCtx: c}
	}

	return &errorWithLogCtx{
		err:    err,
		logCtx: c,
	}
}
