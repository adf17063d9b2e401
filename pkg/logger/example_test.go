package logger_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/Temutjin2k/ride-lifecycle/pkg/logger"
	wrap "github.com/Temutjin2k/ride-lifecycle/pkg/logger/wrapper"
)

// Errors wrapped deep in the call chain carry their log context back to the caller.
func Example() {
	ctx := wrap.WithSessionID(context.Background(), "example-session")
	l := logger.InitLogger("example", logger.LevelDebug)

	if err := outer(ctx); err != nil {
		l.Error(wrap.ErrorCtx(ctx, err), "failed to run outer", err)
	}
}

func outer(ctx context.Context) error {
	ctx = wrap.WithAction(ctx, "outer")
	if err := inner(ctx); err != nil {
		return wrap.Error(wrap.ErrorCtx(ctx, err), fmt.Errorf("inner: %w", err))
	}
	return nil
}

func inner(ctx context.Context) error {
	return wrap.Error(wrap.WithAction(ctx, "inner"), errors.New("inner failed"))
}
