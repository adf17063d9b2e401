package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	wrap "github.com/Temutjin2k/ride-lifecycle/pkg/logger/wrapper"
)

const (
	LevelDebug string = "DEBUG"
	LevelInfo  string = "INFO"
	LevelWarn  string = "WARN"
	LevelError string = "ERROR"
)

type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, err error, args ...any)
	GetSlogLogger() *slog.Logger
}

type logger struct {
	slog *slog.Logger
}

// InitLogger creates a JSON logger writing to stderr.
// Stdout is reserved for the ride report.
func InitLogger(serviceName, logLevel string) Logger {
	return InitLoggerTo(os.Stderr, serviceName, logLevel)
}

// InitLoggerTo creates a JSON logger writing to w with service name and log level
func InitLoggerTo(w io.Writer, serviceName, logLevel string) Logger {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	level := new(slog.LevelVar)
	level.Set(parseLevel(logLevel))

	handler := &contextHandler{
		handler: slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				// Rename 'msg' to 'message'
				if a.Key == slog.MessageKey {
					return slog.Attr{Key: "message", Value: a.Value}
				}
				// Format time as ISO 8601
				if a.Key == slog.TimeKey {
					if t, ok := a.Value.Any().(time.Time); ok {
						return slog.Attr{Key: "timestamp", Value: slog.StringValue(t.Format(time.RFC3339))}
					}
				}
				return a
			},
			AddSource: false,
		}),
	}

	base := slog.New(handler).With(
		slog.String("service", serviceName),
		slog.String("hostname", hostname),
	)

	return &logger{
		slog: base,
	}
}

// New wraps an existing slog logger, adding the log context attributes.
func New(base *slog.Logger) Logger {
	return &logger{
		slog: slog.New(&contextHandler{handler: base.Handler()}),
	}
}

func parseLevel(lvl string) slog.Level {
	switch lvl {
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

// Context handler to inject values from context
type contextHandler struct {
	handler slog.Handler
}

func (h *contextHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.handler.Enabled(ctx, lvl)
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if c, ok := ctx.Value(wrap.LogCtxKey).(wrap.LogCtx); ok {
		if c.Action != "" {
			r.AddAttrs(slog.String("action", c.Action))
		}
		if c.SessionID != "" {
			r.AddAttrs(slog.String("session_id", c.SessionID))
		}
		if c.Scenario != "" {
			r.AddAttrs(slog.String("scenario", c.Scenario))
		}
		if c.RequestID != "" {
			r.AddAttrs(slog.String("request_id", c.RequestID))
		}
	}

	return h.handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{handler: h.handler.WithGroup(name)}
}

// Logger methods
func (l *logger) Debug(ctx context.Context, msg string, args ...any) {
	l.slog.DebugContext(ctx, msg, args...)
}

func (l *logger) Info(ctx context.Context, msg string, args ...any) {
	l.slog.InfoContext(ctx, msg, args...)
}

func (l *logger) Warn(ctx context.Context, msg string, args ...any) {
	l.slog.WarnContext(ctx, msg, args...)
}

func (l *logger) Error(ctx context.Context, msg string, err error, args ...any) {
	errMsg := "<nil>"
	if err != nil {
		errMsg = err.Error()
	}
	attrs := []any{
		"error", slog.GroupValue(
			slog.String("msg", errMsg),
		),
	}
	attrs = append(attrs, args...)
	l.slog.ErrorContext(ctx, msg, attrs...)
}

func (l *logger) GetSlogLogger() *slog.Logger {
	return l.slog
}

// ValidateLogLevel validates if the given string is valid logger level(DEBUG, INFO, WARN, ERROR).
func ValidateLogLevel(lvl string) bool {
	switch lvl {
	case LevelDebug, LevelError, LevelWarn, LevelInfo:
		return true
	default:
		return false
	}
}
