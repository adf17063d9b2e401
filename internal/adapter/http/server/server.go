package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Temutjin2k/ride-lifecycle/config"
	"github.com/Temutjin2k/ride-lifecycle/internal/adapter/http/handler"
	"github.com/Temutjin2k/ride-lifecycle/internal/adapter/http/middleware"
	"github.com/Temutjin2k/ride-lifecycle/internal/domain/types"
	"github.com/Temutjin2k/ride-lifecycle/pkg/logger"
	wrap "github.com/Temutjin2k/ride-lifecycle/pkg/logger/wrapper"
)

const readHeaderTimeout = 5 * time.Second

// API serves /health and /metrics next to the ride engine.
type API struct {
	mux    *http.ServeMux
	server *http.Server
	health *handler.Health
	m      *middleware.Middleware

	addr            string
	shutdownTimeout time.Duration
	log             logger.Logger
}

func New(cfg config.ObservabilityConfig, source handler.StatusSource, log logger.Logger) (*API, error) {
	if !cfg.Enabled() {
		return nil, errors.New("observability address is empty")
	}

	api := &API{
		mux:             http.NewServeMux(),
		health:          handler.NewHealth(cfg.ServiceName, source, log),
		m:               middleware.NewMiddleware(cfg.ServiceName, log),
		addr:            cfg.Addr,
		shutdownTimeout: cfg.ShutdownTimeout,
		log:             log,
	}

	api.setupRoutes()

	api.server = &http.Server{
		Addr:              api.addr,
		Handler:           api.withMiddleware(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return api, nil
}

// Handler returns the full middleware chain, used by tests.
func (a *API) Handler() http.Handler {
	return a.server.Handler
}

// Run binds the listener synchronously and serves in the background; serve errors go to errCh.
func (a *API) Run(ctx context.Context, errCh chan<- error) error {
	ctx = wrap.WithAction(ctx, types.ActionHTTPServerStart)

	ln, err := net.Listen("tcp", a.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.addr, err)
	}
	a.addr = ln.Addr().String()

	go func() {
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to serve HTTP: %w", err)
		}
	}()

	return nil
}

// Addr is the bound address once Run has returned.
func (a *API) Addr() string {
	return a.addr
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.shutdownTimeout)
	defer cancel()
	ctx = wrap.WithAction(ctx, types.ActionHTTPServerStop)

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

// withMiddleware applies middlewares to the mux
func (a *API) withMiddleware() http.Handler {
	return a.m.Recover(a.m.RequestID(a.m.Logging(a.m.Metrics(a.mux))))
}
