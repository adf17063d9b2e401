package modes

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/Temutjin2k/ride-lifecycle/config"
	"github.com/Temutjin2k/ride-lifecycle/internal/adapter/console"
	"github.com/Temutjin2k/ride-lifecycle/internal/adapter/http/server"
	"github.com/Temutjin2k/ride-lifecycle/internal/adapter/prompt"
	"github.com/Temutjin2k/ride-lifecycle/internal/adapter/ridemetrics"
	"github.com/Temutjin2k/ride-lifecycle/internal/domain/models"
	"github.com/Temutjin2k/ride-lifecycle/internal/domain/types"
	"github.com/Temutjin2k/ride-lifecycle/internal/service/ride"
	"github.com/Temutjin2k/ride-lifecycle/pkg/logger"
)

// InteractiveService lets an operator drive one ride session by hand.
type InteractiveService struct {
	driver     *prompt.Driver
	out        io.Writer
	httpServer *server.API

	mu    sync.Mutex
	state types.RideState
	steps int

	log logger.Logger
}

func NewInteractive(ctx context.Context, cfg config.Config, chooser prompt.Chooser, out io.Writer, log logger.Logger) (*InteractiveService, error) {
	output, err := console.New(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to create console output: %w", err)
	}

	s := &InteractiveService{
		out: out,
		log: log,
	}

	observers := []ride.Reporter{s}
	if cfg.Observability.Enabled() {
		observers = append(observers, ridemetrics.New(cfg.Observability.ServiceName))

		s.httpServer, err = server.New(cfg.Observability, s, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create http server: %w", err)
		}
	}

	s.driver = prompt.NewDriver(chooser, output, log, observers...)

	return s, nil
}

func (s *InteractiveService) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.close(ctx)

	errCh := make(chan error, 1)
	if s.httpServer != nil {
		if err := s.httpServer.Run(ctx, errCh); err != nil {
			return err
		}
	}

	done := make(chan error, 1)
	go func() {
		final, err := s.driver.Run(ctx, s.out)
		if err == nil {
			s.log.Info(ctx, "interactive session finished", "final_state", final.State.String())
		}
		done <- err
	}()

	// The terminal owns SIGINT while a prompt is open, so only the driver and server can end the run.
	// On a server error the driver is cancelled, but a prompt already waiting for input stays
	// blocked until the process exits; cmd/ride exits right after Start returns an error.
	select {
	case err := <-done:
		return err
	case errRun := <-errCh:
		cancel()
		return errRun
	}
}

// Report implements ride.Reporter.
func (s *InteractiveService) Report(_ context.Context, o models.Outcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = o.To
	if o.Kind != types.OutcomeCreated {
		s.steps++
	}
}

// Status feeds the health endpoint.
func (s *InteractiveService) Status(context.Context) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"mode":  string(types.ModeInteractive),
		"state": s.state.String(),
		"steps": s.steps,
	}
}

func (s *InteractiveService) close(ctx context.Context) {
	if s.httpServer != nil {
		if err := s.httpServer.Stop(context.WithoutCancel(ctx)); err != nil {
			s.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}
}
