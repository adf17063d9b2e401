package modes

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/Temutjin2k/ride-lifecycle/config"
	"github.com/Temutjin2k/ride-lifecycle/internal/adapter/console"
	"github.com/Temutjin2k/ride-lifecycle/internal/adapter/http/server"
	"github.com/Temutjin2k/ride-lifecycle/internal/adapter/ridemetrics"
	"github.com/Temutjin2k/ride-lifecycle/internal/domain/models"
	"github.com/Temutjin2k/ride-lifecycle/internal/domain/types"
	"github.com/Temutjin2k/ride-lifecycle/internal/service/ride"
	"github.com/Temutjin2k/ride-lifecycle/pkg/logger"
)

// ScenarioService plays the configured scripted scenarios once.
type ScenarioService struct {
	runner     *ride.Runner
	names      []string
	out        io.Writer
	httpServer *server.API
	linger     bool

	mu       sync.Mutex
	total    int
	finished int
	denials  int

	log logger.Logger
}

func NewScenario(ctx context.Context, cfg config.Config, out io.Writer, log logger.Logger) (*ScenarioService, error) {
	names := cfg.Scenario.Names
	if len(names) == 0 {
		names = ride.ScenarioNames()
	}
	for _, name := range names {
		if _, err := ride.LookupScenario(name); err != nil {
			return nil, err
		}
	}

	output, err := console.New(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to create console output: %w", err)
	}

	s := &ScenarioService{
		names:  names,
		out:    out,
		total:  len(names),
		linger: cfg.Observability.Linger,
		log:    log,
	}

	observers := []ride.Reporter{s}
	if cfg.Observability.Enabled() {
		observers = append(observers, ridemetrics.New(cfg.Observability.ServiceName))

		s.httpServer, err = server.New(cfg.Observability, s, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create http server: %w", err)
		}
	}

	s.runner = ride.NewRunner(output, cfg.Scenario.Parallelism, log, observers...)

	return s, nil
}

func (s *ScenarioService) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.close(ctx)

	errCh := make(chan error, 1)
	if s.httpServer != nil {
		if err := s.httpServer.Run(ctx, errCh); err != nil {
			return err
		}
	}

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	done := make(chan error, 1)
	go func() {
		_, err := s.runner.Run(ctx, s.out, s.names...)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil || !s.linger || s.httpServer == nil {
			return err
		}
	case errRun := <-errCh:
		cancel()
		<-done
		return errRun
	case sig := <-shutdownCh:
		s.log.Info(ctx, "shuting down application", "signal", sig.String())
		cancel()
		<-done
		return nil
	}

	s.log.Info(ctx, "scenarios finished, serving metrics until interrupted", "address", s.httpServer.Addr())
	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		s.log.Info(ctx, "shuting down application", "signal", sig.String())
		return nil
	case <-ctx.Done():
		return nil
	}
}

// Report implements ride.Reporter.
func (s *ScenarioService) Report(_ context.Context, o models.Outcome) {
	if o.Kind != types.OutcomeDenied {
		return
	}
	s.mu.Lock()
	s.denials++
	s.mu.Unlock()
}

// ScenarioFinished implements ride.ScenarioObserver.
func (s *ScenarioService) ScenarioFinished(context.Context, ride.Report) {
	s.mu.Lock()
	s.finished++
	s.mu.Unlock()
}

// Status feeds the health endpoint.
func (s *ScenarioService) Status(context.Context) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"mode":               string(types.ModeScenario),
		"scenarios_total":    s.total,
		"scenarios_finished": s.finished,
		"denials":            s.denials,
	}
}

func (s *ScenarioService) close(ctx context.Context) {
	if s.httpServer != nil {
		if err := s.httpServer.Stop(context.WithoutCancel(ctx)); err != nil {
			s.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}
}
