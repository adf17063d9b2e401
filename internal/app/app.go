package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Temutjin2k/ride-lifecycle/config"
	"github.com/Temutjin2k/ride-lifecycle/internal/adapter/prompt"
	"github.com/Temutjin2k/ride-lifecycle/internal/app/modes"
	"github.com/Temutjin2k/ride-lifecycle/internal/domain/types"
	"github.com/Temutjin2k/ride-lifecycle/pkg/logger"
)

var ErrServiceNotInitialized = errors.New("service not initialized")

type Service interface {
	Start(ctx context.Context) error
}

type App struct {
	mode    types.RunMode
	service Service
	out     io.Writer
	chooser prompt.Chooser

	cfg config.Config
	log logger.Logger
}

type Option func(*App)

// WithChooser replaces the terminal prompt used in interactive mode.
func WithChooser(c prompt.Chooser) Option {
	return func(a *App) {
		a.chooser = c
	}
}

// NewApplication builds the service for cfg.Mode. Ride output goes to out.
func NewApplication(ctx context.Context, cfg config.Config, out io.Writer, log logger.Logger, opts ...Option) (*App, error) {
	app := &App{
		mode:    cfg.Mode,
		out:     out,
		chooser: prompt.Terminal{},
		cfg:     cfg,
		log:     log,
	}
	for _, opt := range opts {
		opt(app)
	}

	if err := app.initService(ctx, app.mode); err != nil {
		return nil, err
	}

	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.service == nil {
		return ErrServiceNotInitialized
	}

	return a.service.Start(ctx)
}

func (a *App) initService(ctx context.Context, mode types.RunMode) error {
	var (
		service Service
		err     error
	)
	switch mode {
	case types.ModeScenario:
		service, err = modes.NewScenario(ctx, a.cfg, a.out, a.log)
	case types.ModeInteractive:
		service, err = modes.NewInteractive(ctx, a.cfg, a.chooser, a.out, a.log)
	default:
		return fmt.Errorf("%w: %q", types.ErrInvalidMode, mode)
	}

	if err != nil {
		return fmt.Errorf("failed to init service: %w", err)
	}

	a.service = service

	return nil
}
