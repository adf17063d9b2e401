package main

import (
	"context"
	"flag"
	"os"

	"github.com/Temutjin2k/ride-lifecycle/config"
	"github.com/Temutjin2k/ride-lifecycle/internal/app"
	"github.com/Temutjin2k/ride-lifecycle/internal/domain/types"
	"github.com/Temutjin2k/ride-lifecycle/pkg/logger"
	wrap "github.com/Temutjin2k/ride-lifecycle/pkg/logger/wrapper"
)

const serviceName = "ride-lifecycle"

var (
	helpFlag   = flag.Bool("help", false, "Show help message")
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
)

func main() {
	flag.Parse()
	if *helpFlag {
		config.PrintHelp()
		return
	}

	ctx := wrap.WithAction(context.Background(), types.ActionAppStart)
	log := logger.InitLogger(serviceName, logger.LevelDebug)

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Error(wrap.ErrorCtx(ctx, err), "failed to configure application", err)
		config.PrintHelp()
		os.Exit(2)
	}

	// Printing configuration
	config.PrintConfig(os.Stderr, cfg)

	log = logger.InitLogger(serviceName, cfg.Log.Level)

	// Creating application
	application, err := app.NewApplication(ctx, *cfg, os.Stdout, log)
	if err != nil {
		log.Error(wrap.ErrorCtx(ctx, err), "failed to init application", err)
		os.Exit(1)
	}

	// Running the application
	ctx = wrap.WithAction(ctx, types.ActionAppRun)
	if err = application.Run(ctx); err != nil {
		log.Error(wrap.ErrorCtx(ctx, err), "failed to run application", err)
		os.Exit(1)
	}
}
