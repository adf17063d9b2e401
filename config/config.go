package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Temutjin2k/ride-lifecycle/internal/domain/types"
	"github.com/Temutjin2k/ride-lifecycle/pkg/configparser"
	"github.com/Temutjin2k/ride-lifecycle/pkg/logger"
)

// Flags
var (
	modeFlag     = flag.String("mode", "", "run mode: scenario | interactive")
	scenarioFlag = flag.String("scenario", "", "comma separated scenario names (default: all)")
	localeFlag   = flag.String("locale", "", "report locale: en | ru")
)

// Errors
var (
	ErrInvalidLogLevel    = errors.New("invalid log level")
	ErrInvalidParallelism = errors.New("scenario parallelism must be at least 1")
)

// Config contains all configuration variables of the application
type (
	Config struct {
		Mode   types.RunMode `env:"APP_MODE" envDefault:"scenario"`
		Locale types.Locale  `env:"APP_LOCALE" envDefault:"en"`

		Log           LogConfig
		Scenario      ScenarioConfig
		Observability ObservabilityConfig
	}

	LogConfig struct {
		Level string `env:"LOG_LEVEL" envDefault:"INFO"`
	}

	ScenarioConfig struct {
		Names       []string `env:"SCENARIO_NAMES" envSeparator:","`
		Parallelism int      `env:"SCENARIO_PARALLELISM" envDefault:"1"`
	}

	// ObservabilityConfig controls the /health and /metrics server. Empty Addr disables it.
	ObservabilityConfig struct {
		Addr            string        `env:"OBSERVABILITY_ADDR"`
		ServiceName     string        `env:"OBSERVABILITY_SERVICE_NAME" envDefault:"ride-lifecycle"`
		ShutdownTimeout time.Duration `env:"OBSERVABILITY_SHUTDOWN_TIMEOUT" envDefault:"5s"`
		// Linger keeps the server up after a scenario run until SIGINT or SIGTERM.
		Linger bool `env:"OBSERVABILITY_LINGER" envDefault:"false"`
	}

	// Overrides are command line values applied on top of file and environment.
	Overrides struct {
		Mode      string
		Scenarios string
		Locale    string
	}
)

func (c ObservabilityConfig) Enabled() bool {
	return c.Addr != ""
}

// NewConfig loads configuration from .env, the YAML file, the environment and command line flags.
func NewConfig(filepath string) (*Config, error) {
	return Load(filepath, Overrides{
		Mode:      *modeFlag,
		Scenarios: *scenarioFlag,
		Locale:    *localeFlag,
	})
}

// Load builds the configuration without reading package level flags.
func Load(filepath string, o Overrides) (*Config, error) {
	cfg := &Config{}

	if err := configparser.LoadDotEnv(".env"); err != nil {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	// Loading enviromental variables and parsing to config struct.
	if err := configparser.LoadAndParseYaml(filepath, cfg); err != nil {
		return nil, fmt.Errorf("failed to load and parse config: %w", err)
	}

	applyOverrides(cfg, o)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func applyOverrides(cfg *Config, o Overrides) {
	if o.Mode != "" {
		cfg.Mode = types.RunMode(o.Mode)
	}
	if o.Locale != "" {
		cfg.Locale = types.Locale(o.Locale)
	}
	if o.Scenarios != "" {
		var names []string
		for _, name := range strings.Split(o.Scenarios, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		cfg.Scenario.Names = names
	}
}

// Validate checks values the env parser cannot.
func (c *Config) Validate() error {
	var errs []error

	switch c.Mode {
	case types.ModeScenario, types.ModeInteractive:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", types.ErrInvalidMode, c.Mode))
	}

	switch c.Locale {
	case types.LocaleEN, types.LocaleRU:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", types.ErrInvalidLocale, c.Locale))
	}

	if !logger.ValidateLogLevel(c.Log.Level) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level))
	}

	if c.Scenario.Parallelism < 1 {
		errs = append(errs, ErrInvalidParallelism)
	}

	return errors.Join(errs...)
}

// PrintConfig writes the effective configuration.
func PrintConfig(w io.Writer, cfg *Config) {
	scenarios := "all"
	if len(cfg.Scenario.Names) > 0 {
		scenarios = strings.Join(cfg.Scenario.Names, ",")
	}
	observability := "disabled"
	if cfg.Observability.Enabled() {
		observability = cfg.Observability.Addr
	}

	fmt.Fprintf(w, "mode=%s locale=%s log_level=%s scenarios=%s parallelism=%d observability=%s\n",
		cfg.Mode, cfg.Locale, cfg.Log.Level, scenarios, cfg.Scenario.Parallelism, observability)
}
