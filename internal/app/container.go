// Package app provides the dependency injection container for the
// application.
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/allenbenz/cargo-testify/internal/domain"
	"github.com/allenbenz/cargo-testify/internal/infra/config"
	"github.com/allenbenz/cargo-testify/internal/infra/executor"
	"github.com/allenbenz/cargo-testify/internal/infra/logging"
	"github.com/allenbenz/cargo-testify/internal/infra/notify"
	"github.com/allenbenz/cargo-testify/internal/infra/watcher"
	"github.com/allenbenz/cargo-testify/internal/usecase"
)

// Container provides dependency injection for the application. It holds
// all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Runner       domain.TestRunner
	Notifier     domain.Notifier
	Clock        domain.Clock
	ConfigLoader domain.ConfigLoader

	// Pointer fields
	Logger *slog.Logger
	Config *domain.Config
}

// Overrides replace resolved config values from CLI flags. Nil or zero
// fields leave the loaded value untouched.
type Overrides struct {
	ExtraArgs []string
	Debounce  time.Duration
	LogLevel  string
	NoNotify  bool
}

// New creates a Container for the given project directory. The directory
// must contain a Cargo.toml; configuration is loaded and flag overrides
// applied before anything else starts.
func New(projectDir string, overrides Overrides) (*Container, error) {
	projectDir, err := filepath.Abs(projectDir)
	if err != nil {
		return nil, fmt.Errorf("resolve project dir: %w", err)
	}

	if _, err := os.Stat(filepath.Join(projectDir, "Cargo.toml")); err != nil {
		return nil, fmt.Errorf("%s: %w", projectDir, domain.ErrNotCargoProject)
	}

	loader := config.NewLoader()
	cfg, err := loader.Load(projectDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	applyOverrides(cfg, overrides)

	return &Container{
		Runner:       executor.NewClient(),
		Notifier:     notify.NewClient(),
		Clock:        domain.RealClock{},
		ConfigLoader: loader,
		Logger:       logging.New(os.Stderr, logging.ParseLevel(cfg.LogLevel)),
		Config:       cfg,
	}, nil
}

// NewWithDeps creates a Container with explicit dependencies. This is
// useful for testing.
func NewWithDeps(
	cfg *domain.Config,
	runner domain.TestRunner,
	notifier domain.Notifier,
	clock domain.Clock,
	logger *slog.Logger,
) *Container {
	return &Container{
		Runner:   runner,
		Notifier: notifier,
		Clock:    clock,
		Logger:   logger,
		Config:   cfg,
	}
}

func applyOverrides(cfg *domain.Config, o Overrides) {
	if len(o.ExtraArgs) > 0 {
		cfg.ExtraArgs = o.ExtraArgs
	}
	if o.Debounce > 0 {
		cfg.IgnoreDuration = o.Debounce
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	if o.NoNotify {
		cfg.Notifications = false
	}
}

// RunTestsUseCase creates the RunTests use case.
func (c *Container) RunTestsUseCase() *usecase.RunTests {
	return usecase.NewRunTests(c.Runner, c.Notifier, c.Logger, c.Config)
}

// WatchUseCase creates the Watch use case with a fresh watch backend.
func (c *Container) WatchUseCase() (*usecase.Watch, error) {
	w, err := watcher.NewClient()
	if err != nil {
		return nil, err
	}
	return usecase.NewWatch(w, c.RunTestsUseCase(), c.Clock, c.Logger, c.Config), nil
}
