package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/allenbenz/cargo-testify/internal/domain"
)

// Watch is the top-level control loop: it owns the watch subscription,
// filters and debounces incoming change events, and serializes test runs.
// Exactly one run is in flight at a time; events arriving during a run
// queue in the watch backend and collapse through the debounce check
// once the loop resumes.
type Watch struct {
	watcher  domain.Watcher
	runTests *RunTests
	clock    domain.Clock
	logger   *slog.Logger
	config   *domain.Config

	// OnRunStart, when set, is called before every test run. The CLI
	// uses it to print a separator between runs.
	OnRunStart func()

	lastRunAt time.Time
}

// NewWatch creates a new Watch use case.
func NewWatch(
	watcher domain.Watcher,
	runTests *RunTests,
	clock domain.Clock,
	logger *slog.Logger,
	config *domain.Config,
) *Watch {
	return &Watch{
		watcher:  watcher,
		runTests: runTests,
		clock:    clock,
		logger:   logger,
		config:   config,
	}
}

// Execute subscribes to the project tree, performs one unconditional run
// for baseline feedback, then reacts to change events until the context
// is canceled (clean shutdown) or the backend fails (fatal).
func (uc *Watch) Execute(ctx context.Context) error {
	if err := uc.watcher.Start(uc.config.ProjectDir); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer func() { _ = uc.watcher.Close() }()

	uc.logger.Info("watching", "dir", uc.config.ProjectDir, "debounce", uc.config.IgnoreDuration)

	if err := uc.run(ctx); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			uc.logger.Info("shutting down")
			return nil
		case ev, ok := <-uc.watcher.Events():
			if !ok {
				return domain.ErrWatcherClosed
			}
			if !uc.shouldReact(ev) {
				continue
			}
			if err := uc.run(ctx); err != nil {
				return err
			}
		case err := <-uc.watcher.Errors():
			// The watcher is the program's only input source; there is
			// no recovery path.
			return fmt.Errorf("watch backend: %w", err)
		}
	}
}

// run performs one synchronous test run and stamps the debounce clock.
func (uc *Watch) run(ctx context.Context) error {
	if uc.OnRunStart != nil {
		uc.OnRunStart()
	}
	if _, err := uc.runTests.Execute(ctx); err != nil {
		// A canceled context kills the child mid-run; that is shutdown,
		// not a classification failure.
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	uc.lastRunAt = uc.clock.Now()
	return nil
}

// shouldReact decides whether an event warrants a run: the cooldown
// window must have elapsed, the event must carry a path, and the path
// must fall under one of the whitelisted project artifacts.
func (uc *Watch) shouldReact(ev domain.ChangeEvent) bool {
	if uc.clock.Now().Sub(uc.lastRunAt) < uc.config.IgnoreDuration {
		return false
	}
	if ev.Path == "" {
		return false
	}
	if !domain.ShouldTrigger(uc.config.ProjectDir, ev.Path) {
		uc.logger.Debug("ignoring change", "path", ev.Path)
		return false
	}
	uc.logger.Debug("change accepted", "path", ev.Path)
	return true
}
