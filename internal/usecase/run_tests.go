// Package usecase implements the application use cases.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/allenbenz/cargo-testify/internal/domain"
	"github.com/allenbenz/cargo-testify/internal/report"
)

// RunTestsOutput contains the result of one classified test run.
type RunTestsOutput struct {
	Outcome domain.Outcome
}

// RunTests is the use case for one full run: spawn the test command,
// classify the captured output, dispatch the notification.
type RunTests struct {
	runner   domain.TestRunner
	notifier domain.Notifier
	logger   *slog.Logger
	config   *domain.Config
}

// NewRunTests creates a new RunTests use case.
func NewRunTests(
	runner domain.TestRunner,
	notifier domain.Notifier,
	logger *slog.Logger,
	config *domain.Config,
) *RunTests {
	return &RunTests{
		runner:   runner,
		notifier: notifier,
		logger:   logger,
		config:   config,
	}
}

// Execute performs one run. A failing suite is a normal outcome; errors
// mean the run itself could not complete (spawn, capture) or its output
// was unrecognizable, both fatal to the tool.
func (uc *RunTests) Execute(ctx context.Context) (*RunTestsOutput, error) {
	cmd := domain.TestCommand{
		Program: uc.config.Command,
		Dir:     uc.config.ProjectDir,
		Args:    uc.config.TestArgs(),
	}

	uc.logger.Debug("running test command", "program", cmd.Program, "args", cmd.Args)

	result, err := uc.runner.Run(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("run %s test: %w", cmd.Program, err)
	}

	outcome, err := report.Classify(result)
	if err != nil {
		return nil, fmt.Errorf("classify run: %w", err)
	}

	uc.logger.Info("run classified", "outcome", outcome.Title(), "detail", outcome.Detail)

	if uc.config.Notifications {
		// The developer already saw the echoed output; a broken
		// notification daemon should not take the watch loop down.
		if err := uc.notifier.Notify(outcome); err != nil {
			uc.logger.Warn("notification failed", "error", err)
		}
	}

	return &RunTestsOutput{Outcome: outcome}, nil
}
