package domain

import (
	"context"
	"time"
)

// Watcher delivers raw filesystem change events for a project tree.
// The core only depends on the event's path, never on its kind.
type Watcher interface {
	// Start begins watching root recursively. It must be called before
	// Events or Errors produce anything.
	Start(root string) error

	// Events returns the change event channel. The channel is closed when
	// the backend shuts down; a closed channel is a fatal condition for
	// the reactor.
	Events() <-chan ChangeEvent

	// Errors returns the backend error channel. Any error received here
	// is fatal: the watcher is the program's only input source.
	Errors() <-chan error

	// Close stops the watcher and releases its resources.
	Close() error
}

// TestRunner executes one test command and captures its full output.
// A failing test suite is a normal result (Success=false), not an error;
// errors are reserved for spawn and capture failures.
type TestRunner interface {
	Run(ctx context.Context, cmd TestCommand) (*RunResult, error)
}

// Notifier renders a classified outcome as a platform notification.
// Exactly one Outcome is passed per completed run.
type Notifier interface {
	Notify(outcome Outcome) error
}

// ConfigLoader loads the merged application configuration.
type ConfigLoader interface {
	Load(projectDir string) (*Config, error)
}

// Clock provides time operations for testability.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
