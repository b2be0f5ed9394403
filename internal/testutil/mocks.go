// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"time"

	"github.com/allenbenz/cargo-testify/internal/domain"
)

// MockClock is a test double for domain.Clock. Each Now call returns the
// current NowTime, then advances it by Step, simulating elapsing time
// across a synchronous event loop.
type MockClock struct {
	NowTime time.Time
	Step    time.Duration
}

// Now returns the configured time and advances it by Step.
func (m *MockClock) Now() time.Time {
	now := m.NowTime
	m.NowTime = m.NowTime.Add(m.Step)
	return now
}

// MockTestRunner is a test double for domain.TestRunner.
type MockTestRunner struct {
	Result   *domain.RunResult
	RunErr   error
	Commands []domain.TestCommand
}

// Run records the command and returns the configured result.
func (m *MockTestRunner) Run(_ context.Context, cmd domain.TestCommand) (*domain.RunResult, error) {
	m.Commands = append(m.Commands, cmd)
	if m.RunErr != nil {
		return nil, m.RunErr
	}
	if m.Result != nil {
		return m.Result, nil
	}
	return &domain.RunResult{
		Success: true,
		Stdout:  "3 passed; 0 failed; 0 ignored; 0 measured; 0 filtered out",
	}, nil
}

// MockNotifier is a test double for domain.Notifier.
type MockNotifier struct {
	NotifyErr error
	Outcomes  []domain.Outcome
}

// Notify records the outcome.
func (m *MockNotifier) Notify(outcome domain.Outcome) error {
	m.Outcomes = append(m.Outcomes, outcome)
	return m.NotifyErr
}

// MockWatcher is a test double for domain.Watcher backed by plain
// channels the test feeds directly.
type MockWatcher struct {
	StartErr  error
	EventsCh  chan domain.ChangeEvent
	ErrorsCh  chan error
	StartedAt string
	Closed    bool
}

// NewMockWatcher creates a MockWatcher with buffered channels.
func NewMockWatcher() *MockWatcher {
	return &MockWatcher{
		EventsCh: make(chan domain.ChangeEvent, 64),
		ErrorsCh: make(chan error, 1),
	}
}

// Start records the watched root.
func (m *MockWatcher) Start(root string) error {
	m.StartedAt = root
	return m.StartErr
}

// Events returns the event channel.
func (m *MockWatcher) Events() <-chan domain.ChangeEvent {
	return m.EventsCh
}

// Errors returns the error channel.
func (m *MockWatcher) Errors() <-chan error {
	return m.ErrorsCh
}

// Close marks the watcher closed.
func (m *MockWatcher) Close() error {
	m.Closed = true
	return nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns the configured config.
func (m *MockConfigLoader) Load(projectDir string) (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config != nil {
		return m.Config, nil
	}
	cfg := domain.NewDefaultConfig()
	cfg.ProjectDir = projectDir
	return cfg, nil
}
