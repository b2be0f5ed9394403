package cli

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/allenbenz/cargo-testify/internal/app"
	"github.com/allenbenz/cargo-testify/internal/domain"
	"github.com/allenbenz/cargo-testify/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// stubContainer swaps the container factory for one returning mocks and
// restores it on cleanup.
func stubContainer(t *testing.T, runner *testutil.MockTestRunner, cfg *domain.Config) *[]app.Overrides {
	t.Helper()
	var seen []app.Overrides
	orig := newContainerFunc
	newContainerFunc = func(dir string, o app.Overrides) (*app.Container, error) {
		seen = append(seen, o)
		return app.NewWithDeps(cfg, runner, &testutil.MockNotifier{}, &testutil.MockClock{}, discardLogger()), nil
	}
	t.Cleanup(func() { newContainerFunc = orig })
	return &seen
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand("test")
	var stdout, stderr strings.Builder
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_OncePassing(t *testing.T) {
	// Setup
	runner := &testutil.MockTestRunner{
		Result: &domain.RunResult{
			Success: true,
			Stdout:  "3 passed; 0 failed; 0 ignored; 0 measured; 0 filtered out",
		},
	}
	stubContainer(t, runner, domain.NewDefaultConfig())

	// Execute
	_, _, err := execute(t, "--once")

	// Assert
	require.NoError(t, err)
	require.Len(t, runner.Commands, 1)
	assert.Equal(t, []string{"test"}, runner.Commands[0].Args)
}

func TestRoot_OnceFailing(t *testing.T) {
	// Setup
	runner := &testutil.MockTestRunner{
		Result: &domain.RunResult{
			Success: false,
			Stdout:  "1 passed; 1 failed; 0 ignored; 0 measured; 0 filtered out",
		},
	}
	stubContainer(t, runner, domain.NewDefaultConfig())

	// Execute
	_, _, err := execute(t, "--once")

	// Assert
	assert.ErrorIs(t, err, ErrRunNotPassing)
}

func TestRoot_FlagsBecomeOverrides(t *testing.T) {
	// Setup
	runner := &testutil.MockTestRunner{}
	seen := stubContainer(t, runner, domain.NewDefaultConfig())

	// Execute
	_, _, err := execute(t, "--once", "--debounce", "750ms", "--no-notify", "--log-level", "debug", "--", "--workspace")

	// Assert
	require.NoError(t, err)
	require.Len(t, *seen, 1)
	o := (*seen)[0]
	assert.Equal(t, 750*time.Millisecond, o.Debounce)
	assert.True(t, o.NoNotify)
	assert.Equal(t, "debug", o.LogLevel)
	assert.Equal(t, []string{"--workspace"}, o.ExtraArgs)
}

func TestRoot_PrintsConfigWarnings(t *testing.T) {
	// Setup
	cfg := domain.NewDefaultConfig()
	cfg.Warnings = []string{"unknown key: surprise"}
	stubContainer(t, &testutil.MockTestRunner{}, cfg)

	// Execute
	_, stderr, err := execute(t, "--once")

	// Assert
	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: unknown key: surprise")
}

func TestRoot_NotACargoProject(t *testing.T) {
	// The real container factory rejects directories without Cargo.toml.
	_, _, err := execute(t, "--once", "-C", t.TempDir())

	assert.ErrorIs(t, err, domain.ErrNotCargoProject)
}

func TestInit_CreatesStarterConfig(t *testing.T) {
	// Setup
	dir := t.TempDir()

	// Execute
	stdout, _, err := execute(t, "init", "-C", dir)

	// Assert
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created ")
	_, statErr := os.Stat(filepath.Join(dir, ".cargo-testify.toml"))
	assert.NoError(t, statErr)
}

func TestInit_RefusesOverwrite(t *testing.T) {
	// Setup
	dir := t.TempDir()
	_, _, err := execute(t, "init", "-C", dir)
	require.NoError(t, err)

	// Execute
	_, _, err = execute(t, "init", "-C", dir)

	// Assert
	assert.ErrorIs(t, err, domain.ErrConfigExists)
}
