package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/allenbenz/cargo-testify/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCargoProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	manifest := "[package]\nname = \"demo\"\nversion = \"0.1.0\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte(manifest), 0o600))
	return dir
}

func TestNew_RequiresCargoToml(t *testing.T) {
	_, err := New(t.TempDir(), Overrides{})

	assert.ErrorIs(t, err, domain.ErrNotCargoProject)
}

func TestNew_WiresDefaults(t *testing.T) {
	dir := newCargoProject(t)

	c, err := New(dir, Overrides{})

	require.NoError(t, err)
	assert.Equal(t, dir, c.Config.ProjectDir)
	assert.Equal(t, "cargo", c.Config.Command)
	assert.NotNil(t, c.Runner)
	assert.NotNil(t, c.Notifier)
	assert.NotNil(t, c.Logger)
	assert.NotNil(t, c.ConfigLoader)
}

func TestNew_AppliesOverrides(t *testing.T) {
	dir := newCargoProject(t)

	c, err := New(dir, Overrides{
		ExtraArgs: []string{"--workspace"},
		Debounce:  time.Second,
		LogLevel:  "debug",
		NoNotify:  true,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"--workspace"}, c.Config.ExtraArgs)
	assert.Equal(t, time.Second, c.Config.IgnoreDuration)
	assert.Equal(t, "debug", c.Config.LogLevel)
	assert.False(t, c.Config.Notifications)
}

func TestContainer_UseCaseFactories(t *testing.T) {
	dir := newCargoProject(t)
	c, err := New(dir, Overrides{})
	require.NoError(t, err)

	assert.NotNil(t, c.RunTestsUseCase())

	watch, err := c.WatchUseCase()
	require.NoError(t, err)
	assert.NotNil(t, watch)
}