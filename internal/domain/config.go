package domain

import "time"

// DefaultIgnoreDuration is the cooldown window after a run during which
// incoming file events are dropped. Editors often emit several events per
// save; the window collapses them into a single run.
const DefaultIgnoreDuration = 300 * time.Millisecond

// DefaultCommand is the program invoked to run the test suite. The first
// argument is always "test"; only the program itself is configurable
// (e.g. "cross" for cross-compilation wrappers).
const DefaultCommand = "cargo"

// Config holds the resolved runtime configuration. It is built once at
// startup from defaults, config files and flags, and never mutated after.
// Fields are ordered to minimize memory padding.
type Config struct {
	ProjectDir     string        // Root of the watched cargo project
	Command        string        // Test command program (default "cargo")
	LogLevel       string        // Log level: debug, info, warn, error
	ExtraArgs      []string      // Arguments forwarded to `cargo test`
	Warnings       []string      // Non-fatal config issues, reported once at startup
	IgnoreDuration time.Duration // Debounce window between runs
	Notifications  bool          // Whether to dispatch desktop notifications
}

// NewDefaultConfig returns a Config with all defaults applied.
// ProjectDir is left empty; the caller fills it in.
func NewDefaultConfig() *Config {
	return &Config{
		Command:        DefaultCommand,
		LogLevel:       "info",
		IgnoreDuration: DefaultIgnoreDuration,
		Notifications:  true,
	}
}

// TestArgs returns the full argument list for the test command:
// the fixed "test" subcommand followed by any user-configured extras.
func (c *Config) TestArgs() []string {
	args := make([]string, 0, len(c.ExtraArgs)+1)
	args = append(args, "test")
	args = append(args, c.ExtraArgs...)
	return args
}
