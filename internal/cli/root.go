// Package cli provides the command-line interface for cargo-testify.
package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/allenbenz/cargo-testify/internal/app"
	"github.com/allenbenz/cargo-testify/internal/domain"
)

// ErrRunNotPassing is returned by --once when the single run did not end
// in TestsPassed, so main can exit non-zero.
var ErrRunNotPassing = errors.New("test run did not pass")

// newContainerFunc builds the DI container, allowing tests to substitute
// their own wiring.
var newContainerFunc = app.New

// NewRootCommand creates the root command for cargo-testify.
func NewRootCommand(version string) *cobra.Command {
	var (
		dir      string
		debounce time.Duration
		logLevel string
		noNotify bool
		once     bool
	)

	root := &cobra.Command{
		Use:   "cargo-testify [flags] [-- args...]",
		Short: "Re-run cargo test on file change and notify the outcome",
		Long: `cargo-testify watches a cargo project and re-runs its test suite
whenever a relevant file changes (src/, tests/, Cargo.toml, Cargo.lock,
build.rs). The run's output is echoed live to the terminal, classified
as passed / failed / compile error, and raised as a desktop
notification.

Arguments after -- are forwarded to cargo test:

  cargo-testify -- --workspace --no-fail-fast`,
		Version: version,
		Args:    cobra.ArbitraryArgs,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := newContainerFunc(dir, app.Overrides{
				ExtraArgs: args,
				Debounce:  debounce,
				LogLevel:  logLevel,
				NoNotify:  noNotify,
			})
			if err != nil {
				return err
			}

			for _, w := range container.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}

			if once {
				out, err := container.RunTestsUseCase().Execute(cmd.Context())
				if err != nil {
					return err
				}
				if out.Outcome.Kind != domain.TestsPassed {
					return ErrRunNotPassing
				}
				return nil
			}

			watch, err := container.WatchUseCase()
			if err != nil {
				return err
			}

			cmdline := container.Config.Command + " " + strings.Join(container.Config.TestArgs(), " ")
			watch.OnRunStart = func() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderBanner(cmdline))
			}

			return watch.Execute(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&dir, "dir", "C", ".", "Project directory to watch")
	root.Flags().DurationVar(&debounce, "debounce", 0, "Cooldown between runs (default 300ms)")
	root.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	root.Flags().BoolVar(&noNotify, "no-notify", false, "Disable desktop notifications")
	root.Flags().BoolVar(&once, "once", false, "Run the suite once and exit (status 1 unless tests pass)")

	root.AddCommand(newInitCommand(&dir))

	return root
}
