// Package main is the entry point for the cargo-testify CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/allenbenz/cargo-testify/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCommand(version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// --once signals a non-passing suite through this sentinel; the
		// suite's own output already explained it.
		if !errors.Is(err, cli.ErrRunNotPassing) {
			fmt.Fprintln(os.Stderr, cli.RenderError(err.Error()))
		}
		os.Exit(1)
	}
}
