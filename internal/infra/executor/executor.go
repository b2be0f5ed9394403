// Package executor runs the test command and captures its output.
package executor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/allenbenz/cargo-testify/internal/domain"
)

// Client implements domain.TestRunner. It spawns the command with both
// streams piped and drains them concurrently: reading sequentially from
// the parent risks a deadlock when one OS pipe buffer fills while the
// other is un-drained.
type Client struct {
	stdout io.Writer // Echo destination for the child's stdout
	stderr io.Writer // Echo destination for the child's stderr
}

// NewClient creates a runner that echoes the child's output to the
// process's own stdout and stderr in real time.
func NewClient() *Client {
	return &Client{stdout: os.Stdout, stderr: os.Stderr}
}

// NewClientWithOutput creates a runner with custom echo destinations.
// Used by tests to observe the live echo.
func NewClientWithOutput(stdout, stderr io.Writer) *Client {
	return &Client{stdout: stdout, stderr: stderr}
}

// Ensure Client implements domain.TestRunner interface.
var _ domain.TestRunner = (*Client)(nil)

// captureResult carries one stream's accumulated text back to the
// controlling goroutine once capture has fully finished.
type captureResult struct {
	text string
	err  error
}

// Run executes the command and returns its result. A non-zero exit is a
// normal result (Success=false); only spawn, capture and wait failures
// return an error.
func (c *Client) Run(ctx context.Context, cmd domain.TestCommand) (*domain.RunResult, error) {
	// #nosec G204 - cmd.Program and cmd.Args come from trusted config code
	execCmd := exec.CommandContext(ctx, cmd.Program, cmd.Args...)
	if cmd.Dir != "" {
		execCmd.Dir = cmd.Dir
	}

	stdoutPipe, err := execCmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("create stdout pipe: %w", err)
	}
	stderrPipe, err := execCmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("create stderr pipe: %w", err)
	}

	if err := execCmd.Start(); err != nil {
		return nil, fmt.Errorf("spawn %s: %w", cmd.Program, err)
	}

	// One capture goroutine per stream; each owns its buffer exclusively
	// and hands the finished text back through a one-shot channel, so no
	// locking is needed on the read side.
	stdoutCh := capture(stdoutPipe, c.stdout)
	stderrCh := capture(stderrPipe, c.stderr)

	stdoutRes := <-stdoutCh
	stderrRes := <-stderrCh

	// Both pipes are fully drained; now reap the child.
	waitErr := execCmd.Wait()

	if stdoutRes.err != nil {
		return nil, fmt.Errorf("capture stdout: %w", stdoutRes.err)
	}
	if stderrRes.err != nil {
		return nil, fmt.Errorf("capture stderr: %w", stderrRes.err)
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return nil, fmt.Errorf("wait for %s: %w", cmd.Program, waitErr)
		}
		// Non-zero exit: the suite failed or compilation broke.
	}

	return &domain.RunResult{
		Success: waitErr == nil,
		Stdout:  stdoutRes.text,
		Stderr:  stderrRes.text,
	}, nil
}

// capture drains one stream line by line until EOF, echoing each line to
// echo and accumulating it (plus a newline) in a private buffer. Lines are
// kept byte-exact and unbounded in length so downstream pattern matching
// sees what the command actually wrote. A read error mid-stream is
// surfaced rather than silently truncating the buffer.
func capture(r io.Reader, echo io.Writer) <-chan captureResult {
	ch := make(chan captureResult, 1)

	go func() {
		var buf strings.Builder
		reader := bufio.NewReader(r)
		for {
			line, err := reader.ReadString('\n')
			if len(line) > 0 {
				line = strings.TrimSuffix(line, "\n")
				buf.WriteString(line)
				buf.WriteByte('\n')
				fmt.Fprintln(echo, line)
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					err = nil
				}
				ch <- captureResult{text: buf.String(), err: err}
				return
			}
		}
	}()

	return ch
}
