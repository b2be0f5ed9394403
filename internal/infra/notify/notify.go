// Package notify dispatches classified run outcomes as desktop
// notifications.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/allenbenz/cargo-testify/internal/domain"
)

// Client implements domain.Notifier using the platform notification
// mechanism (notify-send/D-Bus on Linux, Notification Center on macOS,
// toast notifications on Windows).
type Client struct {
	// Dispatch functions, overridable in tests.
	notify func(title, message string, icon any) error
	alert  func(title, message string, icon any) error
}

// NewClient creates a desktop notifier.
func NewClient() *Client {
	return &Client{
		notify: beeep.Notify,
		alert:  beeep.Alert,
	}
}

// Ensure Client implements domain.Notifier interface.
var _ domain.Notifier = (*Client)(nil)

// Notify renders the outcome. A passing suite gets a plain notification;
// failures and compile errors get an alert so they are audible. The
// outcome set is closed, so an unknown kind is a programming error.
func (c *Client) Notify(outcome domain.Outcome) error {
	switch outcome.Kind {
	case domain.TestsPassed:
		return c.notify(outcome.Title(), outcome.Detail, "")
	case domain.TestsFailed, domain.CompileError:
		return c.alert(outcome.Title(), outcome.Detail, "")
	default:
		return fmt.Errorf("unknown outcome kind: %d", outcome.Kind)
	}
}
