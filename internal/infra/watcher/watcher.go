// Package watcher provides the filesystem watch backend.
package watcher

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/allenbenz/cargo-testify/internal/domain"
)

// eventBufferSize gives the event channel room to queue changes that
// arrive while a test run blocks the reactor loop. The backend keeps
// delivering; the debounce check collapses the backlog afterwards.
const eventBufferSize = 64

// skipDirs are directory names never registered with the backend.
// Their events would be rejected by the trigger filter anyway; skipping
// them avoids burning inotify watches on build output and VCS internals.
var skipDirs = map[string]bool{
	".git":   true,
	"target": true,
}

// Client implements domain.Watcher on top of fsnotify. fsnotify watches
// are non-recursive, so the client registers every directory under the
// root at start and registers directories created later as it sees them.
type Client struct {
	fsw    *fsnotify.Watcher
	events chan domain.ChangeEvent
	errs   chan error
	done   chan struct{}
}

// NewClient creates a new watch backend client.
func NewClient() (*Client, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	return &Client{
		fsw:    fsw,
		events: make(chan domain.ChangeEvent, eventBufferSize),
		errs:   make(chan error, 1),
		done:   make(chan struct{}),
	}, nil
}

// Ensure Client implements domain.Watcher interface.
var _ domain.Watcher = (*Client)(nil)

// Start registers root and all its subdirectories and begins forwarding
// events.
func (c *Client) Start(root string) error {
	if err := c.addRecursive(root); err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	go c.forward()
	return nil
}

// Events returns the change event channel.
func (c *Client) Events() <-chan domain.ChangeEvent {
	return c.events
}

// Errors returns the backend error channel.
func (c *Client) Errors() <-chan error {
	return c.errs
}

// Close stops the backend. The event channel closes once the forwarding
// loop drains.
func (c *Client) Close() error {
	close(c.done)
	return c.fsw.Close()
}

// addRecursive registers dir and every subdirectory below it, skipping
// VCS and build directories and hidden directories.
func (c *Client) addRecursive(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != dir && (skipDirs[name] || strings.HasPrefix(name, ".")) {
			return filepath.SkipDir
		}
		return c.fsw.Add(path)
	})
}

// forward translates backend events into path-only ChangeEvents. The
// reactor does not care about the event kind, only the path; kind is
// used here solely to extend the watch into newly created directories.
func (c *Client) forward() {
	defer close(c.events)
	for {
		select {
		case <-c.done:
			return
		case ev, ok := <-c.fsw.Events:
			if !ok {
				return
			}
			if ev.Op.Has(fsnotify.Create) {
				c.maybeWatchNewDir(ev.Name)
			}
			select {
			case c.events <- domain.ChangeEvent{Path: ev.Name}:
			case <-c.done:
				return
			}
		case err, ok := <-c.fsw.Errors:
			if !ok {
				return
			}
			select {
			case c.errs <- err:
			case <-c.done:
				return
			}
		}
	}
}

// maybeWatchNewDir extends the watch into a directory created after
// Start. Files created inside it before registration are missed; the
// next save there is caught, which is acceptable for a debounced tool.
func (c *Client) maybeWatchNewDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}
	name := filepath.Base(path)
	if skipDirs[name] || strings.HasPrefix(name, ".") {
		return
	}
	_ = c.addRecursive(path)
}
