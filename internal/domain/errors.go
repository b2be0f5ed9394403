package domain

import "errors"

// Domain errors.
var (
	ErrNotCargoProject    = errors.New("no Cargo.toml found (not a cargo project)")
	ErrConfigExists       = errors.New("config file already exists")
	ErrWatcherClosed      = errors.New("watch channel closed")
	ErrUnrecognizedOutput = errors.New("unrecognized cargo output")
)
