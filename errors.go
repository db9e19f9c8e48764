package serialdebug

import "github.com/sketchbook/serialdebug/internal/debug"

// Errors
var (
	// ErrSinkClosed is returned by writes to a serial port sink
	// after Close has been called.
	ErrSinkClosed = debug.ErrSinkClosed
)
