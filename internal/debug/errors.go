package debug

import "errors"

// ErrSinkClosed is returned by writes to a sink that has been closed.
var ErrSinkClosed = errors.New("serialdebug: sink closed")
