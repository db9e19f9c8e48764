// Package serialdebug prints trace lines to a serial-style sink in binaries
// built with the debug tag (go build -tags debug) and compiles to nothing otherwise.
//
// Each form prints its arguments separated by single spaces and ends the line:
//
//	serialdebug.Debug2("rssi", -71) // "rssi -71\n"
//
// In a build without the tag the forms are empty and get inlined away, but Go
// still evaluates their arguments. Guard expensive or side-effecting arguments
// with Enabled, which is a constant:
//
//	if serialdebug.Enabled {
//		serialdebug.Debug(buf.Dump())
//	}
package serialdebug

import (
	"io"
	"log/slog"

	"github.com/sketchbook/serialdebug/internal/debug"
)

// Enabled is true in binaries built with the debug tag.
const Enabled = debug.Enabled

// Sink receives the output of the print forms.
type Sink = debug.Sink

// WriterSink is a Sink over an io.Writer.
type WriterSink = debug.WriterSink

// NewWriterSink creates a Sink that writes to w and ends lines with terminator,
// or "\n" when terminator is empty.
func NewWriterSink(w io.Writer, terminator string) *WriterSink {
	return debug.NewWriterSink(w, terminator)
}

// SetSink replaces the sink the print forms write to.
// A nil Sink restores the default, which writes to stderr.
func SetSink(s Sink) {
	debug.SetSink(s)
}

// RegisterLogger configures the library's diagnostic logger with the input slog.Handler h.
//
// By default, the logger uses a no-op handler and doesn't produce any log events.
func RegisterLogger(h slog.Handler) {
	debug.RegisterLogger(h)
}

// Debug4 prints x, y, z and a separated by spaces, then a line terminator.
func Debug4(x, y, z, a any) { debug.Debug4(x, y, z, a) }

// Debug3 prints x, y and z separated by spaces, then a line terminator.
func Debug3(x, y, z any) { debug.Debug3(x, y, z) }

// Debug2 prints y and z separated by a space, then a line terminator.
func Debug2(y, z any) { debug.Debug2(y, z) }

// Debug prints z and a line terminator.
func Debug(z any) { debug.Debug(z) }

// DebugLn prints an empty line.
func DebugLn() { debug.DebugLn() }
