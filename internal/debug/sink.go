package debug

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Sink is the text output the print forms write to.
type Sink interface {
	// Print writes v without a line terminator.
	Print(v any)

	// Println writes v followed by the line terminator.
	Println(v any)
}

var sink Sink = NewWriterSink(os.Stderr, "")

// SetSink replaces the process sink. A nil Sink restores the stderr default.
// It is not synchronized with the print forms; call it during startup.
func SetSink(s Sink) {
	if s == nil {
		s = NewWriterSink(os.Stderr, "")
	}
	sink = s
}

func current() Sink {
	return sink
}

// WriterSink is a Sink over an io.Writer.
type WriterSink struct {
	w          io.Writer
	terminator string
}

// NewWriterSink creates a WriterSink.
//   - w receives the output, a nil w discards it
//   - terminator is appended by Println, "\n" when empty
func NewWriterSink(w io.Writer, terminator string) *WriterSink {
	if w == nil {
		w = io.Discard
	}
	if terminator == "" {
		terminator = "\n"
	}
	return &WriterSink{w: w, terminator: terminator}
}

// Print writes the default format of v.
func (s *WriterSink) Print(v any) {
	if _, err := fmt.Fprint(s.w, v); err != nil {
		Log(context.Background(), slog.LevelWarn, "debug sink write failed", slog.Any("error", err))
	}
}

// Println writes the default format of v and the terminator.
func (s *WriterSink) Println(v any) {
	if _, err := fmt.Fprintf(s.w, "%v%s", v, s.terminator); err != nil {
		Log(context.Background(), slog.LevelWarn, "debug sink write failed", slog.Any("error", err))
	}
}
