// Package serialport provides a debug sink backed by a serial device.
package serialport

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/pkg/errors"
	"go.bug.st/serial"

	"github.com/sketchbook/serialdebug/internal/debug"
)

// LineEnding is the terminator written by Println, as serial monitors expect.
const LineEnding = "\r\n"

var _ debug.Sink = (*Port)(nil)

// opener is replaced in tests.
var opener = func(path string, mode *serial.Mode) (io.WriteCloser, error) {
	return serial.Open(path, mode)
}

// Port is a debug sink that writes to a serial device.
// Writes after Close fail with debug.ErrSinkClosed.
type Port struct {
	mu     sync.Mutex
	dev    io.WriteCloser
	name   string
	closed bool
	out    *debug.WriterSink
}

// Open opens the serial device described by cfg.
func Open(cfg Config) (*Port, error) {
	if cfg.Path == "" {
		return nil, errors.New("serialport: no device path")
	}
	if cfg.BaudRate <= 0 {
		return nil, errors.Errorf("serialport: invalid baud rate %d", cfg.BaudRate)
	}

	dev, err := opener(cfg.Path, cfg.mode())
	if err != nil {
		return nil, errors.Wrapf(err, "serialport: open %s", cfg.Path)
	}

	debug.Log(context.Background(), slog.LevelDebug, "serial port opened",
		slog.String("path", cfg.Path), slog.Int("baud", cfg.BaudRate))

	p := New(dev)
	p.name = cfg.Path
	return p, nil
}

// New wraps an already open device.
// A nil dev gives a Port that is already closed.
func New(dev io.WriteCloser) *Port {
	p := &Port{dev: dev, closed: dev == nil}
	p.out = debug.NewWriterSink(p, LineEnding)
	return p
}

// Write implements io.Writer.
func (p *Port) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return 0, debug.ErrSinkClosed
	}
	return p.dev.Write(b)
}

// Print writes v without a line ending.
func (p *Port) Print(v any) {
	p.out.Print(v)
}

// Println writes v followed by LineEnding.
func (p *Port) Println(v any) {
	p.out.Println(v)
}

// Close closes the device. Calling Close more than once is a no-op.
func (p *Port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	if err := p.dev.Close(); err != nil {
		return errors.Wrapf(err, "serialport: close %s", p.name)
	}

	debug.Log(context.Background(), slog.LevelDebug, "serial port closed", slog.String("path", p.name))
	return nil
}
