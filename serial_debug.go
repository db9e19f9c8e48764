//go:build debug
// +build debug

package serialdebug

import (
	"context"
	"log/slog"

	"github.com/sketchbook/serialdebug/internal/debug"
	"github.com/sketchbook/serialdebug/serialport"
)

func init() {
	installSerialSink(serialport.ConfigFromEnv(), serialport.Open)
}

// installSerialSink replaces the sink with the serial device in cfg.
// An empty path or a device that fails to open keeps the current sink.
func installSerialSink(cfg serialport.Config, open func(serialport.Config) (*serialport.Port, error)) {
	if cfg.Path == "" {
		return
	}

	port, err := open(cfg)
	if err != nil {
		debug.Log(context.Background(), slog.LevelWarn, "debug output stays on stderr", slog.Any("error", err))
		return
	}

	debug.SetSink(port)
}
