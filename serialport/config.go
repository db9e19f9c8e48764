package serialport

import (
	"os"
	"strconv"

	"go.bug.st/serial"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvPath = "DEBUG_SERIAL"
	EnvBaud = "DEBUG_BAUD"
)

// DefaultBaudRate is the line speed used when none is configured.
const DefaultBaudRate = 115200

// Config describes how to open a serial device.
type Config struct {
	Path     string
	BaudRate int
	DataBits int
	Parity   serial.Parity
	StopBits serial.StopBits
}

// DefaultConfig returns an 8N1 configuration at DefaultBaudRate for path.
func DefaultConfig(path string) Config {
	return Config{
		Path:     path,
		BaudRate: DefaultBaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
}

// ConfigFromEnv builds a Config from DEBUG_SERIAL and DEBUG_BAUD.
// Path is empty when DEBUG_SERIAL is unset. A missing or malformed
// DEBUG_BAUD keeps DefaultBaudRate.
func ConfigFromEnv() Config {
	cfg := DefaultConfig(os.Getenv(EnvPath))

	baud, err := strconv.Atoi(os.Getenv(EnvBaud))
	if err != nil || baud <= 0 {
		return cfg
	}

	cfg.BaudRate = baud
	return cfg
}

func (c Config) mode() *serial.Mode {
	return &serial.Mode{
		BaudRate: c.BaudRate,
		DataBits: c.DataBits,
		Parity:   c.Parity,
		StopBits: c.StopBits,
	}
}
