// Package serial tails the controller's debug UART from a host and decodes
// the event lines it carries.
package serial

import (
	"errors"
	"fmt"
	"time"

	"github.com/tarm/serial"
)

// ErrNoDevice is returned by Open when Config.Device is empty
var ErrNoDevice = errors.New("no serial device given")

// FirmwareBaud is the rate the firmware configures its debug UART at
const FirmwareBaud = 115200

// Config holds serial port configuration
type Config struct {
	Device string // e.g. "/dev/ttyUSB0", "COM3"
	Baud   int

	// ReadTimeout bounds a single read; 0 blocks
	ReadTimeout time.Duration
}

// DefaultConfig returns the settings matching the firmware debug UART
func DefaultConfig(device string) Config {
	return Config{
		Device:      device,
		Baud:        FirmwareBaud,
		ReadTimeout: 100 * time.Millisecond,
	}
}

// Port is an open debug UART
type Port struct {
	*serial.Port
	Config
}

// Open opens the port described by cfg
func Open(cfg Config) (*Port, error) {
	if cfg.Device == "" {
		return nil, ErrNoDevice
	}
	if cfg.Baud == 0 {
		cfg.Baud = FirmwareBaud
	}

	p, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Device, err)
	}
	return &Port{Port: p, Config: cfg}, nil
}

// Discard drops whatever the UART buffered before the console attached, so
// the first line read starts fresh.
func (p *Port) Discard() error {
	return p.Flush()
}
