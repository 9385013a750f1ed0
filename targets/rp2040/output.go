//go:build rp2040

package main

import (
	"device/rp"
	"errors"
	"machine"

	"ledbank/targets/pio"

	"tinygo.org/x/drivers/shiftregister"
)

var errUnknownBackend = errors.New("unknown output bank backend")

// bankWriter is the physical output port behind the driver
type bankWriter interface {
	Write(bits uint8)
	Read() uint8
}

// newBank builds the backend selected in cfg
func newBank(cfg BankConfig) (bankWriter, error) {
	switch cfg.Backend {
	case BackendGPIO:
		return newGPIOBank(cfg.Base), nil
	case BackendPIO:
		b, err := pio.NewOutputBank(cfg.Base)
		if err != nil {
			return nil, err
		}
		if err := b.Init(); err != nil {
			b.Stop()
			return nil, err
		}
		return b, nil
	case BackendShiftRegister:
		return newShiftBank(cfg.Latch, cfg.Clock, cfg.Data), nil
	}
	return nil, errUnknownBackend
}

// gpioBank drives eight consecutive SIO pins with one register update
type gpioBank struct {
	base machine.Pin
}

func newGPIOBank(base machine.Pin) *gpioBank {
	for i := machine.Pin(0); i < 8; i++ {
		(base + i).Configure(machine.PinConfig{Mode: machine.PinOutput})
	}
	return &gpioBank{base: base}
}

// Write replaces the eight bank bits in one read-modify-write of GPIO_OUT.
// Callers hold interrupts masked (handler or critical section), so no other
// bank write can land between the read and the store.
func (b *gpioBank) Write(bits uint8) {
	rp.SIO.GPIO_OUT.ReplaceBits(uint32(bits), 0xff, uint8(b.base))
}

func (b *gpioBank) Read() uint8 {
	return uint8(rp.SIO.GPIO_OUT.Get() >> uint32(b.base))
}

// shiftBank drives a 74HC595. The chip cannot be read back, so Read reports
// the byte last latched into it.
type shiftBank struct {
	dev     *shiftregister.Device
	latched uint8
}

func newShiftBank(latch, clock, data machine.Pin) *shiftBank {
	dev := shiftregister.New(shiftregister.EIGHT_BITS, latch, clock, data)
	dev.Configure()
	return &shiftBank{dev: dev}
}

func (b *shiftBank) Write(bits uint8) {
	b.dev.WriteMask(uint32(bits))
	b.latched = bits
}

func (b *shiftBank) Read() uint8 {
	return b.latched
}
