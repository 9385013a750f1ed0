//go:build rp2040

package main

import "machine"

// BankBackend selects how the output bank is driven
type BankBackend uint8

const (
	BackendGPIO          BankBackend = iota // eight SIO pins
	BackendPIO                              // eight pins from a PIO state machine
	BackendShiftRegister                    // 74HC595 on three pins
)

// BankConfig describes the output bank wiring
type BankConfig struct {
	Backend BankBackend

	// Base is the first of eight consecutive pins (GPIO and PIO backends)
	Base machine.Pin

	// Shift register pins
	Latch, Clock, Data machine.Pin
}

// GetBankConfig returns the output bank wiring of the reference board:
// LEDs on GPIO6-GPIO13, or a 74HC595 on GPIO6-GPIO8.
// This can be modified at compile time.
func GetBankConfig() BankConfig {
	return BankConfig{
		Backend: BackendGPIO,
		Base:    machine.GPIO6,
		Latch:   machine.GPIO6,
		Clock:   machine.GPIO7,
		Data:    machine.GPIO8,
	}
}
