//go:build rp2040

package main

import (
	"ledbank/core"
	"machine"
	"runtime/interrupt"
)

// RPPeripheralDriver implements core.PeripheralDriver for the RP2040
type RPPeripheralDriver struct {
	bank     bankWriter
	timerIRQ interrupt.Interrupt
	adcIRQ   interrupt.Interrupt
}

// NewRPPeripheralDriver creates a driver writing LEDs through bank
func NewRPPeripheralDriver(bank bankWriter) *RPPeripheralDriver {
	return &RPPeripheralDriver{bank: bank}
}

// ConfigureInputs sets the button pins to inputs with pull-ups
func (d *RPPeripheralDriver) ConfigureInputs(pins ...machine.Pin) {
	for _, p := range pins {
		p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}
}

func (d *RPPeripheralDriver) ReadDigitalInput(pin core.InputPin) bool {
	return machine.Pin(pin).Get()
}

func (d *RPPeripheralDriver) ConfigureTimer(period core.TimerPeriod) {
	initOverflowTimer(period)
}

func (d *RPPeripheralDriver) ConfigureADC(ch core.ADCChannel, mode core.ADCMode) {
	initADC(ch, mode)
}

func (d *RPPeripheralDriver) ReloadTimer(reload uint8) {
	armOverflow(reload)
}

func (d *RPPeripheralDriver) ReadSample() uint16 {
	return popSample()
}

func (d *RPPeripheralDriver) WriteOutputBank(bits uint8) {
	d.bank.Write(bits)
}

func (d *RPPeripheralDriver) ReadOutputBank() uint8 {
	return d.bank.Read()
}

func (d *RPPeripheralDriver) EnableGlobalInterrupts() {
	d.timerIRQ.Enable()
	d.adcIRQ.Enable()
}
