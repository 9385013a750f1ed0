// Package sim runs the controller core against a simulated board.
package sim

import (
	"sync"
	"time"

	"ledbank/core"
)

// Write is one output bank write with the virtual time it happened at.
type Write struct {
	At   time.Duration
	Bits uint8
}

// Driver is a core.PeripheralDriver backed by memory. Button lines idle high
// (pulled up) and read low while pressed. Virtual time advances only when the
// runner delivers a timer overflow.
type Driver struct {
	mu sync.Mutex

	levels map[core.InputPin]bool
	port   uint8
	sample uint16

	period     core.TimerPeriod
	reload     uint8
	channel    core.ADCChannel
	adcMode    core.ADCMode
	interrupts bool

	now    time.Duration
	writes []Write
}

// NewDriver returns a driver with every input released.
func NewDriver() *Driver {
	return &Driver{levels: make(map[core.InputPin]bool)}
}

func (d *Driver) ReadDigitalInput(pin core.InputPin) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	level, ok := d.levels[pin]
	if !ok {
		return true
	}
	return level
}

func (d *Driver) ConfigureTimer(period core.TimerPeriod) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.period = period
}

func (d *Driver) ConfigureADC(channel core.ADCChannel, mode core.ADCMode) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.channel = channel
	d.adcMode = mode
}

func (d *Driver) ReloadTimer(reload uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.reload = reload
}

func (d *Driver) ReadSample() uint16 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sample
}

func (d *Driver) WriteOutputBank(bits uint8) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.port = bits
	d.writes = append(d.writes, Write{At: d.now, Bits: bits})
}

func (d *Driver) ReadOutputBank() uint8 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.port
}

func (d *Driver) EnableGlobalInterrupts() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.interrupts = true
}

// Press drives a button line low.
func (d *Driver) Press(pin core.InputPin) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.levels[pin] = false
}

// Release lets a button line float back high.
func (d *Driver) Release(pin core.InputPin) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.levels[pin] = true
}

// SetSample sets the value the next conversion returns.
func (d *Driver) SetSample(v uint16) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.sample = v
}

// Overflow advances virtual time to the next counter overflow, as set by the
// last reload.
func (d *Driver) Overflow() {
	d.mu.Lock()
	defer d.mu.Unlock()
	counts := time.Duration(core.TimerCounterSpan - int(d.reload))
	d.now += counts * time.Duration(d.period)
}

// InterruptsEnabled reports whether the controller has enabled event delivery.
func (d *Driver) InterruptsEnabled() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.interrupts
}

// Now returns the current virtual time.
func (d *Driver) Now() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.now
}

// Port returns the current output bank value.
func (d *Driver) Port() uint8 {
	return d.ReadOutputBank()
}

// Writes returns a copy of every output write so far.
func (d *Driver) Writes() []Write {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]Write(nil), d.writes...)
}
