//go:build linux

package main

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/warthog618/gpio"
	"github.com/warthog618/gpio/spi/mcp3w0c"

	"ledbank/core"
)

// Handlers are the controller entry points the service goroutines stand in
// interrupts for.
type Handlers interface {
	TimerTick()
	SampleComplete()
}

// Driver implements core.PeripheralDriver on a Raspberry Pi. LEDs and buttons
// are GPIO lines; samples come from an MCP3008 on bit-banged SPI. A goroutine
// per interrupt source calls into the controller through core.EnterISR.
type Driver struct {
	leds    [8]*gpio.Pin
	mu      sync.Mutex // guards inputs
	inputs  map[core.InputPin]*gpio.Pin
	adc     *mcp3w0c.MCP3w0c
	channel int
	mode    core.ADCMode

	period   time.Duration
	reload   atomic.Uint32
	sample   atomic.Uint32
	interval time.Duration // ADC poll interval

	enabled  chan struct{}
	enableMu sync.Once
}

// DriverConfig is the board wiring. Pin numbers are BCM.
type DriverConfig struct {
	LEDs [8]int

	// MCP3008 wiring
	SCLK, SSZ, MOSI, MISO int
	ClockPeriod           time.Duration

	SampleInterval time.Duration
}

// DefaultDriverConfig returns the wiring of the reference hat: LEDs on
// BCM 5,6,13,19,26,16,20,21 (bit 0 first) and the ADC on the SPI0 header pins.
func DefaultDriverConfig() DriverConfig {
	return DriverConfig{
		LEDs:           [8]int{5, 6, 13, 19, 26, 16, 20, 21},
		SCLK:           11,
		SSZ:            8,
		MOSI:           10,
		MISO:           9,
		ClockPeriod:    500 * time.Nanosecond,
		SampleInterval: time.Millisecond,
	}
}

// NewDriver claims the LED lines. gpio.Open must already have succeeded.
func NewDriver(cfg DriverConfig) *Driver {
	d := &Driver{
		inputs:   make(map[core.InputPin]*gpio.Pin),
		adc:      mcp3w0c.NewMCP3008(cfg.ClockPeriod, cfg.SCLK, cfg.SSZ, cfg.MOSI, cfg.MISO),
		interval: cfg.SampleInterval,
		enabled:  make(chan struct{}),
	}
	for i, n := range cfg.LEDs {
		p := gpio.NewPin(n)
		p.Output()
		d.leds[i] = p
	}
	return d
}

// input returns the line for pin, switching it to a pulled-up input on first use
func (d *Driver) input(pin core.InputPin) *gpio.Pin {
	d.mu.Lock()
	defer d.mu.Unlock()
	p, ok := d.inputs[pin]
	if !ok {
		p = gpio.NewPin(int(pin))
		p.Input()
		p.PullUp()
		d.inputs[pin] = p
	}
	return p
}

func (d *Driver) ReadDigitalInput(pin core.InputPin) bool {
	return bool(d.input(pin).Read())
}

func (d *Driver) ConfigureTimer(period core.TimerPeriod) {
	d.period = time.Duration(period)
}

func (d *Driver) ConfigureADC(ch core.ADCChannel, mode core.ADCMode) {
	d.channel = int(ch)
	d.mode = mode
}

func (d *Driver) ReloadTimer(reload uint8) {
	d.reload.Store(uint32(reload))
}

func (d *Driver) ReadSample() uint16 {
	return uint16(d.sample.Load())
}

func (d *Driver) WriteOutputBank(bits uint8) {
	for i, p := range d.leds {
		p.Write(gpio.Level(bits&(1<<i) != 0))
	}
}

func (d *Driver) ReadOutputBank() uint8 {
	var bits uint8
	for i, p := range d.leds {
		if p.Read() == gpio.High {
			bits |= 1 << i
		}
	}
	return bits
}

func (d *Driver) EnableGlobalInterrupts() {
	d.enableMu.Do(func() { close(d.enabled) })
}

// Serve runs the timer and ADC service goroutines until ctx is done. Neither
// calls into h before EnableGlobalInterrupts.
func (d *Driver) Serve(ctx context.Context, h Handlers) {
	select {
	case <-d.enabled:
	case <-ctx.Done():
		return
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		d.serveTimer(ctx, h)
	}()
	go func() {
		defer wg.Done()
		d.serveADC(ctx, h)
	}()
	wg.Wait()
}

// serveTimer fires TimerTick every (256-reload) counts. Deadlines advance
// from the previous one, as the hardware counter would.
func (d *Driver) serveTimer(ctx context.Context, h Handlers) {
	next := time.Now()
	for {
		span := time.Duration(core.TimerCounterSpan-d.reload.Load()) * d.period
		next = next.Add(span)
		wait := time.Until(next)
		if wait < 0 {
			next = time.Now()
			wait = 0
		}
		t := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			t.Stop()
			return
		case <-t.C:
		}
		core.EnterISR(h.TimerTick)
	}
}

// serveADC converts and raises SampleComplete at the poll interval. In
// single-shot mode one conversion is made.
func (d *Driver) serveADC(ctx context.Context, h Handlers) {
	tick := time.NewTicker(d.interval)
	defer tick.Stop()
	for {
		d.sample.Store(uint32(d.adc.Read(d.channel)))
		core.EnterISR(h.SampleComplete)
		if d.mode == core.ADCSingleShot {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-tick.C:
		}
	}
}

// Close releases the ADC and switches the LED lines back to inputs
func (d *Driver) Close() {
	d.WriteOutputBank(0)
	for _, p := range d.leds {
		p.Input()
	}
	d.adc.Close()
}
