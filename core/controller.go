// LED bank controller
// Coordinates the timer tick handler, the ADC sample handler and the
// foreground polling loop over one 8-bit output port.
package core

// Controller owns the shared state and the driver. TimerTick and
// SampleComplete run in interrupt context; Start, Step and Run in task
// context.
type Controller struct {
	drv    PeripheralDriver
	inputs InputReader
	cfg    Config
	shared sharedState

	// lastButtons is only used to log mode transitions; behaviour is always
	// derived from a fresh poll.
	lastButtons Buttons
	started     bool
}

// New creates a controller. The configuration is validated and nothing is
// written to the hardware until Start. With debouncing configured the button
// lines are read once here to seed the filter.
func New(drv PeripheralDriver, cfg Config) (*Controller, error) {
	if drv == nil {
		return nil, ErrNoDriver
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Controller{
		drv:    drv,
		inputs: drv,
		cfg:    cfg,
	}
	if cfg.DebounceSamples > 0 {
		c.inputs = NewDebouncer(drv, cfg.DebounceSamples, cfg.ButtonA, cfg.ButtonB)
	}
	c.shared.reset(cfg.Calibration.Slow)
	return c, nil
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() Config {
	return c.cfg
}

// Start clears the output bank, configures the timer and ADC, publishes the
// initial button state and enables interrupts. The sweep starts at the top
// position heading down at the slow rate.
func (c *Controller) Start() {
	if c.started {
		return
	}
	c.started = true

	SetDebugEnabled(c.cfg.Debug)

	rate := c.shared.loadRate()
	c.drv.WriteOutputBank(0)
	c.drv.ConfigureTimer(c.cfg.BaseCount)
	c.drv.ConfigureADC(c.cfg.ADCChannel, ADCFreeRunning)
	c.drv.ReloadTimer(rate.Reload)

	c.lastButtons = c.pollButtons()
	c.shared.buttons.Store(c.lastButtons.word())

	RecordEvent(EvtStart, uint32(rate.Threshold), uint32(rate.Reload))
	DebugPrintln("ledbank: start, step every " + utoa(uint32(rate.StepPeriod(c.cfg.BaseCount).Milliseconds())) + " ms")

	c.drv.EnableGlobalInterrupts()
}

// Snapshot returns a consistent copy of the shared state. It masks
// interrupts, so never call it from a handler.
func (c *Controller) Snapshot() Snapshot {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	return Snapshot{
		Ticks:     c.shared.ticks,
		Rate:      c.shared.loadRate(),
		Sample:    uint16(c.shared.sample.Load()),
		NewSample: c.shared.newSample.Load(),
		Sweep:     c.shared.sweep,
		Buttons:   buttonsFromWord(c.shared.buttons.Load()),
	}
}

// pollButtons reads both buttons. Inputs are pulled up, so a pressed button
// reads low.
func (c *Controller) pollButtons() Buttons {
	return Buttons{
		A: !c.inputs.ReadDigitalInput(c.cfg.ButtonA),
		B: !c.inputs.ReadDigitalInput(c.cfg.ButtonB),
	}
}
