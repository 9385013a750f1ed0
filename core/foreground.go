package core

// Step runs one pass of the foreground loop: poll the buttons, publish them
// for the timer handler and, in thermometer mode, render a pending sample.
func (c *Controller) Step() {
	buttons := c.pollButtons()
	c.shared.buttons.Store(buttons.word())

	if buttons != c.lastButtons {
		c.lastButtons = buttons
		state := disableInterrupts()
		RecordEvent(EvtModeChange, buttons.word(), 0)
		restoreInterrupts(state)
		DebugPrintln("ledbank: mode " + describeMode(buttons))
	}

	if !buttons.Sweeping() {
		if sample, ok := c.shared.takeSample(); ok {
			c.renderThermometer(sample, buttons.Resolution())
		}
	}

	if IsDebugEnabled() {
		DrainEvents(func(evt Event) {
			debugPrintln(FormatEvent(evt))
		})
	}
}

// Run polls forever. There is no idle state and no exit path.
func (c *Controller) Run() {
	for {
		c.Step()
	}
}

// renderThermometer writes the bar for sample with interrupts masked. A sweep
// step already in flight finishes before the bar is written, so a port that
// takes more than one store to update never ends up mixing the two patterns.
// Four-level mode rewrites the low nibble in place, and the masked read and
// write keep a sweep step from landing between them.
func (c *Controller) renderThermometer(sample uint16, res Resolution) {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	var prior uint8
	if res == FourLevel {
		prior = c.drv.ReadOutputBank()
	}
	pattern := Thermometer(sample, res, prior)
	c.drv.WriteOutputBank(pattern)
	RecordEvent(EvtThermo, uint32(sample), uint32(pattern))
}

func describeMode(b Buttons) string {
	if b.Sweeping() {
		return "sweep " + b.Bounds().String()
	}
	return "thermometer " + b.Resolution().String()
}

// ModeName describes the mode carried by an EvtModeChange event.
func ModeName(word uint32) string {
	return describeMode(buttonsFromWord(word))
}
