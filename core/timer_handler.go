package core

// TimerTick handles one timer overflow. It reloads the counter first so the
// overflow period stays exact, then counts the tick and, once the threshold
// is reached, advances the sweep and restarts the count.
//
// While button A is released the count still runs but the sweep is left
// alone; the thermometer owns the output bank.
func (c *Controller) TimerTick() {
	rate := c.shared.loadRate()
	c.drv.ReloadTimer(rate.Reload)

	c.shared.ticks++
	if c.shared.ticks < rate.Threshold {
		return
	}
	c.shared.ticks = 0

	buttons := buttonsFromWord(c.shared.buttons.Load())
	if !buttons.Sweeping() {
		return
	}
	pattern := c.shared.sweep.Advance(buttons.Bounds())
	c.drv.WriteOutputBank(pattern)
	RecordEvent(EvtSweepStep, uint32(c.shared.sweep.Position), uint32(pattern))
}
