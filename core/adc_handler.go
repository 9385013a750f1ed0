package core

// SampleComplete handles one finished conversion. The sample is published
// for the foreground loop and the matching (threshold, reload) pair is stored
// for the timer handler. A zero sample is stored but never flagged as new.
func (c *Controller) SampleComplete() {
	sample := c.drv.ReadSample()
	c.shared.publishSample(sample)

	rate := c.cfg.Calibration.Classify(sample)
	if prev := c.shared.rate.Swap(rate.pack()); prev != rate.pack() {
		RecordEvent(EvtRateChange, uint32(rate.Threshold), uint32(rate.Reload))
	}
}
