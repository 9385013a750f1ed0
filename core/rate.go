package core

import "time"

// Rate is one calibrated (threshold, reload) pair. The sweep advances every
// Threshold overflows of a counter restarted at Reload.
type Rate struct {
	Threshold uint16 `json:"threshold"`
	Reload    uint8  `json:"reload"`
}

// Calibration maps an analog sample onto one of two precomputed rates.
type Calibration struct {
	// Midpoint splits the sample range. Samples below it select Fast,
	// samples at or above it select Slow.
	Midpoint uint16 `json:"midpoint"`
	Fast     Rate   `json:"fast"`
	Slow     Rate   `json:"slow"`
}

// Default calibration for a 16 MHz clock divided by 1024 (64 us per count).
const (
	DefaultBaseCount TimerPeriod = 64000
	DefaultMidpoint              = 511
)

var (
	// FastRate steps every 9 * (256-39) * 64 us = 124.99 ms.
	FastRate = Rate{Threshold: 9, Reload: 39}
	// SlowRate steps every 40 * (256-61) * 64 us = 499.2 ms.
	SlowRate = Rate{Threshold: 40, Reload: 61}
)

// DefaultCalibration returns the table used when no configuration overrides it.
func DefaultCalibration() Calibration {
	return Calibration{
		Midpoint: DefaultMidpoint,
		Fast:     FastRate,
		Slow:     SlowRate,
	}
}

// Classify selects the rate for a sample. Exactly one of Fast and Slow is
// returned for every input.
func (c Calibration) Classify(sample uint16) Rate {
	if sample < c.Midpoint {
		return c.Fast
	}
	return c.Slow
}

// OverflowPeriod returns the time between two counter overflows.
func (r Rate) OverflowPeriod(base TimerPeriod) time.Duration {
	counts := TimerCounterSpan - int64(r.Reload)
	return time.Duration(counts * int64(base))
}

// StepPeriod returns the wall-clock time between two sweep steps.
func (r Rate) StepPeriod(base TimerPeriod) time.Duration {
	return r.OverflowPeriod(base) * time.Duration(r.Threshold)
}

// pack folds the pair into one word so it can be published with a single store.
func (r Rate) pack() uint32 {
	return uint32(r.Threshold)<<16 | uint32(r.Reload)
}

func unpackRate(w uint32) Rate {
	return Rate{Threshold: uint16(w >> 16), Reload: uint8(w)}
}
