package core

import "sync/atomic"

// Buttons holds one poll of the two push-buttons, already converted from the
// active-low line level to "pressed".
type Buttons struct {
	A bool // sweep enable
	B bool // half range / four-level
}

// Sweeping reports whether the sweep owns the output bank.
func (b Buttons) Sweeping() bool { return b.A }

// Bounds returns the sweep bound set selected by button B.
func (b Buttons) Bounds() BoundSet {
	if b.B {
		return HalfRange
	}
	return FullRange
}

// Resolution returns the thermometer resolution selected by button B.
func (b Buttons) Resolution() Resolution {
	if b.B {
		return FourLevel
	}
	return EightLevel
}

// String names the mode the buttons select.
func (b Buttons) String() string { return describeMode(b) }

func (b Buttons) word() uint32 {
	var w uint32
	if b.A {
		w |= 1
	}
	if b.B {
		w |= 2
	}
	return w
}

func buttonsFromWord(w uint32) Buttons {
	return Buttons{A: w&1 != 0, B: w&2 != 0}
}

// sharedState is every variable touched from more than one execution context.
//
// Cross-context fields are each a single 32-bit atomic so one store publishes
// them whole: the rate word carries threshold and reload together, and the
// button word is refreshed by the foreground loop on every pass. ticks and
// sweep belong to the timer handler alone and are only read elsewhere inside
// a critical section.
type sharedState struct {
	rate      atomic.Uint32 // Rate.pack(); written by the ADC handler
	sample    atomic.Uint32 // latest conversion; written by the ADC handler
	newSample atomic.Bool   // set by the ADC handler, cleared by the foreground loop
	buttons   atomic.Uint32 // Buttons.word(); written by the foreground loop

	ticks uint16
	sweep Sweep
}

func (s *sharedState) reset(rate Rate) {
	s.rate.Store(rate.pack())
	s.sample.Store(0)
	s.newSample.Store(false)
	s.buttons.Store(0)
	s.ticks = 0
	s.sweep = NewSweep()
}

func (s *sharedState) loadRate() Rate {
	return unpackRate(s.rate.Load())
}

// publishSample stores the sample before raising the flag so a consumer that
// sees the flag always reads this sample or a newer one.
func (s *sharedState) publishSample(v uint16) {
	s.sample.Store(uint32(v))
	if v != 0 {
		s.newSample.Store(true)
	}
}

// takeSample clears the flag and returns the latest sample. A sample
// published after the flag is cleared raises it again, so none is missed;
// an older one overwritten before this call is dropped.
func (s *sharedState) takeSample() (uint16, bool) {
	if !s.newSample.Swap(false) {
		return 0, false
	}
	return uint16(s.sample.Load()), true
}

// Snapshot is a consistent copy of the shared state for diagnostics and tests.
type Snapshot struct {
	Ticks     uint16
	Rate      Rate
	Sample    uint16
	NewSample bool
	Sweep     Sweep
	Buttons   Buttons
}
