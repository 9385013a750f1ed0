package sim

import (
	"fmt"

	"github.com/rs/zerolog"

	"ledbank/core"
)

// Trace is the result of one scenario run.
type Trace struct {
	Scenario string
	// Writes excludes the start-up clear.
	Writes []Write
	Final  core.Snapshot
}

// Bytes returns just the written values.
func (t *Trace) Bytes() []uint8 {
	out := make([]uint8, len(t.Writes))
	for i, w := range t.Writes {
		out[i] = w.Bits
	}
	return out
}

// Run plays sc against a fresh controller. The foreground loop gets one pass
// after every event, standing in for the busy loop that runs between
// interrupts on hardware.
func Run(sc Scenario, cfg core.Config, logger zerolog.Logger) (*Trace, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if sc.DebounceSamples != 0 {
		cfg.DebounceSamples = sc.DebounceSamples
	}

	drv := NewDriver()
	ctl, err := core.New(drv, cfg)
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}
	ctl.Start()
	startWrites := len(drv.Writes())

	pin := func(name string) core.InputPin {
		if name == "b" {
			return cfg.ButtonB
		}
		return cfg.ButtonA
	}

	for i, st := range sc.Steps {
		switch {
		case st.Press != "":
			drv.Press(pin(st.Press))
			ctl.Step()
		case st.Release != "":
			drv.Release(pin(st.Release))
			ctl.Step()
		case st.Sample != nil:
			drv.SetSample(*st.Sample)
			core.EnterISR(ctl.SampleComplete)
			ctl.Step()
		case st.Ticks > 0:
			for n := 0; n < st.Ticks; n++ {
				drv.Overflow()
				core.EnterISR(ctl.TimerTick)
				ctl.Step()
			}
		case st.Poll > 0:
			for n := 0; n < st.Poll; n++ {
				ctl.Step()
			}
		}
		logger.Debug().Int("step", i).Dur("at", drv.Now()).Uint8("port", drv.Port()).Msg("step done")
	}

	trace := &Trace{
		Scenario: sc.Name,
		Writes:   drv.Writes()[startWrites:],
		Final:    ctl.Snapshot(),
	}
	logger.Info().Str("scenario", sc.Name).Int("writes", len(trace.Writes)).Dur("elapsed", drv.Now()).Msg("scenario finished")
	return trace, nil
}

// Check compares a trace against the scenario's expected writes.
func Check(sc Scenario, trace *Trace) error {
	got := trace.Bytes()
	for i, want := range sc.Expect {
		if i >= len(got) {
			return fmt.Errorf("%s: write %d missing (want %08b): %w", sc.Name, i, want, ErrTraceMismatch)
		}
		if got[i] != want {
			return fmt.Errorf("%s: write %d is %08b, want %08b: %w", sc.Name, i, got[i], want, ErrTraceMismatch)
		}
	}
	if len(got) > len(sc.Expect) {
		return fmt.Errorf("%s: %d extra writes: %w", sc.Name, len(got)-len(sc.Expect), ErrTraceMismatch)
	}
	return nil
}
