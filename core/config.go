package core

import "encoding/json"

// Config is the controller configuration. The zero value is not usable; start
// from DefaultConfig or LoadConfig.
type Config struct {
	// ButtonA enables the sweep while pressed; ButtonB selects half range
	// (sweep) or four-level resolution (thermometer).
	ButtonA InputPin `json:"button_a"`
	ButtonB InputPin `json:"button_b"`

	ADCChannel ADCChannel `json:"adc_channel"`

	// BaseCount is the timer count period in nanoseconds.
	BaseCount TimerPeriod `json:"base_count_ns"`

	Calibration Calibration `json:"calibration"`

	// DebounceSamples > 0 wraps the button inputs in a Debouncer that needs
	// that many identical polls before accepting a change. 0 polls raw.
	DebounceSamples uint8 `json:"debounce_samples"`

	// Debug enables DebugPrintln output and event draining in the foreground loop.
	Debug bool `json:"debug"`
}

// MaxDebounceSamples bounds DebounceSamples.
const MaxDebounceSamples = 64

// DefaultConfig returns the configuration of the reference board: buttons on
// inputs 2 and 3, analog channel 0.
func DefaultConfig() Config {
	return Config{
		ButtonA:     2,
		ButtonB:     3,
		ADCChannel:  0,
		BaseCount:   DefaultBaseCount,
		Calibration: DefaultCalibration(),
	}
}

// LoadConfig parses a JSON configuration. Fields left out keep their defaults.
func LoadConfig(jsonData []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyDefaults fills in values that were explicitly zeroed
func applyDefaults(cfg *Config) {
	if cfg.BaseCount == 0 {
		cfg.BaseCount = DefaultBaseCount
	}
	if cfg.Calibration.Midpoint == 0 {
		cfg.Calibration.Midpoint = DefaultMidpoint
	}
	if cfg.Calibration.Fast == (Rate{}) {
		cfg.Calibration.Fast = FastRate
	}
	if cfg.Calibration.Slow == (Rate{}) {
		cfg.Calibration.Slow = SlowRate
	}
}

// Validate checks the configuration for values the handlers cannot run with.
func (c Config) Validate() error {
	if c.ButtonA == c.ButtonB {
		return ErrButtonConflict
	}
	if c.BaseCount == 0 {
		return ErrZeroBaseCount
	}
	cal := c.Calibration
	if cal.Midpoint == 0 || cal.Midpoint > ADCMax {
		return ErrMidpointRange
	}
	if cal.Fast.Threshold == 0 || cal.Slow.Threshold == 0 {
		return ErrZeroThreshold
	}
	if c.DebounceSamples > MaxDebounceSamples {
		return ErrDebounceSamples
	}
	return nil
}
