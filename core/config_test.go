package core

import (
	"errors"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"button_a": 14, "button_b": 15, "debounce_samples": 4}`))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.ButtonA != 14 || cfg.ButtonB != 15 {
		t.Errorf("expected buttons 14/15, got %d/%d", cfg.ButtonA, cfg.ButtonB)
	}
	if cfg.DebounceSamples != 4 {
		t.Errorf("expected 4 debounce samples, got %d", cfg.DebounceSamples)
	}
	if cfg.Calibration != DefaultCalibration() {
		t.Errorf("expected default calibration, got %+v", cfg.Calibration)
	}
	if cfg.BaseCount != DefaultBaseCount {
		t.Errorf("expected base count %d, got %d", DefaultBaseCount, cfg.BaseCount)
	}
}

func TestLoadConfigZeroedFieldsRestored(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"base_count_ns": 0, "calibration": {"midpoint": 0, "fast": {"threshold": 0, "reload": 0}}}`))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.BaseCount != DefaultBaseCount || cfg.Calibration.Midpoint != DefaultMidpoint {
		t.Errorf("zeroed fields not restored: %+v", cfg)
	}
	if cfg.Calibration.Fast != FastRate {
		t.Errorf("expected fast rate %+v, got %+v", FastRate, cfg.Calibration.Fast)
	}
}

func TestLoadConfigCustomCalibration(t *testing.T) {
	cfg, err := LoadConfig([]byte(`{"calibration": {"midpoint": 600, "fast": {"threshold": 10, "reload": 61}}}`))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if got := cfg.Calibration.Classify(599); got != (Rate{Threshold: 10, Reload: 61}) {
		t.Errorf("expected custom fast rate, got %+v", got)
	}
	if got := cfg.Calibration.Classify(600); got != SlowRate {
		t.Errorf("expected slow rate, got %+v", got)
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"same pin", func(c *Config) { c.ButtonB = c.ButtonA }, ErrButtonConflict},
		{"zero base", func(c *Config) { c.BaseCount = 0 }, ErrZeroBaseCount},
		{"midpoint above range", func(c *Config) { c.Calibration.Midpoint = ADCMax + 1 }, ErrMidpointRange},
		{"zero threshold", func(c *Config) { c.Calibration.Slow.Threshold = 0 }, ErrZeroThreshold},
		{"debounce too long", func(c *Config) { c.DebounceSamples = MaxDebounceSamples + 1 }, ErrDebounceSamples},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	if _, err := LoadConfig([]byte(`{"button_a": `)); err == nil {
		t.Error("expected error for truncated JSON")
	}
	if _, err := LoadConfig([]byte(`{"button_a": 3, "button_b": 3}`)); !errors.Is(err, ErrButtonConflict) {
		t.Errorf("expected ErrButtonConflict, got %v", err)
	}
}
