package sim

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyScenario = errors.New("scenario has no steps")
	ErrBadStep       = errors.New("step must hold exactly one action")
	ErrBadButton     = errors.New(`button must be "a" or "b"`)
	ErrUnknown       = errors.New("unknown scenario")
	ErrTraceMismatch = errors.New("trace mismatch")
)

//go:embed scenarios/*.yaml
var builtinFS embed.FS

// Scenario is a scripted sequence of board events and the output writes it
// is expected to produce.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// DebounceSamples overrides core.Config.DebounceSamples when non-zero.
	DebounceSamples uint8 `yaml:"debounce_samples,omitempty"`

	Steps []Step `yaml:"steps"`

	// Expect lists the output bank writes after the start-up clear. Empty
	// means the scenario is not checked.
	Expect []uint8 `yaml:"expect,omitempty"`
}

// Step is one event. Exactly one field is set.
type Step struct {
	Press   string  `yaml:"press,omitempty"`
	Release string  `yaml:"release,omitempty"`
	Sample  *uint16 `yaml:"sample,omitempty"`
	Ticks   int     `yaml:"ticks,omitempty"`
	Poll    int     `yaml:"poll,omitempty"`
}

func (s Step) actions() int {
	n := 0
	if s.Press != "" {
		n++
	}
	if s.Release != "" {
		n++
	}
	if s.Sample != nil {
		n++
	}
	if s.Ticks > 0 {
		n++
	}
	if s.Poll > 0 {
		n++
	}
	return n
}

// Validate checks every step holds one well-formed action.
func (sc Scenario) Validate() error {
	if len(sc.Steps) == 0 {
		return ErrEmptyScenario
	}
	for i, st := range sc.Steps {
		if st.actions() != 1 {
			return fmt.Errorf("step %d: %w", i, ErrBadStep)
		}
		for _, b := range []string{st.Press, st.Release} {
			if b != "" && b != "a" && b != "b" {
				return fmt.Errorf("step %d: %w", i, ErrBadButton)
			}
		}
	}
	return nil
}

// Parse decodes and validates one YAML scenario.
func Parse(data []byte) (Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, err
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}
	return sc, nil
}

// LoadFile reads a scenario from disk.
func LoadFile(name string) (Scenario, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return Scenario{}, err
	}
	return Parse(data)
}

// Builtin returns the bundled scenarios sorted by name.
func Builtin() ([]Scenario, error) {
	entries, err := builtinFS.ReadDir("scenarios")
	if err != nil {
		return nil, err
	}
	var out []Scenario
	for _, e := range entries {
		data, err := builtinFS.ReadFile(path.Join("scenarios", e.Name()))
		if err != nil {
			return nil, err
		}
		sc, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Name(), err)
		}
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Lookup resolves a built-in scenario by name, or loads name as a file.
func Lookup(name string) (Scenario, error) {
	all, err := Builtin()
	if err != nil {
		return Scenario{}, err
	}
	for _, sc := range all {
		if sc.Name == name {
			return sc, nil
		}
	}
	if _, err := os.Stat(name); err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", name, ErrUnknown)
	}
	return LoadFile(name)
}
