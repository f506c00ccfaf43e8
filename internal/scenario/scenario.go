// Package scenario loads demo scenarios for the coop-demo driver.
//
// A scenario file is TOML:
//
//	unit = "50ms"
//
//	[[tasks]]
//	name  = "first"
//	units = 1
//
//	[[tasks]]
//	name  = "second"
//	units = 2
package scenario

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// Duration wraps time.Duration so TOML strings like "50ms" decode into it.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// A Scenario is a set of named demo tasks, each waiting some number of
// time units before announcing completion.
type Scenario struct {
	Unit  Duration `toml:"unit"`
	Tasks []Spec   `toml:"tasks"`
}

// A Spec describes one demo task.
type Spec struct {
	Name  string `toml:"name"`
	Units int    `toml:"units"`
}

// Default is the scenario the driver runs when no file is given: the
// classic four greeters with waits of 10, 5, 2 and 1 units.
func Default(unit time.Duration) Scenario {
	return Scenario{
		Unit: Duration(unit),
		Tasks: []Spec{
			{Name: "10", Units: 10},
			{Name: "5", Units: 5},
			{Name: "2", Units: 2},
			{Name: "1", Units: 1},
		},
	}
}

// Load reads and validates a scenario file.
func Load(path string) (Scenario, error) {
	var s Scenario
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Scenario{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks a scenario for use by the driver.
func (s Scenario) Validate() error {
	if s.Unit <= 0 {
		return fmt.Errorf("unit must be positive, got %v", time.Duration(s.Unit))
	}
	if len(s.Tasks) == 0 {
		return fmt.Errorf("scenario has no tasks")
	}
	for i, spec := range s.Tasks {
		if spec.Name == "" {
			return fmt.Errorf("tasks[%d]: name must not be empty", i)
		}
		if spec.Units < 0 {
			return fmt.Errorf("tasks[%d] (%s): units must not be negative, got %d", i, spec.Name, spec.Units)
		}
	}
	return nil
}

// Delay returns how long the given task waits.
func (s Scenario) Delay(spec Spec) time.Duration {
	return time.Duration(spec.Units) * time.Duration(s.Unit)
}
