package simulation

import (
	"fmt"
	"math"

	"github.com/Facsimiler/facsimile/sim"
)

// Config carries the parameters of one simulation run. It is validated
// eagerly when the run controller is built; a run never starts with an
// invalid configuration.
type Config struct {
	// WarmUpDuration is the initial simulated interval during which
	// statistics are discarded. Must be positive.
	WarmUpDuration sim.VTimeInSec

	// SnapDuration is the length of each measurement window after warm-up.
	// Must be positive.
	SnapDuration sim.VTimeInSec

	// SnapCount is the number of measurement windows. Must be positive.
	SnapCount int

	// MasterSeed seeds all named random streams of the run.
	MasterSeed uint64

	// RunModel selects between executing the model and validating the
	// configuration only.
	RunModel bool
}

// A ConfigError reports a configuration that the run controller refuses to
// start with.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Field, e.Reason)
}

// Validate checks the configuration. It returns a ConfigError describing
// the first violated constraint, or nil.
func (c Config) Validate() error {
	if math.IsNaN(float64(c.WarmUpDuration)) || c.WarmUpDuration <= 0 {
		return &ConfigError{Field: "WarmUpDuration", Reason: "must be positive"}
	}

	if math.IsNaN(float64(c.SnapDuration)) || c.SnapDuration <= 0 {
		return &ConfigError{Field: "SnapDuration", Reason: "must be positive"}
	}

	if c.SnapCount <= 0 {
		return &ConfigError{Field: "SnapCount", Reason: "must be positive"}
	}

	if math.IsInf(float64(c.Horizon()), 0) {
		return &ConfigError{
			Field:  "SnapDuration",
			Reason: "times SnapCount overflows the time range",
		}
	}

	return nil
}

// Horizon returns the simulation time at which the run completes: the end
// of the last measurement window.
func (c Config) Horizon() sim.VTimeInSec {
	return c.WarmUpDuration + c.SnapDuration*sim.VTimeInSec(c.SnapCount)
}
