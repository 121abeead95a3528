// Package plan - constraint configuration and validation.
package plan

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/eyal-algocell/idoe/design"
)

// Cap is an enabled/threshold pair for the repeat-cap constraints C3 and C4.
type Cap struct {
	Enabled bool
	Max     int
}

// Repetition configures C6 (weighted repetition targets).
//
//   - StageWeights — one weight per stage position; nil means all 1.0.
//   - Policy       — computes a per-point target from the design space;
//     nil means CoveragePolicy. Computed once per Build, never read from
//     shared state.
type Repetition struct {
	Enabled      bool
	StageWeights []float64
	Policy       RepetitionPolicy
}

// StepLimit configures C7 (bounded transition magnitude). MaxStep maps
// parameter names to the largest allowed stage-to-stage change; factors
// absent from the map are unconstrained.
type StepLimit struct {
	Enabled bool
	MaxStep map[string]float64
}

// Variation configures C8 (minimum intra-run variation). MinStep maps
// parameter names to the smallest change that counts as meaningful; a used
// run must exhibit at least one transition meeting some factor's minimum.
type Variation struct {
	Enabled bool
	MinStep map[string]float64
}

// Config is the full planning configuration: topology, the C2–C8 toggles
// and thresholds (C1 is always enforced), and the solve budget.
//
// TimeLimit semantics: negative is rejected; zero grants the solver no
// budget at all, so Plan reports StatusUnknown without solving — a plan is
// never silently called optimal. Positive bounds the solve via context
// deadline.
type Config struct {
	MaxRuns int
	Stages  int

	C2Enabled bool
	C3        Cap
	C4        Cap
	C5Enabled bool
	C6        Repetition
	C7        StepLimit
	C8        Variation

	TimeLimit time.Duration
}

// Default thresholds for bioprocess planning.
const (
	// DefaultRepeatCap bounds how often one design point recurs, per run
	// (C3) and across the whole plan (C4).
	DefaultRepeatCap = 2

	// DefaultTimeLimit is the default solve budget.
	DefaultTimeLimit = 30 * time.Second
)

// DefaultConfig returns the canonical configuration for the given topology:
// C1–C6 enabled (repeat caps 2, unit stage weights, coverage targets), C7
// and C8 disabled — their thresholds carry physical units and cannot be
// defaulted for arbitrary parameters.
func DefaultConfig(maxRuns, stages int) Config {
	return Config{
		MaxRuns:   maxRuns,
		Stages:    stages,
		C2Enabled: true,
		C3:        Cap{Enabled: true, Max: DefaultRepeatCap},
		C4:        Cap{Enabled: true, Max: DefaultRepeatCap},
		C5Enabled: true,
		C6:        Repetition{Enabled: true},
		TimeLimit: DefaultTimeLimit,
	}
}

// validate checks the configuration against the design space. Every failure
// names the offending field or parameter.
//
// Complexity: O(P + thresholds).
func validate(space *design.Space, cfg Config) error {
	if space == nil {
		return ErrNilSpace
	}
	if cfg.MaxRuns <= 0 {
		return fmt.Errorf("MaxRuns=%d: %w", cfg.MaxRuns, ErrBadTopology)
	}
	if cfg.Stages <= 0 {
		return fmt.Errorf("Stages=%d: %w", cfg.Stages, ErrBadTopology)
	}
	if cfg.TimeLimit < 0 {
		return fmt.Errorf("TimeLimit=%v: %w", cfg.TimeLimit, ErrBadThreshold)
	}

	if cfg.C3.Enabled && cfg.C3.Max < 1 {
		return fmt.Errorf("C3.Max=%d: %w", cfg.C3.Max, ErrBadThreshold)
	}
	if cfg.C4.Enabled && cfg.C4.Max < 1 {
		return fmt.Errorf("C4.Max=%d: %w", cfg.C4.Max, ErrBadThreshold)
	}

	if cfg.C6.Enabled && cfg.C6.StageWeights != nil {
		if len(cfg.C6.StageWeights) != cfg.Stages {
			return fmt.Errorf("C6.StageWeights has %d entries, want %d: %w",
				len(cfg.C6.StageWeights), cfg.Stages, ErrBadThreshold)
		}
		for k, w := range cfg.C6.StageWeights {
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return fmt.Errorf("C6.StageWeights[%d]=%v: %w", k, w, ErrBadThreshold)
			}
		}
	}

	if cfg.C7.Enabled {
		if len(cfg.C7.MaxStep) == 0 {
			return fmt.Errorf("C7 enabled without MaxStep thresholds: %w", ErrBadThreshold)
		}
		if err := checkFactorThresholds(space, "C7.MaxStep", cfg.C7.MaxStep, 0); err != nil {
			return err
		}
	}

	if cfg.C8.Enabled {
		if len(cfg.C8.MinStep) == 0 {
			return fmt.Errorf("C8 enabled without MinStep thresholds: %w", ErrBadThreshold)
		}
		if err := checkFactorThresholds(space, "C8.MinStep", cfg.C8.MinStep, minStepFloor); err != nil {
			return err
		}
	}

	// A factor whose required minimum change exceeds its allowed maximum
	// change can never transition legally: reject up front rather than
	// letting the solver prove the obvious.
	if cfg.C7.Enabled && cfg.C8.Enabled {
		for _, name := range sortedKeys(cfg.C8.MinStep) {
			minStep := cfg.C8.MinStep[name]
			if maxStep, ok := cfg.C7.MaxStep[name]; ok && minStep > maxStep {
				return fmt.Errorf("parameter %q: min %v > max %v: %w",
					name, minStep, maxStep, ErrContradictoryLimits)
			}
		}
	}

	return nil
}

// minStepFloor marks thresholds that must be strictly positive.
const minStepFloor = math.SmallestNonzeroFloat64

// checkFactorThresholds verifies that every keyed parameter exists in the
// space and that each value is finite and at least floor. Keys are visited
// in sorted order so the reported parameter does not depend on map layout.
func checkFactorThresholds(space *design.Space, field string, steps map[string]float64, floor float64) error {
	for _, name := range sortedKeys(steps) {
		v := steps[name]
		if _, ok := space.ParameterIndex(name); !ok {
			return fmt.Errorf("%s[%q]: %w", field, name, ErrUnknownParameter)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < floor {
			return fmt.Errorf("%s[%q]=%v: %w", field, name, v, ErrBadThreshold)
		}
	}

	return nil
}

// sortedKeys returns the map keys in ascending order.
func sortedKeys(m map[string]float64) []string {
	out := make([]string, 0, len(m))
	for name := range m {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}
