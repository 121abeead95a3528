// Package plancfg - YAML unmarshalling into design parameters + plan config.
package plancfg

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eyal-algocell/idoe/design"
	"github.com/eyal-algocell/idoe/plan"
)

// ErrBadDocument indicates YAML that does not parse or lacks required
// sections.
var ErrBadDocument = errors.New("plancfg: invalid planning document")

// ErrBadDuration indicates an unparseable time_limit value.
var ErrBadDuration = errors.New("plancfg: invalid duration")

// document mirrors the YAML layout. Constraint sections are pointers so an
// omitted section is distinguishable from an explicitly disabled one.
type document struct {
	Parameters  []parameterSpec `yaml:"parameters"`
	Topology    topologySpec    `yaml:"topology"`
	Constraints constraintsSpec `yaml:"constraints"`
	Solve       solveSpec       `yaml:"solve"`
}

type parameterSpec struct {
	Name   string    `yaml:"name"`
	Unit   string    `yaml:"unit"`
	Values []float64 `yaml:"values"`
}

type topologySpec struct {
	Runs   int `yaml:"runs"`
	Stages int `yaml:"stages"`
}

type constraintsSpec struct {
	C2 *toggleSpec     `yaml:"c2"`
	C3 *capSpec        `yaml:"c3"`
	C4 *capSpec        `yaml:"c4"`
	C5 *toggleSpec     `yaml:"c5"`
	C6 *repetitionSpec `yaml:"c6"`
	C7 *stepSpec       `yaml:"c7"`
	C8 *variationSpec  `yaml:"c8"`
}

type toggleSpec struct {
	Enabled bool `yaml:"enabled"`
}

type capSpec struct {
	Enabled bool `yaml:"enabled"`
	Max     int  `yaml:"max"`
}

type repetitionSpec struct {
	Enabled      bool      `yaml:"enabled"`
	StageWeights []float64 `yaml:"stage_weights"`
}

type stepSpec struct {
	Enabled bool               `yaml:"enabled"`
	MaxStep map[string]float64 `yaml:"max_step"`
}

type variationSpec struct {
	Enabled bool               `yaml:"enabled"`
	MinStep map[string]float64 `yaml:"min_step"`
}

type solveSpec struct {
	TimeLimit duration `yaml:"time_limit"`
	set       bool
}

// duration parses "30s"/"2m" style YAML scalars.
type duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler via time.ParseDuration.
func (d *duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", ErrBadDuration, err)
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("%q: %w", raw, ErrBadDuration)
	}
	*d = duration(parsed)

	return nil
}

// UnmarshalYAML tracks whether the solve section was present so that an
// omitted time_limit keeps the default instead of becoming zero budget.
func (s *solveSpec) UnmarshalYAML(node *yaml.Node) error {
	type alias struct {
		TimeLimit duration `yaml:"time_limit"`
	}
	var a alias
	a.TimeLimit = duration(-1)
	if err := node.Decode(&a); err != nil {
		return err
	}
	if a.TimeLimit != duration(-1) {
		s.TimeLimit = a.TimeLimit
		s.set = true
	}

	return nil
}

// Parse decodes one planning document and returns the parameter definitions
// plus the planning configuration. Numeric threshold validation is left to
// plan.Build; structural problems (unparseable YAML, no parameters, missing
// topology) fail here with the offending section named.
func Parse(data []byte) ([]design.Parameter, plan.Config, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		// Both sentinels stay errors.Is-matchable: the document one for
		// callers branching coarsely, the inner one for precise handling.
		return nil, plan.Config{}, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}

	if len(doc.Parameters) == 0 {
		return nil, plan.Config{}, fmt.Errorf("parameters section empty: %w", ErrBadDocument)
	}
	if doc.Topology.Runs <= 0 || doc.Topology.Stages <= 0 {
		return nil, plan.Config{}, fmt.Errorf("topology runs=%d stages=%d: %w",
			doc.Topology.Runs, doc.Topology.Stages, ErrBadDocument)
	}

	params := make([]design.Parameter, len(doc.Parameters))
	for i, p := range doc.Parameters {
		params[i] = design.Parameter{Name: p.Name, Unit: p.Unit, Values: p.Values}
	}

	cfg := plan.DefaultConfig(doc.Topology.Runs, doc.Topology.Stages)
	applyConstraints(&cfg, doc.Constraints)
	if doc.Solve.set {
		cfg.TimeLimit = time.Duration(doc.Solve.TimeLimit)
	}

	return params, cfg, nil
}

// Load reads and parses a planning document from disk.
func Load(path string) ([]design.Parameter, plan.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, plan.Config{}, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return Parse(data)
}

// applyConstraints overlays present sections onto the defaults.
func applyConstraints(cfg *plan.Config, c constraintsSpec) {
	if c.C2 != nil {
		cfg.C2Enabled = c.C2.Enabled
	}
	if c.C3 != nil {
		cfg.C3 = plan.Cap{Enabled: c.C3.Enabled, Max: c.C3.Max}
	}
	if c.C4 != nil {
		cfg.C4 = plan.Cap{Enabled: c.C4.Enabled, Max: c.C4.Max}
	}
	if c.C5 != nil {
		cfg.C5Enabled = c.C5.Enabled
	}
	if c.C6 != nil {
		cfg.C6 = plan.Repetition{Enabled: c.C6.Enabled, StageWeights: c.C6.StageWeights}
	}
	if c.C7 != nil {
		cfg.C7 = plan.StepLimit{Enabled: c.C7.Enabled, MaxStep: c.C7.MaxStep}
	}
	if c.C8 != nil {
		cfg.C8 = plan.Variation{Enabled: c.C8.Enabled, MinStep: c.C8.MinStep}
	}
}
