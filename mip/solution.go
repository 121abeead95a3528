// Package mip - solver contract and solution container.
package mip

import "context"

// Status is the solver's verdict on a model.
type Status int

const (
	// StatusUnknown - no proof either way: time limit hit, solver stopped
	// early, or the backend could not classify the model. An incumbent
	// assignment may still be present but is not proven optimal.
	StatusUnknown Status = iota

	// StatusOptimal - the backend proved the returned assignment optimal.
	StatusOptimal

	// StatusInfeasible - the backend proved that no assignment satisfies
	// all constraints.
	StatusInfeasible
)

// String implements fmt.Stringer for logs and test output.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	default:
		return "Unknown"
	}
}

// Solution is a backend's answer: a verdict, the objective value, and the
// variable assignment (empty unless the backend produced an incumbent).
type Solution struct {
	Status    Status
	Objective float64

	values map[string]float64 // by variable name, as serialized
}

// NewSolution assembles a solution from a name→value assignment.
// Backends use this; consumers read via Value/IsSet.
func NewSolution(status Status, objective float64, values map[string]float64) Solution {
	return Solution{Status: status, Objective: objective, values: values}
}

// HasAssignment reports whether the backend returned any variable values
// (an Unknown verdict may or may not carry an incumbent).
func (s Solution) HasAssignment() bool { return len(s.values) > 0 }

// Value returns the assigned value of v in m, or 0 when the backend did not
// report it (solvers commonly omit zero variables).
func (s Solution) Value(m *Model, v Var) float64 {
	name, err := m.VarName(v)
	if err != nil {
		return 0
	}

	return s.values[name]
}

// IsSet reports whether binary variable v is assigned 1 (within integer
// tolerance; backends may emit 0.9999999).
func (s Solution) IsSet(m *Model, v Var) bool {
	return s.Value(m, v) > 0.5
}

// Solver hands a finished model to an integer-program backend.
//
// Contracts:
//   - blocking; honors ctx cancellation and returns promptly on deadline.
//   - a wall-clock budget is backend configuration (see the cbc package);
//     on exhaustion the backend returns StatusUnknown with a best-effort
//     incumbent rather than hanging.
//   - errors are transport/process failures only; Infeasible and Unknown
//     are verdicts, not errors.
type Solver interface {
	Solve(ctx context.Context, m *Model) (Solution, error)
}
