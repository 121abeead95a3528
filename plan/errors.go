// Package plan - sentinel errors.
//
// Error policy:
//   - Only package-level sentinels; callers branch with errors.Is.
//   - The offending field or parameter name is attached at the return site
//     via fmt.Errorf("...: %w", ErrX).
//   - Infeasible and timed-out solves are Results, never errors; errors are
//     reserved for bad inputs, degenerate catalogues, transport failures and
//     internal consistency violations.
package plan

import "errors"

// ErrNilSpace indicates a nil design space.
var ErrNilSpace = errors.New("plan: design space is nil")

// ErrNilSolver indicates a nil solve adapter.
var ErrNilSolver = errors.New("plan: solver is nil")

// ErrBadTopology indicates a non-positive run or stage count.
var ErrBadTopology = errors.New("plan: runs and stages must be positive")

// ErrBadThreshold indicates a constraint threshold outside its valid range
// (cap < 1, negative step limit, non-positive minimum variation, wrong
// stage-weight count, negative time limit).
var ErrBadThreshold = errors.New("plan: constraint threshold out of range")

// ErrUnknownParameter indicates a per-factor threshold keyed by a parameter
// name the design space does not contain.
var ErrUnknownParameter = errors.New("plan: threshold references unknown parameter")

// ErrContradictoryLimits indicates a factor whose C8 minimum variation
// exceeds its C7 maximum step: no transition could ever satisfy both.
var ErrContradictoryLimits = errors.New("plan: C8 minimum exceeds C7 maximum")

// ErrBadPolicy indicates a repetition-target policy that returned the wrong
// number of targets or a non-finite/negative target.
var ErrBadPolicy = errors.New("plan: invalid repetition targets")

// ErrDegenerateSpace indicates a catalogue that cannot support the enabled
// minimum-variation requirement: fewer than two distinct design points, or
// no pair of points differing by at least the C8 minimum in any constrained
// factor. Detected before the solver is invoked; Big-M slack must never be
// the thing that discovers this.
var ErrDegenerateSpace = errors.New("plan: design space degenerate for minimum-variation constraint")

// ErrInconsistentSolution indicates a solver assignment that violates a
// structural invariant (two design points in one stage). This is a modeling
// bug, not a data problem, and is surfaced as a hard failure.
var ErrInconsistentSolution = errors.New("plan: solver assignment violates structural invariants")
