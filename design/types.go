// Package design - parameter and design-point types plus sentinel errors.
//
// Error policy (module-wide discipline):
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Context (the offending parameter name or size) is attached at the
//     return site via fmt.Errorf("...: %w", ErrX), never baked into the
//     sentinel itself.
//   - No panics on user input.
package design

import "errors"

// ErrNoParameters indicates that an empty parameter list was supplied.
var ErrNoParameters = errors.New("design: at least one parameter required")

// ErrNoValues indicates that a parameter carries zero candidate values.
var ErrNoValues = errors.New("design: parameter has no values")

// ErrDuplicateParameter indicates two parameters share the same name.
var ErrDuplicateParameter = errors.New("design: duplicate parameter name")

// ErrUnnamedParameter indicates a parameter with an empty name.
var ErrUnnamedParameter = errors.New("design: parameter name must be non-empty")

// ErrNonFiniteValue indicates a NaN or ±Inf candidate value.
var ErrNonFiniteValue = errors.New("design: non-finite parameter value")

// ErrSpaceTooLarge indicates that the Cartesian product would exceed the
// configured ceiling (guard against combinatorial explosion).
var ErrSpaceTooLarge = errors.New("design: design space exceeds size ceiling")

// ErrShapeMismatch indicates that an explicit row catalogue does not match
// the declared parameter count.
var ErrShapeMismatch = errors.New("design: row width does not match parameter count")

// DefaultMaxPoints is the default ceiling on the number of design points a
// single space may hold. Beyond a few hundred points the downstream integer
// program stops being solvable interactively.
const DefaultMaxPoints = 200

// Parameter is one named experimental factor with its discrete candidate
// values.
//
// Fields:
//   - Name   — unique, non-empty identifier (e.g. "Temp").
//   - Unit   — optional display unit (e.g. "°C"); not used numerically.
//   - Values — candidate values; deduplicated and sorted ascending during
//     generation.
type Parameter struct {
	Name   string
	Unit   string
	Values []float64
}

// Point is one design point: a full assignment of one value per parameter.
//
// Index is 1-based and assigned in generation order; it is the identity used
// throughout planning results. Values are ordered as the parameters were
// declared.
type Point struct {
	Index  int
	Values []float64
}

// Options configures space generation.
//
//   - MaxPoints — ceiling on the Cartesian product size; values ≤ 0 fall
//     back to DefaultMaxPoints.
type Options struct {
	MaxPoints int
}

// DefaultOptions returns the canonical generation options.
func DefaultOptions() Options {
	return Options{MaxPoints: DefaultMaxPoints}
}
