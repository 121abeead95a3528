// Package design - Space construction (Cartesian product) and accessors.
package design

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Space is an immutable catalogue of design points over an ordered parameter
// list. Construct via Generate or FromRows; the zero value is not usable.
//
// Internally the catalogue is held as an n×p dense matrix (n points, p
// factors); accessors hand out copies, never views, so a Space can be shared
// read-only by any number of concurrent planners.
type Space struct {
	params []Parameter
	points *mat.Dense // n×p catalogue, row j-1 = values of point j
	n      int        // number of design points
	p      int        // number of factors
}

// Generate builds the full Cartesian product of the given parameters in a
// fixed, deterministic order: the first parameter varies slowest
// (outer-to-inner), values ascending. Point indices are 1-based in
// generation order.
//
// Contracts:
//   - params must be non-empty; every parameter named, non-empty values.
//   - values are deduplicated and sorted ascending per parameter.
//   - the product size must not exceed opts.MaxPoints.
//
// Errors: ErrNoParameters, ErrUnnamedParameter, ErrNoValues,
// ErrNonFiniteValue, ErrDuplicateParameter, ErrSpaceTooLarge.
//
// Complexity: O(n·p) time and space where n = Π value counts.
func Generate(params []Parameter, opts Options) (*Space, error) {
	norm, err := normalizeParams(params)
	if err != nil {
		return nil, err
	}

	ceiling := opts.MaxPoints
	if ceiling <= 0 {
		ceiling = DefaultMaxPoints
	}

	// Product size with overflow-free early exit against the ceiling.
	n := 1
	for i := range norm {
		n *= len(norm[i].Values)
		if n > ceiling {
			return nil, fmt.Errorf("%d points over ceiling %d: %w", n, ceiling, ErrSpaceTooLarge)
		}
	}

	p := len(norm)
	points := mat.NewDense(n, p, nil)

	// Odometer walk: first parameter outermost, last parameter innermost.
	idx := make([]int, p)
	for row := 0; row < n; row++ {
		for col := 0; col < p; col++ {
			points.Set(row, col, norm[col].Values[idx[col]])
		}
		// Advance the innermost digit, carrying leftwards.
		for col := p - 1; col >= 0; col-- {
			idx[col]++
			if idx[col] < len(norm[col].Values) {
				break
			}
			idx[col] = 0
		}
	}

	return &Space{params: norm, points: points, n: n, p: p}, nil
}

// FromRows builds a Space from an explicit point catalogue instead of a
// Cartesian product. This is the entry point for replicated catalogues
// (e.g. triplicated center points): duplicate rows are permitted and kept
// as distinct 1-based indices.
//
// The parameters provide names/units only; their Values lists may be empty
// (they are rebuilt from the observed column values).
//
// Errors: ErrNoParameters, ErrUnnamedParameter, ErrDuplicateParameter,
// ErrNoValues (empty rows), ErrShapeMismatch, ErrNonFiniteValue,
// ErrSpaceTooLarge.
//
// Complexity: O(n·p).
func FromRows(params []Parameter, rows [][]float64, opts Options) (*Space, error) {
	if len(params) == 0 {
		return nil, ErrNoParameters
	}
	if err := checkNames(params); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty catalogue: %w", ErrNoValues)
	}

	ceiling := opts.MaxPoints
	if ceiling <= 0 {
		ceiling = DefaultMaxPoints
	}
	if len(rows) > ceiling {
		return nil, fmt.Errorf("%d points over ceiling %d: %w", len(rows), ceiling, ErrSpaceTooLarge)
	}

	p := len(params)
	n := len(rows)
	points := mat.NewDense(n, p, nil)

	var v float64
	for row := 0; row < n; row++ {
		if len(rows[row]) != p {
			return nil, fmt.Errorf("row %d has %d values, want %d: %w", row+1, len(rows[row]), p, ErrShapeMismatch)
		}
		for col := 0; col < p; col++ {
			v = rows[row][col]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("row %d, parameter %q: %w", row+1, params[col].Name, ErrNonFiniteValue)
			}
			points.Set(row, col, v)
		}
	}

	// Rebuild per-parameter value lists from the observed columns so that
	// geometry queries and reporting see the true candidate sets.
	norm := make([]Parameter, p)
	for col := 0; col < p; col++ {
		norm[col] = Parameter{
			Name:   params[col].Name,
			Unit:   params[col].Unit,
			Values: distinctColumn(points, n, col),
		}
	}

	return &Space{params: norm, points: points, n: n, p: p}, nil
}

// NumPoints returns the number of design points in the catalogue.
func (s *Space) NumPoints() int { return s.n }

// NumFactors returns the number of parameters (factors).
func (s *Space) NumFactors() int { return s.p }

// Parameters returns a copy of the normalized parameter list.
func (s *Space) Parameters() []Parameter {
	out := make([]Parameter, len(s.params))
	copy(out, s.params)
	for i := range out {
		vals := make([]float64, len(s.params[i].Values))
		copy(vals, s.params[i].Values)
		out[i].Values = vals
	}

	return out
}

// ParameterIndex returns the 0-based factor index of the named parameter,
// or false when no such parameter exists.
func (s *Space) ParameterIndex(name string) (int, bool) {
	for i := range s.params {
		if s.params[i].Name == name {
			return i, true
		}
	}

	return 0, false
}

// Value returns the value of factor col (0-based) at point row (0-based).
// Out-of-range access panics, as with any slice: callers iterate over
// NumPoints/NumFactors and never hold stale indices.
func (s *Space) Value(row, col int) float64 { return s.points.At(row, col) }

// Point returns the design point at 0-based position row with its 1-based
// public index and a copy of its values.
func (s *Space) Point(row int) Point {
	return Point{Index: row + 1, Values: mat.Row(nil, row, s.points)}
}

// Points returns the full catalogue in index order.
func (s *Space) Points() []Point {
	out := make([]Point, s.n)
	for row := 0; row < s.n; row++ {
		out[row] = s.Point(row)
	}

	return out
}

// Matrix returns a copy of the n×p catalogue as a dense matrix for numeric
// consumers (row j-1 = point j).
func (s *Space) Matrix() *mat.Dense {
	out := mat.NewDense(s.n, s.p, nil)
	out.Copy(s.points)

	return out
}

// normalizeParams validates names and values and returns a normalized copy:
// values deduplicated and sorted ascending, slices owned by the Space.
func normalizeParams(params []Parameter) ([]Parameter, error) {
	if len(params) == 0 {
		return nil, ErrNoParameters
	}
	if err := checkNames(params); err != nil {
		return nil, err
	}

	norm := make([]Parameter, len(params))

	var v float64
	for i := range params {
		if len(params[i].Values) == 0 {
			return nil, fmt.Errorf("parameter %q: %w", params[i].Name, ErrNoValues)
		}
		vals := make([]float64, 0, len(params[i].Values))
		for _, v = range params[i].Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("parameter %q: %w", params[i].Name, ErrNonFiniteValue)
			}
			vals = append(vals, v)
		}
		sort.Float64s(vals)
		vals = dedupSorted(vals)

		norm[i] = Parameter{Name: params[i].Name, Unit: params[i].Unit, Values: vals}
	}

	return norm, nil
}

// checkNames enforces non-empty, unique parameter names.
func checkNames(params []Parameter) error {
	seen := make(map[string]struct{}, len(params))
	for i := range params {
		if params[i].Name == "" {
			return fmt.Errorf("parameter %d: %w", i+1, ErrUnnamedParameter)
		}
		if _, ok := seen[params[i].Name]; ok {
			return fmt.Errorf("parameter %q: %w", params[i].Name, ErrDuplicateParameter)
		}
		seen[params[i].Name] = struct{}{}
	}

	return nil
}

// dedupSorted removes adjacent duplicates from an ascending slice in place.
func dedupSorted(vals []float64) []float64 {
	out := vals[:1]
	for i := 1; i < len(vals); i++ {
		if vals[i] != out[len(out)-1] {
			out = append(out, vals[i])
		}
	}

	return out
}

// distinctColumn collects the sorted distinct values of one catalogue column.
func distinctColumn(m *mat.Dense, n, col int) []float64 {
	vals := make([]float64, n)
	for row := 0; row < n; row++ {
		vals[row] = m.At(row, col)
	}
	sort.Float64s(vals)

	return dedupSorted(vals)
}
