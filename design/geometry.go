// Package design - catalogue geometry queries.
//
// These helpers answer the static questions feasibility diagnostics ask
// about a catalogue: how far apart can two points be in a factor, what is
// the smallest nonzero step a transition could take, how many genuinely
// distinct points exist. All are deterministic, side-effect free, and
// tolerant of replicated rows.
package design

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// FactorRange returns the (min, max) observed values of factor col.
//
// Complexity: O(n).
func (s *Space) FactorRange(col int) (lo, hi float64) {
	column := make([]float64, s.n)
	for row := 0; row < s.n; row++ {
		column[row] = s.points.At(row, col)
	}

	return floats.Min(column), floats.Max(column)
}

// FactorSpan returns max−min of factor col: the largest change any single
// transition could exhibit in that factor.
//
// Complexity: O(n).
func (s *Space) FactorSpan(col int) float64 {
	lo, hi := s.FactorRange(col)

	return hi - lo
}

// MinPositiveStep returns the smallest nonzero pairwise difference of factor
// col across the catalogue, or 0 when the factor is constant. This is the
// smallest change any transition between two distinct-valued points can make
// in that factor.
//
// Complexity: O(n²) worst case; n is capped by the space ceiling.
func (s *Space) MinPositiveStep(col int) float64 {
	best := math.Inf(1)

	var d float64
	for a := 0; a < s.n; a++ {
		for b := a + 1; b < s.n; b++ {
			d = math.Abs(s.points.At(a, col) - s.points.At(b, col))
			if d > 0 && d < best {
				best = d
			}
		}
	}
	if math.IsInf(best, 1) {
		return 0
	}

	return best
}

// HasStepWithin reports whether some pair of points differs in factor col by
// d with lo ≤ d ≤ hi (d strictly positive). Used to test whether a
// minimum-variation demand and a maximum-step cap leave any admissible
// transition in that factor.
//
// Complexity: O(n²) worst case.
func (s *Space) HasStepWithin(col int, lo, hi float64) bool {
	var d float64
	for a := 0; a < s.n; a++ {
		for b := a + 1; b < s.n; b++ {
			d = math.Abs(s.points.At(a, col) - s.points.At(b, col))
			if d > 0 && d >= lo && d <= hi {
				return true
			}
		}
	}

	return false
}

// DistinctPoints counts catalogue rows that are unique across all factors.
// Replicated rows (intentional duplicates) collapse to one.
//
// Complexity: O(n²·p) worst case; n is capped by the space ceiling.
func (s *Space) DistinctPoints() int {
	count := 0

	var (
		dup bool
		col int
	)
	for a := 0; a < s.n; a++ {
		dup = false
		// A row counts once, at its first occurrence.
		for b := 0; b < a && !dup; b++ {
			dup = true
			for col = 0; col < s.p; col++ {
				if s.points.At(a, col) != s.points.At(b, col) {
					dup = false

					break
				}
			}
		}
		if !dup {
			count++
		}
	}

	return count
}

// ReplicatedRows returns, for each 0-based row, whether an identical row
// occurs elsewhere in the catalogue. Replicated rows are how center-point
// repeats enter a space, and they receive softer repetition targets.
//
// Complexity: O(n²·p) worst case.
func (s *Space) ReplicatedRows() []bool {
	out := make([]bool, s.n)

	var (
		same bool
		col  int
	)
	for a := 0; a < s.n; a++ {
		if out[a] {
			continue // already marked via an earlier twin
		}
		for b := a + 1; b < s.n; b++ {
			same = true
			for col = 0; col < s.p; col++ {
				if s.points.At(a, col) != s.points.At(b, col) {
					same = false

					break
				}
			}
			if same {
				out[a] = true
				out[b] = true
			}
		}
	}

	return out
}
