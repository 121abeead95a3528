// Package mip - model construction: variables, expressions, constraints.
package mip

import (
	"errors"
	"fmt"
	"math"
)

// ErrDuplicateVar indicates a second variable registered under an existing name.
var ErrDuplicateVar = errors.New("mip: duplicate variable name")

// ErrUnknownVar indicates a Var handle that does not belong to the model.
var ErrUnknownVar = errors.New("mip: variable not in model")

// ErrBadCoefficient indicates a NaN or ±Inf coefficient or bound.
var ErrBadCoefficient = errors.New("mip: non-finite coefficient")

// ErrEmptyExpr indicates a constraint whose left-hand side has no terms.
var ErrEmptyExpr = errors.New("mip: empty linear expression")

// Sense is the comparison direction of a linear constraint.
type Sense int

const (
	// LE - left-hand side ≤ right-hand side.
	LE Sense = iota
	// GE - left-hand side ≥ right-hand side.
	GE
	// EQ - left-hand side = right-hand side.
	EQ
)

// Var is an opaque handle to a model variable. Handles are only valid with
// the model that created them.
type Var struct {
	id int
}

// Term is one coefficient·variable pair of a linear expression.
type Term struct {
	Var  Var
	Coef float64
}

// Expr is a linear expression Σ coefᵢ·varᵢ. The zero value is an empty
// expression ready for use.
type Expr struct {
	terms []Term
}

// Add appends coef·v to the expression. Terms referencing the same variable
// accumulate at serialization time; callers need not merge.
func (e *Expr) Add(v Var, coef float64) {
	e.terms = append(e.terms, Term{Var: v, Coef: coef})
}

// Len returns the number of (unmerged) terms.
func (e *Expr) Len() int { return len(e.terms) }

// Terms returns the raw term list (read-only by convention).
func (e *Expr) Terms() []Term { return e.terms }

// Constraint is one linear inequality or equality of the model.
type Constraint struct {
	Name  string
	Expr  Expr
	Sense Sense
	RHS   float64
}

// Model is a mixed-integer minimization program over binary variables.
// Not safe for concurrent mutation; build a model, then hand it to a Solver.
type Model struct {
	name      string
	varNames  []string
	varIndex  map[string]int
	cons      []Constraint
	objective Expr
}

// NewModel returns an empty minimization model with the given name.
func NewModel(name string) *Model {
	return &Model{
		name:     name,
		varIndex: make(map[string]int),
	}
}

// Name returns the model name (used as the LP problem title).
func (m *Model) Name() string { return m.name }

// NumVars returns the number of registered variables.
func (m *Model) NumVars() int { return len(m.varNames) }

// NumConstraints returns the number of registered constraints.
func (m *Model) NumConstraints() int { return len(m.cons) }

// Binary registers a new 0/1 variable and returns its handle.
// Registering the same name twice returns the existing handle; names are
// the stable identity that survives serialization to an external solver.
func (m *Model) Binary(name string) Var {
	if id, ok := m.varIndex[name]; ok {
		return Var{id: id}
	}
	id := len(m.varNames)
	m.varNames = append(m.varNames, name)
	m.varIndex[name] = id

	return Var{id: id}
}

// VarName returns the registered name of v.
func (m *Model) VarName(v Var) (string, error) {
	if v.id < 0 || v.id >= len(m.varNames) {
		return "", ErrUnknownVar
	}

	return m.varNames[v.id], nil
}

// AddConstraint appends expr (sense) rhs under the given row name.
//
// Contracts:
//   - expr must carry at least one term;
//   - all coefficients and rhs must be finite;
//   - every referenced variable must belong to this model.
func (m *Model) AddConstraint(name string, expr Expr, sense Sense, rhs float64) error {
	if expr.Len() == 0 {
		return fmt.Errorf("constraint %q: %w", name, ErrEmptyExpr)
	}
	if err := m.checkExpr(name, expr); err != nil {
		return err
	}
	if math.IsNaN(rhs) || math.IsInf(rhs, 0) {
		return fmt.Errorf("constraint %q rhs: %w", name, ErrBadCoefficient)
	}
	m.cons = append(m.cons, Constraint{Name: name, Expr: expr, Sense: sense, RHS: rhs})

	return nil
}

// Constraints returns the constraint rows in insertion order.
func (m *Model) Constraints() []Constraint { return m.cons }

// SetObjective installs the minimization objective, replacing any previous one.
func (m *Model) SetObjective(expr Expr) error {
	if err := m.checkExpr("objective", expr); err != nil {
		return err
	}
	m.objective = expr

	return nil
}

// Objective returns the current minimization objective.
func (m *Model) Objective() Expr { return m.objective }

// checkExpr validates term finiteness and variable ownership.
func (m *Model) checkExpr(where string, expr Expr) error {
	for _, t := range expr.terms {
		if t.Var.id < 0 || t.Var.id >= len(m.varNames) {
			return fmt.Errorf("%s: %w", where, ErrUnknownVar)
		}
		if math.IsNaN(t.Coef) || math.IsInf(t.Coef, 0) {
			return fmt.Errorf("%s, variable %q: %w", where, m.varNames[t.Var.id], ErrBadCoefficient)
		}
	}

	return nil
}

// mergedTerms folds duplicate variables of an expression into a single
// coefficient per variable, preserving first-occurrence order. Used by the
// LP writer so that serialization is canonical.
func (m *Model) mergedTerms(expr Expr) []Term {
	order := make([]int, 0, len(expr.terms))
	acc := make(map[int]float64, len(expr.terms))

	for _, t := range expr.terms {
		if _, ok := acc[t.Var.id]; !ok {
			order = append(order, t.Var.id)
		}
		acc[t.Var.id] += t.Coef
	}

	out := make([]Term, 0, len(order))
	for _, id := range order {
		out = append(out, Term{Var: Var{id: id}, Coef: acc[id]})
	}

	return out
}
