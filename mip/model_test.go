package mip_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyal-algocell/idoe/mip"
)

// TestBinary_IdempotentByName verifies that registering a name twice returns
// the same handle and does not grow the variable set.
func TestBinary_IdempotentByName(t *testing.T) {
	m := mip.NewModel("t")

	a := m.Binary("x_1")
	b := m.Binary("x_1")

	assert.Equal(t, a, b)
	assert.Equal(t, 1, m.NumVars())

	name, err := m.VarName(a)
	require.NoError(t, err)
	assert.Equal(t, "x_1", name)
}

// TestVarName_UnknownHandle verifies the sentinel for a foreign handle.
func TestVarName_UnknownHandle(t *testing.T) {
	m := mip.NewModel("t")

	_, err := m.VarName(mip.Var{})
	assert.ErrorIs(t, err, mip.ErrUnknownVar)
}

// TestAddConstraint_Validation covers the rejection sentinels.
func TestAddConstraint_Validation(t *testing.T) {
	m := mip.NewModel("t")
	v := m.Binary("x")

	var empty mip.Expr
	err := m.AddConstraint("empty", empty, mip.LE, 1)
	assert.ErrorIs(t, err, mip.ErrEmptyExpr)

	var bad mip.Expr
	bad.Add(v, math.NaN())
	err = m.AddConstraint("nan_coef", bad, mip.LE, 1)
	assert.ErrorIs(t, err, mip.ErrBadCoefficient)

	var ok mip.Expr
	ok.Add(v, 1)
	err = m.AddConstraint("inf_rhs", ok, mip.LE, math.Inf(1))
	assert.ErrorIs(t, err, mip.ErrBadCoefficient)

	require.NoError(t, m.AddConstraint("fine", ok, mip.LE, 1))
	assert.Equal(t, 1, m.NumConstraints(), "rejected rows must not be recorded")
}

// TestSetObjective_ReplacesPrevious verifies last-write-wins semantics.
func TestSetObjective_ReplacesPrevious(t *testing.T) {
	m := mip.NewModel("t")
	v := m.Binary("x")

	var first mip.Expr
	first.Add(v, 1)
	require.NoError(t, m.SetObjective(first))

	var second mip.Expr
	second.Add(v, 2)
	require.NoError(t, m.SetObjective(second))

	obj := m.Objective()
	got := obj.Terms()
	require.Len(t, got, 1)
	assert.Equal(t, 2.0, got[0].Coef)
}

// TestWriteLP_Golden locks the exact serialization of a small model.
func TestWriteLP_Golden(t *testing.T) {
	m := mip.NewModel("tiny")
	a := m.Binary("a")
	b := m.Binary("b")

	var obj mip.Expr
	obj.Add(a, 0.5)
	obj.Add(b, -1.5)
	require.NoError(t, m.SetObjective(obj))

	var row mip.Expr
	row.Add(a, 1)
	row.Add(b, 2)
	require.NoError(t, m.AddConstraint("row1", row, mip.LE, 3))

	var cover mip.Expr
	cover.Add(a, 1)
	cover.Add(b, 1)
	require.NoError(t, m.AddConstraint("cover", cover, mip.GE, 1))

	var sb strings.Builder
	require.NoError(t, m.WriteLP(&sb))

	want := "\\* tiny *\\\n" +
		"Minimize\n" +
		"OBJ: 0.5 a - 1.5 b\n" +
		"Subject To\n" +
		"row1: 1 a + 2 b <= 3\n" +
		"cover: 1 a + 1 b >= 1\n" +
		"Binaries\n" +
		"a b \n" +
		"End\n"
	assert.Equal(t, want, sb.String())
}

// TestWriteLP_MergesDuplicateTerms verifies that repeated Add calls on one
// variable fold into a single coefficient, keeping first-occurrence order.
func TestWriteLP_MergesDuplicateTerms(t *testing.T) {
	m := mip.NewModel("merge")
	a := m.Binary("a")
	b := m.Binary("b")

	var row mip.Expr
	row.Add(a, 1)
	row.Add(b, 1)
	row.Add(a, 2) // folds into the first a term
	require.NoError(t, m.AddConstraint("r", row, mip.EQ, 1))

	var sb strings.Builder
	require.NoError(t, m.WriteLP(&sb))

	assert.Contains(t, sb.String(), "r: 3 a + 1 b = 1\n")
}

// TestWriteLP_EmptyObjective verifies the placeholder term so LP readers
// accept a pure feasibility model.
func TestWriteLP_EmptyObjective(t *testing.T) {
	m := mip.NewModel("feas")
	a := m.Binary("a")

	var row mip.Expr
	row.Add(a, 1)
	require.NoError(t, m.AddConstraint("r", row, mip.GE, 1))

	var sb strings.Builder
	require.NoError(t, m.WriteLP(&sb))

	assert.Contains(t, sb.String(), "OBJ: 0 a\n")
}

// TestWriteLP_Deterministic verifies byte-identical output across calls.
func TestWriteLP_Deterministic(t *testing.T) {
	build := func() string {
		m := mip.NewModel("det")
		var obj mip.Expr
		for i := 0; i < 10; i++ {
			v := m.Binary("x_" + string(rune('a'+i)))
			obj.Add(v, float64(i)*0.125)
		}
		require.NoError(t, m.SetObjective(obj))
		var sb strings.Builder
		require.NoError(t, m.WriteLP(&sb))

		return sb.String()
	}

	assert.Equal(t, build(), build())
}

// TestSolution_ValueAndIsSet covers lookups, integer tolerance and the
// zero default for unreported variables.
func TestSolution_ValueAndIsSet(t *testing.T) {
	m := mip.NewModel("t")
	a := m.Binary("a")
	b := m.Binary("b")
	c := m.Binary("c")

	sol := mip.NewSolution(mip.StatusOptimal, 1.5, map[string]float64{
		"a": 1,
		"b": 0.9999999, // backends may not hit 1.0 exactly
	})

	assert.True(t, sol.HasAssignment())
	assert.True(t, sol.IsSet(m, a))
	assert.True(t, sol.IsSet(m, b))
	assert.False(t, sol.IsSet(m, c), "unreported variables default to 0")
	assert.Equal(t, 0.0, sol.Value(m, c))
}

// TestStatus_String locks the verdict labels used in logs.
func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Optimal", mip.StatusOptimal.String())
	assert.Equal(t, "Infeasible", mip.StatusInfeasible.String())
	assert.Equal(t, "Unknown", mip.StatusUnknown.String())
}
