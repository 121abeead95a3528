package design_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyal-algocell/idoe/design"
)

// bioParams is the reference bioprocess catalogue: 3×3 = 9 design points.
func bioParams() []design.Parameter {
	return []design.Parameter{
		{Name: "μ_set", Unit: "h⁻¹", Values: []float64{0.11, 0.135, 0.16}},
		{Name: "Temp", Unit: "°C", Values: []float64{29, 31, 33}},
	}
}

// TestGenerate_CartesianCount verifies that the point count equals the
// product of per-parameter value counts.
func TestGenerate_CartesianCount(t *testing.T) {
	space, err := design.Generate(bioParams(), design.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 9, space.NumPoints(), "3×3 values must yield 9 points")
	assert.Equal(t, 2, space.NumFactors())
}

// TestGenerate_DeterministicOrder verifies outer-to-inner ordering with
// ascending values: first parameter varies slowest.
func TestGenerate_DeterministicOrder(t *testing.T) {
	space, err := design.Generate(bioParams(), design.DefaultOptions())
	require.NoError(t, err)

	first := space.Point(0)
	assert.Equal(t, 1, first.Index, "indices are 1-based")
	assert.Equal(t, []float64{0.11, 29}, first.Values)

	second := space.Point(1)
	assert.Equal(t, []float64{0.11, 31}, second.Values, "inner parameter varies first")

	last := space.Point(8)
	assert.Equal(t, 9, last.Index)
	assert.Equal(t, []float64{0.16, 33}, last.Values)
}

// TestGenerate_Idempotent verifies that regenerating from the same
// parameters yields identical indices and values.
func TestGenerate_Idempotent(t *testing.T) {
	a, err := design.Generate(bioParams(), design.DefaultOptions())
	require.NoError(t, err)
	b, err := design.Generate(bioParams(), design.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, a.Points(), b.Points(), "generation must be deterministic")
}

// TestGenerate_DedupAndSort verifies that candidate values are deduplicated
// and sorted ascending before the product is taken.
func TestGenerate_DedupAndSort(t *testing.T) {
	params := []design.Parameter{
		{Name: "Temp", Values: []float64{33, 29, 33, 31}},
	}
	space, err := design.Generate(params, design.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, space.NumPoints(), "duplicate 33 must collapse")
	assert.Equal(t, []float64{29}, space.Point(0).Values)
	assert.Equal(t, []float64{33}, space.Point(2).Values)
}

// TestGenerate_ValidationErrors covers the sentinel per failure mode.
func TestGenerate_ValidationErrors(t *testing.T) {
	opts := design.DefaultOptions()

	_, err := design.Generate(nil, opts)
	assert.ErrorIs(t, err, design.ErrNoParameters)

	_, err = design.Generate([]design.Parameter{{Name: "a"}}, opts)
	assert.ErrorIs(t, err, design.ErrNoValues)

	_, err = design.Generate([]design.Parameter{
		{Name: "a", Values: []float64{1}},
		{Name: "a", Values: []float64{2}},
	}, opts)
	assert.ErrorIs(t, err, design.ErrDuplicateParameter)

	_, err = design.Generate([]design.Parameter{{Name: "", Values: []float64{1}}}, opts)
	assert.ErrorIs(t, err, design.ErrUnnamedParameter)
}

// TestGenerate_SizeCeiling verifies the combinatorial-explosion guard and
// that the error names the sizes involved.
func TestGenerate_SizeCeiling(t *testing.T) {
	big := make([]float64, 30)
	for i := range big {
		big[i] = float64(i)
	}
	params := []design.Parameter{
		{Name: "a", Values: big},
		{Name: "b", Values: big},
	}

	_, err := design.Generate(params, design.DefaultOptions())
	assert.ErrorIs(t, err, design.ErrSpaceTooLarge, "900 points exceed the default ceiling")

	_, err = design.Generate(params, design.Options{MaxPoints: 1000})
	assert.NoError(t, err, "a raised ceiling admits the same parameters")
}

// TestFromRows_Replicates verifies explicit catalogues with duplicated
// center points: duplicates stay distinct indices.
func TestFromRows_Replicates(t *testing.T) {
	params := []design.Parameter{{Name: "μ_set"}, {Name: "Temp"}}
	rows := [][]float64{
		{0.135, 31}, // center, replicate 1
		{0.135, 31}, // center, replicate 2
		{0.16, 31},
	}

	space, err := design.FromRows(params, rows, design.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, space.NumPoints(), "replicates keep their own indices")
	assert.Equal(t, 2, space.DistinctPoints())
	assert.Equal(t, []bool{true, true, false}, space.ReplicatedRows())
}

// TestFromRows_ShapeMismatch verifies row-width validation.
func TestFromRows_ShapeMismatch(t *testing.T) {
	params := []design.Parameter{{Name: "a"}, {Name: "b"}}
	_, err := design.FromRows(params, [][]float64{{1}}, design.DefaultOptions())
	assert.ErrorIs(t, err, design.ErrShapeMismatch)
}

// TestSpace_MatrixIsCopy verifies that mutating the exported matrix does
// not touch the space.
func TestSpace_MatrixIsCopy(t *testing.T) {
	space, err := design.Generate(bioParams(), design.DefaultOptions())
	require.NoError(t, err)

	m := space.Matrix()
	m.Set(0, 0, 99)

	assert.Equal(t, 0.11, space.Value(0, 0), "Matrix must hand out a copy")
}

// TestSpace_ParameterIndex covers name lookup.
func TestSpace_ParameterIndex(t *testing.T) {
	space, err := design.Generate(bioParams(), design.DefaultOptions())
	require.NoError(t, err)

	idx, ok := space.ParameterIndex("Temp")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = space.ParameterIndex("pH")
	assert.False(t, ok)
}
