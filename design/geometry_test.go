package design_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyal-algocell/idoe/design"
)

// geomSpace builds a 3×2 catalogue with uneven spacing in the first factor.
func geomSpace(t *testing.T) *design.Space {
	t.Helper()
	params := []design.Parameter{
		{Name: "μ_set", Values: []float64{0.11, 0.135, 0.16}},
		{Name: "Temp", Values: []float64{29, 33}},
	}
	space, err := design.Generate(params, design.DefaultOptions())
	require.NoError(t, err)

	return space
}

func TestFactorRange(t *testing.T) {
	space := geomSpace(t)

	lo, hi := space.FactorRange(0)
	assert.Equal(t, 0.11, lo)
	assert.Equal(t, 0.16, hi)

	lo, hi = space.FactorRange(1)
	assert.Equal(t, 29.0, lo)
	assert.Equal(t, 33.0, hi)
}

func TestFactorSpan(t *testing.T) {
	space := geomSpace(t)

	assert.InDelta(t, 0.05, space.FactorSpan(0), 1e-12)
	assert.InDelta(t, 4.0, space.FactorSpan(1), 1e-12)
}

func TestMinPositiveStep(t *testing.T) {
	space := geomSpace(t)

	assert.InDelta(t, 0.025, space.MinPositiveStep(0), 1e-12)
	assert.InDelta(t, 4.0, space.MinPositiveStep(1), 1e-12)
}

// TestMinPositiveStep_ConstantFactor verifies the zero convention for a
// factor with a single value.
func TestMinPositiveStep_ConstantFactor(t *testing.T) {
	params := []design.Parameter{
		{Name: "pH", Values: []float64{7.0}},
		{Name: "Temp", Values: []float64{29, 33}},
	}
	space, err := design.Generate(params, design.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 0.0, space.MinPositiveStep(0), "constant factor has no positive step")
}

func TestHasStepWithin(t *testing.T) {
	space := geomSpace(t)

	// Factor 0 steps: 0.025 and 0.05.
	assert.True(t, space.HasStepWithin(0, 0.02, 0.03))
	assert.True(t, space.HasStepWithin(0, 0.045, 0.055))
	assert.False(t, space.HasStepWithin(0, 0.03, 0.04), "no pair differs by 0.03–0.04")
	assert.False(t, space.HasStepWithin(0, 0.06, 1), "beyond the span")
}

func TestDistinctPoints_NoReplicates(t *testing.T) {
	space := geomSpace(t)

	assert.Equal(t, 6, space.DistinctPoints())
	assert.Equal(t, []bool{false, false, false, false, false, false}, space.ReplicatedRows())
}

func TestDistinctPoints_WithReplicates(t *testing.T) {
	params := []design.Parameter{{Name: "μ_set"}, {Name: "Temp"}}
	rows := [][]float64{
		{0.135, 31},
		{0.11, 29},
		{0.135, 31},
		{0.135, 31},
	}
	space, err := design.FromRows(params, rows, design.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 2, space.DistinctPoints(), "three center replicates collapse to one")
	assert.Equal(t, []bool{true, false, true, true}, space.ReplicatedRows())
}
