package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyal-algocell/idoe/design"
	"github.com/eyal-algocell/idoe/plan"
)

func TestCoveragePolicy(t *testing.T) {
	space := twoByTwo(t)

	targets := plan.CoveragePolicy(space)
	assert.Equal(t, []float64{1, 1, 1, 1}, targets)
}

// TestReplicateAwarePolicy verifies the softer target on replicated rows:
// center replicates already recur in the catalogue, so each copy is asked
// for one appearance while unique points are asked for two.
func TestReplicateAwarePolicy(t *testing.T) {
	params := []design.Parameter{{Name: "μ_set"}, {Name: "Temp"}}
	rows := [][]float64{
		{0.11, 29},
		{0.135, 31}, // center, replicate 1
		{0.135, 31}, // center, replicate 2
		{0.16, 33},
	}
	space, err := design.FromRows(params, rows, design.DefaultOptions())
	require.NoError(t, err)

	targets := plan.ReplicateAwarePolicy(space)
	assert.Equal(t, []float64{2, 1, 1, 2}, targets)
}
