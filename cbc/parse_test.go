package cbc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyal-algocell/idoe/mip"
)

// writeSol drops a canned solution file into a scratch dir.
func writeSol(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.sol")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestParseSolutionFile_Optimal(t *testing.T) {
	path := writeSol(t, `Optimal - objective value 0.51200000
      0 x_1_4_1               1                       0.008
      1 x_1_5_2               1                       0.008
      2 u_1                   1                       0.512
`)

	sol, err := parseSolutionFile(path)
	require.NoError(t, err)

	assert.Equal(t, mip.StatusOptimal, sol.Status)
	assert.InDelta(t, 0.512, sol.Objective, 1e-9)
	assert.True(t, sol.HasAssignment())

	m := mip.NewModel("t")
	x := m.Binary("x_1_4_1")
	u := m.Binary("u_1")
	assert.True(t, sol.IsSet(m, x))
	assert.True(t, sol.IsSet(m, u))
}

func TestParseSolutionFile_Infeasible(t *testing.T) {
	path := writeSol(t, `Infeasible - objective value 0.00000000
      0 x_1_1_1               0                       0
`)

	sol, err := parseSolutionFile(path)
	require.NoError(t, err)

	assert.Equal(t, mip.StatusInfeasible, sol.Status)
	assert.False(t, sol.HasAssignment(), "an infeasibility proof carries no assignment")
}

func TestParseSolutionFile_IntegerInfeasible(t *testing.T) {
	path := writeSol(t, "Integer infeasible - objective value 0\n")

	sol, err := parseSolutionFile(path)
	require.NoError(t, err)
	assert.Equal(t, mip.StatusInfeasible, sol.Status)
}

func TestParseSolutionFile_StoppedOnTime(t *testing.T) {
	path := writeSol(t, `Stopped on time - objective value 1.25000000
      0 x_1_1_1               1                       0.25
`)

	sol, err := parseSolutionFile(path)
	require.NoError(t, err)

	assert.Equal(t, mip.StatusUnknown, sol.Status)
	assert.True(t, sol.HasAssignment(), "a timed-out incumbent is still usable")
	assert.InDelta(t, 1.25, sol.Objective, 1e-9)
}

// TestParseSolutionFile_StarMarkers verifies that the "**" prefix some CBC
// builds emit on non-proven rows is stripped on both header and body lines.
func TestParseSolutionFile_StarMarkers(t *testing.T) {
	path := writeSol(t, `** Stopped on time - objective value 2.00000000
**      0 x_1_1_1               1                       0.5
`)

	sol, err := parseSolutionFile(path)
	require.NoError(t, err)

	assert.Equal(t, mip.StatusUnknown, sol.Status)
	m := mip.NewModel("t")
	x := m.Binary("x_1_1_1")
	assert.True(t, sol.IsSet(m, x))
}

func TestParseSolutionFile_Malformed(t *testing.T) {
	_, err := parseSolutionFile(writeSol(t, ""))
	assert.ErrorIs(t, err, ErrBadSolutionFile, "empty file")

	_, err = parseSolutionFile(writeSol(t, "Optimal - objective value not_a_number\n"))
	assert.ErrorIs(t, err, ErrBadSolutionFile, "unparseable objective")

	_, err = parseSolutionFile(writeSol(t, "Optimal - objective value 1\n0 x_1 oops 0\n"))
	assert.ErrorIs(t, err, ErrBadSolutionFile, "unparseable variable value")

	_, err = parseSolutionFile(filepath.Join(t.TempDir(), "missing.sol"))
	assert.ErrorIs(t, err, ErrBadSolutionFile, "missing file")
}
