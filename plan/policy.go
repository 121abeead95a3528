// Package plan - repetition-target policies for C6.
//
// A policy turns the design space into one repetition target per point: an
// explicit function of the space, computed once per Build, with no shared
// mutable state.
package plan

import (
	"fmt"
	"math"

	"github.com/eyal-algocell/idoe/design"
)

// RepetitionPolicy computes one C6 target per design point (indexed 0-based
// in catalogue order). Targets are weighted-appearance demands: the weighted
// sum of a point's assignments across all (run, stage) slots must reach its
// target.
type RepetitionPolicy func(space *design.Space) []float64

// CoveragePolicy targets one weighted appearance per point. With unit stage
// weights this coincides with plain coverage; with non-unit weights it
// steers every point toward the heavier stage positions. This is the
// default: it never overconstrains a small topology.
func CoveragePolicy(space *design.Space) []float64 {
	out := make([]float64, space.NumPoints())
	for j := range out {
		out[j] = 1
	}

	return out
}

// ReplicateAwarePolicy targets two weighted appearances for unique points
// and one for replicated rows: replicates (typically center points) already
// recur as distinct catalogue indices, so demanding two plan appearances of
// each copy would over-sample the center of the design.
func ReplicateAwarePolicy(space *design.Space) []float64 {
	replicated := space.ReplicatedRows()
	out := make([]float64, space.NumPoints())
	for j := range out {
		if replicated[j] {
			out[j] = 1
		} else {
			out[j] = 2
		}
	}

	return out
}

// resolveTargets runs the configured (or default) policy and validates its
// output shape and values.
func resolveTargets(space *design.Space, cfg Config) ([]float64, error) {
	policy := cfg.C6.Policy
	if policy == nil {
		policy = CoveragePolicy
	}

	targets := policy(space)
	if len(targets) != space.NumPoints() {
		return nil, fmt.Errorf("policy returned %d targets for %d points: %w",
			len(targets), space.NumPoints(), ErrBadPolicy)
	}
	for j, t := range targets {
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			return nil, fmt.Errorf("target[%d]=%v: %w", j, t, ErrBadPolicy)
		}
	}

	return targets, nil
}
