// Package plan - Result Extractor: raw solver assignment → structured plan.
package plan

import (
	"fmt"

	"github.com/eyal-algocell/idoe/mip"
)

// StageAssignment is one design point occupying one stage of a run.
// Stage and Point are 1-based; Values are the point's factor values in
// declared parameter order.
type StageAssignment struct {
	Stage  int
	Point  int
	Values []float64
}

// Run is one used experimental run with its ordered stage assignments.
// Index is 1-based.
type Run struct {
	Index  int
	Stages []StageAssignment
}

// Summary holds the derived counters of a plan.
//
//   - RunsUsed   — runs with at least one assigned stage.
//   - StagesUsed — total assignments across all runs.
//   - Coverage   — distinct design points used ÷ catalogue size.
type Summary struct {
	RunsUsed   int
	StagesUsed int
	Coverage   float64
}

// Result is the outcome of one planning request. Owned by the caller after
// extraction and never mutated afterwards.
//
//   - Status StatusOptimal    — Runs is the proven-optimal plan.
//   - Status StatusUnknown    — the solve budget ran out; Runs carries the
//     best incumbent found (possibly none) and must not be read as optimal.
//   - Status StatusInfeasible — Runs is empty and Diagnostics holds at
//     least one ranked hypothesis about which constraint is unsatisfiable.
type Result struct {
	Status      mip.Status
	Objective   float64
	Runs        []Run
	Summary     Summary
	Diagnostics []Hypothesis
}

// Extract reads the true decision variables of sol into a Run→Stage→Point
// structure sorted by run index then stage index, and computes the summary
// counters.
//
// Contracts:
//   - sol must carry an assignment (Optimal, or Unknown with incumbent).
//   - a stage holding two design points violates C1 and surfaces as
//     ErrInconsistentSolution — a modeling bug, not a user problem.
//
// Complexity: O(R·N·S).
func (p *Problem) Extract(sol mip.Solution) (Result, error) {
	res := Result{
		Status:    sol.Status,
		Objective: sol.Objective,
	}

	pointsSeen := make(map[int]struct{})

	var (
		assigned int // points found in the current stage
		total    int // assignments across the whole plan
	)
	for r := range p.x {
		run := Run{Index: r + 1}
		for k := 0; k < p.cfg.Stages; k++ {
			assigned = 0
			for j := range p.x[r] {
				if !sol.IsSet(p.model, p.x[r][j][k]) {
					continue
				}
				assigned++
				if assigned > 1 {
					return Result{}, fmt.Errorf("run %d stage %d holds multiple points: %w",
						r+1, k+1, ErrInconsistentSolution)
				}
				run.Stages = append(run.Stages, StageAssignment{
					Stage:  k + 1,
					Point:  j + 1,
					Values: p.space.Point(j).Values,
				})
				pointsSeen[j] = struct{}{}
				total++
			}
		}
		if len(run.Stages) > 0 {
			res.Runs = append(res.Runs, run)
		}
	}

	res.Summary = Summary{
		RunsUsed:   len(res.Runs),
		StagesUsed: total,
		Coverage:   float64(len(pointsSeen)) / float64(p.space.NumPoints()),
	}

	return res, nil
}
