// Package plan - unified planning entry point.
package plan

import (
	"context"
	"fmt"

	"github.com/eyal-algocell/idoe/design"
	"github.com/eyal-algocell/idoe/mip"
)

// Plan runs one complete planning request: validate the configuration,
// precheck the catalogue, build the model, hand it to the solve adapter
// once, and translate the verdict.
//
// Verdict translation:
//   - Optimal    → extracted plan with summary counters.
//   - Infeasible → Result with at least one diagnostic hypothesis; never an
//     error, never an empty list.
//   - Unknown    → the budget ran out; the incumbent (if any) is extracted
//     and the Result is marked StatusUnknown — never silently optimal.
//
// TimeLimit: cfg.TimeLimit > 0 bounds the solve through a context deadline
// (the adapter's own budget should match); cfg.TimeLimit == 0 grants no
// budget and returns StatusUnknown without invoking the solver.
//
// No retries are performed; an infeasible or timed-out solve is reported to
// the caller, who may resubmit with relaxed constraints.
//
// Errors: validation/degeneracy sentinels from Build, ErrNilSolver,
// solver transport errors, ErrInconsistentSolution.
func Plan(ctx context.Context, space *design.Space, cfg Config, solver mip.Solver) (Result, error) {
	if solver == nil {
		return Result{}, ErrNilSolver
	}

	p, err := Build(space, cfg)
	if err != nil {
		return Result{}, err
	}

	if cfg.TimeLimit == 0 {
		// Zero budget: the solver never ran, so nothing can be claimed.
		return Result{Status: mip.StatusUnknown}, nil
	}

	solveCtx := ctx
	if cfg.TimeLimit > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, cfg.TimeLimit)
		defer cancel()
	}

	sol, err := solver.Solve(solveCtx, p.Model())
	if err != nil {
		return Result{}, fmt.Errorf("solve: %w", err)
	}

	switch sol.Status {
	case mip.StatusInfeasible:
		hyps := Diagnose(space, cfg)
		if len(hyps) == 0 {
			hyps = []Hypothesis{fallbackHypothesis()}
		}

		return Result{Status: mip.StatusInfeasible, Diagnostics: hyps}, nil

	case mip.StatusOptimal:
		return p.Extract(sol)

	default:
		if !sol.HasAssignment() {
			return Result{Status: mip.StatusUnknown}, nil
		}
		res, err := p.Extract(sol)
		if err != nil {
			return Result{}, err
		}
		res.Status = mip.StatusUnknown

		return res, nil
	}
}
