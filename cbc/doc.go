// Package cbc adapts the COIN-OR CBC command-line solver to the mip.Solver
// contract.
//
// 🚀 How it works:
//
//	The model is serialized to CPLEX LP format in a scratch directory, the
//	cbc executable is launched with a wall-clock budget, and its solution
//	file is parsed back into a mip.Solution:
//
//	  cbc plan.lp -sec 30 -timeMode elapsed branch printingOptions all solution plan.sol
//
// ✨ Behavior guarantees:
//   - the solve is cancellable: ctx cancellation kills the subprocess and
//     returns a best-effort verdict instead of hanging
//   - a zero time budget never launches the solver at all and reports
//     StatusUnknown — a plan is never silently called optimal without the
//     solver having run
//   - "Stopped on time" verdicts surface as StatusUnknown with the
//     incumbent assignment (if CBC wrote one), clearly non-optimal
//   - solver chatter goes to a zap logger (zap.NewNop by default)
//
// ⚙️ Usage:
//
//	opts := cbc.DefaultOptions()
//	opts.TimeLimit = 30 * time.Second
//	sol, err := cbc.New(opts).Solve(ctx, model)
//
// The cbc binary must be on PATH (or named via Options.Path). Everything
// else about CBC — branching, cuts, presolve — is left at its defaults;
// the adapter's job is transport, not tuning.
package cbc
