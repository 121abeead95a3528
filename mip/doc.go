// Package mip holds a minimal mixed-integer programming model surface:
// binary variables, linear constraints, a linear minimization objective,
// and the Solver contract that hands a finished model to an external
// integer-program backend.
//
// ✨ Scope & philosophy:
//   - Modeling only — no solving happens here. Any complete MILP backend
//     (CBC, HiGHS, Gurobi, ...) can sit behind the Solver interface, as
//     long as it is exact: heuristic backends that report "optimal" on
//     relaxations break the contract.
//   - Deterministic — variables and constraints keep insertion order, and
//     WriteLP serializes a model byte-identically across runs.
//   - Binary-first — the planning engine only needs 0/1 variables, so the
//     model deliberately offers nothing else.
//
// ⚙️ Usage:
//
//	m := mip.NewModel("plan")
//	x := m.Binary("x_1_1_1")
//	y := m.Binary("x_1_2_1")
//
//	var e mip.Expr
//	e.Add(x, 1)
//	e.Add(y, 1)
//	m.AddConstraint("one_per_stage", e, mip.LE, 1)
//
//	var obj mip.Expr
//	obj.Add(x, 0.25)
//	m.SetObjective(obj)
//
//	sol, err := solver.Solve(ctx, m)
//	if sol.Status == mip.StatusOptimal { ... }
//
// The Solution maps variables back to values; Status distinguishes a proven
// optimum, proven infeasibility, and everything else (time limit, solver
// stopped early) as Unknown.
package mip
