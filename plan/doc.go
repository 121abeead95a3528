// Package plan encodes intensified Design of Experiments (iDoE) planning as
// an integer program: assign every catalogued design point to stages of a
// bounded number of experimental runs, subject to coverage, repetition and
// biological-transition constraints, using as few runs as possible.
//
// 🚀 The assignment model:
//
//	One binary decision variable per (run, design point, stage) triple —
//	x[r][j][k] = 1 means point j occupies stage k of run r — plus one
//	run-used indicator per run and, for C8, per-transition witness
//	booleans. Eight named constraints shape the plan:
//
//	  C1  at most one design point per stage          (always enforced)
//	  C2  positional uniqueness across runs           (toggleable)
//	  C3  per-run repeat cap                          (default ≤ 2)
//	  C4  global repeat cap                           (default ≤ 2)
//	  C5  full catalogue coverage                     (toggleable)
//	  C6  weighted repetition targets per point       (policy-driven)
//	  C7  bounded transition magnitude ("no shock")   (per-factor max step)
//	  C8  minimum intra-run variation                 (per-factor min step)
//
//	C8 is disjunctive ("at least one transition changes some factor
//	enough") and is linearized with witness booleans and per-factor Big-M
//	constants derived from each factor's observed value range — sized so
//	that unwitnessed rows stay slack for every legal layout, including
//	partially packed runs, while a set witness demands exactly the
//	minimum change between two assigned stages.
//
// ✨ Pipeline:
//
//	validate → degeneracy precheck → Build (model) → Solver → Extract
//
//	Degenerate inputs (fewer than two distinct points, or no pair meeting
//	the C8 minimum) fail fast with ErrDegenerateSpace before any solver
//	runs. A proven-infeasible verdict comes back as a Result carrying at
//	least one ranked diagnostic hypothesis, never as an error.
//
// ⚙️ Usage:
//
//	space, _ := design.Generate(params, design.DefaultOptions())
//	cfg := plan.DefaultConfig(5, 3)
//	res, err := plan.Plan(ctx, space, cfg, cbc.New(cbc.DefaultOptions()))
//	if res.Status == mip.StatusOptimal { ... res.Runs ... }
//
// The engine is single-threaded and stateless across invocations; concurrent
// planning requests are fully independent and may share one immutable Space.
package plan
