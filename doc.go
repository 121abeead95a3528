// Package idoe plans intensified Design of Experiments (iDoE): it assigns a
// fixed catalogue of parameter combinations to stages within a limited
// number of experimental runs, subject to coverage, repetition and
// biological-transition constraints.
//
// 🚀 What is iDoE planning?
//
//	Classic DoE spends one bioreactor run per condition set. Intensified
//	DoE packs several condition sets into one run as time-ordered stages,
//	cutting the number of runs — as long as every catalogued combination
//	is still covered, nothing repeats too often, and stage-to-stage shifts
//	stay biologically gentle. Finding such a packing is a combinatorial
//	assignment problem; this module encodes it as an integer program and
//	interprets the solver's verdict.
//
// ✨ What's inside:
//   - design/  — immutable Design Spaces: Cartesian catalogues of named
//     parameters, with replicate support and geometry queries
//   - mip/     — a minimal integer-program model surface and the Solver
//     contract any exact MILP backend can satisfy
//   - cbc/     — a solve adapter driving the COIN-OR CBC executable
//   - plan/    — the engine: constraints C1–C8, the run-compactness
//     objective, result extraction, and infeasibility diagnostics
//   - plancfg/ — YAML intake for parameters, topology and constraints
//
// Quick sketch:
//
//	space, _ := design.Generate(params, design.DefaultOptions())
//	cfg := plan.DefaultConfig(5, 3)
//	res, err := plan.Plan(ctx, space, cfg, cbc.New(cbc.DefaultOptions()))
//
// A Result is Optimal, Infeasible (with ranked, human-readable hypotheses
// about which constraint to relax), or Unknown when the solve budget ran
// out. The engine is stateless across invocations; concurrent planning
// requests share nothing but immutable Design Spaces.
package idoe
