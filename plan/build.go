// Package plan - Problem Builder: decision variables, constraints C1–C8,
// and the run-compactness objective.
//
// Design principles (mirrored across the module):
//   - Deterministic: variables and constraint rows are emitted in a fixed
//     order (runs, then points, then stages; factors in declared parameter
//     order), so a given (space, config) always yields the same model.
//   - Strict sentinels: all user-facing failures are errors.Is-matchable.
//   - Disabling a constraint removes its rows, never its variables.
package plan

import (
	"fmt"
	"math"

	"github.com/eyal-algocell/idoe/design"
	"github.com/eyal-algocell/idoe/mip"
)

// Problem is a solver-ready planning model plus the variable handles needed
// to read a solution back. Build one per solve; a Problem is not reused.
type Problem struct {
	space   *design.Space
	cfg     Config
	model   *mip.Model
	x       [][][]mip.Var // x[r][j][k]: point j at stage k of run r
	used    []mip.Var     // used[r]: run r holds at least one assignment
	targets []float64     // resolved C6 targets (nil when C6 disabled)
}

// Model returns the underlying integer-program model.
func (p *Problem) Model() *mip.Model { return p.model }

// Build validates the configuration, runs the degeneracy precheck, and
// constructs the complete model: one binary per (run, point, stage), one
// run-used indicator per run, the enabled constraints among C1–C8, and the
// convex run-weighted minimization objective.
//
// Contracts:
//   - space non-nil and non-empty; cfg topology positive.
//   - with C8 enabled, the space must hold ≥ 2 distinct points and at least
//     one pair meeting some factor's minimum step (ErrDegenerateSpace
//     otherwise) — the solver is never asked to discover a degenerate
//     catalogue through Big-M slack.
//
// Errors: ErrNilSpace, ErrBadTopology, ErrBadThreshold, ErrUnknownParameter,
// ErrContradictoryLimits, ErrBadPolicy, ErrDegenerateSpace.
//
// Complexity: O(R·N·S + R·S·P) rows with R runs, N points, S stages, P
// constrained factors.
func Build(space *design.Space, cfg Config) (*Problem, error) {
	if err := validate(space, cfg); err != nil {
		return nil, err
	}
	if err := precheckVariation(space, cfg); err != nil {
		return nil, err
	}

	p := &Problem{
		space: space,
		cfg:   cfg,
		model: mip.NewModel("idoe_plan"),
	}

	p.createVariables()
	if err := p.addStructure(); err != nil { // C1 + run-used linking
		return nil, err
	}
	if err := p.addC2(); err != nil {
		return nil, err
	}
	if err := p.addC3(); err != nil {
		return nil, err
	}
	if err := p.addC4(); err != nil {
		return nil, err
	}
	if err := p.addC5(); err != nil {
		return nil, err
	}
	if err := p.addC6(); err != nil {
		return nil, err
	}
	if err := p.addC7(); err != nil {
		return nil, err
	}
	if err := p.addC8(); err != nil {
		return nil, err
	}
	if err := p.addObjective(); err != nil {
		return nil, err
	}

	return p, nil
}

// precheckVariation fails fast on catalogues that cannot support C8.
// Skipped when C8 is disabled or when the topology has no transitions
// (Stages < 2 — C8 is vacuous there: no transitions exist).
func precheckVariation(space *design.Space, cfg Config) error {
	if !cfg.C8.Enabled || cfg.Stages < 2 {
		return nil
	}

	if d := space.DistinctPoints(); d < 2 {
		return fmt.Errorf("%d distinct design point(s), need at least 2: %w", d, ErrDegenerateSpace)
	}

	// The extreme pair of a factor realizes its span, so a factor is
	// witness-capable exactly when span ≥ its minimum step.
	params := space.Parameters()
	for col := range params {
		minStep, ok := cfg.C8.MinStep[params[col].Name]
		if !ok {
			continue
		}
		if space.FactorSpan(col) >= minStep {
			return nil
		}
	}

	return fmt.Errorf("no pair of design points differs by any factor's C8 minimum: %w", ErrDegenerateSpace)
}

// createVariables registers x[r][j][k] and used[r]. Names are 1-based to
// match the indices reported in results.
func (p *Problem) createVariables() {
	runs, points, stages := p.cfg.MaxRuns, p.space.NumPoints(), p.cfg.Stages

	p.x = make([][][]mip.Var, runs)
	for r := 0; r < runs; r++ {
		p.x[r] = make([][]mip.Var, points)
		for j := 0; j < points; j++ {
			p.x[r][j] = make([]mip.Var, stages)
			for k := 0; k < stages; k++ {
				p.x[r][j][k] = p.model.Binary(fmt.Sprintf("x_%d_%d_%d", r+1, j+1, k+1))
			}
		}
	}

	p.used = make([]mip.Var, runs)
	for r := 0; r < runs; r++ {
		p.used[r] = p.model.Binary(fmt.Sprintf("u_%d", r+1))
	}
}

// addStructure emits C1 (≤ 1 point per stage; always enforced) and the
// run-used linking rows. With C1 in place, one link row per (run, stage)
// is tight: Σ_j x[r][j][k] ≤ used[r].
func (p *Problem) addStructure() error {
	for r := range p.x {
		for k := 0; k < p.cfg.Stages; k++ {
			var stage mip.Expr
			for j := range p.x[r] {
				stage.Add(p.x[r][j][k], 1)
			}

			if err := p.model.AddConstraint(
				fmt.Sprintf("C1_one_point_per_stage_r%d_s%d", r+1, k+1),
				stage, mip.LE, 1,
			); err != nil {
				return err
			}

			var link mip.Expr
			for j := range p.x[r] {
				link.Add(p.x[r][j][k], 1)
			}
			link.Add(p.used[r], -1)

			if err := p.model.AddConstraint(
				fmt.Sprintf("used_link_r%d_s%d", r+1, k+1),
				link, mip.LE, 0,
			); err != nil {
				return err
			}
		}
	}

	return nil
}

// addC2 emits positional uniqueness: a design point occupies a given stage
// position in at most one run.
func (p *Problem) addC2() error {
	if !p.cfg.C2Enabled {
		return nil
	}

	for j := 0; j < p.space.NumPoints(); j++ {
		for k := 0; k < p.cfg.Stages; k++ {
			var e mip.Expr
			for r := range p.x {
				e.Add(p.x[r][j][k], 1)
			}
			if err := p.model.AddConstraint(
				fmt.Sprintf("C2_unique_at_position_p%d_s%d", j+1, k+1),
				e, mip.LE, 1,
			); err != nil {
				return err
			}
		}
	}

	return nil
}

// addC3 emits the per-run repeat cap.
func (p *Problem) addC3() error {
	if !p.cfg.C3.Enabled {
		return nil
	}

	for r := range p.x {
		for j := range p.x[r] {
			var e mip.Expr
			for k := 0; k < p.cfg.Stages; k++ {
				e.Add(p.x[r][j][k], 1)
			}
			if err := p.model.AddConstraint(
				fmt.Sprintf("C3_repeat_cap_r%d_p%d", r+1, j+1),
				e, mip.LE, float64(p.cfg.C3.Max),
			); err != nil {
				return err
			}
		}
	}

	return nil
}

// addC4 emits the global repeat cap.
func (p *Problem) addC4() error {
	if !p.cfg.C4.Enabled {
		return nil
	}

	for j := 0; j < p.space.NumPoints(); j++ {
		e := p.sumOverRunsStages(j)
		if err := p.model.AddConstraint(
			fmt.Sprintf("C4_repeat_cap_p%d", j+1),
			e, mip.LE, float64(p.cfg.C4.Max),
		); err != nil {
			return err
		}
	}

	return nil
}

// addC5 emits full coverage: every catalogued point appears somewhere.
func (p *Problem) addC5() error {
	if !p.cfg.C5Enabled {
		return nil
	}

	for j := 0; j < p.space.NumPoints(); j++ {
		e := p.sumOverRunsStages(j)
		if err := p.model.AddConstraint(
			fmt.Sprintf("C5_cover_p%d", j+1),
			e, mip.GE, 1,
		); err != nil {
			return err
		}
	}

	return nil
}

// addC6 emits weighted repetition targets from the resolved policy.
// Zero-target rows are trivially satisfied and skipped.
func (p *Problem) addC6() error {
	if !p.cfg.C6.Enabled {
		return nil
	}

	targets, err := resolveTargets(p.space, p.cfg)
	if err != nil {
		return err
	}
	p.targets = targets

	weights := p.cfg.C6.StageWeights
	if weights == nil {
		weights = make([]float64, p.cfg.Stages)
		for k := range weights {
			weights[k] = 1
		}
	}

	for j := 0; j < p.space.NumPoints(); j++ {
		if targets[j] == 0 {
			continue
		}
		var e mip.Expr
		for r := range p.x {
			for k := 0; k < p.cfg.Stages; k++ {
				e.Add(p.x[r][j][k], weights[k])
			}
		}
		if err = p.model.AddConstraint(
			fmt.Sprintf("C6_weighted_repetition_p%d", j+1),
			e, mip.GE, targets[j],
		); err != nil {
			return err
		}
	}

	return nil
}

// addC7 emits the bounded-transition rows: for every run, consecutive stage
// pair and constrained factor, the weighted-sum difference of the factor
// value is bounded by ±max. Factors are visited in declared parameter order
// for deterministic row order.
func (p *Problem) addC7() error {
	if !p.cfg.C7.Enabled {
		return nil
	}

	params := p.space.Parameters()
	for col := range params {
		maxStep, ok := p.cfg.C7.MaxStep[params[col].Name]
		if !ok {
			continue
		}

		for r := range p.x {
			for k := 0; k < p.cfg.Stages-1; k++ {
				diff := p.factorDiff(r, k, col)
				if err := p.model.AddConstraint(
					fmt.Sprintf("C7_step_r%d_s%d_f%d_ub", r+1, k+1, col+1),
					diff, mip.LE, maxStep,
				); err != nil {
					return err
				}
				if err := p.model.AddConstraint(
					fmt.Sprintf("C7_step_r%d_s%d_f%d_lb", r+1, k+1, col+1),
					diff, mip.GE, -maxStep,
				); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// addC8 emits the minimum intra-run variation constraint.
//
// Encoding: per (run, stage pair, constrained factor) two witness booleans
// zp/zn assert "the factor rises/falls by at least its minimum here". A
// per-factor Big-M activates the bound exactly when the witness is set:
//
//	 diff − M·zp ≥ min − M   (zp=1 ⇒ diff ≥ min)
//	−diff − M·zn ≥ min − M   (zn=1 ⇒ diff ≤ −min)
//
// With z=0 the row must be slack for every layout the other constraints
// admit. The weighted-sum diff spans ±max(|lo|, |hi|), not ±span: next to
// an empty stage the diff is the raw factor value, and partially packed
// runs are legal whenever the run still carries a witnessed change. So
// M = max(|lo|, |hi|) + min per factor; the soundness of the witnesses
// themselves comes from the guards below, which pin each witness to
// transitions whose two stages are both assigned (a diff against an empty
// stage is an artifact, not a transition). Every used run must carry at
// least one witness.
//
// Vacuous when Stages < 2 (no transitions exist).
func (p *Problem) addC8() error {
	if !p.cfg.C8.Enabled || p.cfg.Stages < 2 {
		return nil
	}

	witnesses := make([][]mip.Var, p.cfg.MaxRuns)

	params := p.space.Parameters()
	for col := range params {
		minStep, ok := p.cfg.C8.MinStep[params[col].Name]
		if !ok {
			continue
		}
		lo, hi := p.space.FactorRange(col)
		bigM := math.Max(math.Abs(lo), math.Abs(hi)) + minStep

		for r := range p.x {
			for k := 0; k < p.cfg.Stages-1; k++ {
				zp := p.model.Binary(fmt.Sprintf("zp_%d_%d_%d", r+1, k+1, col+1))
				zn := p.model.Binary(fmt.Sprintf("zn_%d_%d_%d", r+1, k+1, col+1))
				witnesses[r] = append(witnesses[r], zp, zn)

				rise := p.factorDiff(r, k, col)
				rise.Add(zp, -bigM)
				if err := p.model.AddConstraint(
					fmt.Sprintf("C8_rise_r%d_s%d_f%d", r+1, k+1, col+1),
					rise, mip.GE, minStep-bigM,
				); err != nil {
					return err
				}

				fall := p.factorDiffNeg(r, k, col)
				fall.Add(zn, -bigM)
				if err := p.model.AddConstraint(
					fmt.Sprintf("C8_fall_r%d_s%d_f%d", r+1, k+1, col+1),
					fall, mip.GE, minStep-bigM,
				); err != nil {
					return err
				}

				if err := p.addWitnessGuards(r, k, col, zp, zn); err != nil {
					return err
				}
			}
		}
	}

	// Every used run needs at least one witnessed change.
	for r := range p.x {
		var e mip.Expr
		for _, z := range witnesses[r] {
			e.Add(z, 1)
		}
		e.Add(p.used[r], -1)
		if err := p.model.AddConstraint(
			fmt.Sprintf("C8_requires_change_r%d", r+1),
			e, mip.GE, 0,
		); err != nil {
			return err
		}
	}

	return nil
}

// addWitnessGuards pins each witness to transitions whose two stages are
// both assigned: z ≤ Σ_j x[r][j][k] and z ≤ Σ_j x[r][j][k+1].
func (p *Problem) addWitnessGuards(r, k, col int, zp, zn mip.Var) error {
	guards := [...]struct {
		z     mip.Var
		stage int
		name  string
	}{
		{zp, k, fmt.Sprintf("C8_guard_zp_lo_r%d_s%d_f%d", r+1, k+1, col+1)},
		{zp, k + 1, fmt.Sprintf("C8_guard_zp_hi_r%d_s%d_f%d", r+1, k+1, col+1)},
		{zn, k, fmt.Sprintf("C8_guard_zn_lo_r%d_s%d_f%d", r+1, k+1, col+1)},
		{zn, k + 1, fmt.Sprintf("C8_guard_zn_hi_r%d_s%d_f%d", r+1, k+1, col+1)},
	}

	for _, g := range guards {
		var e mip.Expr
		e.Add(g.z, 1)
		for j := range p.x[r] {
			e.Add(p.x[r][j][g.stage], -1)
		}
		if err := p.model.AddConstraint(g.name, e, mip.LE, 0); err != nil {
			return err
		}
	}

	return nil
}

// addObjective installs the minimization objective: convex (cubic) weights
// on run-used indicators so that each additional run is disproportionately
// expensive, plus a strictly dominated per-assignment tie-break that keeps
// solutions compact and biased toward early runs.
func (p *Problem) addObjective() error {
	runs := p.cfg.MaxRuns
	points := p.space.NumPoints()
	stages := p.cfg.Stages

	weights := make([]float64, runs)
	for r := 0; r < runs; r++ {
		weights[r] = math.Pow(float64(r+1)/float64(runs+1), 3)
	}

	// The tie-break total over every assignment stays below the smallest
	// run weight, so it can never trade a run for stage shuffling.
	tieBreak := weights[0] / (2 * float64(runs*points*stages))

	var obj mip.Expr
	for r := 0; r < runs; r++ {
		obj.Add(p.used[r], weights[r])
	}
	for r := 0; r < runs; r++ {
		for j := 0; j < points; j++ {
			for k := 0; k < stages; k++ {
				obj.Add(p.x[r][j][k], weights[r]*tieBreak)
			}
		}
	}

	return p.model.SetObjective(obj)
}

// sumOverRunsStages builds Σ_{r,k} x[r][j][k] for one point.
func (p *Problem) sumOverRunsStages(j int) mip.Expr {
	var e mip.Expr
	for r := range p.x {
		for k := 0; k < p.cfg.Stages; k++ {
			e.Add(p.x[r][j][k], 1)
		}
	}

	return e
}

// factorDiff builds the stage-k minus stage-k+1 weighted-sum difference of
// factor col for run r: Σ_j v[j][col]·x[r][j][k] − Σ_j v[j][col]·x[r][j][k+1].
func (p *Problem) factorDiff(r, k, col int) mip.Expr {
	var e mip.Expr
	for j := range p.x[r] {
		v := p.space.Value(j, col)
		e.Add(p.x[r][j][k], v)
		e.Add(p.x[r][j][k+1], -v)
	}

	return e
}

// factorDiffNeg builds the negated difference (stage k+1 minus stage k).
func (p *Problem) factorDiffNeg(r, k, col int) mip.Expr {
	var e mip.Expr
	for j := range p.x[r] {
		v := p.space.Value(j, col)
		e.Add(p.x[r][j][k], -v)
		e.Add(p.x[r][j][k+1], v)
	}

	return e
}
