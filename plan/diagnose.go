// Package plan - Infeasibility Diagnoser: static, explainable checks over
// the constraint configuration and the catalogue geometry.
//
// No solving happens here. Checks run in a fixed priority order — structural
// slot counting first, then per-constraint numeric feasibility, then
// pairwise-distance geometry for the C7/C8 interaction — so the most
// actionable hypothesis always ranks first.
package plan

import (
	"fmt"
	"math"

	"github.com/eyal-algocell/idoe/design"
)

// Hypothesis is one ranked explanation for an infeasible plan: the
// constraint it names, what the numbers say, and a concrete relaxation.
type Hypothesis struct {
	Constraint string
	Detail     string
	Suggestion string
}

// Diagnose inspects (space, cfg) and returns hypotheses about which enabled
// constraint(s) make the instance unsatisfiable, most actionable first. An
// empty list means no single static check explains the infeasibility (the
// constraints conflict only in combination).
//
// Contracts: cfg should already have passed validation; Diagnose tolerates
// arbitrary configs but only reasons about enabled constraints.
//
// Complexity: O(N²·P) dominated by pairwise geometry; N is capped by the
// space ceiling.
func Diagnose(space *design.Space, cfg Config) []Hypothesis {
	if space == nil {
		return nil
	}

	var out []Hypothesis

	out = append(out, diagnoseSlots(space, cfg)...)
	out = append(out, diagnoseCaps(space, cfg)...)
	out = append(out, diagnoseGeometry(space, cfg)...)

	return out
}

// diagnoseSlots covers structural counting: demanded appearances versus
// available (run, stage) slots.
func diagnoseSlots(space *design.Space, cfg Config) []Hypothesis {
	var out []Hypothesis

	n := space.NumPoints()
	slots := cfg.MaxRuns * cfg.Stages

	if cfg.C5Enabled && n > slots {
		out = append(out, Hypothesis{
			Constraint: "C5",
			Detail: fmt.Sprintf("full coverage requires %d design points but %d runs × %d stages provide only %d slots",
				n, cfg.MaxRuns, cfg.Stages, slots),
			Suggestion: "increase the number of runs or stages, or shrink the design space",
		})
	}

	if cfg.C6.Enabled {
		targets, err := resolveTargets(space, cfg)
		if err == nil {
			demand := 0.0
			for _, t := range targets {
				demand += t
			}
			capacity := float64(cfg.MaxRuns) * sumWeights(cfg)
			if demand > capacity {
				out = append(out, Hypothesis{
					Constraint: "C6",
					Detail: fmt.Sprintf("repetition targets demand a weighted total of %.3g but the topology supplies at most %.3g",
						demand, capacity),
					Suggestion: "lower the repetition targets, raise the stage weights, or add runs/stages",
				})
			}
		}
	}

	return out
}

// diagnoseCaps covers numeric conflicts between the repeat caps and the
// demands of C2/C6.
func diagnoseCaps(space *design.Space, cfg Config) []Hypothesis {
	var out []Hypothesis

	if !cfg.C6.Enabled {
		return out
	}
	targets, err := resolveTargets(space, cfg)
	if err != nil {
		return out
	}
	maxTarget := 0.0
	for _, t := range targets {
		if t > maxTarget {
			maxTarget = t
		}
	}

	maxWeight := 0.0
	weights := stageWeights(cfg)
	perPointWeighted := 0.0 // achievable under C2: each position at most once
	for _, w := range weights {
		perPointWeighted += w
		if w > maxWeight {
			maxWeight = w
		}
	}

	if cfg.C2Enabled && maxTarget > perPointWeighted {
		out = append(out, Hypothesis{
			Constraint: "C2",
			Detail: fmt.Sprintf("positional uniqueness caps any point's weighted appearances at %.3g, below the C6 target %.3g",
				perPointWeighted, maxTarget),
			Suggestion: "disable C2 or lower the repetition targets",
		})
	}

	if cfg.C4.Enabled && maxTarget > float64(cfg.C4.Max)*maxWeight {
		out = append(out, Hypothesis{
			Constraint: "C4",
			Detail: fmt.Sprintf("the global repeat cap %d allows at most %.3g weighted appearances, below the C6 target %.3g",
				cfg.C4.Max, float64(cfg.C4.Max)*maxWeight, maxTarget),
			Suggestion: "raise the C4 cap or lower the repetition targets",
		})
	}

	return out
}

// diagnoseGeometry covers pairwise-distance feasibility of C7 and C8.
func diagnoseGeometry(space *design.Space, cfg Config) []Hypothesis {
	var out []Hypothesis

	params := space.Parameters()

	if cfg.C7.Enabled {
		for col := range params {
			maxStep, ok := cfg.C7.MaxStep[params[col].Name]
			if !ok {
				continue
			}
			minStep := space.MinPositiveStep(col)
			if minStep > 0 && maxStep < minStep {
				out = append(out, Hypothesis{
					Constraint: "C7",
					Detail: fmt.Sprintf("parameter %q: the smallest catalogue step is %g but the C7 maximum is %g — no transition may change this factor",
						params[col].Name, minStep, maxStep),
					Suggestion: fmt.Sprintf("raise the C7 maximum for %q to at least %g", params[col].Name, minStep),
				})
			}
		}
	}

	if cfg.C8.Enabled && cfg.Stages >= 2 {
		if space.DistinctPoints() < 2 {
			out = append(out, Hypothesis{
				Constraint: "C8",
				Detail:     "the catalogue holds fewer than two distinct design points, so no run can vary at all",
				Suggestion: "add design points or disable C8",
			})

			return out
		}

		// Some factor must admit a change inside [C8 min, C7 max].
		feasibleFactor := false
		for col := range params {
			minStep, ok := cfg.C8.MinStep[params[col].Name]
			if !ok {
				continue
			}
			hi := math.Inf(1)
			if cfg.C7.Enabled {
				if maxStep, capped := cfg.C7.MaxStep[params[col].Name]; capped {
					hi = maxStep
				}
			}
			if space.HasStepWithin(col, minStep, hi) {
				feasibleFactor = true

				break
			}
		}
		if !feasibleFactor {
			out = append(out, Hypothesis{
				Constraint: "C8",
				Detail:     "no pair of catalogue points differs by at least the C8 minimum within the C7 maximum in any factor",
				Suggestion: "lower the C8 minimums, raise the C7 maximums, or widen the candidate values",
			})
		}
	}

	return out
}

// fallbackHypothesis explains an infeasibility none of the static checks
// caught: the enabled constraints conflict only in combination.
func fallbackHypothesis() Hypothesis {
	return Hypothesis{
		Constraint: "C1-C8",
		Detail:     "no single constraint explains the infeasibility; the enabled constraints conflict only in combination",
		Suggestion: "add runs or stages, or relax the tightest caps (C4, C7) one at a time",
	}
}

// stageWeights returns the effective C6 stage weights (unit weights when
// unset).
func stageWeights(cfg Config) []float64 {
	if cfg.C6.StageWeights != nil {
		return cfg.C6.StageWeights
	}
	w := make([]float64, cfg.Stages)
	for k := range w {
		w[k] = 1
	}

	return w
}

// sumWeights returns the weighted capacity of one run's stages.
func sumWeights(cfg Config) float64 {
	total := 0.0
	for _, w := range stageWeights(cfg) {
		total += w
	}

	return total
}
