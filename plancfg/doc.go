// Package plancfg loads planning requests from YAML documents: parameter
// definitions, run/stage topology, the C2–C8 constraint configuration and
// the solve budget.
//
// ⚙️ Document shape:
//
//	parameters:
//	  - name: μ_set
//	    unit: h⁻¹
//	    values: [0.11, 0.135, 0.16]
//	  - name: Temp
//	    unit: °C
//	    values: [29, 31, 33]
//	topology:
//	  runs: 5
//	  stages: 3
//	constraints:
//	  c2: {enabled: true}
//	  c3: {enabled: true, max: 2}
//	  c4: {enabled: true, max: 2}
//	  c5: {enabled: true}
//	  c6: {enabled: true, stage_weights: [1, 1, 1]}
//	  c7: {enabled: true, max_step: {μ_set: 0.03, Temp: 2}}
//	  c8: {enabled: true, min_step: {μ_set: 0.01, Temp: 1}}
//	solve:
//	  time_limit: 30s
//
// Omitted constraint sections keep the plan.DefaultConfig settings, so a
// minimal document needs only parameters and topology. Numeric validation
// (caps, thresholds, contradictions) stays with plan.Build — this package
// only gets the document into typed form and rejects structural nonsense.
package plancfg
