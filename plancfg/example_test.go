package plancfg_test

import (
	"fmt"

	"github.com/eyal-algocell/idoe/plancfg"
)

// ExampleParse decodes a planning document and reports what the defaults
// filled in.
func ExampleParse() {
	doc := []byte(`
parameters:
  - name: Temp
    unit: °C
    values: [29, 31, 33]
topology:
  runs: 3
  stages: 2
constraints:
  c3: {enabled: true, max: 1}
`)

	params, cfg, err := plancfg.Parse(doc)
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	fmt.Println("parameters:", len(params))
	fmt.Println("runs:", cfg.MaxRuns, "stages:", cfg.Stages)
	fmt.Println("per-run repeat cap:", cfg.C3.Max)
	fmt.Println("global repeat cap:", cfg.C4.Max)
	fmt.Println("time limit:", cfg.TimeLimit)

	// Output:
	// parameters: 1
	// runs: 3 stages: 2
	// per-run repeat cap: 1
	// global repeat cap: 2
	// time limit: 30s
}
