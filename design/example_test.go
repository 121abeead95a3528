package design_test

import (
	"fmt"

	"github.com/eyal-algocell/idoe/design"
)

// ExampleGenerate builds the full-factorial catalogue of a two-factor
// bioprocess screen and walks its first points.
func ExampleGenerate() {
	params := []design.Parameter{
		{Name: "μ_set", Unit: "h⁻¹", Values: []float64{0.11, 0.135, 0.16}},
		{Name: "Temp", Unit: "°C", Values: []float64{29, 31, 33}},
	}

	space, err := design.Generate(params, design.DefaultOptions())
	if err != nil {
		fmt.Println("generate:", err)
		return
	}

	fmt.Println("points:", space.NumPoints())
	for _, pt := range space.Points()[:3] {
		fmt.Printf("point %d: μ_set=%.3f Temp=%.0f\n", pt.Index, pt.Values[0], pt.Values[1])
	}

	// Output:
	// points: 9
	// point 1: μ_set=0.110 Temp=29
	// point 2: μ_set=0.110 Temp=31
	// point 3: μ_set=0.110 Temp=33
}
