// Package design builds and queries immutable Design Spaces for
// intensified Design of Experiments (iDoE) planning.
//
// 🚀 What is a Design Space?
//
//	The full catalogue of parameter combinations ("design points") an
//	experimenter wants to explore. Given an ordered list of named
//	parameters, each with its own discrete candidate values, the space
//	is the Cartesian product of those values:
//	  • μ_set ∈ {0.11, 0.135, 0.16}
//	  • Temp  ∈ {29, 31, 33}
//	yields 9 design points, numbered 1..9 in generation order.
//
// ✨ Key features:
//   - deterministic generation: parameter order outer-to-inner, values
//     ascending as declared — regenerating yields identical indices
//   - explicit replicate support via FromRows (e.g. triplicated center
//     points), duplicates kept as distinct indices
//   - combinatorial-explosion guard (configurable ceiling, default 200)
//   - geometry queries used by feasibility diagnostics: per-factor value
//     range, smallest nonzero pairwise step, distinct-point count
//
// ⚙️ Usage:
//
//	params := []design.Parameter{
//	  {Name: "μ_set", Unit: "h⁻¹", Values: []float64{0.11, 0.135, 0.16}},
//	  {Name: "Temp", Unit: "°C", Values: []float64{29, 31, 33}},
//	}
//	space, err := design.Generate(params, design.DefaultOptions())
//
// A Space is immutable once built and safe to share by reference across
// concurrent planning requests.
package design
