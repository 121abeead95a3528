// Package mip - CPLEX LP-format serialization.
//
// The LP text format is the lingua franca of integer-program backends: CBC,
// HiGHS, SCIP, Gurobi and CPLEX all read it. WriteLP emits a canonical,
// byte-stable rendition of the model so that a given model always produces
// the same file (and therefore the same solver behavior).
package mip

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// lpLineWidth is a soft wrap limit for expression lines. Classic LP readers
// cap physical lines at 255 bytes; wrapping well below keeps every backend
// happy.
const lpLineWidth = 200

// WriteLP serializes the model in CPLEX LP format:
//
//	\* name *\
//	Minimize
//	OBJ: 0.25 x_1 + 0.5 x_2
//	Subject To
//	row_name: x_1 + x_2 <= 1
//	Binaries
//	x_1 x_2
//	End
//
// Terms referencing the same variable are merged; term order follows first
// occurrence, constraint order follows insertion. Deterministic: identical
// models serialize identically.
//
// Complexity: O(V + Σ constraint terms).
func (m *Model) WriteLP(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "\\* %s *\\\n", m.name)

	// Objective section. An empty objective still needs a placeholder term:
	// LP readers reject a bare label.
	bw.WriteString("Minimize\n")
	obj := m.mergedTerms(m.objective)
	if len(obj) == 0 && len(m.varNames) > 0 {
		obj = []Term{{Var: Var{id: 0}, Coef: 0}}
	}
	m.writeRow(bw, "OBJ", obj, "", 0)

	bw.WriteString("Subject To\n")
	for i := range m.cons {
		m.writeRow(bw, m.cons[i].Name, m.mergedTerms(m.cons[i].Expr), senseLP(m.cons[i].Sense), m.cons[i].RHS)
	}

	// All planning variables are binary.
	if len(m.varNames) > 0 {
		bw.WriteString("Binaries\n")
		width := 0
		for _, name := range m.varNames {
			if width+len(name)+1 > lpLineWidth {
				bw.WriteString("\n")
				width = 0
			}
			bw.WriteString(name)
			bw.WriteString(" ")
			width += len(name) + 1
		}
		bw.WriteString("\n")
	}

	bw.WriteString("End\n")

	return bw.Flush()
}

// writeRow emits "name: terms [sense rhs]" with soft line wrapping.
// An empty sense marks the objective row (no relational part).
func (m *Model) writeRow(bw *bufio.Writer, name string, terms []Term, sense string, rhs float64) {
	bw.WriteString(name)
	bw.WriteString(":")

	width := len(name) + 1

	var (
		piece string
		coef  float64
	)
	for i, t := range terms {
		coef = t.Coef
		switch {
		case i == 0 && coef < 0:
			piece = "-" + formatCoef(-coef) + " " + m.varNames[t.Var.id]
		case i == 0:
			piece = formatCoef(coef) + " " + m.varNames[t.Var.id]
		case coef < 0:
			piece = "- " + formatCoef(-coef) + " " + m.varNames[t.Var.id]
		default:
			piece = "+ " + formatCoef(coef) + " " + m.varNames[t.Var.id]
		}

		if width+len(piece)+1 > lpLineWidth {
			bw.WriteString("\n ")
			width = 1
		}
		bw.WriteString(" ")
		bw.WriteString(piece)
		width += len(piece) + 1
	}

	if sense != "" {
		fmt.Fprintf(bw, " %s %s", sense, formatCoef(rhs))
	}
	bw.WriteString("\n")
}

// senseLP maps a Sense to its LP token.
func senseLP(s Sense) string {
	switch s {
	case LE:
		return "<="
	case GE:
		return ">="
	default:
		return "="
	}
}

// formatCoef renders a coefficient with the shortest exact decimal form.
func formatCoef(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}
