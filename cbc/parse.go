// Package cbc - solution-file parsing.
//
// CBC writes a plain-text solution file whose first line carries the verdict
// and objective, followed by one line per variable:
//
//	Optimal - objective value 0.51200000
//	      0 x_1_4_1               1                       0.008
//	      1 x_1_5_2               1                       0.008
//
// Timed-out runs start with "Stopped on time ..."; proven-infeasible runs
// with "Infeasible ..." (or "Integer infeasible ..."). Some CBC builds mark
// the header with a leading "**" when the incumbent is not proven optimal.
package cbc

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/eyal-algocell/idoe/mip"
)

// parseSolutionFile reads and classifies a CBC solution file.
func parseSolutionFile(path string) (mip.Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return mip.Solution{}, fmt.Errorf("%w: %v", ErrBadSolutionFile, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		return mip.Solution{}, fmt.Errorf("empty file: %w", ErrBadSolutionFile)
	}
	status, objective, err := parseHeader(sc.Text())
	if err != nil {
		return mip.Solution{}, err
	}

	values := make(map[string]float64)

	var (
		fields []string
		v      float64
	)
	for sc.Scan() {
		fields = strings.Fields(sc.Text())
		// Some builds prefix non-proven rows with "**"; drop the marker.
		if len(fields) > 0 && fields[0] == "**" {
			fields = fields[1:]
		}
		if len(fields) < 3 {
			continue
		}
		// Layout: <row#> <name> <value> <reduced cost>.
		v, err = strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return mip.Solution{}, fmt.Errorf("value for %q: %w", fields[1], ErrBadSolutionFile)
		}
		values[fields[1]] = v
	}
	if err = sc.Err(); err != nil {
		return mip.Solution{}, fmt.Errorf("%w: %v", ErrBadSolutionFile, err)
	}

	if status == mip.StatusInfeasible {
		// An infeasibility proof carries no meaningful assignment.
		values = nil
	}

	return mip.NewSolution(status, objective, values), nil
}

// parseHeader classifies the verdict line and extracts the objective value.
func parseHeader(line string) (mip.Status, float64, error) {
	header := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "**"))
	if header == "" {
		return mip.StatusUnknown, 0, fmt.Errorf("blank header: %w", ErrBadSolutionFile)
	}

	lower := strings.ToLower(header)

	var status mip.Status
	switch {
	case strings.Contains(lower, "infeasible"):
		status = mip.StatusInfeasible
	case strings.HasPrefix(lower, "optimal"):
		status = mip.StatusOptimal
	default:
		// "Stopped on time ...", "Stopped on iterations ...", unbounded,
		// or anything else CBC failed to prove.
		status = mip.StatusUnknown
	}

	objective := 0.0
	if i := strings.Index(lower, "objective value"); i >= 0 {
		rest := strings.TrimSpace(header[i+len("objective value"):])
		if rest != "" {
			v, err := strconv.ParseFloat(strings.Fields(rest)[0], 64)
			if err != nil {
				return status, 0, fmt.Errorf("objective %q: %w", rest, ErrBadSolutionFile)
			}
			objective = v
		}
	}

	return status, objective, nil
}
