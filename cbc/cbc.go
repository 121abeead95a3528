// Package cbc - subprocess management for the CBC backend.
package cbc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/eyal-algocell/idoe/mip"
)

// ErrSolverNotFound indicates the cbc executable is not on PATH.
var ErrSolverNotFound = errors.New("cbc: solver executable not found")

// ErrSolverFailure indicates the cbc process failed for a reason other than
// cancellation (crash, bad exit, unreadable output).
var ErrSolverFailure = errors.New("cbc: solver process failed")

// ErrBadSolutionFile indicates a solution file that does not follow CBC's
// format.
var ErrBadSolutionFile = errors.New("cbc: malformed solution file")

// ErrNegativeTimeLimit indicates a negative wall-clock budget.
var ErrNegativeTimeLimit = errors.New("cbc: time limit must be non-negative")

// ErrNilModel indicates a nil model handed to Solve.
var ErrNilModel = errors.New("cbc: nil model")

// Options configures the adapter.
//
//   - Path      — cbc executable; empty means "cbc" resolved via PATH.
//   - TimeLimit — wall-clock budget handed to CBC (-sec). Zero grants no
//     budget: Solve reports StatusUnknown without launching. Negative is
//     rejected.
//   - KeepFiles — retain the scratch LP/solution files (debugging).
//   - Logger    — destination for solver chatter; nil means zap.NewNop().
type Options struct {
	Path      string
	TimeLimit time.Duration
	KeepFiles bool
	Logger    *zap.Logger
}

// DefaultOptions returns the canonical adapter options: cbc from PATH,
// 30-second budget, no retained files, silent logger.
func DefaultOptions() Options {
	return Options{Path: "cbc", TimeLimit: 30 * time.Second}
}

// Solver drives one cbc subprocess per Solve call. Stateless between calls;
// safe for concurrent use.
type Solver struct {
	opts Options
	log  *zap.Logger
}

// New returns a Solver with the given options (zero fields filled from
// DefaultOptions).
func New(opts Options) *Solver {
	if opts.Path == "" {
		opts.Path = "cbc"
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Solver{opts: opts, log: log}
}

// Solve serializes m, runs cbc under ctx, and parses the verdict.
//
// Contracts:
//   - honors ctx cancellation: the subprocess is killed and the best-effort
//     verdict (incumbent if CBC flushed one, otherwise StatusUnknown) is
//     returned with a nil error.
//   - TimeLimit == 0 short-circuits to StatusUnknown (no launch).
//
// Errors: ErrNilModel, ErrNegativeTimeLimit, ErrSolverNotFound,
// ErrSolverFailure, ErrBadSolutionFile.
func (s *Solver) Solve(ctx context.Context, m *mip.Model) (mip.Solution, error) {
	if m == nil {
		return mip.Solution{}, ErrNilModel
	}
	if s.opts.TimeLimit < 0 {
		return mip.Solution{}, ErrNegativeTimeLimit
	}
	if s.opts.TimeLimit == 0 {
		// No budget granted: by contract this is an Unknown verdict, never
		// a silent "optimal".
		s.log.Debug("cbc: zero time budget, skipping launch")

		return mip.NewSolution(mip.StatusUnknown, 0, nil), nil
	}

	if _, err := exec.LookPath(s.opts.Path); err != nil {
		return mip.Solution{}, fmt.Errorf("%q: %w", s.opts.Path, ErrSolverNotFound)
	}

	dir, err := os.MkdirTemp("", "idoe-cbc-")
	if err != nil {
		return mip.Solution{}, fmt.Errorf("scratch dir: %w", err)
	}
	if !s.opts.KeepFiles {
		defer os.RemoveAll(dir)
	}

	lpPath := filepath.Join(dir, m.Name()+".lp")
	solPath := filepath.Join(dir, m.Name()+".sol")

	lpFile, err := os.Create(lpPath)
	if err != nil {
		return mip.Solution{}, fmt.Errorf("write model: %w", err)
	}
	if err = m.WriteLP(lpFile); err != nil {
		_ = lpFile.Close()

		return mip.Solution{}, fmt.Errorf("write model: %w", err)
	}
	if err = lpFile.Close(); err != nil {
		return mip.Solution{}, fmt.Errorf("write model: %w", err)
	}

	args := []string{
		lpPath,
		"-sec", strconv.FormatFloat(s.opts.TimeLimit.Seconds(), 'f', -1, 64),
		"-timeMode", "elapsed",
		"branch",
		"printingOptions", "all",
		"solution", solPath,
	}
	s.log.Debug("cbc: launching", zap.String("path", s.opts.Path), zap.Strings("args", args),
		zap.Int("vars", m.NumVars()), zap.Int("constraints", m.NumConstraints()))

	cmd := exec.CommandContext(ctx, s.opts.Path, args...)
	out, runErr := cmd.CombinedOutput()
	s.log.Debug("cbc: finished", zap.ByteString("output", out), zap.Error(runErr))

	if runErr != nil {
		if ctx.Err() != nil {
			// Cancelled or deadline exceeded: salvage whatever CBC flushed.
			if sol, perr := parseSolutionFile(solPath); perr == nil {
				return demoteToUnknown(sol), nil
			}

			return mip.NewSolution(mip.StatusUnknown, 0, nil), nil
		}

		return mip.Solution{}, fmt.Errorf("%w: %v", ErrSolverFailure, runErr)
	}

	sol, err := parseSolutionFile(solPath)
	if err != nil {
		return mip.Solution{}, err
	}

	return sol, nil
}

// demoteToUnknown strips any optimality claim from a solution recovered
// after cancellation: the proof was interrupted, so the verdict cannot be
// trusted beyond "incumbent found".
func demoteToUnknown(sol mip.Solution) mip.Solution {
	sol.Status = mip.StatusUnknown

	return sol
}
