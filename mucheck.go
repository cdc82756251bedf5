// Package mucheck implements a modal μ-calculus model checker over finite
// labeled transition systems. A program file declares an LTS (propositions,
// actions, initial states, labels, transitions) and a list of μ-calculus
// specifications; Check loads the program and decides whether every
// specification holds at every initial state.
package mucheck

import (
	"os"

	"github.com/dekarrin/mucheck/internal/interp"
	"github.com/dekarrin/mucheck/internal/lts"
	"github.com/dekarrin/mucheck/internal/mcerrors"
	"github.com/dekarrin/mucheck/internal/sexpr"
)

// SpecResult pairs one specification with its individual verdict, in the
// declaration order it appeared in the program file.
type SpecResult struct {
	Formula string
	Holds   bool
}

// Check reads the program file at path, builds its LTS, and decides whether
// every attached specification holds at every initial state. The returned
// []SpecResult carries one entry per specification in declaration order,
// regardless of the overall verdict, so callers that want per-spec detail
// (the CLI's --verbose flag) don't need a second pass.
func Check(path string) (bool, []SpecResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, nil, mcerrors.WrapIOf(err, "reading %s", path)
	}

	exprs, err := sexpr.ParseAll(string(data))
	if err != nil {
		return false, nil, err
	}

	l, err := interp.Load(exprs)
	if err != nil {
		return false, nil, err
	}

	return checkLTS(l)
}

func checkLTS(l lts.LTS) (bool, []SpecResult, error) {
	verdicts, err := l.CheckEach()
	if err != nil {
		return false, nil, err
	}

	specs := l.Specs()
	results := make([]SpecResult, len(specs))
	overall := true
	for i, spec := range specs {
		results[i] = SpecResult{Formula: spec.String(), Holds: verdicts[i]}
		if !verdicts[i] {
			overall = false
		}
	}

	return overall, results, nil
}

// Load reads the program file at path and builds its LTS without checking
// any specifications. It is used by --dot and --repl, which only need the
// built LTS, not a verdict.
func Load(path string) (lts.LTS, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return lts.LTS{}, mcerrors.WrapIOf(err, "reading %s", path)
	}

	exprs, err := sexpr.ParseAll(string(data))
	if err != nil {
		return lts.LTS{}, err
	}

	return interp.Load(exprs)
}
