// Package lts implements the finite labeled transition system that a
// program is interpreted into, and the fixpoint-based satisfaction engine
// that checks it against a list of μ-calculus specifications.
//
// An LTS is deterministic by action: at most one successor per
// (state, action) pair. This is an action-labeled Kripke structure, not a
// general nondeterministic LTS.
package lts

import (
	"github.com/dekarrin/mucheck/internal/muast"
	"github.com/dekarrin/mucheck/internal/setutil"
)

// LTS is an immutable labeled transition system together with the list of
// specifications it was built to check. Construct one with New; there is
// no way to mutate an LTS once built, matching the freeze step of the
// interpreter that produces it.
type LTS struct {
	states  setutil.Set[uint32]
	initial setutil.Set[uint32]
	actions setutil.Set[string]
	labels  map[uint32]setutil.Set[string]
	trans   map[uint32]map[string]uint32
	specs   []muast.SexprFormula
}

// New builds an LTS from already-validated components. Callers (the
// interpreter's freeze step) are responsible for having enforced every LTS
// invariant before calling this; New performs no validation of its own.
func New(
	states setutil.Set[uint32],
	initial setutil.Set[uint32],
	actions setutil.Set[string],
	labels map[uint32]setutil.Set[string],
	trans map[uint32]map[string]uint32,
	specs []muast.SexprFormula,
) LTS {
	return LTS{
		states:  states,
		initial: initial,
		actions: actions,
		labels:  labels,
		trans:   trans,
		specs:   specs,
	}
}

// States returns the full state set.
func (t LTS) States() setutil.Set[uint32] {
	return t.states.Copy()
}

// Initial returns the initial state set.
func (t LTS) Initial() setutil.Set[uint32] {
	return t.initial.Copy()
}

// Actions returns the declared action alphabet.
func (t LTS) Actions() setutil.Set[string] {
	return t.actions.Copy()
}

// Specs returns the specifications attached to t, in declaration order.
func (t LTS) Specs() []muast.SexprFormula {
	return append([]muast.SexprFormula(nil), t.specs...)
}

// Label returns the set of propositions labeling s. States with no label
// instruction have the empty set.
func (t LTS) Label(s uint32) setutil.Set[string] {
	l, ok := t.labels[s]
	if !ok {
		return setutil.Set[string]{}
	}
	return l.Copy()
}

// Successor returns the a-successor of s, if one exists.
func (t LTS) Successor(s uint32, a string) (uint32, bool) {
	post, ok := t.trans[s]
	if !ok {
		return 0, false
	}
	succ, ok := post[a]
	return succ, ok
}

// CheckEach decides, for each specification attached to t in order,
// whether it holds at every initial state. It stops and returns an error
// at the first specification whose satisfaction fails (a Runtime error for
// a free fixpoint variable).
func (t LTS) CheckEach() ([]bool, error) {
	results := make([]bool, len(t.specs))
	for i, spec := range t.specs {
		sat, err := Sat(t, spec, nil)
		if err != nil {
			return nil, err
		}

		holds := true
		for s := range t.initial {
			if !sat.Has(s) {
				holds = false
				break
			}
		}
		results[i] = holds
	}
	return results, nil
}

// Check decides whether every specification attached to t holds at every
// initial state. The overall verdict is the conjunction over all
// specifications.
func (t LTS) Check() (bool, error) {
	results, err := t.CheckEach()
	if err != nil {
		return false, err
	}
	for _, r := range results {
		if !r {
			return false, nil
		}
	}
	return true, nil
}
