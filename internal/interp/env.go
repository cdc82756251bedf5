package interp

import (
	"github.com/dekarrin/mucheck/internal/lts"
	"github.com/dekarrin/mucheck/internal/mcerrors"
	"github.com/dekarrin/mucheck/internal/muast"
	"github.com/dekarrin/mucheck/internal/sexpr"
	"github.com/dekarrin/mucheck/internal/setutil"
)

// progEnv is the mutable environment an in-progress program is built into.
// Instructions are applied to it in source order; on success it is frozen
// into an immutable lts.LTS.
type progEnv struct {
	propsSet   bool
	actionsSet bool
	initSet    bool

	props   setutil.Set[string]
	actions setutil.Set[string]
	states  setutil.Set[uint32]
	init    setutil.Set[uint32]

	labels map[uint32]setutil.Set[string]
	trans  map[uint32]map[string]uint32
	specs  []muast.SexprFormula
}

func newProgEnv() *progEnv {
	return &progEnv{
		props:   setutil.Set[string]{},
		actions: setutil.Set[string]{},
		states:  setutil.Set[uint32]{},
		init:    setutil.Set[uint32]{},
		labels:  map[uint32]setutil.Set[string]{},
		trans:   map[uint32]map[string]uint32{},
	}
}

// apply applies one instruction to e, enforcing the LTS invariants that
// concern it. It returns a Semantic error describing the first violation
// found, or a Syntax error for an instruction of unknown kind.
func (e *progEnv) apply(instr Instruction) error {
	switch instr.Kind() {
	case KindSetProps:
		if e.propsSet {
			return mcerrors.Semanticf("props: propositions already declared")
		}
		e.propsSet = true
		e.props = setutil.New(instr.symbols...)
		return nil

	case KindSetActions:
		if e.actionsSet {
			return mcerrors.Semanticf("actions: actions already declared")
		}
		e.actionsSet = true
		e.actions = setutil.New(instr.symbols...)
		return nil

	case KindSetInit:
		if e.initSet {
			return mcerrors.Semanticf("init: initial states already declared")
		}
		e.initSet = true
		e.init = setutil.New(instr.nums...)
		for _, s := range instr.nums {
			e.states.Add(s)
		}
		return nil

	case KindSetSpec:
		e.specs = append(e.specs, instr.spec)
		return nil

	case KindLabel:
		if _, already := e.labels[instr.state]; already {
			return mcerrors.Semanticf("label: state %d is already labeled", instr.state)
		}
		for _, p := range instr.symbols {
			if !e.props.Has(p) {
				return mcerrors.Semanticf("label: proposition %q is not declared", p)
			}
		}
		e.labels[instr.state] = setutil.New(instr.symbols...)
		e.states.Add(instr.state)
		return nil

	case KindTrans:
		return e.addTransition(instr.state, instr.action, instr.state2)

	case KindLoop:
		return e.addTransition(instr.state, instr.action, instr.state)

	default:
		return mcerrors.Syntaxf("instruction: unhandled kind %v", instr.Kind())
	}
}

func (e *progEnv) addTransition(s1 uint32, a string, s2 uint32) error {
	if !e.actions.Has(a) {
		return mcerrors.Semanticf("trans: action %q is not declared", a)
	}
	if post, ok := e.trans[s1]; ok {
		if _, already := post[a]; already {
			return mcerrors.Semanticf("trans: state %d already has a transition under action %q", s1, a)
		}
	} else {
		e.trans[s1] = map[string]uint32{}
	}
	e.trans[s1][a] = s2
	e.states.Add(s1)
	e.states.Add(s2)
	return nil
}

// freeze produces the immutable LTS. It performs no validation: the one
// invariant that could only be checked after every instruction has been
// applied (initial states are a subset of the state set) always holds here,
// since SetInit itself adds its states to the state set.
func (e *progEnv) freeze() lts.LTS {
	return lts.New(e.states, e.init, e.actions, e.labels, e.trans, e.specs)
}

// Load parses exprs as a program — one instruction per top-level
// S-expression — applies the instructions in order, and freezes the
// result into an LTS. It fails on the first parse or validation error.
func Load(exprs []sexpr.Sexpr) (lts.LTS, error) {
	env := newProgEnv()

	for _, e := range exprs {
		instr, err := ParseInstruction(e)
		if err != nil {
			return lts.LTS{}, err
		}
		if err := env.apply(instr); err != nil {
			return lts.LTS{}, err
		}
	}

	return env.freeze(), nil
}
