// Package interp implements the instruction interpreter: it parses a
// program's top-level S-expressions into instructions, applies them in
// order to a mutable build environment enforcing every LTS invariant, and
// freezes the result into an immutable lts.LTS.
package interp

import (
	"github.com/dekarrin/mucheck/internal/mcerrors"
	"github.com/dekarrin/mucheck/internal/muast"
	"github.com/dekarrin/mucheck/internal/sexpr"
)

// Kind identifies which of the seven instruction variants a value holds.
type Kind int

const (
	KindSetProps Kind = iota
	KindSetActions
	KindSetInit
	KindSetSpec
	KindLabel
	KindTrans
	KindLoop
)

func (k Kind) String() string {
	switch k {
	case KindSetProps:
		return "props"
	case KindSetActions:
		return "actions"
	case KindSetInit:
		return "init"
	case KindSetSpec:
		return "spec"
	case KindLabel:
		return "label"
	case KindTrans:
		return "trans"
	case KindLoop:
		return "loop"
	default:
		return "instruction"
	}
}

// Instruction is one parsed top-level form of a program. Only the fields
// relevant to Kind() are meaningful.
type Instruction struct {
	kind Kind

	symbols []string           // SetProps, SetActions, Label
	nums    []uint32           // SetInit
	spec    muast.SexprFormula // SetSpec
	state   uint32             // Label, Trans, Loop
	state2  uint32             // Trans
	action  string             // Trans, Loop
}

func SetProps(ps []string) Instruction   { return Instruction{kind: KindSetProps, symbols: ps} }
func SetActions(as []string) Instruction { return Instruction{kind: KindSetActions, symbols: as} }
func SetInit(ss []uint32) Instruction    { return Instruction{kind: KindSetInit, nums: ss} }
func SetSpec(f muast.SexprFormula) Instruction {
	return Instruction{kind: KindSetSpec, spec: f}
}
func Label(s uint32, ls []string) Instruction {
	return Instruction{kind: KindLabel, state: s, symbols: ls}
}
func Trans(s1 uint32, a string, s2 uint32) Instruction {
	return Instruction{kind: KindTrans, state: s1, action: a, state2: s2}
}
func Loop(s uint32, a string) Instruction {
	return Instruction{kind: KindLoop, state: s, action: a}
}

// Kind returns which of the seven variants i holds.
func (i Instruction) Kind() Kind { return i.kind }

// Spec returns the formula carried by a KindSetSpec instruction. It panics
// if Kind() is not KindSetSpec.
func (i Instruction) Spec() muast.SexprFormula {
	if i.kind != KindSetSpec {
		panic("Spec called on non-spec instruction")
	}
	return i.spec
}

// ParseInstruction parses one top-level S-expression into an Instruction.
// The head symbol of the list selects the variant; everything after it is
// the variant's arguments.
//
//	(props  P Q R …)
//	(actions a b c …)
//	(init   1 2 …)
//	(label  <state> <prop> <prop> …)
//	(trans  <state> <action> <state>)
//	(loop   <state> <action>)
//	(spec   <formula-sexpr>)
func ParseInstruction(e sexpr.Sexpr) (Instruction, error) {
	if !e.IsList() {
		return Instruction{}, mcerrors.Syntaxf("instruction: expected a list form")
	}
	list := e.AsList()
	if len(list) == 0 {
		return Instruction{}, mcerrors.Syntaxf("instruction: empty form")
	}
	if !list[0].IsSymbol() {
		return Instruction{}, mcerrors.Syntaxf("instruction: form head must be a symbol")
	}

	head := list[0].AsSymbol()
	args := list[1:]

	switch head {
	case "props":
		syms, err := expectSymbolList("props", args)
		if err != nil {
			return Instruction{}, err
		}
		return SetProps(syms), nil

	case "actions":
		syms, err := expectSymbolList("actions", args)
		if err != nil {
			return Instruction{}, err
		}
		return SetActions(syms), nil

	case "init":
		nums, err := expectNumberList("init", args)
		if err != nil {
			return Instruction{}, err
		}
		return SetInit(nums), nil

	case "label":
		if len(args) < 1 {
			return Instruction{}, mcerrors.Arityf("label: expected a state number followed by propositions, got 0 arguments")
		}
		if !args[0].IsNumber() {
			return Instruction{}, mcerrors.Arityf("label: first argument must be a state number")
		}
		props, err := expectSymbolList("label", args[1:])
		if err != nil {
			return Instruction{}, err
		}
		return Label(args[0].AsNumber(), props), nil

	case "trans":
		if len(args) != 3 {
			return Instruction{}, mcerrors.Arityf("trans: expected 3 arguments (state, action, state), got %d", len(args))
		}
		if !args[0].IsNumber() || !args[1].IsSymbol() || !args[2].IsNumber() {
			return Instruction{}, mcerrors.Arityf("trans: expected (state action state)")
		}
		return Trans(args[0].AsNumber(), args[1].AsSymbol(), args[2].AsNumber()), nil

	case "loop":
		if len(args) != 2 {
			return Instruction{}, mcerrors.Arityf("loop: expected 2 arguments (state, action), got %d", len(args))
		}
		if !args[0].IsNumber() || !args[1].IsSymbol() {
			return Instruction{}, mcerrors.Arityf("loop: expected (state action)")
		}
		return Loop(args[0].AsNumber(), args[1].AsSymbol()), nil

	case "spec":
		if len(args) != 1 {
			return Instruction{}, mcerrors.Arityf("spec: expected exactly 1 formula, got %d", len(args))
		}
		f, err := muast.FromSexpr(args[0])
		if err != nil {
			return Instruction{}, err
		}
		return SetSpec(f), nil

	default:
		return Instruction{}, mcerrors.Syntaxf("instruction: unrecognized head %q", head)
	}
}

// expectSymbolList requires every element of args to be a symbol.
func expectSymbolList(head string, args []sexpr.Sexpr) ([]string, error) {
	syms := make([]string, len(args))
	for i, a := range args {
		if !a.IsSymbol() {
			return nil, mcerrors.Arityf("%s: argument %d must be a symbol", head, i)
		}
		syms[i] = a.AsSymbol()
	}
	return syms, nil
}

// expectNumberList requires every element of args to be a number.
func expectNumberList(head string, args []sexpr.Sexpr) ([]uint32, error) {
	nums := make([]uint32, len(args))
	for i, a := range args {
		if !a.IsNumber() {
			return nil, mcerrors.Arityf("%s: argument %d must be a number", head, i)
		}
		nums[i] = a.AsNumber()
	}
	return nums, nil
}
