package muast

import (
	"github.com/dekarrin/mucheck/internal/mcerrors"
	"github.com/dekarrin/mucheck/internal/sexpr"
)

// SexprFormula is the concrete instantiation of Formula parsed from the
// S-expression syntax embedded in a program's (spec ...) forms: both
// actions and propositions are the symbol names declared elsewhere in the
// program.
type SexprFormula = Formula[string, string]

// FromSexpr parses e as a μ-calculus formula in the S-expression syntax:
//
//	formula ::= symbol
//	          | '(' 'not' formula ')'
//	          | '(' 'and' formula formula+ ')'
//	          | '(' 'or' formula formula+ ')'
//	          | '(' 'any' '(' symbol ')' formula ')'
//	          | '(' 'all' '(' symbol ')' formula ')'
//	          | '(' 'lfp' '(' symbol ')' formula ')'
//	          | '(' 'gfp' '(' symbol ')' formula ')'
//
// A bare symbol is ambiguous at the point it is read: it may name either an
// atomic proposition or a variable bound by an enclosing lfp/gfp. It is
// parsed as a Lit, and FromSexpr rewrites it to a Var once the enclosing
// binder (if any) is known, working from the innermost binder outward so
// that a shadowing inner binder of the same name is resolved first.
func FromSexpr(e sexpr.Sexpr) (SexprFormula, error) {
	if e.IsSymbol() {
		return Lit[string, string](e.AsSymbol()), nil
	}
	if e.IsNumber() {
		return SexprFormula{}, mcerrors.Syntaxf("formula: expected a symbol or form, got a number")
	}

	list := e.AsList()
	if len(list) == 0 {
		return SexprFormula{}, mcerrors.Syntaxf("formula: empty form")
	}
	if !list[0].IsSymbol() {
		return SexprFormula{}, mcerrors.Syntaxf("formula: form head must be a symbol")
	}

	op := list[0].AsSymbol()
	args := list[1:]

	switch op {
	case "not":
		if len(args) != 1 {
			return SexprFormula{}, mcerrors.Arityf("not: expected 1 argument, got %d", len(args))
		}
		sub, err := FromSexpr(args[0])
		if err != nil {
			return SexprFormula{}, err
		}
		return Neg(sub), nil

	case "and":
		return parseBinOp(op, args, And[string, string])

	case "or":
		return parseBinOp(op, args, Or[string, string])

	case "any":
		return parseQuantifier(op, args, Ex[string, string])

	case "all":
		return parseQuantifier(op, args, All[string, string])

	case "lfp":
		return parseFixpoint(op, args, Lfp[string, string])

	case "gfp":
		return parseFixpoint(op, args, Gfp[string, string])

	default:
		return SexprFormula{}, mcerrors.Syntaxf("formula: unknown operator %q", op)
	}
}

// parseBinOp handles and/or, which take two or more subformulae and combine
// them with a left fold.
func parseBinOp(op string, args []sexpr.Sexpr, combine func(SexprFormula, SexprFormula) SexprFormula) (SexprFormula, error) {
	if len(args) < 2 {
		return SexprFormula{}, mcerrors.Arityf("%s: expected at least 2 arguments, got %d", op, len(args))
	}

	acc, err := FromSexpr(args[0])
	if err != nil {
		return SexprFormula{}, err
	}
	for _, a := range args[1:] {
		next, err := FromSexpr(a)
		if err != nil {
			return SexprFormula{}, err
		}
		acc = combine(acc, next)
	}
	return acc, nil
}

// parseQuantifier handles any/all, which take a singleton-list action name
// followed by exactly one body formula.
func parseQuantifier(op string, args []sexpr.Sexpr, build func(string, SexprFormula) SexprFormula) (SexprFormula, error) {
	if len(args) != 2 {
		return SexprFormula{}, mcerrors.Arityf("%s: expected 2 arguments, got %d", op, len(args))
	}
	action, err := singletonSymbol(op, args[0])
	if err != nil {
		return SexprFormula{}, err
	}
	body, err := FromSexpr(args[1])
	if err != nil {
		return SexprFormula{}, err
	}
	return build(action, body), nil
}

// parseFixpoint handles lfp/gfp, which take a singleton-list variable name
// followed by exactly one body formula. After parsing the body, every free
// Lit matching the bound name is rewritten to a Var.
func parseFixpoint(op string, args []sexpr.Sexpr, build func(string, SexprFormula) SexprFormula) (SexprFormula, error) {
	if len(args) != 2 {
		return SexprFormula{}, mcerrors.Arityf("%s: expected 2 arguments, got %d", op, len(args))
	}
	x, err := singletonSymbol(op, args[0])
	if err != nil {
		return SexprFormula{}, err
	}
	body, err := FromSexpr(args[1])
	if err != nil {
		return SexprFormula{}, err
	}
	return build(x, litToVar(body, x)), nil
}

// singletonSymbol requires e to be a one-element list holding a symbol, and
// returns that symbol.
func singletonSymbol(op string, e sexpr.Sexpr) (string, error) {
	if !e.IsList() {
		return "", mcerrors.Syntaxf("%s: expected a (name) form", op)
	}
	items := e.AsList()
	if len(items) != 1 {
		return "", mcerrors.Arityf("%s: expected exactly 1 name, got %d", op, len(items))
	}
	if !items[0].IsSymbol() {
		return "", mcerrors.Syntaxf("%s: name must be a symbol", op)
	}
	return items[0].AsSymbol(), nil
}

// litToVar rewrites every Lit node of f whose proposition equals name into
// a Var referencing name. It recurses through the whole tree, but this is
// safe even across nested binders of the same name: by the time an outer
// fixpoint calls this, any inner fixpoint of the same name has already had
// its own occurrences rewritten to Var by its own call to litToVar, so only
// genuinely free occurrences (from this binder's own scope) remain as Lit.
func litToVar(f SexprFormula, name string) SexprFormula {
	switch f.Kind() {
	case KindLit:
		if f.AsLit() == name {
			return Var[string, string](name)
		}
		return f
	case KindNeg:
		return Neg(litToVar(f.AsNeg(), name))
	case KindAnd:
		l, r := f.AsAnd()
		return And(litToVar(l, name), litToVar(r, name))
	case KindOr:
		l, r := f.AsOr()
		return Or(litToVar(l, name), litToVar(r, name))
	case KindAll:
		a, sub := f.AsAll()
		return All(a, litToVar(sub, name))
	case KindEx:
		a, sub := f.AsEx()
		return Ex(a, litToVar(sub, name))
	case KindLfp:
		x, sub := f.AsLfp()
		return Lfp(x, litToVar(sub, name))
	case KindGfp:
		x, sub := f.AsGfp()
		return Gfp(x, litToVar(sub, name))
	case KindVar:
		return f
	default:
		return f
	}
}
