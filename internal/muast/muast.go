// Package muast implements the modal μ-calculus formula algebra: a
// recursive tagged-variant value type, two surface-syntax parsers (infix
// Unicode-operator and embedded S-expression), and a display form that
// round-trips to the infix syntax.
//
// Formula is generic over an action type A and a proposition type P, per
// spec: the infix syntax (used standalone, e.g. in diagnostics and tests)
// instantiates it with single-character actions and numeric propositions;
// the S-expression syntax
// embedded in program files instantiates it with plain strings, since that
// is what the declared action/proposition namespaces of an LTS use.
package muast

import "fmt"

// Kind identifies which of the nine μ-calculus variants a Formula holds.
type Kind int

const (
	KindLit Kind = iota
	KindNeg
	KindAnd
	KindOr
	KindAll
	KindEx
	KindLfp
	KindGfp
	KindVar
)

func (k Kind) String() string {
	switch k {
	case KindLit:
		return "Lit"
	case KindNeg:
		return "Neg"
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	case KindAll:
		return "All"
	case KindEx:
		return "Ex"
	case KindLfp:
		return "Lfp"
	case KindGfp:
		return "Gfp"
	case KindVar:
		return "Var"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Formula is a node of a μ-calculus formula tree over action type A and
// proposition type P. The zero value is not a valid Formula; construct one
// with the Lit/Neg/And/Or/All/Ex/Lfp/Gfp/Var functions below.
//
// Only the fields relevant to Kind() are meaningful; accessing the wrong
// ones (via the As* methods) panics, matching the convention used
// throughout this codebase for tagged-variant accessors.
type Formula[A comparable, P comparable] struct {
	kind Kind

	prop   P               // Lit
	sub    *Formula[A, P]   // Neg, All, Ex, Lfp, Gfp
	lhs    *Formula[A, P]   // And, Or
	rhs    *Formula[A, P]   // And, Or
	action A               // All, Ex
	bound  string          // Lfp, Gfp, Var
}

// Lit builds an atomic-proposition formula.
func Lit[A comparable, P comparable](p P) Formula[A, P] {
	return Formula[A, P]{kind: KindLit, prop: p}
}

// Neg builds a negation.
func Neg[A comparable, P comparable](f Formula[A, P]) Formula[A, P] {
	return Formula[A, P]{kind: KindNeg, sub: &f}
}

// And builds a conjunction.
func And[A comparable, P comparable](l, r Formula[A, P]) Formula[A, P] {
	return Formula[A, P]{kind: KindAnd, lhs: &l, rhs: &r}
}

// Or builds a disjunction.
func Or[A comparable, P comparable](l, r Formula[A, P]) Formula[A, P] {
	return Formula[A, P]{kind: KindOr, lhs: &l, rhs: &r}
}

// All builds a box modality: every a-successor satisfies f.
func All[A comparable, P comparable](a A, f Formula[A, P]) Formula[A, P] {
	return Formula[A, P]{kind: KindAll, action: a, sub: &f}
}

// Ex builds a diamond modality: some a-successor satisfies f.
func Ex[A comparable, P comparable](a A, f Formula[A, P]) Formula[A, P] {
	return Formula[A, P]{kind: KindEx, action: a, sub: &f}
}

// Lfp builds a least fixpoint binding variable x over body f.
func Lfp[A comparable, P comparable](x string, f Formula[A, P]) Formula[A, P] {
	return Formula[A, P]{kind: KindLfp, bound: x, sub: &f}
}

// Gfp builds a greatest fixpoint binding variable x over body f.
func Gfp[A comparable, P comparable](x string, f Formula[A, P]) Formula[A, P] {
	return Formula[A, P]{kind: KindGfp, bound: x, sub: &f}
}

// Var builds a reference to a fixpoint-bound variable.
func Var[A comparable, P comparable](x string) Formula[A, P] {
	return Formula[A, P]{kind: KindVar, bound: x}
}

// Kind returns which of the nine variants f holds.
func (f Formula[A, P]) Kind() Kind { return f.kind }

func wrongKind[T any, A comparable, P comparable](f Formula[A, P], want Kind) T {
	panic(fmt.Sprintf("muast: Kind() is %v, not %v", f.kind, want))
}

// AsLit returns the proposition of a Lit formula. Panics otherwise.
func (f Formula[A, P]) AsLit() P {
	if f.kind != KindLit {
		return wrongKind[P](f, KindLit)
	}
	return f.prop
}

// AsNeg returns the negated subformula of a Neg formula. Panics otherwise.
func (f Formula[A, P]) AsNeg() Formula[A, P] {
	if f.kind != KindNeg {
		return wrongKind[Formula[A, P]](f, KindNeg)
	}
	return *f.sub
}

// AsAnd returns the two operands of an And formula. Panics otherwise.
func (f Formula[A, P]) AsAnd() (Formula[A, P], Formula[A, P]) {
	if f.kind != KindAnd {
		return wrongKind[Formula[A, P]](f, KindAnd), Formula[A, P]{}
	}
	return *f.lhs, *f.rhs
}

// AsOr returns the two operands of an Or formula. Panics otherwise.
func (f Formula[A, P]) AsOr() (Formula[A, P], Formula[A, P]) {
	if f.kind != KindOr {
		return wrongKind[Formula[A, P]](f, KindOr), Formula[A, P]{}
	}
	return *f.lhs, *f.rhs
}

// AsAll returns the action and body of an All formula. Panics otherwise.
func (f Formula[A, P]) AsAll() (A, Formula[A, P]) {
	if f.kind != KindAll {
		return wrongKind[A](f, KindAll), Formula[A, P]{}
	}
	return f.action, *f.sub
}

// AsEx returns the action and body of an Ex formula. Panics otherwise.
func (f Formula[A, P]) AsEx() (A, Formula[A, P]) {
	if f.kind != KindEx {
		return wrongKind[A](f, KindEx), Formula[A, P]{}
	}
	return f.action, *f.sub
}

// AsLfp returns the bound variable and body of a Lfp formula. Panics
// otherwise.
func (f Formula[A, P]) AsLfp() (string, Formula[A, P]) {
	if f.kind != KindLfp {
		return wrongKind[string](f, KindLfp), Formula[A, P]{}
	}
	return f.bound, *f.sub
}

// AsGfp returns the bound variable and body of a Gfp formula. Panics
// otherwise.
func (f Formula[A, P]) AsGfp() (string, Formula[A, P]) {
	if f.kind != KindGfp {
		return wrongKind[string](f, KindGfp), Formula[A, P]{}
	}
	return f.bound, *f.sub
}

// AsVar returns the variable name of a Var formula. Panics otherwise.
func (f Formula[A, P]) AsVar() string {
	if f.kind != KindVar {
		return wrongKind[string](f, KindVar)
	}
	return f.bound
}

// Equal returns whether f and o represent the same formula tree. It does
// not normalize associativity of And/Or; two formulae built with different
// (but logically equivalent) tree shapes are not Equal.
func (f Formula[A, P]) Equal(o Formula[A, P]) bool {
	if f.kind != o.kind {
		return false
	}
	switch f.kind {
	case KindLit:
		return f.prop == o.prop
	case KindNeg:
		return f.sub.Equal(*o.sub)
	case KindAnd, KindOr:
		return f.lhs.Equal(*o.lhs) && f.rhs.Equal(*o.rhs)
	case KindAll, KindEx:
		return f.action == o.action && f.sub.Equal(*o.sub)
	case KindLfp, KindGfp:
		return f.bound == o.bound && f.sub.Equal(*o.sub)
	case KindVar:
		return f.bound == o.bound
	default:
		return false
	}
}
