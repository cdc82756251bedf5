package muast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/mucheck/internal/sexpr"
)

func Test_ParseInfix(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect InfixFormula
	}{
		{
			name:  "fixpoint over box-or-var",
			input: "μx.[a]x ∨ x",
			expect: Lfp[rune, uint32]("x", Or(
				All[rune, uint32]('a', Var[rune, uint32]("x")),
				Var[rune, uint32]("x"),
			)),
		},
		{
			name:  "fixpoint over diamond-or-var",
			input: "μx.⟨a⟩x ∨ x",
			expect: Lfp[rune, uint32]("x", Or(
				Ex[rune, uint32]('a', Var[rune, uint32]("x")),
				Var[rune, uint32]("x"),
			)),
		},
		{
			name:  "nested fixpoints",
			input: "μx.νy.x ∧ y",
			expect: Lfp[rune, uint32]("x", Gfp[rune, uint32]("y", And(
				Var[rune, uint32]("x"),
				Var[rune, uint32]("y"),
			))),
		},
		{
			name:  "parenthesized fixpoint conjoined with a free variable",
			input: "(μx.x) ∧ y",
			expect: And(
				Lfp[rune, uint32]("x", Var[rune, uint32]("x")),
				Var[rune, uint32]("y"),
			),
		},
		{
			name:   "whitespace is insignificant",
			input:  "μ x . [ a ] x ∨ x",
			expect: Lfp[rune, uint32]("x", Or(All[rune, uint32]('a', Var[rune, uint32]("x")), Var[rune, uint32]("x"))),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			got, err := ParseInfix(tc.input)
			if !assert.NoError(err) {
				return
			}
			assert.Truef(tc.expect.Equal(got), "got %s, want %s", got, tc.expect)
		})
	}
}

func Test_ParseInfix_errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "unclosed paren", input: "(x"},
		{name: "trailing garbage", input: "x y"},
		{name: "empty", input: ""},
		{name: "dangling operator", input: "x ∧"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseInfix(tc.input)
			assert.Error(t, err)
		})
	}
}

func Test_ParseInfix_roundTrip(t *testing.T) {
	assert := assert.New(t)

	formulae := []InfixFormula{
		Lit[rune, uint32](1),
		Neg(Lit[rune, uint32](2)),
		And(Lit[rune, uint32](1), Lit[rune, uint32](2)),
		Or(Lit[rune, uint32](1), Lit[rune, uint32](2)),
		All[rune, uint32]('a', Lit[rune, uint32](1)),
		Ex[rune, uint32]('a', Lit[rune, uint32](1)),
		Lfp[rune, uint32]("x", Or(All[rune, uint32]('a', Var[rune, uint32]("x")), Lit[rune, uint32](1))),
		Gfp[rune, uint32]("x", And(All[rune, uint32]('a', Var[rune, uint32]("x")), Lit[rune, uint32](1))),
	}

	for _, f := range formulae {
		reparsed, err := ParseInfix(f.String())
		if !assert.NoErrorf(err, "re-parsing %s", f) {
			continue
		}
		assert.Truef(f.Equal(reparsed), "round trip of %s produced %s", f, reparsed)
	}
}

func sx(items ...sexpr.Sexpr) sexpr.Sexpr { return sexpr.List(items) }
func sym(s string) sexpr.Sexpr            { return sexpr.Symbol(s) }

func Test_FromSexpr(t *testing.T) {
	testCases := []struct {
		name   string
		input  sexpr.Sexpr
		expect SexprFormula
	}{
		{
			name:   "lfp binds its own variable",
			input:  sx(sym("lfp"), sx(sym("x")), sym("x")),
			expect: Lfp[string, string]("x", Var[string, string]("x")),
		},
		{
			name:   "gfp binds its own variable",
			input:  sx(sym("gfp"), sx(sym("x")), sym("x")),
			expect: Gfp[string, string]("x", Var[string, string]("x")),
		},
		{
			name:   "and of two bare literals",
			input:  sx(sym("and"), sym("x"), sym("y")),
			expect: And(Lit[string, string]("x"), Lit[string, string]("y")),
		},
		{
			name:  "nested lfp leaves the outer x a literal",
			input: sx(sym("and"), sx(sym("lfp"), sx(sym("x")), sym("x")), sym("x")),
			expect: And(
				Lfp[string, string]("x", Var[string, string]("x")),
				Lit[string, string]("x"),
			),
		},
		{
			name:   "any quantifies over a declared action",
			input:  sx(sym("any"), sx(sym("a")), sym("P")),
			expect: Ex[string, string]("a", Lit[string, string]("P")),
		},
		{
			name:   "all quantifies over a declared action",
			input:  sx(sym("all"), sx(sym("a")), sym("P")),
			expect: All[string, string]("a", Lit[string, string]("P")),
		},
		{
			name:   "not negates",
			input:  sx(sym("not"), sym("P")),
			expect: Neg(Lit[string, string]("P")),
		},
		{
			name:   "or of three folds left",
			input:  sx(sym("or"), sym("x"), sym("y"), sym("z")),
			expect: Or(Or(Lit[string, string]("x"), Lit[string, string]("y")), Lit[string, string]("z")),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			got, err := FromSexpr(tc.input)
			if !assert.NoError(err) {
				return
			}
			assert.Truef(tc.expect.Equal(got), "got %s, want %s", got, tc.expect)
		})
	}
}

func Test_FromSexpr_errors(t *testing.T) {
	testCases := []struct {
		name  string
		input sexpr.Sexpr
	}{
		{name: "empty form", input: sx()},
		{name: "unknown operator", input: sx(sym("xyzzy"), sym("P"))},
		{name: "not with too many args", input: sx(sym("not"), sym("P"), sym("Q"))},
		{name: "and with too few args", input: sx(sym("and"), sym("P"))},
		{name: "any with malformed action", input: sx(sym("any"), sym("a"), sym("P"))},
		{name: "lfp with multi-symbol binder", input: sx(sym("lfp"), sx(sym("x"), sym("y")), sym("x"))},
		{name: "bare number", input: sexpr.Number(1)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromSexpr(tc.input)
			assert.Error(t, err)
		})
	}
}

func Test_Formula_destructors_panic_on_wrong_kind(t *testing.T) {
	assert := assert.New(t)

	f := Lit[string, string]("P")
	assert.Panics(func() { f.AsNeg() })
	assert.Panics(func() { f.AsAnd() })
	assert.Panics(func() { f.AsVar() })

	v := Var[string, string]("x")
	assert.Panics(func() { v.AsLit() })
}
