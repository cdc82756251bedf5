package sexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseAll(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []Sexpr
	}{
		{
			name:  "single symbol",
			input: "hello",
			expect: []Sexpr{
				Symbol("hello"),
			},
		},
		{
			name:  "single number",
			input: "42",
			expect: []Sexpr{
				Number(42),
			},
		},
		{
			name:  "empty list",
			input: "()",
			expect: []Sexpr{
				List(nil),
			},
		},
		{
			name:  "nested list",
			input: "(props A B C)",
			expect: []Sexpr{
				List([]Sexpr{Symbol("props"), Symbol("A"), Symbol("B"), Symbol("C")}),
			},
		},
		{
			name:  "deeply nested",
			input: "(trans 1 a 2)(spec (any (a) A))",
			expect: []Sexpr{
				List([]Sexpr{Symbol("trans"), Number(1), Symbol("a"), Number(2)}),
				List([]Sexpr{
					Symbol("spec"),
					List([]Sexpr{
						Symbol("any"),
						List([]Sexpr{Symbol("a")}),
						Symbol("A"),
					}),
				}),
			},
		},
		{
			name:  "whitespace insignificant",
			input: "  (  props\tA\nB )  ",
			expect: []Sexpr{
				List([]Sexpr{Symbol("props"), Symbol("A"), Symbol("B")}),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			got, err := ParseAll(tc.input)
			if !assert.NoError(err) {
				return
			}

			if assert.Equal(len(tc.expect), len(got)) {
				for i := range tc.expect {
					assert.Truef(tc.expect[i].Equal(got[i]), "index %d: got %s, want %s", i, got[i], tc.expect[i])
				}
			}
		})
	}
}

func Test_ParseAll_errors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "unclosed list", input: "(props A"},
		{name: "stray close paren", input: "A)"},
		{name: "trailing garbage after valid list", input: "(props A) )"},
		{name: "int overflow", input: "99999999999"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			_, err := ParseAll(tc.input)
			assert.Error(err)
		})
	}
}

func Test_Sexpr_destructors_panic_on_wrong_kind(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { Symbol("x").AsNumber() })
	assert.Panics(func() { Number(1).AsSymbol() })
	assert.Panics(func() { List(nil).AsSymbol() })
}

func Test_Sexpr_String(t *testing.T) {
	assert := assert.New(t)

	e := List([]Sexpr{Symbol("trans"), Number(1), Symbol("a"), Number(2)})
	assert.Equal("(trans, 1, a, 2)", e.String())
}
