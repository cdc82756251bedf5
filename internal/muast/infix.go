package muast

import (
	"strings"

	"github.com/dekarrin/mucheck/internal/cursor"
	"github.com/dekarrin/mucheck/internal/mcerrors"
)

// InfixFormula is the concrete instantiation of Formula parsed from the
// infix Unicode-operator syntax: propositions are small numbers and actions
// and bound variables are single letters.
type InfixFormula = Formula[rune, uint32]

// ParseInfix parses s as a standalone μ-calculus formula in the infix
// syntax:
//
//	disj ::= conj ( '∨' conj )*
//	conj ::= atom ( '∧' atom )*
//	atom ::= number | letter
//	        | '(' disj ')'
//	        | '⟨' action '⟩' atom
//	        | '[' action ']' atom
//	        | '¬' atom
//	        | 'μ' var '.' disj
//	        | 'ν' var '.' disj
//
// Spaces anywhere in s are insignificant and are stripped before parsing.
// All of s must be consumed by a single disj production; anything left over
// is a syntax error.
func ParseInfix(s string) (InfixFormula, error) {
	stripped := strings.ReplaceAll(s, " ", "")
	c := cursor.NewText(stripped)

	f, ok := parseDisj(c)
	if !ok || !c.AtEnd() {
		return InfixFormula{}, mcerrors.Syntaxf("malformed formula at rune offset %d", c.Pos())
	}
	return f, nil
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// parseVar reads a single-letter bound-variable name.
func parseVar(c *cursor.Cursor[rune]) (string, bool) {
	r, ok := c.ExpectIf(isLetter)
	if !ok {
		return "", false
	}
	return string(r), true
}

// parseAct reads a single-character action label. Any character is
// accepted; the grammar relies on context (the enclosing ⟨⟩ or []) to know
// where the action ends.
func parseAct(c *cursor.Cursor[rune]) (rune, bool) {
	return c.Take()
}

func parseAtom(c *cursor.Cursor[rune]) (InfixFormula, bool) {
	r, ok := c.Peek()
	if !ok {
		return InfixFormula{}, false
	}

	switch {
	case r >= '0' && r <= '9':
		n, ok := cursor.ExpectNonNegInt(c)
		if !ok {
			return InfixFormula{}, false
		}
		return Lit[rune, uint32](n), true

	case isLetter(r):
		v, ok := parseVar(c)
		if !ok {
			return InfixFormula{}, false
		}
		return Var[rune, uint32](v), true

	case r == '(':
		c.Advance()
		f, ok := parseDisj(c)
		if !ok {
			return InfixFormula{}, false
		}
		if !cursor.Expect(c, ')') {
			return InfixFormula{}, false
		}
		return f, true

	case r == '⟨':
		c.Advance()
		a, ok := parseAct(c)
		if !ok {
			return InfixFormula{}, false
		}
		if !cursor.Expect(c, '⟩') {
			return InfixFormula{}, false
		}
		sub, ok := parseAtom(c)
		if !ok {
			return InfixFormula{}, false
		}
		return Ex(a, sub), true

	case r == '[':
		c.Advance()
		a, ok := parseAct(c)
		if !ok {
			return InfixFormula{}, false
		}
		if !cursor.Expect(c, ']') {
			return InfixFormula{}, false
		}
		sub, ok := parseAtom(c)
		if !ok {
			return InfixFormula{}, false
		}
		return All(a, sub), true

	case r == '¬':
		c.Advance()
		sub, ok := parseAtom(c)
		if !ok {
			return InfixFormula{}, false
		}
		return Neg(sub), true

	case r == 'μ':
		c.Advance()
		x, ok := parseVar(c)
		if !ok {
			return InfixFormula{}, false
		}
		if !cursor.Expect(c, '.') {
			return InfixFormula{}, false
		}
		body, ok := parseDisj(c)
		if !ok {
			return InfixFormula{}, false
		}
		return Lfp[rune, uint32](x, body), true

	case r == 'ν':
		c.Advance()
		x, ok := parseVar(c)
		if !ok {
			return InfixFormula{}, false
		}
		if !cursor.Expect(c, '.') {
			return InfixFormula{}, false
		}
		body, ok := parseDisj(c)
		if !ok {
			return InfixFormula{}, false
		}
		return Gfp[rune, uint32](x, body), true

	default:
		return InfixFormula{}, false
	}
}

func parseConj(c *cursor.Cursor[rune]) (InfixFormula, bool) {
	first, ok := parseAtom(c)
	if !ok {
		return InfixFormula{}, false
	}

	result := first
	c.Save()
	for {
		if !cursor.Expect(c, '∧') {
			c.RestoreSave()
			break
		}
		next, ok := parseAtom(c)
		if !ok {
			c.RestoreSave()
			break
		}
		result = And(result, next)
		c.UpdateSave()
	}
	c.Restore()

	return result, true
}

func parseDisj(c *cursor.Cursor[rune]) (InfixFormula, bool) {
	first, ok := parseConj(c)
	if !ok {
		return InfixFormula{}, false
	}

	result := first
	c.Save()
	for {
		if !cursor.Expect(c, '∨') {
			c.RestoreSave()
			break
		}
		next, ok := parseConj(c)
		if !ok {
			c.RestoreSave()
			break
		}
		result = Or(result, next)
		c.UpdateSave()
	}
	c.Restore()

	return result, true
}
