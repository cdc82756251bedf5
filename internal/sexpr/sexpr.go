// Package sexpr implements the S-expression surface syntax shared by the
// LTS program file and the embedded μ-calculus formulae it carries:
//
//	sexpr  ::= number | symbol | '(' sexpr* ')'
//	number ::= [0-9]+
//	symbol ::= [A-Za-z][A-Za-z0-9]*
//
// Symbols are distinguished only by their textual identity; there are no
// reserved words at this layer. Numbers are parsed as non-negative 32-bit
// integers, with overflow treated as a parse failure.
package sexpr

import (
	"fmt"
	"strings"

	"github.com/dekarrin/mucheck/internal/cursor"
	"github.com/dekarrin/mucheck/internal/mcerrors"
)

// Kind identifies which of the three Sexpr variants a value holds.
type Kind int

const (
	KindSymbol Kind = iota
	KindNumber
	KindList
)

// Sexpr is a parsed S-expression: a symbol, a number, or an ordered
// (possibly empty) list of Sexprs.
type Sexpr struct {
	kind Kind
	sym  string
	num  uint32
	list []Sexpr
}

// Symbol returns a Sexpr holding the given symbol.
func Symbol(s string) Sexpr {
	return Sexpr{kind: KindSymbol, sym: s}
}

// Number returns a Sexpr holding the given number.
func Number(n uint32) Sexpr {
	return Sexpr{kind: KindNumber, num: n}
}

// List returns a Sexpr holding the given (possibly empty) list.
func List(items []Sexpr) Sexpr {
	if items == nil {
		items = []Sexpr{}
	}
	return Sexpr{kind: KindList, list: items}
}

// Kind returns which variant e holds.
func (e Sexpr) Kind() Kind { return e.kind }

// IsSymbol returns whether e holds a symbol.
func (e Sexpr) IsSymbol() bool { return e.kind == KindSymbol }

// IsNumber returns whether e holds a number.
func (e Sexpr) IsNumber() bool { return e.kind == KindNumber }

// IsList returns whether e holds a list.
func (e Sexpr) IsList() bool { return e.kind == KindList }

// AsSymbol returns the held symbol. It panics if IsSymbol is false.
func (e Sexpr) AsSymbol() string {
	if e.kind != KindSymbol {
		return panicWrongKind[string](e, KindSymbol)
	}
	return e.sym
}

// AsNumber returns the held number. It panics if IsNumber is false.
func (e Sexpr) AsNumber() uint32 {
	if e.kind != KindNumber {
		return panicWrongKind[uint32](e, KindNumber)
	}
	return e.num
}

// AsList returns the held list. It panics if IsList is false.
func (e Sexpr) AsList() []Sexpr {
	if e.kind != KindList {
		return panicWrongKind[[]Sexpr](e, KindList)
	}
	return e.list
}

func panicWrongKind[T any](e Sexpr, want Kind) T {
	panic(fmt.Sprintf("sexpr: Kind() is %v, not %v", e.kind, want))
}

func (k Kind) String() string {
	switch k {
	case KindSymbol:
		return "KindSymbol"
	case KindNumber:
		return "KindNumber"
	case KindList:
		return "KindList"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Equal returns whether e and o are structurally identical.
func (e Sexpr) Equal(o Sexpr) bool {
	if e.kind != o.kind {
		return false
	}
	switch e.kind {
	case KindSymbol:
		return e.sym == o.sym
	case KindNumber:
		return e.num == o.num
	case KindList:
		if len(e.list) != len(o.list) {
			return false
		}
		for i := range e.list {
			if !e.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders e back to its surface syntax, comma-separating list
// elements for readability (this is a debugging form, not a strict
// round-trip of the parsed syntax, which uses whitespace).
func (e Sexpr) String() string {
	switch e.kind {
	case KindSymbol:
		return e.sym
	case KindNumber:
		return fmt.Sprintf("%d", e.num)
	case KindList:
		parts := make([]string, len(e.list))
		for i := range e.list {
			parts[i] = e.list[i].String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return "<invalid-sexpr>"
	}
}

// Parse reads exactly one S-expression from c, skipping leading whitespace.
func Parse(c *cursor.Cursor[rune]) (Sexpr, bool) {
	cursor.SkipWhitespace(c)

	r, ok := c.Peek()
	if !ok {
		return Sexpr{}, false
	}

	switch {
	case r >= '0' && r <= '9':
		n, ok := cursor.ExpectNonNegInt(c)
		if !ok {
			return Sexpr{}, false
		}
		return Number(n), true
	case r == '(':
		c.Advance()
		items, ok := parseListBody(c)
		if !ok {
			return Sexpr{}, false
		}
		cursor.SkipWhitespace(c)
		if !cursor.Expect(c, ')') {
			return Sexpr{}, false
		}
		return List(items), true
	default:
		sym, ok := cursor.ExpectIdentifier(c)
		if !ok {
			return Sexpr{}, false
		}
		return Symbol(sym), true
	}
}

// parseListBody parses zero or more Sexprs up to (but not consuming) the
// closing paren.
func parseListBody(c *cursor.Cursor[rune]) ([]Sexpr, bool) {
	items := []Sexpr{}

	c.Save()
	for {
		cursor.SkipWhitespace(c)
		if r, ok := c.Peek(); !ok || r == ')' {
			break
		}

		item, ok := Parse(c)
		if !ok {
			c.Restore()
			return nil, false
		}
		items = append(items, item)
		c.UpdateSave()
	}
	c.Restore()

	return items, true
}

// ParseAll reads zero or more S-expressions from s, requiring that all
// input be consumed (aside from surrounding whitespace). Trailing garbage
// that is not itself a valid S-expression is a syntax error.
func ParseAll(s string) ([]Sexpr, error) {
	c := cursor.NewText(s)

	exprs := []Sexpr{}
	for {
		cursor.SkipWhitespace(c)
		if c.AtEnd() {
			break
		}

		e, ok := Parse(c)
		if !ok {
			return nil, mcerrors.Syntaxf("malformed S-expression at rune offset %d", c.Pos())
		}
		exprs = append(exprs, e)
	}

	return exprs, nil
}
