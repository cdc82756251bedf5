package cursor

import "unicode"

// NewText returns a Cursor over the runes of s.
func NewText(s string) *Cursor[rune] {
	return New([]rune(s))
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}

// SkipWhitespace advances c past any run of spaces, tabs, and newlines at
// the current position.
func SkipWhitespace(c *Cursor[rune]) {
	for {
		r, ok := c.Peek()
		if !ok || !isSpace(r) {
			return
		}
		c.Advance()
	}
}

// ExpectNonNegInt skips leading whitespace, then consumes one or more ASCII
// digits and folds them base-10 into a uint32. It fails if the current
// position (after skipping whitespace) is not a digit, or if the value
// overflows 32 bits.
func ExpectNonNegInt(c *Cursor[rune]) (uint32, bool) {
	SkipWhitespace(c)

	digits, ok := ConvertWhile(c, unicode.IsDigit, func(r rune) rune { return r })
	if !ok {
		return 0, false
	}

	var val uint64
	for _, d := range digits {
		val = val*10 + uint64(d-'0')
		if val > 0xFFFFFFFF {
			return 0, false
		}
	}

	return uint32(val), true
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r) && r <= unicode.MaxASCII
}

func isIdentCont(r rune) bool {
	return (unicode.IsLetter(r) || unicode.IsDigit(r)) && r <= unicode.MaxASCII
}

// ExpectIdentifier skips leading whitespace, then consumes one ASCII letter
// followed by zero or more ASCII alphanumerics.
func ExpectIdentifier(c *Cursor[rune]) (string, bool) {
	SkipWhitespace(c)

	first, ok := c.ExpectIf(isIdentStart)
	if !ok {
		return "", false
	}

	runes := []rune{first}
	c.Save()
	for {
		r, ok := c.ExpectIf(isIdentCont)
		if !ok {
			break
		}
		runes = append(runes, r)
		c.UpdateSave()
	}
	c.Restore()

	return string(runes), true
}

// ExpectKeyword consumes an identifier and succeeds only if it equals kw
// exactly. As with Buff's expect_token in the reference implementation, the
// identifier is consumed whether or not it matches; callers that need to
// try kw as one of several alternatives must Save before calling
// ExpectKeyword and Restore on failure.
func ExpectKeyword(c *Cursor[rune], kw string) bool {
	id, ok := ExpectIdentifier(c)
	if !ok {
		return false
	}
	return id == kw
}
