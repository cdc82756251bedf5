package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_SkipWhitespace(t *testing.T) {
	assert := assert.New(t)

	c := NewText("  \t\n a")
	SkipWhitespace(c)

	v, ok := c.Peek()
	assert.True(ok)
	assert.Equal('a', v)
}

func Test_ExpectNonNegInt(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect uint32
		ok     bool
	}{
		{name: "single digit", input: "7", expect: 7, ok: true},
		{name: "multi digit", input: "  1234", expect: 1234, ok: true},
		{name: "not a digit", input: "abc", ok: false},
		{name: "overflow", input: "99999999999", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			c := NewText(tc.input)
			v, ok := ExpectNonNegInt(c)
			assert.Equal(tc.ok, ok)
			if tc.ok {
				assert.Equal(tc.expect, v)
			}
		})
	}
}

func Test_ExpectIdentifier(t *testing.T) {
	assert := assert.New(t)

	c := NewText(" hello2World ")
	id, ok := ExpectIdentifier(c)
	assert.True(ok)
	assert.Equal("hello2World", id)

	c = NewText("2notAnIdent")
	_, ok = ExpectIdentifier(c)
	assert.False(ok)
}

func Test_ExpectKeyword(t *testing.T) {
	assert := assert.New(t)

	c := NewText("props")
	assert.True(ExpectKeyword(c, "props"))
	assert.True(c.AtEnd())

	c = NewText("actions")
	assert.False(ExpectKeyword(c, "props"))
}
