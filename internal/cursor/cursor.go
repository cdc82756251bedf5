// Package cursor implements a generic backtracking position over a sequence
// of tokens. It is used both to scan raw characters into S-expressions and
// to scan S-expressions into instructions and formulae; in both cases the
// parser needs to try an alternative, and abandon it without having
// consumed anything, if it turns out not to match.
package cursor

// Cursor is a backtracking position over an ordered sequence of T. The zero
// value is not usable; construct one with New.
//
// A Cursor carries a stack of saved positions, initialized with a single
// zero entry, so Restore always has something to pop back to even if the
// caller never calls Save.
type Cursor[T any] struct {
	data  []T
	pos   int
	stack []int
}

// New returns a Cursor positioned at the start of data.
func New[T any](data []T) *Cursor[T] {
	return &Cursor[T]{
		data:  data,
		pos:   0,
		stack: []int{0},
	}
}

// Pos returns the current position, as a 0-based index into the original
// sequence. It exists mainly so callers can build diagnostics that point at
// a location in the input.
func (c *Cursor[T]) Pos() int {
	return c.pos
}

// AtEnd returns whether the cursor has no more elements to read.
func (c *Cursor[T]) AtEnd() bool {
	return c.pos >= len(c.data)
}

// Peek returns the element at the current position without advancing. The
// second return is false if the cursor is at the end.
func (c *Cursor[T]) Peek() (T, bool) {
	var zero T
	if c.AtEnd() {
		return zero, false
	}
	return c.data[c.pos], true
}

// Advance moves the position forward by one. It returns false, leaving the
// position unchanged, if the cursor is already at the end.
func (c *Cursor[T]) Advance() bool {
	if c.AtEnd() {
		return false
	}
	c.pos++
	return true
}

// Take returns the element at the current position and advances past it.
// The second return is false, with no change to the position, if the
// cursor is at the end.
func (c *Cursor[T]) Take() (T, bool) {
	v, ok := c.Peek()
	if !ok {
		return v, false
	}
	c.Advance()
	return v, true
}

// ExpectIf takes the next element and succeeds only if pred holds for it.
func (c *Cursor[T]) ExpectIf(pred func(T) bool) (T, bool) {
	var zero T
	v, ok := c.Take()
	if !ok {
		return zero, false
	}
	if !pred(v) {
		return zero, false
	}
	return v, true
}

// Save pushes the current position onto the save stack.
func (c *Cursor[T]) Save() {
	c.stack = append(c.stack, c.pos)
}

// Restore pops the save stack into the current position.
func (c *Cursor[T]) Restore() {
	top := len(c.stack) - 1
	c.pos = c.stack[top]
	c.stack = c.stack[:top]
}

// UpdateSave overwrites the top of the save stack with the current
// position. It is used to commit a successful greedy step so that a later
// failure backtracks only to here, not to the start of the whole
// alternative.
func (c *Cursor[T]) UpdateSave() {
	c.stack[len(c.stack)-1] = c.pos
}

// RestoreSave restores the current position from the top of the save
// stack and immediately saves again, leaving the stack depth unchanged.
// This is a checkpoint reset: useful between iterations of a greedy loop
// that wants to retry from the same point.
func (c *Cursor[T]) RestoreSave() {
	c.Restore()
	c.Save()
}

// Expect takes the next element and succeeds only if it equals x. On
// mismatch or end-of-input the position is left where Take put it (i.e.
// past the mismatching element) — callers that need to backtrack on
// failure must Save before calling Expect.
//
// This is a free function, not a method, because it requires the
// comparable constraint while Cursor itself is declared over any.
func Expect[T comparable](c *Cursor[T], x T) bool {
	v, ok := c.Take()
	if !ok {
		return false
	}
	return v == x
}

// ConvertWhile repeatedly takes elements satisfying pred, applying conv to
// each, until pred fails or the input ends; it then returns the cursor to
// just past the last accepted element (failed lookahead is not consumed).
// It requires at least one accepted element and returns false otherwise.
//
// This is a free function rather than a method because Go does not allow a
// method to introduce a new type parameter beyond those of its receiver.
func ConvertWhile[T any, U any](c *Cursor[T], pred func(T) bool, conv func(T) U) ([]U, bool) {
	c.Save()
	first, ok := c.ExpectIf(pred)
	if !ok {
		c.Restore()
		return nil, false
	}

	list := []U{conv(first)}

	c.UpdateSave()
	for {
		v, ok := c.ExpectIf(pred)
		if !ok {
			break
		}
		list = append(list, conv(v))
		c.UpdateSave()
	}
	c.Restore()

	return list, true
}
