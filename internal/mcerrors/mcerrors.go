// Package mcerrors defines the typed diagnostics produced while loading and
// checking a mucheck program. Every error the rest of the repo returns is one
// of the five kinds below, each with a human-readable message and an
// optional wrapped cause.
package mcerrors

import (
	"errors"
	"fmt"
)

// Kind identifies which of the error categories an error belongs to.
type Kind int

const (
	// IO is returned when the input file cannot be read.
	IO Kind = iota

	// Syntax is returned for malformed S-expressions, malformed formulae,
	// unrecognized instruction heads, or unexpected trailing input.
	Syntax

	// Arity is returned when an instruction's children do not match the
	// expected shape for its head symbol.
	Arity

	// Semantic is returned for duplicate declarations and references to
	// undeclared propositions or actions.
	Semantic

	// Runtime is returned when satisfaction is attempted with a free
	// fixpoint variable.
	Runtime
)

func (k Kind) String() string {
	switch k {
	case IO:
		return "IO"
	case Syntax:
		return "Syntax"
	case Arity:
		return "Arity"
	case Semantic:
		return "Semantic"
	case Runtime:
		return "Runtime"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// checkError is the concrete error type returned by every constructor in
// this package. Its behavior is reached only through the KindOf and Message
// functions below and its Error and Unwrap methods, so callers never need
// the concrete type.
type checkError struct {
	kind Kind
	msg  string
	wrap error
}

func (e *checkError) Error() string {
	if e.wrap != nil {
		return fmt.Sprintf("%s: %s: %v", e.kind, e.msg, e.wrap)
	}
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

func (e *checkError) Unwrap() error {
	return e.wrap
}

func newKind(k Kind, msg string) error {
	return &checkError{kind: k, msg: msg}
}

func newKindWrap(k Kind, e error, msg string) error {
	return &checkError{kind: k, msg: msg, wrap: e}
}

// IOf returns a new IO error built from the given format string and args.
func IOf(format string, a ...interface{}) error {
	return newKind(IO, fmt.Sprintf(format, a...))
}

// WrapIOf returns a new IO error that wraps e.
func WrapIOf(e error, format string, a ...interface{}) error {
	return newKindWrap(IO, e, fmt.Sprintf(format, a...))
}

// Syntaxf returns a new Syntax error built from the given format string and
// args.
func Syntaxf(format string, a ...interface{}) error {
	return newKind(Syntax, fmt.Sprintf(format, a...))
}

// Arityf returns a new Arity error built from the given format string and
// args.
func Arityf(format string, a ...interface{}) error {
	return newKind(Arity, fmt.Sprintf(format, a...))
}

// Semanticf returns a new Semantic error built from the given format string
// and args.
func Semanticf(format string, a ...interface{}) error {
	return newKind(Semantic, fmt.Sprintf(format, a...))
}

// Runtimef returns a new Runtime error built from the given format string
// and args.
func Runtimef(format string, a ...interface{}) error {
	return newKind(Runtime, fmt.Sprintf(format, a...))
}

// KindOf returns the Kind of err if it is (or wraps, via errors.As semantics
// on the concrete type) an error produced by this package. The second return
// is false if err was not produced by this package.
func KindOf(err error) (Kind, bool) {
	var ce *checkError
	if !errors.As(err, &ce) {
		return 0, false
	}
	return ce.kind, true
}

// Message returns the human-readable diagnostic for err. If err was not
// produced by this package, err.Error() is returned unchanged.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
