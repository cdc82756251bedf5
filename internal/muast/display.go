package muast

import "fmt"

// String renders f in the infix Unicode-operator syntax, fully
// parenthesizing binary operators and using bracket/angle modalities. For
// the Formula[rune,uint32] instantiation this always round-trips through
// ParseInfix to a value Equal to f.
func (f Formula[A, P]) String() string {
	switch f.kind {
	case KindLit:
		return fmt.Sprint(f.prop)
	case KindNeg:
		return "¬" + f.sub.String()
	case KindAnd:
		return fmt.Sprintf("(%s ∧ %s)", f.lhs.String(), f.rhs.String())
	case KindOr:
		return fmt.Sprintf("(%s ∨ %s)", f.lhs.String(), f.rhs.String())
	case KindAll:
		return fmt.Sprintf("[%s]%s", actionString(f.action), f.sub.String())
	case KindEx:
		return fmt.Sprintf("⟨%s⟩%s", actionString(f.action), f.sub.String())
	case KindLfp:
		return fmt.Sprintf("μ%s.%s", f.bound, f.sub.String())
	case KindGfp:
		return fmt.Sprintf("ν%s.%s", f.bound, f.sub.String())
	case KindVar:
		return f.bound
	default:
		return "<invalid-formula>"
	}
}

// actionString renders an action label, printing a rune action as its
// character rather than its code point.
func actionString(a any) string {
	if r, ok := a.(rune); ok {
		return string(r)
	}
	return fmt.Sprint(a)
}
