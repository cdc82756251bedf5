package lts

import (
	"github.com/dekarrin/mucheck/internal/mcerrors"
	"github.com/dekarrin/mucheck/internal/muast"
	"github.com/dekarrin/mucheck/internal/setutil"
)

// env is the fixpoint environment: a mapping from bound variable name to
// the set of states currently assigned to it. It is extended, never
// mutated in place, at each binder so that sibling subformulae never see
// each other's iterates.
type env map[string]setutil.Set[uint32]

func (e env) with(x string, s setutil.Set[uint32]) env {
	child := make(env, len(e)+1)
	for k, v := range e {
		child[k] = v
	}
	child[x] = s
	return child
}

// Sat computes ⟦f⟧η: the set of states of t satisfying f under the
// fixpoint environment initial. Pass nil for initial when f has no free
// variables (i.e. when called from LTS.Check).
func Sat(t LTS, f muast.SexprFormula, initial map[string]setutil.Set[uint32]) (setutil.Set[uint32], error) {
	return sat(t, f, env(initial))
}

func sat(t LTS, f muast.SexprFormula, e env) (setutil.Set[uint32], error) {
	switch f.Kind() {
	case muast.KindLit:
		p := f.AsLit()
		result := setutil.Set[uint32]{}
		for s := range t.states {
			if t.Label(s).Has(p) {
				result.Add(s)
			}
		}
		return result, nil

	case muast.KindNeg:
		sub, err := sat(t, f.AsNeg(), e)
		if err != nil {
			return nil, err
		}
		return t.States().Difference(sub), nil

	case muast.KindAnd:
		l, r := f.AsAnd()
		sl, err := sat(t, l, e)
		if err != nil {
			return nil, err
		}
		sr, err := sat(t, r, e)
		if err != nil {
			return nil, err
		}
		return sl.Intersect(sr), nil

	case muast.KindOr:
		l, r := f.AsOr()
		sl, err := sat(t, l, e)
		if err != nil {
			return nil, err
		}
		sr, err := sat(t, r, e)
		if err != nil {
			return nil, err
		}
		return sl.Union(sr), nil

	case muast.KindAll:
		a, sub := f.AsAll()
		satSub, err := sat(t, sub, e)
		if err != nil {
			return nil, err
		}
		result := setutil.Set[uint32]{}
		for s := range t.states {
			succ, ok := t.Successor(s, a)
			if !ok || satSub.Has(succ) {
				result.Add(s)
			}
		}
		return result, nil

	case muast.KindEx:
		a, sub := f.AsEx()
		satSub, err := sat(t, sub, e)
		if err != nil {
			return nil, err
		}
		result := setutil.Set[uint32]{}
		for s := range t.states {
			succ, ok := t.Successor(s, a)
			if ok && satSub.Has(succ) {
				result.Add(s)
			}
		}
		return result, nil

	case muast.KindVar:
		x := f.AsVar()
		s, ok := e[x]
		if !ok {
			return nil, mcerrors.Runtimef("free fixpoint variable %q at satisfaction time", x)
		}
		return s, nil

	case muast.KindLfp:
		x, body := f.AsLfp()
		cur := setutil.Set[uint32]{}
		bound := len(t.states) + 1
		for i := 0; ; i++ {
			next, err := sat(t, body, e.with(x, cur))
			if err != nil {
				return nil, err
			}
			if next.Equal(cur) {
				return cur, nil
			}
			if i >= bound {
				return nil, mcerrors.Runtimef("lfp %s: did not converge within %d iterations", x, bound)
			}
			cur = next
		}

	case muast.KindGfp:
		x, body := f.AsGfp()
		cur := t.States()
		bound := len(t.states) + 1
		for i := 0; ; i++ {
			next, err := sat(t, body, e.with(x, cur))
			if err != nil {
				return nil, err
			}
			if next.Equal(cur) {
				return cur, nil
			}
			if i >= bound {
				return nil, mcerrors.Runtimef("gfp %s: did not converge within %d iterations", x, bound)
			}
			cur = next
		}

	default:
		return nil, mcerrors.Runtimef("satisfaction: unhandled formula kind %v", f.Kind())
	}
}
