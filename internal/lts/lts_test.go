package lts

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/mucheck/internal/mcerrors"
	"github.com/dekarrin/mucheck/internal/muast"
	"github.com/dekarrin/mucheck/internal/setutil"
)

// build1a2 constructs the LTS from spec scenario 1/2: a single a-transition
// from state 1 to state 2.
func build1a2(label2A bool, label1A bool) LTS {
	labels := map[uint32]setutil.Set[string]{}
	if label1A {
		labels[1] = setutil.New("A")
	}
	if label2A {
		labels[2] = setutil.New("A")
	}
	trans := map[uint32]map[string]uint32{
		1: {"a": 2},
	}
	return New(setutil.New[uint32](1, 2), setutil.New[uint32](1), setutil.New("a"), labels, trans, nil)
}

func Test_Check_scenario1_allHoldsWhenSuccessorLabeled(t *testing.T) {
	assert := assert.New(t)

	spec := muast.All[string, string]("a", muast.Lit[string, string]("A"))
	lts := build1a2(true, false)
	lts.specs = []muast.SexprFormula{spec}

	ok, err := lts.Check()
	assert.NoError(err)
	assert.True(ok)
}

func Test_Check_scenario2_failsWhenSuccessorUnlabeled(t *testing.T) {
	assert := assert.New(t)

	spec := muast.All[string, string]("a", muast.Lit[string, string]("A"))
	lts := build1a2(false, true)
	lts.specs = []muast.SexprFormula{spec}

	ok, err := lts.Check()
	assert.NoError(err)
	assert.False(ok)
}

func Test_Check_scenario3_diamondFailsWithNoMatchingAction(t *testing.T) {
	assert := assert.New(t)

	spec := muast.Ex[string, string]("b", muast.Lit[string, string]("A"))
	lts := build1a2(false, true)
	lts.specs = []muast.SexprFormula{spec}

	ok, err := lts.Check()
	assert.NoError(err)
	assert.False(ok)
}

func Test_Check_scenario4_threeCycleGfp(t *testing.T) {
	assert := assert.New(t)

	labels := map[uint32]setutil.Set[string]{
		1: setutil.New("A"),
		2: setutil.New("B"),
		3: setutil.New("C"),
	}
	trans := map[uint32]map[string]uint32{
		1: {"a": 2},
		2: {"a": 3},
		3: {"a": 1},
	}
	l := New(setutil.New[uint32](1, 2, 3), setutil.New[uint32](1), setutil.New("a"), labels, trans, nil)

	body := muast.And(
		muast.Var[string, string]("X"),
		muast.Or(
			muast.Lit[string, string]("A"),
			muast.Or(muast.Lit[string, string]("B"), muast.Lit[string, string]("C")),
		),
	)
	spec := muast.Gfp("X", body)
	l.specs = []muast.SexprFormula{spec}

	ok, err := l.Check()
	assert.NoError(err)
	assert.True(ok)
}

func Test_Check_freeVariableIsRuntimeError(t *testing.T) {
	l := build1a2(true, false)
	l.specs = []muast.SexprFormula{muast.Var[string, string]("X")}

	_, err := l.Check()
	assert.Error(t, err)
	kind, ok := mcerrors.KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, mcerrors.Runtime, kind)
}

func Test_Successor_and_Label(t *testing.T) {
	assert := assert.New(t)

	l := build1a2(true, false)

	succ, ok := l.Successor(1, "a")
	assert.True(ok)
	assert.Equal(uint32(2), succ)

	_, ok = l.Successor(2, "a")
	assert.False(ok)

	assert.True(l.Label(2).Has("A"))
	assert.True(l.Label(1).Empty())
}
