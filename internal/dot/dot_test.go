package dot

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/mucheck/internal/lts"
	"github.com/dekarrin/mucheck/internal/setutil"
)

func Test_Render(t *testing.T) {
	assert := assert.New(t)

	labels := map[uint32]setutil.Set[string]{
		2: setutil.New("A"),
	}
	trans := map[uint32]map[string]uint32{
		1: {"a": 2},
	}
	l := lts.New(setutil.New[uint32](1, 2), setutil.New[uint32](1), setutil.New("a"), labels, trans, nil)

	out := Render(l)

	assert.True(strings.HasPrefix(out, "digraph {\n"))
	assert.True(strings.HasSuffix(out, "}\n"))
	assert.Contains(out, "1 [shape=doublecircle]")
	assert.Contains(out, "1 -> 2")
	assert.NotContains(out, "2 [shape=doublecircle]")
}

func Test_Render_noTransitions(t *testing.T) {
	assert := assert.New(t)

	l := lts.New(setutil.New[uint32](1), setutil.New[uint32](1), setutil.New[string](), nil, nil, nil)

	out := Render(l)
	assert.Contains(out, "digraph {")
	assert.Contains(out, "1 [shape=doublecircle]")
}
