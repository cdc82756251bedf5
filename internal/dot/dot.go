// Package dot renders a built LTS as a Graphviz digraph, for debugging
// visualization. This is not part of the model checker's core three
// parts; it is wired to the CLI only behind the --dot flag.
package dot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dekarrin/rosed"

	"github.com/dekarrin/mucheck/internal/lts"
)

// Render returns t as a Graphviz "digraph" description: circle as the
// default node shape, one doublecircle declaration per initial state, and
// one labeled edge per transition. Other states are not declared on their
// own, so a non-initial state with no transitions does not appear.
func Render(t lts.LTS) string {
	var body strings.Builder

	body.WriteString("node [shape=circle]\n")

	states := t.States().Elements()
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

	initial := t.Initial()
	for _, s := range states {
		if initial.Has(s) {
			fmt.Fprintf(&body, "%d [shape=doublecircle]\n", s)
		}
	}

	actions := t.Actions().Elements()
	sort.Strings(actions)

	for _, s := range states {
		for _, a := range actions {
			succ, ok := t.Successor(s, a)
			if !ok {
				continue
			}
			fmt.Fprintf(&body, "%d -> %d [label=\" %s\"]\n", s, succ, a)
		}
	}

	indented := rosed.Edit(body.String()).Indent(1).String()

	return "digraph {\n" + indented + "}\n"
}
