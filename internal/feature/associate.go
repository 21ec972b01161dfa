package feature

import (
	"strings"

	"github.com/chriserin/featgen/internal/doctree"
)

const fence = `"""`

// argumentFor returns the code block attached to the step at siblings[i].
// A ":" text node directly after the step is skipped; the node after that (or
// the direct neighbour) must be a code block. Lookahead never leaves the
// sibling list.
func argumentFor(siblings []*doctree.Node, i int) *doctree.Node {
	next := i + 1
	if next < len(siblings) && isColon(siblings[next]) {
		next++
	}
	if next < len(siblings) && siblings[next].Kind == doctree.KindCodeBlock {
		return siblings[next]
	}
	return nil
}

func isColon(n *doctree.Node) bool {
	return n.Kind == doctree.KindText && strings.TrimSpace(n.Text) == ":"
}

// renderStep returns the step line followed, when arg is non-nil, by the
// fenced argument one indent deeper. Empty block lines stay empty.
func renderStep(step, arg *doctree.Node) []string {
	line := step.Text
	if step.Step != doctree.StepGeneric {
		line = strings.TrimRight(string(step.Step)+" "+step.Text, " ")
	}
	if arg == nil {
		return []string{line}
	}
	if arg.Language != "" {
		line += ` (in "` + arg.Language + `"):`
	}

	body := strings.TrimSuffix(arg.Text, "\n")
	lines := []string{line, indent + fence}
	if body != "" {
		for _, l := range strings.Split(body, "\n") {
			if l == "" {
				lines = append(lines, "")
				continue
			}
			lines = append(lines, indent+l)
		}
	}
	return append(lines, indent+fence)
}
