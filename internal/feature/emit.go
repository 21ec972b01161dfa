package feature

import "strings"

const indent = "    "

// Emit serializes f. Scenario lines are written two indents deep; lines that
// are empty stay empty so the output carries no trailing whitespace.
func Emit(f Feature) string {
	var b strings.Builder
	b.WriteString(strings.TrimRight("Feature: "+f.Name, " ") + "\n")
	b.WriteString(indent + f.Preamble + "\n")

	for _, sc := range f.Scenarios {
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(indent+"Scenario: "+sc.Title, " ") + "\n")
		for _, l := range sc.Lines {
			if l == "" {
				b.WriteString("\n")
				continue
			}
			b.WriteString(indent + indent + l + "\n")
		}
	}
	return b.String()
}
