package feature

import (
	"fmt"

	"github.com/chriserin/featgen/internal/doctree"
)

// StateError is returned when a step appears before any section title has
// opened a scenario.
type StateError struct {
	Document string
	Step     string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: step %q is outside of a section", e.Document, e.Step)
}

// UnknownNodeError is returned in strict mode for a node kind that is neither
// consumed nor ignored.
type UnknownNodeError struct {
	Document string
	Kind     doctree.Kind
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("%s: unknown node kind %q", e.Document, e.Kind)
}
