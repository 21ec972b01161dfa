package markup

import (
	"regexp"
	"sort"
	"strings"

	"github.com/chriserin/featgen/internal/doctree"
)

// roleSuffix matches a role marker at the end of a text run, either MyST
// style {given} or Sphinx style :given:.
var roleSuffix = regexp.MustCompile(`(?:\{([A-Za-z][A-Za-z0-9_-]*)\}|:([A-Za-z][A-Za-z0-9_-]*):)$`)

// Registry maps role names to step keywords. Names are case-insensitive.
type Registry struct {
	roles map[string]doctree.StepKind
}

func NewRegistry() *Registry {
	return &Registry{roles: make(map[string]doctree.StepKind)}
}

// DefaultRegistry knows one role per keyword plus the generic "behat" and
// "step" roles.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("given", doctree.StepGiven)
	r.Register("when", doctree.StepWhen)
	r.Register("then", doctree.StepThen)
	r.Register("and", doctree.StepAnd)
	r.Register("but", doctree.StepBut)
	r.Register("behat", doctree.StepGeneric)
	r.Register("step", doctree.StepGeneric)
	return r
}

func (r *Registry) Register(name string, kind doctree.StepKind) {
	r.roles[strings.ToLower(name)] = kind
}

func (r *Registry) Lookup(name string) (doctree.StepKind, bool) {
	k, ok := r.roles[strings.ToLower(name)]
	return k, ok
}

// Names returns the registered role names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.roles))
	for name := range r.roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// splitRole reports whether text ends in a registered role marker and returns
// the text before the marker.
func (r *Registry) splitRole(text string) (string, doctree.StepKind, bool) {
	loc := roleSuffix.FindStringSubmatchIndex(text)
	if loc == nil {
		return text, doctree.StepGeneric, false
	}
	name := ""
	if loc[2] >= 0 {
		name = text[loc[2]:loc[3]]
	} else {
		name = text[loc[4]:loc[5]]
	}
	kind, ok := r.Lookup(name)
	if !ok {
		return text, doctree.StepGeneric, false
	}
	return text[:loc[0]], kind, true
}
