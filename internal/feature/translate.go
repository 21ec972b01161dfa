// Package feature translates document trees into Gherkin feature files.
//
// Each section title opens a scenario, each step node becomes a step line in
// the most recently opened scenario, and a code block that directly follows a
// step (optionally after a ":" text node) is attached as its doc string.
package feature

import (
	"log/slog"

	"github.com/chriserin/featgen/internal/doctree"
	"github.com/chriserin/featgen/internal/logfields"
)

// Mode controls what happens when the walker meets a kind that is neither
// consumed nor in doctree.Ignored.
type Mode int

const (
	// ModePermissive skips unknown kinds.
	ModePermissive Mode = iota
	// ModeStrict fails with *UnknownNodeError.
	ModeStrict
)

func (m Mode) String() string {
	if m == ModeStrict {
		return "strict"
	}
	return "permissive"
}

type Option func(*Translator)

func WithMode(m Mode) Option {
	return func(t *Translator) { t.mode = m }
}

func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) { t.logger = l }
}

// Translator is safe for concurrent use; every call builds its own State.
type Translator struct {
	mode   Mode
	logger *slog.Logger
}

func New(opts ...Option) *Translator {
	t := &Translator{mode: ModePermissive, logger: slog.Default()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate is a shorthand for New(opts...).Translate.
func Translate(docName string, root *doctree.Node, opts ...Option) (string, error) {
	return New(opts...).Translate(docName, root)
}

// Translate returns the feature file text for root. On error no text is
// returned.
func (t *Translator) Translate(docName string, root *doctree.Node) (string, error) {
	f, err := t.Run(docName, root)
	if err != nil {
		return "", err
	}
	return Emit(f), nil
}

// Run walks root and returns the resulting feature without serializing it.
func (t *Translator) Run(docName string, root *doctree.Node) (Feature, error) {
	w := &walker{doc: docName, mode: t.mode, logger: t.logger}
	if root.Kind != doctree.KindDocument {
		if t.mode == ModeStrict {
			return Feature{}, &UnknownNodeError{Document: docName, Kind: root.Kind}
		}
		w.state = NewState(docName)
	}
	if err := w.visit(root, nil, 0); err != nil {
		return Feature{}, err
	}
	return w.state.Feature(), nil
}

type walker struct {
	doc    string
	mode   Mode
	logger *slog.Logger
	state  *State
}

func (w *walker) visit(n, parent *doctree.Node, index int) error {
	if err := w.enter(n, parent, index); err != nil {
		return err
	}
	for i, c := range n.Children {
		if err := w.visit(c, n, i); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) enter(n, parent *doctree.Node, index int) error {
	switch n.Kind {
	case doctree.KindDocument:
		if w.state == nil {
			w.state = NewState(w.doc)
		}
	case doctree.KindSection:
		// the scenario is opened by the section's title
	case doctree.KindTitle:
		if parent != nil && parent.Kind == doctree.KindSection {
			w.state.Open(n.Text)
		}
	case doctree.KindStep:
		var siblings []*doctree.Node
		if parent != nil {
			siblings = parent.Children
		}
		var arg *doctree.Node
		if index < len(siblings) && siblings[index] == n {
			arg = argumentFor(siblings, index)
		}
		if err := w.state.Append(renderStep(n, arg)...); err != nil {
			return &StateError{Document: w.doc, Step: n.Text}
		}
	case doctree.KindCodeBlock, doctree.KindText:
		// read by the step lookahead only
	default:
		if doctree.IsIgnored(n.Kind) {
			return nil
		}
		if w.mode == ModeStrict {
			return &UnknownNodeError{Document: w.doc, Kind: n.Kind}
		}
		w.logger.Debug("Skipping unknown node", logfields.Document(w.doc), slog.String("kind", string(n.Kind)))
	}
	return nil
}
