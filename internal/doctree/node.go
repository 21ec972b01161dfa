package doctree

import "strings"

// Kind tags a node in the document tree. The parser may produce kinds outside
// the ones declared here; those are unknown to the translator.
type Kind string

// Kinds consumed by the feature translator.
const (
	KindDocument  Kind = "document"
	KindSection   Kind = "section"
	KindTitle     Kind = "title"
	KindStep      Kind = "step"
	KindCodeBlock Kind = "code_block"
	KindText      Kind = "text"
)

// StepKind is the keyword a step is tagged with.
type StepKind string

const (
	StepGiven   StepKind = "Given"
	StepWhen    StepKind = "When"
	StepThen    StepKind = "Then"
	StepAnd     StepKind = "And"
	StepBut     StepKind = "But"
	StepGeneric StepKind = ""
)

// ParseStepKind maps a keyword name (any case) to a StepKind.
// "generic" and the empty string both yield StepGeneric.
func ParseStepKind(s string) (StepKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "given":
		return StepGiven, true
	case "when":
		return StepWhen, true
	case "then":
		return StepThen, true
	case "and":
		return StepAnd, true
	case "but":
		return StepBut, true
	case "", "generic":
		return StepGeneric, true
	}
	return StepGeneric, false
}

// Node is one element of a parsed document.
//
// Text holds the title text for titles, the step text for steps, the raw
// body for code blocks and the literal value for text nodes.
type Node struct {
	Kind     Kind
	Text     string
	Step     StepKind
	Language string
	Children []*Node
}

func NewNode(kind Kind, children ...*Node) *Node {
	return &Node{Kind: kind, Children: children}
}

func NewDocument(children ...*Node) *Node {
	return NewNode(KindDocument, children...)
}

// NewSection builds a section. By convention its first child is the title.
func NewSection(children ...*Node) *Node {
	return NewNode(KindSection, children...)
}

func NewTitle(text string) *Node {
	return &Node{Kind: KindTitle, Text: text}
}

func NewStep(kind StepKind, text string) *Node {
	return &Node{Kind: KindStep, Step: kind, Text: text}
}

func NewCodeBlock(language, body string) *Node {
	return &Node{Kind: KindCodeBlock, Language: language, Text: body}
}

func NewText(value string) *Node {
	return &Node{Kind: KindText, Text: value}
}

// Append adds children in order and returns n.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}
