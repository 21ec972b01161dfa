// Package markup builds document trees from Markdown.
//
// Headings become nested sections, registered roles followed by a code span
// become steps, and fenced code blocks keep their info string as language.
// The inline content of paragraphs is spliced into the surrounding block
// list, so in
//
//	{given}`the config`:
//
//	```yaml
//	a: 1
//	```
//
// the step, the ":" text and the code block are siblings.
package markup

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/chriserin/featgen/internal/doctree"
)

type Parser struct {
	roles *Registry
	md    goldmark.Markdown
}

// NewParser returns a parser that recognises the roles in reg. A nil
// registry means DefaultRegistry.
func NewParser(reg *Registry) *Parser {
	if reg == nil {
		reg = DefaultRegistry()
	}
	return &Parser{
		roles: reg,
		md:    goldmark.New(goldmark.WithExtensions(extension.Table)),
	}
}

// Parse is a shorthand for NewParser(nil).Parse.
func Parse(src []byte) *doctree.Node {
	return NewParser(nil).Parse(src)
}

func (p *Parser) Parse(src []byte) *doctree.Node {
	root := p.md.Parser().Parse(text.NewReader(src))
	b := &treeBuilder{src: src, roles: p.roles}
	return b.document(root)
}

type treeBuilder struct {
	src   []byte
	roles *Registry
}

type openSection struct {
	node  *doctree.Node
	level int
}

func (b *treeBuilder) document(root gmast.Node) *doctree.Node {
	doc := doctree.NewDocument()
	var stack []openSection

	container := func() *doctree.Node {
		if len(stack) == 0 {
			return doc
		}
		return stack[len(stack)-1].node
	}

	for c := root.FirstChild(); c != nil; c = c.NextSibling() {
		h, ok := c.(*gmast.Heading)
		if !ok {
			container().Append(b.block(c)...)
			continue
		}
		for len(stack) > 0 && stack[len(stack)-1].level >= h.Level {
			stack = stack[:len(stack)-1]
		}
		sec := doctree.NewSection(doctree.NewTitle(b.plainText(h)))
		container().Append(sec)
		stack = append(stack, openSection{node: sec, level: h.Level})
	}
	return doc
}

func (b *treeBuilder) blocks(parent gmast.Node) []*doctree.Node {
	var out []*doctree.Node
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, b.block(c)...)
	}
	return out
}

func (b *treeBuilder) block(n gmast.Node) []*doctree.Node {
	switch n := n.(type) {
	case *gmast.Paragraph, *gmast.TextBlock:
		return b.inlines(n)
	case *gmast.FencedCodeBlock:
		lang := ""
		if fields := strings.Fields(string(n.Language(b.src))); len(fields) > 0 {
			lang = fields[0]
		}
		return []*doctree.Node{doctree.NewCodeBlock(lang, b.lines(n))}
	case *gmast.CodeBlock:
		return []*doctree.Node{doctree.NewCodeBlock("", b.lines(n))}
	case *gmast.Heading:
		// headings inside lists or quotes cannot open sections
		rubric := doctree.NewNode(doctree.KindRubric)
		rubric.Text = b.plainText(n)
		return []*doctree.Node{rubric}
	case *gmast.List:
		kind := doctree.KindBulletList
		if n.IsOrdered() {
			kind = doctree.KindEnumeratedList
		}
		return []*doctree.Node{doctree.NewNode(kind, b.blocks(n)...)}
	case *gmast.ListItem:
		return []*doctree.Node{doctree.NewNode(doctree.KindListItem, b.blocks(n)...)}
	case *gmast.Blockquote:
		return []*doctree.Node{doctree.NewNode(doctree.KindBlockQuote, b.blocks(n)...)}
	case *gmast.HTMLBlock:
		return []*doctree.Node{{Kind: doctree.KindHTMLBlock, Text: b.lines(n)}}
	case *gmast.ThematicBreak:
		return []*doctree.Node{doctree.NewNode(doctree.KindTransition)}
	case *east.Table:
		return []*doctree.Node{doctree.NewNode(doctree.KindTable, b.blocks(n)...)}
	case *east.TableHeader, *east.TableRow:
		return []*doctree.Node{doctree.NewNode(doctree.KindTableRow, b.blocks(n)...)}
	case *east.TableCell:
		return []*doctree.Node{doctree.NewNode(doctree.KindTableCell, b.inlines(n)...)}
	}
	return []*doctree.Node{doctree.NewNode(kindOf(n), b.blocks(n)...)}
}

// inlines converts the inline children of n. Adjacent text runs are merged so
// a role marker split across runs is still found.
func (b *treeBuilder) inlines(n gmast.Node) []*doctree.Node {
	var out []*doctree.Node
	var pending strings.Builder
	flush := func() {
		if pending.Len() > 0 {
			out = append(out, doctree.NewText(pending.String()))
			pending.Reset()
		}
	}

	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *gmast.Text:
			pending.Write(c.Segment.Value(b.src))
			if c.SoftLineBreak() || c.HardLineBreak() {
				pending.WriteByte('\n')
			}
		case *gmast.String:
			pending.Write(c.Value)
		case *gmast.CodeSpan:
			code := normalizeSpace(b.plainText(c))
			if prefix, kind, ok := b.roles.splitRole(pending.String()); ok {
				pending.Reset()
				pending.WriteString(prefix)
				flush()
				out = append(out, doctree.NewStep(kind, code))
				continue
			}
			flush()
			out = append(out, &doctree.Node{Kind: doctree.KindLiteral, Text: code})
		case *gmast.Emphasis:
			flush()
			kind := doctree.KindEmphasis
			if c.Level >= 2 {
				kind = doctree.KindStrong
			}
			out = append(out, doctree.NewNode(kind, b.inlines(c)...))
		case *gmast.Link:
			flush()
			out = append(out, doctree.NewNode(doctree.KindReference, b.inlines(c)...))
		case *gmast.AutoLink:
			flush()
			out = append(out, &doctree.Node{Kind: doctree.KindReference, Text: string(c.URL(b.src))})
		case *gmast.Image:
			flush()
			out = append(out, doctree.NewNode(doctree.KindImage))
		case *gmast.RawHTML:
			flush()
			out = append(out, doctree.NewNode(doctree.KindRaw))
		default:
			flush()
			out = append(out, doctree.NewNode(kindOf(c), b.inlines(c)...))
		}
	}
	flush()
	return out
}

func (b *treeBuilder) lines(n gmast.Node) string {
	var sb strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(b.src))
	}
	return sb.String()
}

func (b *treeBuilder) plainText(n gmast.Node) string {
	var sb strings.Builder
	_ = gmast.Walk(n, func(c gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *gmast.Text:
			sb.Write(t.Segment.Value(b.src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *gmast.String:
			sb.Write(t.Value)
		}
		return gmast.WalkContinue, nil
	})
	return normalizeSpace(sb.String())
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// kindOf names goldmark nodes with no explicit mapping. These kinds are
// unknown to the translator.
func kindOf(n gmast.Node) doctree.Kind {
	return doctree.Kind(strings.ToLower(n.Kind().String()))
}
