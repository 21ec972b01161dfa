package doctree

// Kinds with no effect on feature generation. The translator visits their
// children but does nothing for the nodes themselves.
const (
	KindParagraph         Kind = "paragraph"
	KindEmphasis          Kind = "emphasis"
	KindStrong            Kind = "strong"
	KindLiteral           Kind = "literal"
	KindReference         Kind = "reference"
	KindFootnote          Kind = "footnote"
	KindFootnoteReference Kind = "footnote_reference"
	KindCitation          Kind = "citation"
	KindCitationReference Kind = "citation_reference"
	KindImage             Kind = "image"
	KindFigure            Kind = "figure"
	KindCaption           Kind = "caption"
	KindTable             Kind = "table"
	KindTableRow          Kind = "table_row"
	KindTableCell         Kind = "table_cell"
	KindBulletList        Kind = "bullet_list"
	KindEnumeratedList    Kind = "enumerated_list"
	KindListItem          Kind = "list_item"
	KindDefinitionList    Kind = "definition_list"
	KindBlockQuote        Kind = "block_quote"
	KindAdmonition        Kind = "admonition"
	KindNote              Kind = "note"
	KindWarning           Kind = "warning"
	KindTopic             Kind = "topic"
	KindRubric            Kind = "rubric"
	KindTransition        Kind = "transition"
	KindComment           Kind = "comment"
	KindRaw               Kind = "raw"
	KindMeta              Kind = "meta"
	KindMath              Kind = "math"
	KindSubstitution      Kind = "substitution"
	KindTarget            Kind = "target"
	KindIndex             Kind = "index"
	KindLineBlock         Kind = "line_block"
	KindHTMLBlock         Kind = "html_block"
)

// Ignored lists every kind the translator skips on purpose.
var Ignored = []Kind{
	KindParagraph,
	KindEmphasis,
	KindStrong,
	KindLiteral,
	KindReference,
	KindFootnote,
	KindFootnoteReference,
	KindCitation,
	KindCitationReference,
	KindImage,
	KindFigure,
	KindCaption,
	KindTable,
	KindTableRow,
	KindTableCell,
	KindBulletList,
	KindEnumeratedList,
	KindListItem,
	KindDefinitionList,
	KindBlockQuote,
	KindAdmonition,
	KindNote,
	KindWarning,
	KindTopic,
	KindRubric,
	KindTransition,
	KindComment,
	KindRaw,
	KindMeta,
	KindMath,
	KindSubstitution,
	KindTarget,
	KindIndex,
	KindLineBlock,
	KindHTMLBlock,
}

var ignoredSet = func() map[Kind]struct{} {
	m := make(map[Kind]struct{}, len(Ignored))
	for _, k := range Ignored {
		m[k] = struct{}{}
	}
	return m
}()

// IsIgnored reports whether k is in the ignore set.
func IsIgnored(k Kind) bool {
	_, ok := ignoredSet[k]
	return ok
}

// IsKnown reports whether k is either consumed by the translator or ignored.
func IsKnown(k Kind) bool {
	switch k {
	case KindDocument, KindSection, KindTitle, KindStep, KindCodeBlock, KindText:
		return true
	}
	return IsIgnored(k)
}
