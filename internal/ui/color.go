package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
)

var (
	genStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	skpStyle     = lipgloss.NewStyle().Faint(true)
	errStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	keywordStyle = lipgloss.NewStyle().Bold(true)
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	docStyle     = lipgloss.NewStyle().Faint(true)
)

var stepKeywords = []string{"Given ", "When ", "Then ", "And ", "But "}

func GenLine(w io.Writer, path string) {
	fmt.Fprintln(w, genStyle.Render("gen")+"  "+path)
}

func SkpLine(w io.Writer, path string) {
	fmt.Fprintln(w, skpStyle.Render("skp")+"  "+path)
}

func ErrLine(w io.Writer, path string, err error) {
	fmt.Fprintln(w, errStyle.Render("err")+"  "+path+": "+err.Error())
}

func OkLine(w io.Writer, path string) {
	fmt.Fprintln(w, genStyle.Render("ok ")+"  "+path)
}

func SummaryLine(w io.Writer, generated, skipped, failed int) {
	fmt.Fprintf(w, "generated %d, skipped %d, failed %d\n", generated, skipped, failed)
}

func ListRow(w io.Writer, doc string, position int, name string, docWidth int) {
	fmt.Fprintf(w, "%-*s  %3d  %s\n", docWidth, doc, position, name)
}

// DocumentRow is one line of DocumentTable.
type DocumentRow struct {
	Document  string
	Scenarios int
	Target    string
}

// DocumentTable prints generated documents with a total footer.
func DocumentTable(w io.Writer, rows []DocumentRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Document", "Scenarios", "Feature"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	total := 0
	for _, r := range rows {
		table.Append([]string{r.Document, fmt.Sprintf("%d", r.Scenarios), r.Target})
		total += r.Scenarios
	}
	table.SetFooter([]string{fmt.Sprintf("%d documents", len(rows)), fmt.Sprintf("%d", total), ""})
	table.Render()
}

// ShowFeature prints feature text with keywords highlighted.
func ShowFeature(w io.Writer, content string) {
	inDocString := false
	for _, line := range strings.Split(strings.TrimSuffix(content, "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]

		switch {
		case trimmed == `"""`:
			inDocString = !inDocString
			fmt.Fprintln(w, docStyle.Render(line))
		case inDocString:
			fmt.Fprintln(w, docStyle.Render(line))
		case strings.HasPrefix(trimmed, "Feature:"), strings.HasPrefix(trimmed, "Scenario:"):
			kw, rest, _ := strings.Cut(trimmed, ":")
			fmt.Fprintln(w, lead+keywordStyle.Render(kw+":")+rest)
		default:
			fmt.Fprintln(w, lead+highlightStep(trimmed))
		}
	}
}

func highlightStep(line string) string {
	for _, kw := range stepKeywords {
		if strings.HasPrefix(line, kw) {
			return stepStyle.Render(strings.TrimSpace(kw)) + " " + strings.TrimPrefix(line, kw)
		}
	}
	return line
}
