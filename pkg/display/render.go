// Package display renders tables and their indexes for terminal output.
package display

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tabula/pkg/table"
)

var (
	primaryColor   = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#A78BFA"}
	secondaryColor = lipgloss.AdaptiveColor{Light: "#0284C7", Dark: "#7DD3FC"}

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor)
)

// Render lays out the table's name, header row and tuples in a bordered
// grid.
func Render(t *table.Table) string {
	desc := t.TupleDesc()

	headers := make([]string, desc.NumFields())
	widths := make([]int, desc.NumFields())
	for i := 0; i < desc.NumFields(); i++ {
		name, _ := desc.FieldName(i)
		headers[i] = name
		widths[i] = lipgloss.Width(name)
	}

	rows := make([][]string, 0, t.NumTuples())
	for _, tup := range t.Tuples() {
		row := make([]string, desc.NumFields())
		for i := 0; i < desc.NumFields(); i++ {
			field, _ := tup.GetField(i)
			if field != nil {
				row[i] = field.String()
			}
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
		rows = append(rows, row)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Table "+t.Name()) + "\n")

	var lines []string
	lines = append(lines, renderRow(headers, widths, headerStyle))
	for _, row := range rows {
		lines = append(lines, renderRow(row, widths, cellStyle))
	}

	b.WriteString(borderStyle.Render(strings.Join(lines, "\n")))
	return b.String()
}

// RenderIndex lays out the index entries in key order, one "key -> tuple"
// line each.
func RenderIndex(t *table.Table) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Index for "+t.Name()) + "\n")

	var lines []string
	for _, entry := range t.IndexEntries() {
		lines = append(lines, cellStyle.Render(entry.Key.String()+" -> "+entry.Tuple.String()))
	}
	if len(lines) == 0 {
		lines = append(lines, cellStyle.Render("(empty)"))
	}

	b.WriteString(borderStyle.Render(strings.Join(lines, "\n")))
	return b.String()
}

func renderRow(cells []string, widths []int, style lipgloss.Style) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		parts[i] = style.Render(pad(cell, widths[i]))
	}
	return strings.Join(parts, "")
}

// pad right-pads to the visible cell width, not the byte length, so
// multibyte runes do not skew the grid.
func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
