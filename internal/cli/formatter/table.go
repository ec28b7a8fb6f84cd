package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Column is one table heading. Numeric columns set Right so counts line up
// on their last digit.
type Column struct {
	Title string
	Right bool
}

const colGap = 2

// RenderTable renders an aligned table with a dim separator under the
// headings. Widths are measured on visible text, so styled cells align.
func RenderTable(cols []Column, rows [][]string) string {
	if len(cols) == 0 {
		return ""
	}

	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = lipgloss.Width(c.Title)
	}
	for _, row := range rows {
		for i := 0; i < len(cols) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	titles := make([]string, len(cols))
	for i, c := range cols {
		titles[i] = c.Title
	}
	writeRow(&b, cols, widths, titles, StyleHeader.Render)

	for i, w := range widths {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(&b, cols, widths, row, nil)
	}
	return b.String()
}

// writeRow pads each cell to its column width. Trailing padding of a
// left-aligned last column is dropped.
func writeRow(b *strings.Builder, cols []Column, widths []int, cells []string, style func(...string) string) {
	last := len(cols) - 1
	for i, c := range cols {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := max(widths[i]-lipgloss.Width(cell), 0)
		if style != nil {
			cell = style(cell)
		}
		if i > 0 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
		switch {
		case c.Right:
			b.WriteString(strings.Repeat(" ", pad) + cell)
		case i == last:
			b.WriteString(cell)
		default:
			b.WriteString(cell + strings.Repeat(" ", pad))
		}
	}
	b.WriteString("\n")
}
