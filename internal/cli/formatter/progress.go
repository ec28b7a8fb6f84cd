package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders value against top as a horizontal block bar of width
// cells. A non-zero value always gets at least one filled cell.
func RenderBar(value, top, width int, style lipgloss.Style) string {
	if width < 2 {
		width = 2
	}
	filled := 0
	if top > 0 && value > 0 {
		filled = value * width / top
		if filled == 0 {
			filled = 1
		}
	}
	if filled > width {
		filled = width
	}
	empty := width - filled

	return style.Render(strings.Repeat(filledBlock, filled)) + StyleDim.Render(strings.Repeat(emptyBlock, empty))
}
