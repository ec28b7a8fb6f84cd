package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/showmanager/internal/app"
	"github.com/alexanderramin/showmanager/internal/domain"
	"github.com/alexanderramin/showmanager/internal/report"
	"github.com/charmbracelet/lipgloss"
)

const (
	panelBarWidth  = 24
	panelGap       = 2
	compactBarSize = 10
)

// FormatPanel renders one year of a report as a titled box of bars.
func FormatPanel(p report.Panel) string {
	return RenderBox(p.DisplayTitle(), panelBody(p))
}

func panelBody(p report.Panel) string {
	if msg := p.Placeholder(); msg != "" {
		return StyleYellow.Render(msg)
	}
	switch {
	case p.Kind == report.KindRooms:
		return roomShares(p)
	case p.Kind == report.KindRoomsMonthly:
		return roomSeries(p)
	default:
		return barRows(p)
	}
}

func barRows(p report.Panel) string {
	labelWidth := 0
	for _, b := range p.Bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
	}
	top := p.Max()
	segmented := p.Kind == report.KindAnnual || p.Kind == report.KindSundays

	lines := make([]string, len(p.Bars))
	for i, b := range p.Bars {
		style := StyleGreen
		if segmented {
			style = SeriesStyle(i)
		}
		lines[i] = fmt.Sprintf("%s  %s %s",
			PadRight(b.Label, labelWidth),
			RenderBar(b.Value, top, panelBarWidth, style),
			FormatCount(b.Value))
	}
	return strings.Join(lines, "\n")
}

func roomShares(p report.Panel) string {
	if p.Total() == 0 {
		return StyleYellow.Render("Sem dados de sala")
	}
	labelWidth := 0
	for _, s := range p.Slices {
		labelWidth = max(labelWidth, lipgloss.Width(string(s.Room)))
	}

	lines := make([]string, len(p.Slices))
	for i, s := range p.Slices {
		lines[i] = fmt.Sprintf("%s  %s %6s  %s",
			PadRight(string(s.Room), labelWidth),
			RenderBar(int(s.Percent*10), 1000, panelBarWidth, RoomStyle(s.Room)),
			FormatPercent(s.Percent),
			Dim(FormatCount(s.Value)))
	}
	return strings.Join(lines, "\n")
}

// roomSeries lays one compact bar per room under each month.
func roomSeries(p report.Panel) string {
	if len(p.Series) == 0 {
		return ""
	}
	top := p.Max()
	nameWidth := 0
	for _, s := range p.Series {
		nameWidth = max(nameWidth, lipgloss.Width(s.Name))
	}

	var b strings.Builder
	for m := range p.Series[0].Bars {
		if m > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Bold(p.Series[0].Bars[m].Label))
		b.WriteString("\n")
		for _, s := range p.Series {
			value := s.Bars[m].Value
			style := RoomStyle(domain.NormalizeRoom(s.Name))
			b.WriteString(fmt.Sprintf("  %s %s %s\n",
				PadRight(s.Name, nameWidth),
				RenderBar(value, top, compactBarSize, style),
				FormatCount(value)))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatSummary renders the one-line rollup shown under a comparison.
func FormatSummary(s report.Summary) string {
	return fmt.Sprintf("Total de Registros: %s | Público Total (Geral): %s | Sala Mais Usada: %s",
		FormatCount(s.Records), FormatCount(s.Total), s.TopRoom)
}

// FormatComparison renders both panels side by side with the summary line.
func FormatComparison(resp *app.ReportResponse) string {
	left := FormatPanel(resp.Panels[0])
	right := FormatPanel(resp.Panels[1])

	var b strings.Builder
	b.WriteString(Header(resp.Kind.DisplayName()))
	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", panelGap), right))
	b.WriteString("\n")
	b.WriteString(StyleBold.Render(FormatSummary(resp.Summary)))
	b.WriteString("\n")
	return b.String()
}
