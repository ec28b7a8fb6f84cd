// Package chart renders report panels as SVG documents.
package chart

import (
	"bytes"
	"fmt"
	"io"

	"github.com/alexanderramin/showmanager/internal/report"
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// DefaultFileName is the export name used when none is given.
const DefaultFileName = "grafico_espetaculos.svg"

const (
	PanelWidth  = 700
	PanelHeight = 500
)

// palette is applied to bars, slices and series in order.
var palette = []drawing.Color{
	drawing.ColorFromHex("42B883"),
	drawing.ColorFromHex("5E81AC"),
	drawing.ColorFromHex("BF616A"),
	drawing.ColorFromHex("D08770"),
	drawing.ColorFromHex("EBCB8B"),
}

var (
	background = drawing.ColorFromHex("2B2B2B")
	foreground = drawing.ColorFromHex("DCE4EE")
)

func color(i int) drawing.Color {
	return palette[i%len(palette)]
}

// RenderPanel writes one panel as a standalone SVG of the given size. Panels
// with nothing to draw become a titled placeholder, never an error.
func RenderPanel(w io.Writer, p report.Panel, width, height int) error {
	if msg := p.Placeholder(); msg != "" {
		return renderPlaceholder(w, p.DisplayTitle(), msg, width, height)
	}
	switch p.Kind {
	case report.KindRooms:
		if p.Total() == 0 {
			return renderPlaceholder(w, p.DisplayTitle(), "Sem dados de sala", width, height)
		}
		return renderPie(w, p, width, height)
	case report.KindRoomsMonthly:
		return renderLines(w, p, width, height)
	default:
		return renderBars(w, p, width, height)
	}
}

// RenderComparison writes both panels side by side in one SVG document.
func RenderComparison(w io.Writer, panels [2]report.Panel) error {
	var parts [2]bytes.Buffer
	for i, p := range panels {
		if err := RenderPanel(&parts[i], p, PanelWidth, PanelHeight); err != nil {
			return fmt.Errorf("rendering %s: %w", p.DisplayTitle(), err)
		}
	}
	if _, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`, 2*PanelWidth, PanelHeight); err != nil {
		return err
	}
	for i := range parts {
		if _, err := fmt.Fprintf(w, `<g transform="translate(%d,0)">`, i*PanelWidth); err != nil {
			return err
		}
		if _, err := w.Write(stripProlog(parts[i].Bytes())); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</g>`); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</svg>`)
	return err
}

// stripProlog drops a leading XML declaration so the document can be nested.
func stripProlog(doc []byte) []byte {
	doc = bytes.TrimSpace(doc)
	if bytes.HasPrefix(doc, []byte("<?xml")) {
		if end := bytes.Index(doc, []byte("?>")); end >= 0 {
			doc = bytes.TrimSpace(doc[end+2:])
		}
	}
	return doc
}

func canvasStyle() gochart.Style {
	return gochart.Style{
		FillColor: background,
		Padding:   gochart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20},
	}
}

func titleStyle() gochart.Style {
	return gochart.Style{FontColor: foreground, FontSize: 14}
}

func axisStyle() gochart.Style {
	return gochart.Style{FontColor: foreground, StrokeColor: foreground}
}

// yRange pins the value axis at zero with headroom above the tallest bar, so
// an all-zero panel still has a drawable range.
func yRange(p report.Panel) *gochart.ContinuousRange {
	top := float64(p.Max()) * 1.18
	if top < 1 {
		top = 1
	}
	return &gochart.ContinuousRange{Min: 0, Max: top}
}

func renderBars(w io.Writer, p report.Panel, width, height int) error {
	bars := make([]gochart.Value, len(p.Bars))
	single := p.Kind == report.KindMonthly
	for i, b := range p.Bars {
		c := color(i)
		if single {
			c = color(0)
		}
		bars[i] = gochart.Value{
			Label: fmt.Sprintf("%s %d", b.Label, b.Value),
			Value: float64(b.Value),
			Style: gochart.Style{FillColor: c, StrokeColor: c},
		}
	}
	bc := gochart.BarChart{
		Title:      p.DisplayTitle(),
		TitleStyle: titleStyle(),
		Width:      width,
		Height:     height,
		Background: canvasStyle(),
		Canvas:     gochart.Style{FillColor: background},
		BarSpacing: 8,
		XAxis:      axisStyle(),
		YAxis: gochart.YAxis{
			Style: axisStyle(),
			Range: yRange(p),
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}
	return bc.Render(gochart.SVG, w)
}

func renderPie(w io.Writer, p report.Panel, width, height int) error {
	var values []gochart.Value
	for i, s := range p.Slices {
		if s.Value == 0 {
			continue
		}
		c := color(i)
		values = append(values, gochart.Value{
			Label: fmt.Sprintf("%s %d (%.1f%%)", s.Room, s.Value, s.Percent),
			Value: float64(s.Value),
			Style: gochart.Style{FillColor: c, StrokeColor: background, FontColor: drawing.ColorWhite},
		})
	}
	pc := gochart.PieChart{
		Title:      p.DisplayTitle(),
		TitleStyle: titleStyle(),
		Width:      width,
		Height:     height,
		Background: canvasStyle(),
		Canvas:     gochart.Style{FillColor: background},
		Values:     values,
	}
	return pc.Render(gochart.SVG, w)
}

// renderLines draws one line per room across the twelve months.
func renderLines(w io.Writer, p report.Panel, width, height int) error {
	ticks := make([]gochart.Tick, 0, 12)
	for i := range 12 {
		ticks = append(ticks, gochart.Tick{Value: float64(i + 1), Label: monthLabel(p, i)})
	}
	series := make([]gochart.Series, 0, len(p.Series))
	for i, s := range p.Series {
		xs := make([]float64, len(s.Bars))
		ys := make([]float64, len(s.Bars))
		for m, b := range s.Bars {
			xs[m] = float64(m + 1)
			ys[m] = float64(b.Value)
		}
		series = append(series, gochart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   gochart.Style{StrokeColor: color(i), StrokeWidth: 2, DotColor: color(i), DotWidth: 3},
		})
	}
	graph := gochart.Chart{
		Title:      p.DisplayTitle(),
		TitleStyle: titleStyle(),
		Width:      width,
		Height:     height,
		Background: canvasStyle(),
		Canvas:     gochart.Style{FillColor: background},
		XAxis:      gochart.XAxis{Name: "Mês", NameStyle: axisStyle(), Style: axisStyle(), Ticks: ticks},
		YAxis:      gochart.YAxis{Name: "Total de Público", NameStyle: axisStyle(), Style: axisStyle(), Range: yRange(p)},
		Series:     series,
	}
	graph.Elements = []gochart.Renderable{gochart.LegendLeft(&graph)}
	return graph.Render(gochart.SVG, w)
}

func monthLabel(p report.Panel, i int) string {
	if len(p.Series) > 0 && i < len(p.Series[0].Bars) {
		return p.Series[0].Bars[i].Label
	}
	return ""
}

// renderPlaceholder draws the title and a centred message on an empty canvas
// using the chart library's SVG renderer directly.
func renderPlaceholder(w io.Writer, title, msg string, width, height int) error {
	r, err := gochart.SVG(width, height)
	if err != nil {
		return err
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return err
	}

	r.SetFillColor(background)
	r.MoveTo(0, 0)
	r.LineTo(width, 0)
	r.LineTo(width, height)
	r.LineTo(0, height)
	r.Close()
	r.Fill()

	r.SetFont(font)
	r.SetFontColor(foreground)

	r.SetFontSize(14)
	tb := r.MeasureText(title)
	r.Text(title, (width-tb.Width())/2, 40)

	r.SetFontSize(12)
	mb := r.MeasureText(msg)
	r.Text(msg, (width-mb.Width())/2, height/2)

	return r.Save(w)
}
