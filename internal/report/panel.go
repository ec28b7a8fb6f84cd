package report

import (
	"fmt"

	"github.com/alexanderramin/showmanager/internal/domain"
)

// Segment labels used by the annual and Sunday reports.
const (
	LabelPCG        = "PCG"
	LabelCommercial = "Comerciário"
	LabelAdverse    = "Adversos"
)

// Semester labels.
const (
	LabelFirstSemester  = "1º Semestre"
	LabelSecondSemester = "2º Semestre"
)

// Bar is one labelled value of a bar chart.
type Bar struct {
	Label string
	Value int
}

// Slice is one room's share of the year total.
type Slice struct {
	Room    domain.Room
	Value   int
	Percent float64
}

// Series is a named row of bars, one per month for the rooms-monthly report.
type Series struct {
	Name string
	Bars []Bar
}

// Panel is the aggregate of one year for one report kind. Exactly one of
// Bars, Slices or Series is populated, depending on Kind.
type Panel struct {
	Kind  Kind
	Year  int
	Title string

	Bars   []Bar
	Slices []Slice
	Series []Series

	// Sessions counts the sessions of Year that fed the panel.
	Sessions int
	// NoData is set by the Sunday report when no session fell on a Sunday.
	// It is distinct from a panel whose values are all zero.
	NoData bool
}

// Empty reports whether the year had no sessions at all.
func (p Panel) Empty() bool {
	return p.Sessions == 0
}

// Placeholder returns the message shown instead of a chart, or "" when the
// panel has something to draw.
func (p Panel) Placeholder() string {
	switch {
	case p.Empty():
		return fmt.Sprintf("Sem dados para %d", p.Year)
	case p.NoData:
		return "Sem dados para domingos"
	}
	return ""
}

// DisplayTitle is Title, or the generic analysis title when the year is empty.
func (p Panel) DisplayTitle() string {
	if p.Empty() {
		return fmt.Sprintf("Análise %d", p.Year)
	}
	return p.Title
}

// Total sums every value drawn by the panel.
func (p Panel) Total() int {
	total := 0
	for _, b := range p.Bars {
		total += b.Value
	}
	for _, s := range p.Slices {
		total += s.Value
	}
	for _, s := range p.Series {
		for _, b := range s.Bars {
			total += b.Value
		}
	}
	return total
}

// Max returns the largest single value drawn by the panel.
func (p Panel) Max() int {
	top := 0
	for _, b := range p.Bars {
		if b.Value > top {
			top = b.Value
		}
	}
	for _, s := range p.Slices {
		if s.Value > top {
			top = s.Value
		}
	}
	for _, s := range p.Series {
		for _, b := range s.Bars {
			if b.Value > top {
				top = b.Value
			}
		}
	}
	return top
}

// Bar returns the value of the bar with the given label.
func (p Panel) Bar(label string) (int, bool) {
	for _, b := range p.Bars {
		if b.Label == label {
			return b.Value, true
		}
	}
	return 0, false
}

// Slice returns the share of the given room.
func (p Panel) Slice(room domain.Room) (Slice, bool) {
	for _, s := range p.Slices {
		if s.Room == room {
			return s, true
		}
	}
	return Slice{}, false
}
