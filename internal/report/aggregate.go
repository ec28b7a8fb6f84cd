package report

import (
	"sort"
	"time"

	"github.com/alexanderramin/showmanager/internal/domain"
)

// Build aggregates the sessions that fall in year into one panel of the
// given kind. Sessions from other years are ignored, so callers may pass the
// whole store. A year without sessions yields a complete zero-valued panel;
// the Sunday report additionally sets NoData when no session is on a Sunday.
func Build(kind Kind, year int, sessions []*domain.Session) Panel {
	var inYear []*domain.Session
	for _, s := range sessions {
		if s.Year() == year {
			inYear = append(inYear, s)
		}
	}

	p := Panel{Kind: kind, Year: year, Title: kind.Title(year), Sessions: len(inYear)}
	switch kind {
	case KindMonthly:
		p.Bars = monthly(inYear)
	case KindSemester:
		p.Bars = semester(inYear)
	case KindAnnual:
		p.Bars = segments(inYear)
	case KindSundays:
		var sundays []*domain.Session
		for _, s := range inYear {
			if s.IsSunday() {
				sundays = append(sundays, s)
			}
		}
		p.NoData = len(sundays) == 0
		if !p.NoData {
			p.Bars = segments(sundays)
		}
	case KindRooms:
		p.Slices = rooms(inYear)
	case KindRoomsMonthly:
		p.Series = roomsMonthly(inYear)
	}
	return p
}

// Compare builds the same report kind for two years independently.
func Compare(kind Kind, year1, year2 int, sessions []*domain.Session) [2]Panel {
	return [2]Panel{Build(kind, year1, sessions), Build(kind, year2, sessions)}
}

func monthBars() []Bar {
	bars := make([]Bar, 12)
	for i := range bars {
		bars[i].Label = domain.MonthAbbrev[i]
	}
	return bars
}

func monthly(sessions []*domain.Session) []Bar {
	bars := monthBars()
	for _, s := range sessions {
		bars[s.Date.Month()-1].Value += s.Total
	}
	return bars
}

func semester(sessions []*domain.Session) []Bar {
	bars := []Bar{{Label: LabelFirstSemester}, {Label: LabelSecondSemester}}
	for _, s := range sessions {
		if s.Date.Month() <= time.June {
			bars[0].Value += s.Total
		} else {
			bars[1].Value += s.Total
		}
	}
	return bars
}

func segments(sessions []*domain.Session) []Bar {
	bars := []Bar{{Label: LabelPCG}, {Label: LabelCommercial}, {Label: LabelAdverse}}
	for _, s := range sessions {
		bars[0].Value += s.AudiencePCG
		bars[1].Value += s.AudienceCommercial
		bars[2].Value += s.AudienceAdverse
	}
	return bars
}

// rooms returns one slice per fixed room, in display order, followed by any
// other room name found in the data, alphabetically.
func rooms(sessions []*domain.Session) []Slice {
	totals := make(map[domain.Room]int)
	var extra []domain.Room
	for _, s := range sessions {
		if _, seen := totals[s.Room]; !seen && !s.Room.IsKnown() {
			extra = append(extra, s.Room)
		}
		totals[s.Room] += s.Total
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })

	order := append(append([]domain.Room{}, domain.Rooms...), extra...)
	sum := 0
	for _, r := range order {
		sum += totals[r]
	}
	slices := make([]Slice, len(order))
	for i, r := range order {
		slices[i] = Slice{Room: r, Value: totals[r]}
		if sum > 0 {
			slices[i].Percent = float64(totals[r]) * 100 / float64(sum)
		}
	}
	return slices
}

// roomsMonthly returns one twelve-month series per fixed room. Sessions in
// rooms outside the fixed set are not charted here.
func roomsMonthly(sessions []*domain.Session) []Series {
	series := make([]Series, len(domain.Rooms))
	index := make(map[domain.Room]int, len(domain.Rooms))
	for i, r := range domain.Rooms {
		series[i] = Series{Name: string(r), Bars: monthBars()}
		index[r] = i
	}
	for _, s := range sessions {
		if i, ok := index[s.Room]; ok {
			series[i].Bars[s.Date.Month()-1].Value += s.Total
		}
	}
	return series
}
