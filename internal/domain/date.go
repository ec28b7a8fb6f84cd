package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the persisted and user-facing date form (DD/MM/YYYY).
const DateLayout = "02/01/2006"

// ErrInvalidDate is returned when a date is not in DD/MM/YYYY form.
var ErrInvalidDate = errors.New("invalid date")

var weekdayNames = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

// MonthAbbrev holds the Portuguese month labels used on charts, Jan..Dez.
var MonthAbbrev = [12]string{"Jan", "Fev", "Mar", "Abr", "Mai", "Jun", "Jul", "Ago", "Set", "Out", "Nov", "Dez"}

// weekdayKeys accepts the short labels offered on the register form
// alongside full names and English abbreviations.
var weekdayKeys = map[string]time.Weekday{
	"dom": time.Sunday, "domingo": time.Sunday, "sun": time.Sunday,
	"seg": time.Monday, "segunda": time.Monday, "segunda-feira": time.Monday, "mon": time.Monday,
	"ter": time.Tuesday, "terça": time.Tuesday, "terca": time.Tuesday, "terça-feira": time.Tuesday, "tue": time.Tuesday,
	"qua": time.Wednesday, "quarta": time.Wednesday, "quarta-feira": time.Wednesday, "wed": time.Wednesday,
	"qui": time.Thursday, "quinta": time.Thursday, "quinta-feira": time.Thursday, "thu": time.Thursday,
	"sex": time.Friday, "sexta": time.Friday, "sexta-feira": time.Friday, "fri": time.Friday,
	"sab": time.Saturday, "sáb": time.Saturday, "sábado": time.Saturday, "sabado": time.Saturday, "sat": time.Saturday,
}

// ParseDate parses a DD/MM/YYYY date into a UTC midnight time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%q (expected DD/MM/YYYY): %w", s, ErrInvalidDate)
	}
	return t, nil
}

// FormatDate renders t in DD/MM/YYYY form.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// WeekdayName returns the Portuguese weekday name for t, e.g. "domingo".
func WeekdayName(t time.Time) string {
	return weekdayNames[t.Weekday()]
}

// ShortWeekdayName returns the capitalised short label used on forms ("Dom", "Seg", ...).
func ShortWeekdayName(d time.Weekday) string {
	name := weekdayNames[d]
	short := []rune(name)
	if len(short) > 3 {
		short = short[:3]
	}
	return strings.ToUpper(string(short[:1])) + string(short[1:])
}

// ParseWeekday accepts a Portuguese or English weekday label.
func ParseWeekday(s string) (time.Weekday, error) {
	d, ok := weekdayKeys[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", s)
	}
	return d, nil
}

// DatesOnWeekdays returns every date in [from, to] whose weekday is in days.
func DatesOnWeekdays(from, to time.Time, days []time.Weekday) []time.Time {
	want := make(map[time.Weekday]bool, len(days))
	for _, d := range days {
		want[d] = true
	}
	var dates []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if want[d.Weekday()] {
			dates = append(dates, d)
		}
	}
	return dates
}
