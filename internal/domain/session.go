package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidCount is returned when an audience count is not a non-negative integer.
var ErrInvalidCount = errors.New("invalid audience count")

// Session is one recorded performance with its audience counts.
// Weekday, Combined and Total are derived; call Recompute after changing
// Date or any audience segment.
type Session struct {
	ID                 int64
	Date               time.Time
	Weekday            string
	EventName          string
	Room               Room
	AudiencePCG        int
	AudienceCommercial int
	AudienceAdverse    int
	Combined           int
	Total              int
	Notes              string
}

// Recompute refreshes the derived fields from Date and the three segments.
func (s *Session) Recompute() {
	s.Weekday = WeekdayName(s.Date)
	s.Combined = s.AudiencePCG + s.AudienceCommercial
	s.Total = s.Combined + s.AudienceAdverse
}

// Validate checks the fields a session must carry before it is written.
func (s *Session) Validate() error {
	if s.EventName == "" {
		return fmt.Errorf("event name is required")
	}
	if s.Date.IsZero() {
		return fmt.Errorf("session date: %w", ErrInvalidDate)
	}
	if !s.Room.IsKnown() {
		return fmt.Errorf("room %q: %w", s.Room, ErrInvalidRoom)
	}
	return s.CheckCounts()
}

// CheckCounts rejects negative audience segments and derived sums that
// overflowed. Stores call it even for rows that skip full validation.
func (s *Session) CheckCounts() error {
	if s.AudiencePCG < 0 || s.AudienceCommercial < 0 || s.AudienceAdverse < 0 {
		return fmt.Errorf("audience counts must not be negative: %w", ErrInvalidCount)
	}
	if s.Combined < 0 || s.Total < 0 {
		return fmt.Errorf("audience total overflowed: %w", ErrInvalidCount)
	}
	return nil
}

// Year returns the calendar year of the session date.
func (s *Session) Year() int {
	return s.Date.Year()
}

// IsSunday reports whether the session falls on a Sunday.
func (s *Session) IsSunday() bool {
	return s.Date.Weekday() == time.Sunday
}

// DateString returns the date in the persisted DD/MM/YYYY form.
func (s *Session) DateString() string {
	return FormatDate(s.Date)
}

// ParseCount parses a typed audience count. Blank input counts as zero.
func ParseCount(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidCount)
	}
	return n, nil
}
