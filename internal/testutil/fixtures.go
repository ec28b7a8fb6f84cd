package testutil

import (
	"time"

	"github.com/alexanderramin/showmanager/internal/domain"
)

// SessionOption customises a fixture session.
type SessionOption func(*domain.Session)

func WithRoom(r domain.Room) SessionOption {
	return func(s *domain.Session) {
		s.Room = r
	}
}

func WithAudience(pcg, commercial, adverse int) SessionOption {
	return func(s *domain.Session) {
		s.AudiencePCG = pcg
		s.AudienceCommercial = commercial
		s.AudienceAdverse = adverse
	}
}

func WithNotes(notes string) SessionOption {
	return func(s *domain.Session) {
		s.Notes = notes
	}
}

// NewTestSession builds a session for eventName on date (DD/MM/YYYY) in the
// Arena with no audience. It panics on a malformed date.
func NewTestSession(eventName, date string, opts ...SessionOption) *domain.Session {
	d, err := domain.ParseDate(date)
	if err != nil {
		panic(err)
	}
	s := &domain.Session{
		Date:      d,
		EventName: eventName,
		Room:      domain.RoomArena,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Recompute()
	return s
}

// Date is a test shorthand for a UTC calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
