package app

import (
	"time"

	"github.com/alexanderramin/showmanager/internal/domain"
)

// Audience holds the three segment counts typed for a session.
type Audience struct {
	PCG        int `validate:"gte=0"`
	Commercial int `validate:"gte=0"`
	Adverse    int `validate:"gte=0"`
}

// RegisterRequest describes a run of sessions of one event: every date in
// [From, To] whose weekday is in Weekdays. An empty To means From only and
// empty Weekdays means every day in the range.
type RegisterRequest struct {
	EventName string `validate:"required"`
	Room      string `validate:"required"`
	From      string `validate:"required"`
	To        string
	Weekdays  []time.Weekday
	Notes     string

	// Audience is the quick-fill count applied to every generated session.
	Audience Audience
	// PerDate overrides Audience for individual dates, keyed DD/MM/YYYY.
	PerDate map[string]Audience `validate:"dive"`
}

type RegisterResponse struct {
	Sessions []*domain.Session
}

// SessionFilter is the history search typed by the user. Year is kept as
// text so that a non-numeric entry can be rejected.
type SessionFilter struct {
	Name string
	Room string
	Year string `validate:"omitempty,numeric,len=4"`
}

type DeleteEventResponse struct {
	EventName string
	Deleted   int64
}
