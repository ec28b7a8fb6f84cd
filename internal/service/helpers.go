package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/showmanager/internal/domain"
)

// sortByDateDesc orders sessions newest first, breaking ties by newest ID.
func sortByDateDesc(sessions []*domain.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		if !sessions[i].Date.Equal(sessions[j].Date) {
			return sessions[i].Date.After(sessions[j].Date)
		}
		return sessions[i].ID > sessions[j].ID
	})
}

// parseYear converts validated year text; blank means "any" (0).
func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	y, err := strconv.Atoi(s)
	if err != nil || y <= 0 {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidYear)
	}
	return y, nil
}

func allWeekdays() []time.Weekday {
	days := make([]time.Weekday, 7)
	for i := range days {
		days[i] = time.Weekday(i)
	}
	return days
}
