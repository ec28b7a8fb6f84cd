package repository

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// anyRoom reports whether a room filter value means "no room restriction".
func anyRoom(room string) bool {
	room = strings.TrimSpace(room)
	return room == "" || strings.EqualFold(room, "all")
}

// yearKey renders a year the way it appears in the stored DD/MM/YYYY date.
func yearKey(year int) string {
	return fmt.Sprintf("%04d", year)
}

// parseYearKey parses the year component of a stored date.
// ok is false for anything that is not four digits.
func parseYearKey(s string) (int, bool) {
	if len(s) != 4 {
		return 0, false
	}
	y, err := strconv.Atoi(s)
	if err != nil || y <= 0 {
		return 0, false
	}
	return y, true
}

// nameMatcher returns a predicate that reports whether an event name contains
// needle, comparing with Unicode case folding. An empty needle matches all.
func nameMatcher(needle string) func(string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return func(string) bool { return true }
	}
	fold := cases.Fold()
	want := fold.String(needle)
	return func(name string) bool {
		return strings.Contains(fold.String(name), want)
	}
}

// placeholders returns "?, ?, ..." with n markers.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

func nullString(s sql.NullString) string {
	if !s.Valid {
		return ""
	}
	return s.String
}

func nullInt(v sql.NullInt64) int {
	if !v.Valid {
		return 0
	}
	return int(v.Int64)
}
