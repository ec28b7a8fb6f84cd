package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidRoom is returned when a room name is not one of the venue rooms.
var ErrInvalidRoom = errors.New("invalid room")

type Room string

const (
	RoomArena    Room = "Arena"
	RoomMultiuso Room = "Multiuso"
	RoomMezanino Room = "Mezanino"
)

// Rooms lists the venue rooms in display order.
var Rooms = []Room{RoomArena, RoomMultiuso, RoomMezanino}

// roomAliases maps legacy spellings found in older data to canonical rooms.
var roomAliases = map[string]Room{
	"sala multiuso": RoomMultiuso,
	"sala arena":    RoomArena,
	"sala mezanino": RoomMezanino,
}

// IsKnown reports whether r is one of the canonical venue rooms.
func (r Room) IsKnown() bool {
	for _, known := range Rooms {
		if r == known {
			return true
		}
	}
	return false
}

// NormalizeRoom maps a stored or typed room name onto its canonical form.
// Unknown names are returned trimmed but otherwise unchanged.
func NormalizeRoom(name string) Room {
	trimmed := strings.TrimSpace(name)
	lower := strings.ToLower(trimmed)
	for _, known := range Rooms {
		if lower == strings.ToLower(string(known)) {
			return known
		}
	}
	if r, ok := roomAliases[lower]; ok {
		return r
	}
	return Room(trimmed)
}

// ParseRoom is NormalizeRoom restricted to the canonical rooms.
func ParseRoom(name string) (Room, error) {
	r := NormalizeRoom(name)
	if !r.IsKnown() {
		return "", fmt.Errorf("room %q (expected one of %s): %w", name, roomList(), ErrInvalidRoom)
	}
	return r, nil
}

// MatchKeys returns the lower-cased stored spellings that normalize to r,
// canonical name first. Used to match legacy rows when filtering by room.
func (r Room) MatchKeys() []string {
	keys := []string{strings.ToLower(string(r))}
	var aliases []string
	for alias, canonical := range roomAliases {
		if canonical == r {
			aliases = append(aliases, alias)
		}
	}
	sort.Strings(aliases)
	return append(keys, aliases...)
}

func roomList() string {
	names := make([]string, len(Rooms))
	for i, r := range Rooms {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}
