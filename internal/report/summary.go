package report

import (
	"sort"

	"github.com/alexanderramin/showmanager/internal/domain"
)

// NoRoom is shown as the most used room when there are no sessions.
const NoRoom = "N/A"

// Summary is the one-line rollup shown under a comparison.
type Summary struct {
	Records int
	Total   int
	TopRoom string
}

// Summarize counts sessions, sums their totals and finds the room used most
// often. Ties go to the alphabetically first room.
func Summarize(sessions []*domain.Session) Summary {
	sum := Summary{Records: len(sessions), TopRoom: NoRoom}
	counts := make(map[domain.Room]int)
	for _, s := range sessions {
		sum.Total += s.Total
		counts[s.Room]++
	}

	rooms := make([]domain.Room, 0, len(counts))
	for r := range counts {
		rooms = append(rooms, r)
	}
	sort.Slice(rooms, func(i, j int) bool {
		if counts[rooms[i]] != counts[rooms[j]] {
			return counts[rooms[i]] > counts[rooms[j]]
		}
		return rooms[i] < rooms[j]
	})
	if len(rooms) > 0 {
		sum.TopRoom = string(rooms[0])
	}
	return sum
}
