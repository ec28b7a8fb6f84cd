package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecompute_DerivedFields(t *testing.T) {
	s := &Session{
		Date:               time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC),
		AudiencePCG:        10,
		AudienceCommercial: 5,
		AudienceAdverse:    2,
		Combined:           999,
		Total:              999,
	}
	s.Recompute()

	assert.Equal(t, "domingo", s.Weekday)
	assert.Equal(t, 15, s.Combined)
	assert.Equal(t, 17, s.Total)
	assert.Equal(t, s.AudiencePCG+s.AudienceCommercial, s.Combined)
	assert.Equal(t, s.Combined+s.AudienceAdverse, s.Total)
}

func TestValidate(t *testing.T) {
	valid := func() *Session {
		return &Session{
			EventName: "Concerto",
			Date:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Room:      RoomArena,
		}
	}

	require.NoError(t, valid().Validate())

	s := valid()
	s.EventName = ""
	assert.Error(t, s.Validate())

	s = valid()
	s.Date = time.Time{}
	assert.ErrorIs(t, s.Validate(), ErrInvalidDate)

	s = valid()
	s.Room = "Porão"
	assert.ErrorIs(t, s.Validate(), ErrInvalidRoom)

	s = valid()
	s.AudienceAdverse = -1
	assert.Error(t, s.Validate())
}

func TestCheckCounts(t *testing.T) {
	s := &Session{AudiencePCG: 1, AudienceCommercial: 2, AudienceAdverse: 3}
	s.Recompute()
	require.NoError(t, s.CheckCounts())

	s.AudienceCommercial = -1
	s.Recompute()
	assert.ErrorIs(t, s.CheckCounts(), ErrInvalidCount)

	s = &Session{AudiencePCG: math.MaxInt, AudienceCommercial: 1}
	s.Recompute()
	assert.ErrorIs(t, s.CheckCounts(), ErrInvalidCount)
}

func TestWeekdayName_AllDays(t *testing.T) {
	// 2024-01-01 was a Monday.
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	want := []string{"segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado", "domingo"}
	for i, name := range want {
		assert.Equal(t, name, WeekdayName(start.AddDate(0, 0, i)))
	}
}

func TestShortWeekdayName(t *testing.T) {
	assert.Equal(t, "Dom", ShortWeekdayName(time.Sunday))
	assert.Equal(t, "Ter", ShortWeekdayName(time.Tuesday))
	assert.Equal(t, "Sáb", ShortWeekdayName(time.Saturday))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("07/01/2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "07/01/2024", FormatDate(d))

	for _, bad := range []string{"", "2024-01-07", "32/01/2024", "7/1/24", "abc"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", bad)
	}
}

func TestParseWeekday(t *testing.T) {
	d, err := ParseWeekday("Dom")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, d)

	d, err = ParseWeekday("sábado")
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, d)

	_, err = ParseWeekday("someday")
	assert.Error(t, err)
}

func TestDatesOnWeekdays(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)

	dates := DatesOnWeekdays(from, to, []time.Weekday{time.Saturday, time.Sunday})
	require.Len(t, dates, 4)
	assert.Equal(t, "06/01/2024", FormatDate(dates[0]))
	assert.Equal(t, "07/01/2024", FormatDate(dates[1]))
	assert.Equal(t, "13/01/2024", FormatDate(dates[2]))
	assert.Equal(t, "14/01/2024", FormatDate(dates[3]))

	assert.Empty(t, DatesOnWeekdays(to, from, []time.Weekday{time.Monday}))
}

func TestNormalizeRoom(t *testing.T) {
	assert.Equal(t, RoomMultiuso, NormalizeRoom("Sala Multiuso"))
	assert.Equal(t, RoomMultiuso, NormalizeRoom("  multiuso "))
	assert.Equal(t, RoomArena, NormalizeRoom("ARENA"))
	assert.Equal(t, Room("Foyer"), NormalizeRoom("Foyer"))
}

func TestParseRoom(t *testing.T) {
	r, err := ParseRoom("mezanino")
	require.NoError(t, err)
	assert.Equal(t, RoomMezanino, r)

	_, err = ParseRoom("Foyer")
	assert.ErrorIs(t, err, ErrInvalidRoom)
}

func TestRoomMatchKeys(t *testing.T) {
	assert.Equal(t, []string{"multiuso", "sala multiuso"}, RoomMultiuso.MatchKeys())
	assert.Equal(t, "arena", RoomArena.MatchKeys()[0])
}

func TestParseCount(t *testing.T) {
	n, err := ParseCount(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = ParseCount("")
	require.NoError(t, err)
	assert.Zero(t, n)

	for _, bad := range []string{"abc", "-1", "1.5"} {
		_, err := ParseCount(bad)
		assert.ErrorIs(t, err, ErrInvalidCount, "input %q", bad)
	}
}
