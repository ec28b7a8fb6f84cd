package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/showmanager/internal/app"
	"github.com/alexanderramin/showmanager/internal/domain"
)

// SessionColumns are the history table headings; ID and counts align right.
var SessionColumns = []Column{
	{Title: "ID", Right: true},
	{Title: "Data"},
	{Title: "Dia"},
	{Title: "Evento"},
	{Title: "Sala"},
	{Title: "PCG", Right: true},
	{Title: "Com.", Right: true},
	{Title: "Adv.", Right: true},
	{Title: "PCG+COM", Right: true},
	{Title: "Total", Right: true},
	{Title: "Obs"},
}

const (
	maxEventWidth = 32
	maxNotesWidth = 24
)

// SessionRow returns the history table cells of one session.
func SessionRow(s *domain.Session) []string {
	return []string{
		strconv.FormatInt(s.ID, 10),
		s.DateString(),
		s.Weekday,
		Truncate(s.EventName, maxEventWidth),
		string(s.Room),
		FormatCount(s.AudiencePCG),
		FormatCount(s.AudienceCommercial),
		FormatCount(s.AudienceAdverse),
		FormatCount(s.Combined),
		FormatCount(s.Total),
		Truncate(s.Notes, maxNotesWidth),
	}
}

// FormatSessionList renders the history table with a record count footer.
func FormatSessionList(sessions []*domain.Session) string {
	if len(sessions) == 0 {
		return Dim("No sessions found.") + "\n"
	}
	rows := make([][]string, len(sessions))
	for i, s := range sessions {
		rows[i] = SessionRow(s)
	}
	var b strings.Builder
	b.WriteString(RenderTable(SessionColumns, rows))
	b.WriteString(Dim(fmt.Sprintf("%d registro(s)", len(sessions))))
	b.WriteString("\n")
	return b.String()
}

// FormatSession renders every field of one session inside a box.
func FormatSession(s *domain.Session) string {
	notes := s.Notes
	if notes == "" {
		notes = Dim("—")
	}
	lines := []string{
		field("Evento", Bold(s.EventName)),
		field("Data", fmt.Sprintf("%s (%s)", s.DateString(), s.Weekday)),
		field("Sala", RoomStyle(s.Room).Render(string(s.Room))),
		field("PCG", FormatCount(s.AudiencePCG)),
		field("Comerciário", FormatCount(s.AudienceCommercial)),
		field("Adversos", FormatCount(s.AudienceAdverse)),
		field("PCG+COM", FormatCount(s.Combined)),
		field("Total", Bold(FormatCount(s.Total))),
		field("Obs", notes),
	}
	return RenderBox(fmt.Sprintf("Sessão #%d", s.ID), strings.Join(lines, "\n")) + "\n"
}

// FormatRegistered confirms a register run with one line per session.
func FormatRegistered(resp *app.RegisterResponse) string {
	var b strings.Builder
	b.WriteString(StyleGreen.Render(fmt.Sprintf("✔ %d sessão(ões) registrada(s)", len(resp.Sessions))))
	b.WriteString("\n")
	for _, s := range resp.Sessions {
		b.WriteString(fmt.Sprintf("  #%d  %s  %s  %s  total %s\n",
			s.ID, s.DateString(), s.Weekday, s.Room, FormatCount(s.Total)))
	}
	return b.String()
}

// FormatEventDeleted confirms the removal of every session of an event.
func FormatEventDeleted(resp *app.DeleteEventResponse) string {
	return StyleGreen.Render(fmt.Sprintf("✔ Evento %q removido (%d sessão(ões))", resp.EventName, resp.Deleted)) + "\n"
}

// FormatYears lists the years that have sessions, newest first.
func FormatYears(years []int) string {
	if len(years) == 0 {
		return Dim("Nenhum ano com registros.") + "\n"
	}
	parts := make([]string, len(years))
	for i, y := range years {
		parts[i] = strconv.Itoa(y)
	}
	return strings.Join(parts, "\n") + "\n"
}

func field(label, value string) string {
	return StyleDim.Render(PadRight(label, 12)) + " " + value
}
