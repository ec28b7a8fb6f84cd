package formatter

import (
	"testing"

	"github.com/alexanderramin/showmanager/internal/app"
	"github.com/alexanderramin/showmanager/internal/domain"
	"github.com/alexanderramin/showmanager/internal/report"
	"github.com/alexanderramin/showmanager/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func sampleSessions() []*domain.Session {
	return []*domain.Session{
		testutil.NewTestSession("A", "07/01/2024", testutil.WithAudience(10, 5, 2)),
		testutil.NewTestSession("B", "10/01/2024", testutil.WithAudience(3, 1, 0), testutil.WithRoom(domain.RoomMultiuso)),
		testutil.NewTestSession("C", "15/08/2024", testutil.WithAudience(100, 0, 0), testutil.WithRoom(domain.RoomMezanino)),
	}
}

func TestFormatPanel_Monthly(t *testing.T) {
	p := report.Build(report.KindMonthly, 2024, sampleSessions())
	out := stripANSI(FormatPanel(p))

	assert.Contains(t, out, "PÚBLICO MENSAL EM 2024")
	for _, m := range domain.MonthAbbrev {
		assert.Contains(t, out, m)
	}
	assert.Contains(t, out, "21")
	assert.Contains(t, out, "100")
	assert.Contains(t, out, filledBlock)
}

func TestFormatPanel_EmptyYear(t *testing.T) {
	p := report.Build(report.KindMonthly, 2019, sampleSessions())
	out := stripANSI(FormatPanel(p))

	assert.Contains(t, out, "ANÁLISE 2019")
	assert.Contains(t, out, "Sem dados para 2019")
	assert.NotContains(t, out, filledBlock)
}

func TestFormatPanel_SundaysNoData(t *testing.T) {
	sessions := []*domain.Session{testutil.NewTestSession("A", "06/01/2024", testutil.WithAudience(1, 1, 1))}
	p := report.Build(report.KindSundays, 2024, sessions)

	assert.Contains(t, stripANSI(FormatPanel(p)), "Sem dados para domingos")
}

func TestFormatPanel_Annual(t *testing.T) {
	p := report.Build(report.KindAnnual, 2024, sampleSessions())
	out := stripANSI(FormatPanel(p))

	assert.Contains(t, out, report.LabelPCG)
	assert.Contains(t, out, report.LabelCommercial)
	assert.Contains(t, out, report.LabelAdverse)
	assert.Contains(t, out, "113")
}

func TestFormatPanel_RoomsShowsPercentages(t *testing.T) {
	p := report.Build(report.KindRooms, 2024, sampleSessions())
	out := stripANSI(FormatPanel(p))

	assert.Contains(t, out, "Arena")
	assert.Contains(t, out, "Multiuso")
	assert.Contains(t, out, "Mezanino")
	assert.Contains(t, out, "%")
}

func TestFormatPanel_RoomsAllZero(t *testing.T) {
	sessions := []*domain.Session{testutil.NewTestSession("A", "06/01/2024")}
	p := report.Build(report.KindRooms, 2024, sessions)

	assert.Contains(t, stripANSI(FormatPanel(p)), "Sem dados de sala")
}

func TestFormatPanel_RoomsMonthly(t *testing.T) {
	p := report.Build(report.KindRoomsMonthly, 2024, sampleSessions())
	out := stripANSI(FormatPanel(p))

	assert.Contains(t, out, "Jan")
	assert.Contains(t, out, "Dez")
	assert.Contains(t, out, "Mezanino")
}

func TestFormatSummary(t *testing.T) {
	got := FormatSummary(report.Summary{Records: 3, Total: 1250, TopRoom: "Arena"})
	assert.Equal(t, "Total de Registros: 3 | Público Total (Geral): 1.250 | Sala Mais Usada: Arena", got)
}

func TestFormatComparison_SideBySide(t *testing.T) {
	sessions := sampleSessions()
	panels := report.Compare(report.KindSemester, 2023, 2024, sessions)
	resp := &app.ReportResponse{
		Kind:    report.KindSemester,
		Panels:  panels,
		Summary: report.Summarize(sessions),
	}

	out := stripANSI(FormatComparison(resp))
	assert.Contains(t, out, "COMPARATIVO SEMESTRAL")
	assert.Contains(t, out, "Sem dados para 2023")
	assert.Contains(t, out, report.LabelFirstSemester)
	assert.Contains(t, out, "Total de Registros: 3")
	assert.Contains(t, out, "Sala Mais Usada: Arena")
}
