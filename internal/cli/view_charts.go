package cli

import (
	"context"
	"strconv"
	"strings"
	"time"

	showapp "github.com/alexanderramin/showmanager/internal/app"
	"github.com/alexanderramin/showmanager/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// runReportMsg asks the chart view to start a report job.
type runReportMsg struct {
	req showapp.ReportRequest
}

// reportDoneMsg carries the outcome of a report job.
type reportDoneMsg struct {
	resp *showapp.ReportResponse
	err  error
}

// chartsView runs comparison reports off the UI loop and shows the last
// result. At most one job is in flight; requests made while one runs are
// dropped.
type chartsView struct {
	state   *SharedState
	params  reportFields
	running bool
	spin    spinner.Model
	err     error
}

func newChartsView(state *SharedState) *chartsView {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple

	v := &chartsView{state: state, spin: sp}
	if last := state.LastReport; last != nil {
		v.params = reportFields{
			kind:  last.Kind,
			year1: strconv.Itoa(last.Panels[0].Year),
			year2: strconv.Itoa(last.Panels[1].Year),
		}
	}
	return v
}

func (v *chartsView) ID() ViewID    { return ViewCharts }
func (v *chartsView) Title() string { return "Gráficos" }

func (v *chartsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "parameters")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "run again")),
		key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save SVG")),
	}
}

func (v *chartsView) Init() tea.Cmd {
	if v.state.LastReport != nil {
		return nil
	}
	return v.startParams()
}

// startParams opens the parameters wizard, prefilled with the two most
// recent years that have sessions.
func (v *chartsView) startParams() tea.Cmd {
	f := v.params
	if f.year1 == "" && f.year2 == "" {
		f.year1, f.year2 = defaultYears(v.state.App)
	}
	return startWizardCmd(v.state, "Parâmetros", wizardReport(&f), func() tea.Cmd {
		req := f.request()
		return func() tea.Msg { return runReportMsg{req: req} }
	})
}

func defaultYears(app *App) (string, string) {
	years, err := app.Sessions.Years(context.Background())
	if err != nil || len(years) == 0 {
		now := time.Now().Year()
		return strconv.Itoa(now - 1), strconv.Itoa(now)
	}
	if len(years) == 1 {
		return strconv.Itoa(years[0] - 1), strconv.Itoa(years[0])
	}
	return strconv.Itoa(years[1]), strconv.Itoa(years[0])
}

// start launches the job for req unless one is already running.
func (v *chartsView) start(req showapp.ReportRequest) tea.Cmd {
	if v.running {
		v.state.SetStatus("Um relatório já está em andamento", false)
		return nil
	}
	v.running = true
	v.err = nil
	v.params = reportFields{kind: req.Kind, year1: req.Year1, year2: req.Year2}
	v.state.SetStatus("Gerando "+req.Kind.DisplayName()+"...", false)

	reports := v.state.App.Reports
	job := func() tea.Msg {
		resp, err := reports.Compare(context.Background(), req)
		return reportDoneMsg{resp: resp, err: err}
	}
	return tea.Batch(v.spin.Tick, job)
}

func (v *chartsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case runReportMsg:
		return v, v.start(msg.req)

	case reportDoneMsg:
		v.running = false
		if msg.err != nil {
			v.err = msg.err
			v.state.SetStatus("Erro: "+msg.err.Error(), true)
			return v, nil
		}
		v.state.LastReport = msg.resp
		v.state.SetStatus("Relatório gerado ("+shortJobID(msg.resp.JobID)+")", false)
		return v, nil

	case spinner.TickMsg:
		if !v.running {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "p", "enter":
			if v.running {
				return v, nil
			}
			return v, v.startParams()
		case "r":
			if v.params.kind != "" {
				return v, v.start(v.params.request())
			}
			return v, v.startParams()
		case "s":
			if v.running {
				return v, nil
			}
			last := v.state.LastReport
			return v, func() tea.Msg { return applyExportSVG(v.state.App, last) }
		}
	}
	return v, nil
}

func (v *chartsView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	if v.running {
		b.WriteString("  " + v.spin.View() + " " + formatter.Dim("Gerando relatório..."))
		b.WriteString("\n\n")
	}
	if v.err != nil {
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n\n")
	}

	last := v.state.LastReport
	if last == nil {
		if !v.running {
			b.WriteString("  " + formatter.Dim("Pressione p para escolher o relatório e os anos."))
		}
		return b.String()
	}
	b.WriteString(formatter.FormatComparison(last))
	return b.String()
}

func shortJobID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
