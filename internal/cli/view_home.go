package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/showmanager/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// homeItem is one entry of the main menu.
type homeItem struct {
	label string
	run   func(state *SharedState) tea.Cmd
}

var homeItems = []homeItem{
	{"Registrar sessões", startRegister},
	{"Histórico", func(s *SharedState) tea.Cmd { return pushView(newHistoryView(s)) }},
	{"Gráficos", func(s *SharedState) tea.Cmd { return pushView(newChartsView(s)) }},
	{"Exportar Excel", func(s *SharedState) tea.Cmd {
		return func() tea.Msg { return applyExportXLSX(s.App) }
	}},
	{"Importar Excel", startImport},
	{"Backup do banco", func(s *SharedState) tea.Cmd {
		return func() tea.Msg { return applyBackup(s.App) }
	}},
	{"Sair", func(*SharedState) tea.Cmd {
		return func() tea.Msg { return quitMsg{} }
	}},
}

// yearsLoadedMsg carries the years that have sessions.
type yearsLoadedMsg struct {
	years []int
	err   error
}

// homeView is the main menu with a one-line overview of the store.
type homeView struct {
	state  *SharedState
	cursor int
	years  []int
	err    error
}

func newHomeView(state *SharedState) *homeView {
	return &homeView{state: state}
}

func (v *homeView) ID() ViewID    { return ViewHome }
func (v *homeView) Title() string { return "" }

func (v *homeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1-7", "shortcut")),
	}
}

func (v *homeView) Init() tea.Cmd {
	return v.loadYears()
}

func (v *homeView) loadYears() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		years, err := app.Sessions.Years(context.Background())
		return yearsLoadedMsg{years: years, err: err}
	}
}

func (v *homeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case yearsLoadedMsg:
		v.years, v.err = msg.years, msg.err
		return v, nil

	case refreshViewMsg:
		return v, v.loadYears()

	case tea.KeyMsg:
		switch k := msg.String(); k {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(homeItems)-1 {
				v.cursor++
			}
		case "enter":
			return v, homeItems[v.cursor].run(v.state)
		default:
			if n, err := strconv.Atoi(k); err == nil && n >= 1 && n <= len(homeItems) {
				v.cursor = n - 1
				return v, homeItems[v.cursor].run(v.state)
			}
		}
	}
	return v, nil
}

func (v *homeView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	for i, item := range homeItems {
		line := fmt.Sprintf("%d  %s", i+1, item.label)
		if i == v.cursor {
			b.WriteString("  " + formatter.StyleHeader.Render("▸ "+line))
		} else {
			b.WriteString("    " + formatter.StyleFg.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	switch {
	case v.err != nil:
		b.WriteString(formatter.StyleRed.Render("Error: " + v.err.Error()))
	case len(v.years) == 0:
		b.WriteString(formatter.Dim("Nenhum ano com registros."))
	default:
		parts := make([]string, len(v.years))
		for i, y := range v.years {
			parts[i] = strconv.Itoa(y)
		}
		b.WriteString(formatter.Dim("Anos com registros: " + strings.Join(parts, ", ")))
	}
	b.WriteString("\n")
	return b.String()
}
