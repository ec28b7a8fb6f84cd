package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/showmanager/internal/cli/formatter"
	"github.com/alexanderramin/showmanager/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// historyLoadedMsg carries the result of a history search.
type historyLoadedMsg struct {
	sessions []*domain.Session
	err      error
}

// historyView lists the sessions matching the shared filter, newest first.
type historyView struct {
	state    *SharedState
	sessions []*domain.Session
	cursor   int
	offset   int
	loading  bool
	err      error
}

func newHistoryView(state *SharedState) *historyView {
	return &historyView{state: state, loading: true}
}

func (v *historyView) ID() ViewID    { return ViewHistory }
func (v *historyView) Title() string { return "Histórico" }

func (v *historyView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "delete event")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *historyView) Init() tea.Cmd {
	return v.load()
}

func (v *historyView) load() tea.Cmd {
	app := v.state.App
	filter := v.state.Filter
	return func() tea.Msg {
		sessions, err := app.Sessions.Search(context.Background(), filter)
		return historyLoadedMsg{sessions: sessions, err: err}
	}
}

// selected returns the session under the cursor, or nil.
func (v *historyView) selected() *domain.Session {
	if v.cursor < 0 || v.cursor >= len(v.sessions) {
		return nil
	}
	return v.sessions[v.cursor]
}

func (v *historyView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err != nil {
			v.state.SetStatus("Erro: "+msg.err.Error(), true)
			return v, nil
		}
		v.sessions = msg.sessions
		if v.cursor >= len(v.sessions) {
			v.cursor = max(len(v.sessions)-1, 0)
		}
		v.clampOffset()
		return v, nil

	case refreshViewMsg:
		v.loading = true
		return v, v.load()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
			v.clampOffset()
		case "down", "j":
			if v.cursor < len(v.sessions)-1 {
				v.cursor++
			}
			v.clampOffset()
		case "r":
			v.loading = true
			return v, v.load()
		case "f":
			return v, v.startFilter()
		case "e":
			if s := v.selected(); s != nil {
				return v, v.startEdit(s)
			}
		case "x":
			if s := v.selected(); s != nil {
				id := s.ID
				title := fmt.Sprintf("Remover a sessão #%d (%s, %s)?", id, s.EventName, s.DateString())
				return v, startConfirm(v.state, title, func() tea.Msg { return applyDeleteSession(v.state.App, id) })
			}
		case "X":
			if s := v.selected(); s != nil {
				return v, v.startDeleteEvent(s.EventName)
			}
		}
	}
	return v, nil
}

func (v *historyView) startFilter() tea.Cmd {
	f := newFilterFields(v.state.Filter)
	return startWizardCmd(v.state, "Filtro", wizardFilter(f), func() tea.Cmd {
		v.state.Filter = f.filter()
		v.cursor, v.offset = 0, 0
		return outputCmd("", "Filtro aplicado")
	})
}

// startDeleteEvent asks which event of the current search to remove,
// preselecting current, then removes all of its sessions.
func (v *historyView) startDeleteEvent(current string) tea.Cmd {
	names, err := v.state.App.Sessions.EventNames(context.Background(), v.state.Filter)
	if err != nil {
		return func() tea.Msg { return errorOutput(err) }
	}
	name := current
	var confirmed bool
	form := wizardDeleteEvent(names, &name, &confirmed)
	return startWizardCmd(v.state, "Remover evento", form, func() tea.Cmd {
		if !confirmed {
			return outputCmd("", "Operação cancelada")
		}
		return func() tea.Msg { return applyDeleteEvent(v.state.App, name) }
	})
}

func (v *historyView) startEdit(s *domain.Session) tea.Cmd {
	id := s.ID
	f := newEditFields(s)
	return startWizardCmd(v.state, fmt.Sprintf("Editar #%d", id), wizardEdit(f), func() tea.Cmd {
		return func() tea.Msg { return applyEdit(v.state.App, id, f) }
	})
}

// pageSize is the number of table rows that fit under the filter line,
// the table header and the footer.
func (v *historyView) pageSize() int {
	return max(v.state.ContentHeight()-6, 1)
}

func (v *historyView) clampOffset() {
	page := v.pageSize()
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+page {
		v.offset = v.cursor - page + 1
	}
}

func (v *historyView) View() string {
	var b strings.Builder
	b.WriteString("\n  " + v.filterLine() + "\n\n")

	switch {
	case v.loading:
		b.WriteString("  " + formatter.Dim("Carregando..."))
		return b.String()
	case v.err != nil:
		b.WriteString("  " + formatter.StyleRed.Render("Error: "+v.err.Error()))
		return b.String()
	case len(v.sessions) == 0:
		b.WriteString("  " + formatter.Dim("No sessions found."))
		return b.String()
	}

	end := min(v.offset+v.pageSize(), len(v.sessions))
	headers := append([]formatter.Column{{Title: " "}}, formatter.SessionColumns...)
	rows := make([][]string, 0, end-v.offset)
	for i := v.offset; i < end; i++ {
		marker := " "
		row := formatter.SessionRow(v.sessions[i])
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("▸")
			for j := range row {
				row[j] = formatter.StyleBold.Render(row[j])
			}
		}
		rows = append(rows, append([]string{marker}, row...))
	}
	table := formatter.RenderTable(headers, rows)
	for _, line := range strings.Split(strings.TrimRight(table, "\n"), "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("  " + formatter.Dim(fmt.Sprintf("%d de %d registro(s)", v.cursor+1, len(v.sessions))))
	return b.String()
}

func (v *historyView) filterLine() string {
	f := v.state.Filter
	var parts []string
	if f.Name != "" {
		parts = append(parts, fmt.Sprintf("evento: %q", f.Name))
	}
	if f.Room != "" && f.Room != allRooms {
		parts = append(parts, "sala: "+f.Room)
	}
	if f.Year != "" {
		parts = append(parts, "ano: "+f.Year)
	}
	if len(parts) == 0 {
		return formatter.Dim("Filtro: nenhum")
	}
	return formatter.Dim("Filtro: ") + strings.Join(parts, formatter.Dim(" · "))
}
