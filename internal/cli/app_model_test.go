package cli

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	shortHelp  []key.Binding
	initCmd    tea.Cmd
	updateCmd  tea.Cmd
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return v.initCmd }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, v.updateCmd
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return v.shortHelp }
func (v *stubView) Title() string            { return v.title }
func newStubView(id ViewID, title, text string) *stubView {
	return &stubView{id: id, title: title, viewText: text}
}

func TestNewAppModelStartsAtHome(t *testing.T) {
	m := newAppModel(testApp(t))

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewHome, m.activeView().ID())
	assert.Equal(t, StatusReady, m.state.Status)
}

func TestAppModel_NavigationMessages(t *testing.T) {
	m := newAppModel(testApp(t))
	v2 := newStubView(ViewHistory, "Histórico", "history view")

	model, cmd := m.Update(pushViewMsg{view: v2})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, v2, m.activeView())
	assert.Contains(t, stripANSI(m.View()), "showmanager › Histórico")

	model, cmd = m.Update(popViewMsg{})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewHome, m.activeView().ID())

	// The root view is never popped.
	model, _ = m.Update(popViewMsg{})
	m = model.(appModel)
	assert.Len(t, m.viewStack, 1)
}

func TestAppModel_WindowResizeForwardsToActiveView(t *testing.T) {
	m := newAppModel(testApp(t))
	v := newStubView(ViewHistory, "Histórico", "history")
	m.viewStack = []View{v}

	model, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(appModel)
	require.Nil(t, cmd)

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
	assert.Equal(t, 25, m.state.ContentHeight())
	require.Len(t, v.updateSeen, 1)
	_, ok := v.updateSeen[0].(tea.WindowSizeMsg)
	assert.True(t, ok)
}

func TestAppModel_KeyHandling(t *testing.T) {
	t.Run("q quits when active view does not capture input", func(t *testing.T) {
		m := newAppModel(testApp(t))
		m.viewStack = []View{newStubView(ViewHistory, "Histórico", "history")}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
		assert.IsType(t, tea.QuitMsg{}, cmd())
		assert.Empty(t, m.View())
	})

	t.Run("form receives q and esc", func(t *testing.T) {
		m := newAppModel(testApp(t))
		home := newStubView(ViewHome, "", "home")
		form := newStubView(ViewForm, "Registrar", "form")
		m.viewStack = []View{home, form}

		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		m = model.(appModel)

		assert.False(t, m.quitting)
		assert.Len(t, m.viewStack, 2)
		require.Len(t, form.updateSeen, 2)
		assert.Equal(t, "q", form.updateSeen[0].(tea.KeyMsg).String())
	})

	t.Run("esc pops a non-form view", func(t *testing.T) {
		m := newAppModel(testApp(t))
		m.viewStack = append(m.viewStack, newStubView(ViewHistory, "Histórico", "history"))

		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		m = model.(appModel)
		assert.Len(t, m.viewStack, 1)
	})

	t.Run("ctrl+c always quits", func(t *testing.T) {
		m := newAppModel(testApp(t))
		m.viewStack = []View{newStubView(ViewForm, "Form", "form")}

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		m = model.(appModel)
		require.NotNil(t, cmd)
		assert.True(t, m.quitting)
	})
}

func TestAppModel_OutputAndStatus(t *testing.T) {
	m := newAppModel(testApp(t))
	m.viewStack = []View{newStubView(ViewHome, "", "home content")}

	model, _ := m.Update(cmdOutputMsg{output: "exported!", status: "Excel exportado"})
	m = model.(appModel)
	view := m.View()
	assert.Contains(t, view, "exported!")
	assert.NotContains(t, view, "home content")
	assert.Contains(t, view, "● Excel exportado")

	// Any non-scroll key dismisses the output; the status stays.
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = model.(appModel)
	view = m.View()
	assert.Contains(t, view, "home content")
	assert.Contains(t, view, "● Excel exportado")
}

func TestAppModel_StatusOnlyOutput(t *testing.T) {
	m := newAppModel(testApp(t))
	m.viewStack = []View{newStubView(ViewHome, "", "home content")}

	model, _ := m.Update(errorOutput(errors.New("disk full")))
	m = model.(appModel)
	assert.True(t, m.state.StatusIsErr)
	assert.Contains(t, m.View(), "Error: disk full")
	assert.Contains(t, m.View(), "● Erro: disk full")

	model, _ = m.Update(cmdOutputMsg{status: "Filtro aplicado"})
	m = model.(appModel)
	assert.False(t, m.state.StatusIsErr)
	assert.Equal(t, "Filtro aplicado", m.state.Status)
}

func TestAppModel_WizardCompletePopsAndRefreshes(t *testing.T) {
	m := newAppModel(testApp(t))
	base := newStubView(ViewHistory, "Histórico", "history")
	m.viewStack = []View{base, newStubView(ViewForm, "Filtro", "form")}

	model, cmd := m.Update(wizardCompleteMsg{nextCmd: outputCmd("", "Filtro aplicado")})
	m = model.(appModel)
	require.Len(t, m.viewStack, 1)
	require.NotNil(t, cmd)

	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	var msgs []tea.Msg
	for _, c := range batch {
		if c != nil {
			msgs = append(msgs, c())
		}
	}
	assert.Contains(t, msgs, tea.Msg(cmdOutputMsg{status: "Filtro aplicado"}))
	assert.Contains(t, msgs, tea.Msg(refreshViewMsg{}))
}

func TestAppModel_RefreshBroadcastsToStack(t *testing.T) {
	m := newAppModel(testApp(t))
	a := newStubView(ViewHome, "", "a")
	b := newStubView(ViewHistory, "Histórico", "b")
	m.viewStack = []View{a, b}

	_, _ = m.Update(refreshViewMsg{})
	require.Len(t, a.updateSeen, 1)
	require.Len(t, b.updateSeen, 1)
}
