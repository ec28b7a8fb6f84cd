package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/showmanager/internal/teatest"
)

// TestDriver wraps teatest.Driver with inspection of appModel internals
// (view stack, shared state, transient output).
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app, sets the terminal size and
// drains Init (which loads the home view data from the test DB).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(160, 50))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// LastOutput returns the transient output displayed in the content area.
func (d *TestDriver) LastOutput() string {
	return stripANSI(d.appModel().lastOutput)
}

// PlainView returns the rendered screen without ANSI styling.
func (d *TestDriver) PlainView() string {
	return stripANSI(d.View())
}

// WaitForText blocks until the rendered screen contains text.
func (d *TestDriver) WaitForText(text string) {
	d.T.Helper()
	d.WaitFor(func(view string) bool {
		return strings.Contains(stripANSI(view), text)
	}, 5*time.Second)
}

// WaitForStatus blocks until the status bar message contains text.
func (d *TestDriver) WaitForStatus(text string) {
	d.T.Helper()
	d.WaitFor(func(string) bool {
		return strings.Contains(d.State().Status, text)
	}, 5*time.Second)
}
