// Package teatest provides a synchronous test driver for bubbletea models.
//
// It replaces tea.Program in tests by calling Update() directly and
// synchronously draining returned Cmds. This enables deterministic,
// goroutine-free testing of tea.Model implementations.
//
// Cmds that do not return within a short timeout are parked rather than
// dropped. Cursor blinks and spinner ticks are discarded when they arrive;
// anything else (a background job finishing) is delivered by WaitFor.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth is the safety limit for command draining to prevent infinite loops.
const MaxDrainDepth = 100

// cmdTimeout is how long to wait for a Cmd to return before skipping it.
// Legitimate Cmds (DB queries, message factories) complete in microseconds.
// Cursor blink Cmds block for ~530ms and spinner ticks for ~100ms.
const cmdTimeout = 10 * time.Millisecond

// pollInterval is how often WaitFor checks parked Cmds.
const pollInterval = 5 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when tea.QuitMsg is seen during drain.
	// tea.QuitMsg is normally intercepted by the bubbletea runtime,
	// so the model may not handle it; the driver detects it explicitly.
	Quitting bool

	// pending holds the result channels of Cmds that outlived cmdTimeout.
	pending []chan tea.Msg
}

// New creates a Driver for the given model and applies options.
// Call DrainInit() after construction to process the model's Init() command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Option configures the Driver during construction.
type Option func(*Driver)

// WithSize sends an initial WindowSizeMsg before any other processing.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
		d.Model = updated
	}
}

// DrainInit executes the model's Init() command and drains all resulting messages.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drainCmd(d.Model.Init(), 0)
}

// ── Core send methods ────────────────────────────────────────────────────────

// Send dispatches a message through Update and drains all resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// ── Key event helpers ────────────────────────────────────────────────────────

// SendKey sends a tea.KeyMsg through the model.
func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

// PressKey sends a character key (rune).
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// PressEnter sends the Enter key.
func (d *Driver) PressEnter() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyEnter})
}

// PressEsc sends the Escape key.
func (d *Driver) PressEsc() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyEsc})
}

// PressCtrlC sends Ctrl+C.
func (d *Driver) PressCtrlC() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyCtrlC})
}

// PressUp sends the Up arrow key.
func (d *Driver) PressUp() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyUp})
}

// PressDown sends the Down arrow key.
func (d *Driver) PressDown() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeyDown})
}

// Type sends a string character by character as individual key events.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// View returns the full rendered output of the model.
func (d *Driver) View() string {
	return d.Model.View()
}

// ── Command draining ─────────────────────────────────────────────────────────

func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil || depth >= MaxDrainDepth {
		if depth >= MaxDrainDepth {
			d.T.Logf("teatest.Driver: drain depth limit (%d) reached", MaxDrainDepth)
		}
		return
	}

	msg, ch := execCmdWithTimeout(cmd)
	if ch != nil {
		d.pending = append(d.pending, ch)
		return
	}
	d.deliver(msg, depth)
}

// deliver feeds one Cmd result through the model.
func (d *Driver) deliver(msg tea.Msg, depth int) {
	d.T.Helper()
	if msg == nil || isTimerNoise(msg) {
		return
	}

	// Handle BatchMsg: execute each sub-Cmd.
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, subCmd := range batch {
			if subCmd == nil {
				continue
			}
			d.drainCmd(subCmd, depth+1)
		}
		return
	}

	// Detect tea.QuitMsg (produced by tea.Quit).
	if _, isQuit := msg.(tea.QuitMsg); isQuit {
		d.Quitting = true
		updated, _ := d.Model.Update(msg)
		d.Model = updated
		return
	}

	// Normal message: feed through Update and drain the result.
	updated, nextCmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(nextCmd, depth+1)
}

// WaitFor delivers parked Cmd results as they arrive until cond holds for
// the rendered view or timeout passes. It fails the test on timeout.
func (d *Driver) WaitFor(cond func(view string) bool, timeout time.Duration) {
	d.T.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if cond(d.View()) {
			return
		}
		if time.Now().After(deadline) {
			d.T.Fatalf("teatest.Driver: condition not met within %s; view:\n%s", timeout, d.View())
			return
		}
		d.collectPending()
		time.Sleep(pollInterval)
	}
}

// Pending returns the number of parked Cmds that have not reported yet.
func (d *Driver) Pending() int {
	return len(d.pending)
}

// collectPending delivers every parked result that is ready, in park order.
func (d *Driver) collectPending() {
	d.T.Helper()
	waiting := d.pending[:0:0]
	var ready []tea.Msg
	for _, ch := range d.pending {
		select {
		case msg := <-ch:
			ready = append(ready, msg)
		default:
			waiting = append(waiting, ch)
		}
	}
	d.pending = waiting
	for _, msg := range ready {
		if d.Quitting {
			return
		}
		d.deliver(msg, 0)
	}
}

// execCmdWithTimeout runs a tea.Cmd in a goroutine. It returns the message
// when the Cmd completes within cmdTimeout, otherwise the channel the
// message will eventually arrive on.
func execCmdWithTimeout(cmd tea.Cmd) (tea.Msg, chan tea.Msg) {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg, nil
	case <-time.After(cmdTimeout):
		return nil, ch
	}
}

// isTimerNoise detects cursor blink and spinner tick messages. Feeding them
// back would chain into another timer Cmd on every delivery.
func isTimerNoise(msg tea.Msg) bool {
	t := fmt.Sprintf("%T", msg)
	return strings.Contains(t, "Blink") || strings.Contains(t, "blink") || t == "spinner.TickMsg"
}
