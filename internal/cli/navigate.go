package cli

import (
	"github.com/alexanderramin/showmanager/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// cmdOutputMsg carries text output from an action to be displayed
// transiently in the content area. A non-empty status also replaces the
// status bar message.
type cmdOutputMsg struct {
	output string
	status string
	isErr  bool
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// refreshViewMsg asks every view on the stack to reload its data.
type refreshViewMsg struct{}

// quitMsg ends the program.
type quitMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// outputCmd displays s in the content area and sets the status bar.
func outputCmd(s, status string) tea.Cmd {
	if s == "" && status == "" {
		return nil
	}
	return func() tea.Msg { return cmdOutputMsg{output: s, status: status} }
}

// errorOutput renders err in the content area and the status bar.
func errorOutput(err error) cmdOutputMsg {
	return cmdOutputMsg{
		output: "\n  " + formatter.StyleRed.Render("Error: "+err.Error()),
		status: "Erro: " + err.Error(),
		isErr:  true,
	}
}

// wizardCompleteError returns a wizardCompleteMsg that displays a formatted error.
func wizardCompleteError(err error) tea.Msg {
	out := errorOutput(err)
	return wizardCompleteMsg{nextCmd: func() tea.Msg { return out }}
}

// wizardCompleteOutput returns a wizardCompleteMsg that displays a message
// and sets the status bar.
func wizardCompleteOutput(msg, status string) tea.Msg {
	return wizardCompleteMsg{nextCmd: outputCmd(msg, status)}
}
