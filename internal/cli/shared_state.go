package cli

import (
	showapp "github.com/alexanderramin/showmanager/internal/app"
)

// StatusReady is the status bar message when nothing has happened yet.
const StatusReady = "Pronto"

// SharedState holds the application state shared across all views via
// pointer: services, the history filter, the last rendered report and the
// status bar message.
type SharedState struct {
	App *App

	// Filter is the current history search.
	Filter showapp.SessionFilter

	// LastReport is the most recently rendered comparison, exported by the
	// chart view's SVG action.
	LastReport *showapp.ReportResponse

	// Status is the transient message shown in the status bar.
	Status      string
	StatusIsErr bool

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	return &SharedState{App: app, Status: StatusReady}
}

// SetStatus replaces the status bar message.
func (s *SharedState) SetStatus(msg string, isErr bool) {
	s.Status = msg
	s.StatusIsErr = isErr
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (3 lines: separator + status + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 5
	if h < 1 {
		return 1
	}
	return h
}
