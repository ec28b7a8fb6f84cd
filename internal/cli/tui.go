package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// runTUI starts the interactive interface in the alternate screen and
// blocks until the user quits.
func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interface: %w", err)
	}
	return nil
}
