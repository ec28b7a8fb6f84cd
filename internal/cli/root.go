package cli

import (
	"github.com/alexanderramin/showmanager/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions service.SessionService
	Reports  service.ReportService
	Exports  service.ExportService
	Backups  service.BackupService

	// IsInteractive reports whether stdin is a terminal. When nil the
	// root command never starts the TUI.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "showmanager" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "showmanager",
		Short:         "Theater attendance recorder with yearly comparisons",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newSessionCmd(app),
		newEventCmd(app),
		newYearsCmd(app),
		newReportCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newBackupCmd(app),
	)

	return root
}
