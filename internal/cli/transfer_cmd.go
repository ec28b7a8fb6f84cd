package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/showmanager/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export sessions to a file",
	}

	var out string
	xlsx := &cobra.Command{
		Use:   "xlsx",
		Short: "Export every session to a workbook, one sheet per year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := formatter.StartSpinner(cmd.ErrOrStderr(), "Exporting...")
			res, err := app.Exports.ExportXLSX(cmd.Context(), out)
			stop()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Exported %d session(s) to %s (%s)\n",
				formatter.StyleGreen.Render("✔"), res.Sessions, res.Path, strings.Join(res.Sheets, ", "))
			return nil
		},
	}
	xlsx.Flags().StringVar(&out, "out", "", "Output file (defaults to the export directory)")

	cmd.AddCommand(xlsx)
	return cmd
}

func newImportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import sessions from a file",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "xlsx FILE",
		Short: "Import every sheet of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Exports.ImportXLSX(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatImportResult(res.Path, res.Sheets, res.Imported, res.Skipped))
			return nil
		},
	})
	return cmd
}

func newBackupCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Copy the database into the backup directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Backups.Backup(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Backup saved to %s\n", formatter.StyleGreen.Render("✔"), res.Path)
			return nil
		},
	}
}

func formatImportResult(path string, sheets, imported, skipped int) string {
	msg := fmt.Sprintf("%s Imported %d session(s) from %d sheet(s) of %s",
		formatter.StyleGreen.Render("✔"), imported, sheets, path)
	if skipped > 0 {
		msg += formatter.Dim(fmt.Sprintf(" (%d row(s) without a valid date skipped)", skipped))
	}
	return msg + "\n"
}
