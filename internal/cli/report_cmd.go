package cli

import (
	"fmt"
	"strings"

	showapp "github.com/alexanderramin/showmanager/internal/app"
	"github.com/alexanderramin/showmanager/internal/cli/formatter"
	"github.com/alexanderramin/showmanager/internal/report"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var kind, year1, year2, svgPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compare two years side by side",
		Long: "Compare two years side by side.\n\nReport types: " + reportTypeList() + ".",
		Example: `  showmanager report --type monthly --year1 2023 --year2 2024
  showmanager report --type rooms --year1 2023 --year2 2024 --svg grafico.svg`,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Reports.Compare(cmd.Context(), showapp.ReportRequest{
				Kind:  report.Kind(kind),
				Year1: year1,
				Year2: year2,
			})
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatComparison(resp))

			if cmd.Flags().Changed("svg") {
				path, err := app.Exports.ExportSVG(cmd.Context(), resp, svgPath)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Chart saved to %s\n", path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "type", string(report.KindMonthly), "Report type")
	cmd.Flags().StringVar(&year1, "year1", "", "First year, YYYY")
	cmd.Flags().StringVar(&year2, "year2", "", "Second year, YYYY")
	cmd.Flags().StringVar(&svgPath, "svg", "", "Also save the chart as SVG (empty for the default file name)")
	_ = cmd.MarkFlagRequired("year1")
	_ = cmd.MarkFlagRequired("year2")

	return cmd
}

func reportTypeList() string {
	names := make([]string, len(report.Kinds))
	for i, k := range report.Kinds {
		names[i] = fmt.Sprintf("%s (%s)", k, k.DisplayName())
	}
	return strings.Join(names, ", ")
}
