package cli

import (
	"context"
	"fmt"
	"strings"

	showapp "github.com/alexanderramin/showmanager/internal/app"
	"github.com/alexanderramin/showmanager/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
)

// Action functions run a use case and report the outcome as a cmdOutputMsg.
// They are called from tea.Cmds and tested directly.

func registerOutput(resp *showapp.RegisterResponse) tea.Msg {
	return cmdOutputMsg{
		output: "\n" + formatter.FormatRegistered(resp),
		status: fmt.Sprintf("%d sessão(ões) registrada(s)", len(resp.Sessions)),
	}
}

func applyRegister(app *App, f *registerFields) tea.Msg {
	req, err := f.request()
	if err != nil {
		return errorOutput(err)
	}
	resp, err := app.Sessions.Register(context.Background(), req)
	if err != nil {
		return errorOutput(err)
	}
	return registerOutput(resp)
}

func applyRegisterPerDate(app *App, f *registerFields, counts *perDateFields) tea.Msg {
	req, err := f.request()
	if err != nil {
		return errorOutput(err)
	}
	if req.PerDate, err = counts.overrides(); err != nil {
		return errorOutput(err)
	}
	resp, err := app.Sessions.Register(context.Background(), req)
	if err != nil {
		return errorOutput(err)
	}
	return registerOutput(resp)
}

func applyEdit(app *App, id int64, f *editFields) tea.Msg {
	ctx := context.Background()
	s, err := app.Sessions.Get(ctx, id)
	if err != nil {
		return errorOutput(err)
	}
	if err := f.applyTo(s); err != nil {
		return errorOutput(err)
	}
	if err := app.Sessions.Update(ctx, s); err != nil {
		return errorOutput(err)
	}
	return cmdOutputMsg{
		output: "\n" + formatter.FormatSession(s),
		status: fmt.Sprintf("Sessão #%d atualizada", id),
	}
}

func applyDeleteSession(app *App, id int64) tea.Msg {
	if err := app.Sessions.Delete(context.Background(), id); err != nil {
		return errorOutput(err)
	}
	return cmdOutputMsg{status: fmt.Sprintf("Sessão #%d removida", id)}
}

func applyDeleteEvent(app *App, name string) tea.Msg {
	resp, err := app.Sessions.DeleteEvent(context.Background(), name)
	if err != nil {
		return errorOutput(err)
	}
	return cmdOutputMsg{
		output: "\n" + formatter.FormatEventDeleted(resp),
		status: fmt.Sprintf("Evento %q removido", resp.EventName),
	}
}

func applyExportXLSX(app *App) tea.Msg {
	res, err := app.Exports.ExportXLSX(context.Background(), "")
	if err != nil {
		return errorOutput(err)
	}
	return cmdOutputMsg{
		output: fmt.Sprintf("\n%s %d sessão(ões) exportada(s) para %s\n  %s\n",
			formatter.StyleGreen.Render("✔"), res.Sessions, res.Path, formatter.Dim(strings.Join(res.Sheets, ", "))),
		status: "Excel exportado",
	}
}

func applyImportXLSX(app *App, path string) tea.Msg {
	res, err := app.Exports.ImportXLSX(context.Background(), path)
	if err != nil {
		return errorOutput(err)
	}
	return cmdOutputMsg{
		output: "\n" + formatImportResult(res.Path, res.Sheets, res.Imported, res.Skipped),
		status: fmt.Sprintf("%d sessão(ões) importada(s)", res.Imported),
	}
}

func applyBackup(app *App) tea.Msg {
	res, err := app.Backups.Backup(context.Background())
	if err != nil {
		return errorOutput(err)
	}
	return cmdOutputMsg{
		output: fmt.Sprintf("\n%s Backup salvo em %s\n", formatter.StyleGreen.Render("✔"), res.Path),
		status: "Backup concluído",
	}
}

// applyExportSVG saves the last rendered comparison. Without one the
// service refuses and nothing is written.
func applyExportSVG(app *App, resp *showapp.ReportResponse) tea.Msg {
	path, err := app.Exports.ExportSVG(context.Background(), resp, "")
	if err != nil {
		return errorOutput(err)
	}
	return cmdOutputMsg{status: "Gráfico salvo em " + path}
}

// ── wizard launchers ─────────────────────────────────────────────────────────

func startRegister(state *SharedState) tea.Cmd {
	f := &registerFields{}
	return startWizardCmd(state, "Registrar", wizardRegister(f), func() tea.Cmd {
		if !f.perDate {
			return func() tea.Msg { return applyRegister(state.App, f) }
		}
		dates, err := f.dates()
		if err != nil {
			return func() tea.Msg { return errorOutput(err) }
		}
		if len(dates) == 0 {
			return func() tea.Msg { return applyRegister(state.App, f) }
		}
		counts := newPerDateFields(dates, f.quick)
		return startWizardCmd(state, "Público por data", wizardPerDate(counts), func() tea.Cmd {
			return func() tea.Msg { return applyRegisterPerDate(state.App, f, counts) }
		})
	})
}

func startImport(state *SharedState) tea.Cmd {
	var path string
	return startWizardCmd(state, "Importar", wizardImport(&path), func() tea.Cmd {
		return func() tea.Msg { return applyImportXLSX(state.App, strings.TrimSpace(path)) }
	})
}

// startConfirm asks title and runs action when the answer is yes.
func startConfirm(state *SharedState, title string, action func() tea.Msg) tea.Cmd {
	var confirmed bool
	return startWizardCmd(state, "Confirmar", wizardConfirm(title, &confirmed), func() tea.Cmd {
		if !confirmed {
			return outputCmd("", "Operação cancelada")
		}
		return action
	})
}
