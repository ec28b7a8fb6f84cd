package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/showmanager/internal/app"
	"github.com/alexanderramin/showmanager/internal/domain"
	"github.com/alexanderramin/showmanager/internal/report"
	"github.com/alexanderramin/showmanager/internal/sheet"
	"github.com/alexanderramin/showmanager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportImportXLSX_RoundTrip(t *testing.T) {
	repo, uow, _ := setupRepos(t)
	dir := t.TempDir()
	svc := NewExportService(repo, uow, dir)
	ctx := context.Background()

	seed(t, repo,
		testutil.NewTestSession("Concerto", "07/01/2024", testutil.WithAudience(10, 5, 2)),
		testutil.NewTestSession("Ballet", "15/03/2023", testutil.WithRoom(domain.RoomMultiuso), testutil.WithAudience(1, 2, 3)),
	)

	res, err := svc.ExportXLSX(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, sheet.DefaultFileName), res.Path)
	assert.Equal(t, []string{"Ano_2023", "Ano_2024"}, res.Sheets)
	assert.Equal(t, 2, res.Sessions)

	otherRepo, otherUoW, otherDB := setupRepos(t)
	imported, err := NewExportService(otherRepo, otherUoW, dir).ImportXLSX(ctx, res.Path)
	require.NoError(t, err)
	assert.Equal(t, 2, imported.Imported)
	assert.Equal(t, 2, imported.Sheets)
	assert.Equal(t, 2, countRows(t, otherDB))

	all, err := otherRepo.List(ctx, repositoryFilterYear(2024))
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 17, all[0].Total)
	assert.Equal(t, "domingo", all[0].Weekday)
}

func TestExportXLSX_EmptyStore(t *testing.T) {
	repo, uow, _ := setupRepos(t)
	svc := NewExportService(repo, uow, t.TempDir())

	_, err := svc.ExportXLSX(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestImportXLSX_MissingFileWritesNothing(t *testing.T) {
	repo, uow, database := setupRepos(t)
	svc := NewExportService(repo, uow, t.TempDir())

	_, err := svc.ImportXLSX(context.Background(), filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
	assert.Zero(t, countRows(t, database))
}

func TestExportSVG(t *testing.T) {
	repo, uow, _ := setupRepos(t)
	dir := t.TempDir()
	svc := NewExportService(repo, uow, dir)
	ctx := context.Background()

	seed(t, repo, testutil.NewTestSession("Concerto", "07/01/2024", testutil.WithAudience(10, 5, 2)))
	resp, err := NewReportService(repo).Compare(ctx, app.ReportRequest{Kind: report.KindMonthly, Year1: "2023", Year2: "2024"})
	require.NoError(t, err)

	path, err := svc.ExportSVG(ctx, resp, "comparativo.svg")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "comparativo.svg"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Sem dados para 2023")
}

func TestExportSVG_NothingRendered(t *testing.T) {
	repo, uow, _ := setupRepos(t)
	dir := t.TempDir()
	svc := NewExportService(repo, uow, dir)

	_, err := svc.ExportSVG(context.Background(), nil, "")
	assert.ErrorIs(t, err, ErrNoReport)
	_, statErr := os.Stat(filepath.Join(dir, "grafico_espetaculos.svg"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestImportXLSX_OutOfRangeCountsStoredAsZero(t *testing.T) {
	repo, uow, _ := setupRepos(t)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "enorme.xlsx")
	f := excelize.NewFile()
	defer f.Close()
	rows := [][]any{
		{"Data", "Nome do Evento", "Sala", "Publico PCG", "Publico Comerciário", "Publico Adversos"},
		{"10/02/2024", "Enorme", "Arena", "1e30", 4, "Inf"},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	require.NoError(t, f.SaveAs(path))

	res, err := NewExportService(repo, uow, "").ImportXLSX(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Zero(t, all[0].AudiencePCG)
	assert.Zero(t, all[0].AudienceAdverse)
	assert.Equal(t, 4, all[0].Total)
}
