package service

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/showmanager/internal/app"
	"github.com/alexanderramin/showmanager/internal/chart"
	"github.com/alexanderramin/showmanager/internal/db"
	"github.com/alexanderramin/showmanager/internal/repository"
	"github.com/alexanderramin/showmanager/internal/sheet"
)

type exportService struct {
	sessions  repository.SessionRepo
	uow       db.UnitOfWork
	exportDir string
	observer  UseCaseObserver
}

// NewExportService creates the spreadsheet and chart export service. Relative
// or empty output paths resolve against exportDir.
func NewExportService(sessions repository.SessionRepo, uow db.UnitOfWork, exportDir string, observers ...UseCaseObserver) ExportService {
	return &exportService{
		sessions:  sessions,
		uow:       uow,
		exportDir: exportDir,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *exportService) resolve(path, defaultName string) string {
	if path == "" {
		path = defaultName
	}
	if filepath.IsAbs(path) || s.exportDir == "" {
		return path
	}
	return filepath.Join(s.exportDir, path)
}

// ExportXLSX writes every stored session to a workbook, one sheet per year.
func (s *exportService) ExportXLSX(ctx context.Context, path string) (res *app.ExportResult, err error) {
	startedAt := time.Now().UTC()
	path = s.resolve(path, sheet.DefaultFileName)
	fields := map[string]any{"path": path}
	defer func() { finishUseCase(ctx, s.observer, "export-xlsx", startedAt, fields, err) }()

	sessions, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}
	if len(sessions) == 0 {
		return nil, fmt.Errorf("exporting %s: %w", path, ErrNoData)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating export directory: %w", err)
	}
	names, err := sheet.Write(path, sessions)
	if err != nil {
		return nil, err
	}
	fields["sheets"] = len(names)
	fields["session_count"] = len(sessions)
	return &app.ExportResult{Path: path, Sheets: names, Sessions: len(sessions)}, nil
}

// ImportXLSX reads every sheet of the workbook and stores its sessions in a
// single transaction.
func (s *exportService) ImportXLSX(ctx context.Context, path string) (res *app.ImportResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"path": path}
	defer func() { finishUseCase(ctx, s.observer, "import-xlsx", startedAt, fields, err) }()

	batch, err := sheet.Read(path)
	if err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSessionRepo(tx).CreateBatch(ctx, batch.Sessions)
	})
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", path, err)
	}
	fields["imported"] = len(batch.Sessions)
	fields["skipped"] = batch.Skipped
	return &app.ImportResult{
		Path:     path,
		Sheets:   batch.Sheets,
		Imported: len(batch.Sessions),
		Skipped:  batch.Skipped,
	}, nil
}

// ExportSVG renders both panels of resp into one SVG file. The file is only
// created once rendering has succeeded.
func (s *exportService) ExportSVG(ctx context.Context, resp *app.ReportResponse, path string) (out string, err error) {
	startedAt := time.Now().UTC()
	path = s.resolve(path, chart.DefaultFileName)
	fields := map[string]any{"path": path}
	defer func() { finishUseCase(ctx, s.observer, "export-svg", startedAt, fields, err) }()

	if resp == nil {
		return "", ErrNoReport
	}
	fields["job_id"] = resp.JobID

	var buf bytes.Buffer
	if err = chart.RenderComparison(&buf, resp.Panels); err != nil {
		return "", fmt.Errorf("rendering chart: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating export directory: %w", err)
	}
	if err = os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
