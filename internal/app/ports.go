package app

import (
	"context"

	"github.com/alexanderramin/showmanager/internal/domain"
)

type RegisterSessionsUseCase interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
}

type SearchSessionsUseCase interface {
	Search(ctx context.Context, filter SessionFilter) ([]*domain.Session, error)
}

type CompareReportUseCase interface {
	Compare(ctx context.Context, req ReportRequest) (*ReportResponse, error)
}

type ExportSpreadsheetUseCase interface {
	ExportXLSX(ctx context.Context, path string) (*ExportResult, error)
}

type ImportSpreadsheetUseCase interface {
	ImportXLSX(ctx context.Context, path string) (*ImportResult, error)
}

type BackupUseCase interface {
	Backup(ctx context.Context) (*BackupResult, error)
}
