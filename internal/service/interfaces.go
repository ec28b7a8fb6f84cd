package service

import (
	"context"

	"github.com/alexanderramin/showmanager/internal/app"
	"github.com/alexanderramin/showmanager/internal/domain"
)

type SessionService interface {
	app.RegisterSessionsUseCase
	app.SearchSessionsUseCase
	Add(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id int64) (*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteEvent(ctx context.Context, eventName string) (*app.DeleteEventResponse, error)
	Years(ctx context.Context) ([]int, error)
	EventNames(ctx context.Context, filter app.SessionFilter) ([]string, error)
}

type ReportService interface {
	app.CompareReportUseCase
}

type ExportService interface {
	app.ExportSpreadsheetUseCase
	app.ImportSpreadsheetUseCase
	// ExportSVG writes the two panels of a rendered comparison to path.
	ExportSVG(ctx context.Context, resp *app.ReportResponse, path string) (string, error)
}

type BackupService interface {
	app.BackupUseCase
}
