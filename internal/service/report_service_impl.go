package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/showmanager/internal/app"
	"github.com/alexanderramin/showmanager/internal/report"
	"github.com/alexanderramin/showmanager/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type reportService struct {
	sessions repository.SessionRepo
	observer UseCaseObserver
}

func NewReportService(sessions repository.SessionRepo, observers ...UseCaseObserver) ReportService {
	return &reportService{
		sessions: sessions,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Compare validates the request, loads the store once and builds the panel
// of each year concurrently. The summary covers every stored session.
func (s *reportService) Compare(ctx context.Context, req app.ReportRequest) (resp *app.ReportResponse, err error) {
	startedAt := time.Now().UTC()
	jobID := uuid.NewString()
	fields := map[string]any{"job_id": jobID, "kind": string(req.Kind), "year1": req.Year1, "year2": req.Year2}
	defer func() { finishUseCase(ctx, s.observer, "compare-report", startedAt, fields, err) }()

	kind, year1, year2, err := parseReportRequest(req)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessions.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading sessions: %w", err)
	}
	fields["session_count"] = len(sessions)

	var panels [2]report.Panel
	g, gctx := errgroup.WithContext(ctx)
	for i, year := range []int{year1, year2} {
		g.Go(func() error {
			panels[i] = report.Build(kind, year, sessions)
			return gctx.Err()
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return &app.ReportResponse{
		JobID:       jobID,
		Kind:        kind,
		Panels:      panels,
		Summary:     report.Summarize(sessions),
		GeneratedAt: time.Now().UTC(),
	}, nil
}

func parseReportRequest(req app.ReportRequest) (report.Kind, int, int, error) {
	req.Year1 = strings.TrimSpace(req.Year1)
	req.Year2 = strings.TrimSpace(req.Year2)
	kind, err := report.ParseKind(string(req.Kind))
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	req.Kind = kind
	if err := validateRequest(req, ErrInvalidYear); err != nil {
		return "", 0, 0, err
	}
	year1, err := parseYear(req.Year1)
	if err != nil {
		return "", 0, 0, err
	}
	year2, err := parseYear(req.Year2)
	if err != nil {
		return "", 0, 0, err
	}
	return kind, year1, year2, nil
}
