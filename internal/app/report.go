package app

import (
	"time"

	"github.com/alexanderramin/showmanager/internal/report"
)

// ReportRequest asks for one report kind over two years. Years are the raw
// user input and are validated before any query runs.
type ReportRequest struct {
	Kind  report.Kind `validate:"required"`
	Year1 string      `validate:"required,numeric,len=4"`
	Year2 string      `validate:"required,numeric,len=4"`
}

type ReportResponse struct {
	JobID       string
	Kind        report.Kind
	Panels      [2]report.Panel
	Summary     report.Summary
	GeneratedAt time.Time
}

type ExportResult struct {
	Path     string
	Sheets   []string
	Sessions int
}

type ImportResult struct {
	Path     string
	Sheets   int
	Imported int
	Skipped  int
}

type BackupResult struct {
	Path      string
	Bytes     int64
	CreatedAt time.Time
}
