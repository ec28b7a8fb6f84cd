package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/showmanager/internal/app"
	"github.com/alexanderramin/showmanager/internal/db"
)

type backupService struct {
	conn      db.DBTX
	dbPath    string
	backupDir string
	now       func() time.Time
	observer  UseCaseObserver
}

// NewBackupService snapshots the database at dbPath into backupDir.
func NewBackupService(conn db.DBTX, dbPath, backupDir string, observers ...UseCaseObserver) BackupService {
	return &backupService{
		conn:      conn,
		dbPath:    dbPath,
		backupDir: backupDir,
		now:       time.Now,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// BackupFileName names a snapshot of dbPath taken at t, e.g.
// gestao_espetaculos_backup_20240107_153000.db.
func BackupFileName(dbPath string, t time.Time) string {
	base := filepath.Base(dbPath)
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_backup_%s%s", strings.TrimSuffix(base, ext), t.Format("20060102_150405"), ext)
}

// Backup writes a consistent copy of the live database with VACUUM INTO, so
// pages still in the WAL are included.
func (s *backupService) Backup(ctx context.Context) (res *app.BackupResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"backup_dir": s.backupDir}
	defer func() { finishUseCase(ctx, s.observer, "backup", startedAt, fields, err) }()

	if err = os.MkdirAll(s.backupDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating backup directory: %w", err)
	}
	created := s.now()
	target := filepath.Join(s.backupDir, BackupFileName(s.dbPath, created))
	if _, statErr := os.Stat(target); statErr == nil {
		return nil, fmt.Errorf("backup %s already exists", target)
	}
	if _, err = s.conn.ExecContext(ctx, `VACUUM INTO ?`, target); err != nil {
		return nil, fmt.Errorf("writing backup %s: %w", target, err)
	}
	info, err := os.Stat(target)
	if err != nil {
		return nil, fmt.Errorf("checking backup %s: %w", target, err)
	}
	fields["path"] = target
	fields["bytes"] = info.Size()
	return &app.BackupResult{Path: target, Bytes: info.Size(), CreatedAt: created}, nil
}
