package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/showmanager/internal/db"
)

// NewTestDB creates a SQLite database file in a per-test temp dir with all
// migrations applied. The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(NewTestDBPath(t))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestDBPath returns a fresh database path under t.TempDir().
func NewTestDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "gestao_espetaculos.db")
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
