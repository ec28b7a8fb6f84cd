package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/showmanager/internal/db"
	"github.com/alexanderramin/showmanager/internal/domain"
	"github.com/alexanderramin/showmanager/internal/repository"
	"github.com/alexanderramin/showmanager/internal/testutil"
	"github.com/stretchr/testify/require"
)

func setupRepos(t *testing.T) (repository.SessionRepo, db.UnitOfWork, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteSessionRepo(database), testutil.NewTestUoW(database), database
}

func seed(t *testing.T, repo repository.SessionRepo, sessions ...*domain.Session) {
	t.Helper()
	require.NoError(t, repo.CreateBatch(context.Background(), sessions))
}

func countRows(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM sessoes`).Scan(&n))
	return n
}

// recordingObserver keeps every event it receives.
type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}

// guardedRepo fails the test if the store is read.
type guardedRepo struct {
	repository.SessionRepo
	t *testing.T
}

func (g guardedRepo) ListAll(context.Context) ([]*domain.Session, error) {
	g.t.Fatal("store must not be queried")
	return nil, nil
}

func repositoryFilterYear(year int) repository.Filter {
	return repository.Filter{Year: year}
}
