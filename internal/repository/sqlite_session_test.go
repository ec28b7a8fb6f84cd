package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/showmanager/internal/db"
	"github.com/alexanderramin/showmanager/internal/domain"
	"github.com/alexanderramin/showmanager/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionTestSetup(t *testing.T) (*SQLiteSessionRepo, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return NewSQLiteSessionRepo(database), database
}

func seedSessions(t *testing.T, repo *SQLiteSessionRepo, sessions ...*domain.Session) {
	t.Helper()
	require.NoError(t, repo.CreateBatch(context.Background(), sessions))
}

func eventNames(sessions []*domain.Session) []string {
	names := make([]string, len(sessions))
	for i, s := range sessions {
		names[i] = s.EventName
	}
	return names
}

func TestSessionRepo_CreateAndGetByID(t *testing.T) {
	repo, _ := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession("Concerto", "07/01/2024",
		testutil.WithRoom(domain.RoomMezanino),
		testutil.WithAudience(10, 5, 2),
		testutil.WithNotes("estreia"),
	)
	require.NoError(t, repo.Create(ctx, sess))
	require.NotZero(t, sess.ID)

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "Concerto", fetched.EventName)
	assert.Equal(t, "07/01/2024", fetched.DateString())
	assert.Equal(t, "domingo", fetched.Weekday)
	assert.Equal(t, domain.RoomMezanino, fetched.Room)
	assert.Equal(t, 15, fetched.Combined)
	assert.Equal(t, 17, fetched.Total)
	assert.Equal(t, "estreia", fetched.Notes)
}

func TestSessionRepo_CreateRecomputesDerivedFields(t *testing.T) {
	repo, _ := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession("Peça", "01/03/2024", testutil.WithAudience(3, 4, 5))
	sess.Combined, sess.Total, sess.Weekday = 0, 0, "errado"
	require.NoError(t, repo.Create(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, fetched.Combined)
	assert.Equal(t, 12, fetched.Total)
	assert.Equal(t, "sexta-feira", fetched.Weekday)
}

func TestSessionRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := sessionTestSetup(t)

	_, err := repo.GetByID(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionRepo_Update(t *testing.T) {
	repo, _ := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession("Dança", "06/01/2024", testutil.WithAudience(1, 1, 1))
	require.NoError(t, repo.Create(ctx, sess))

	sess.Date = testutil.Date(2024, 1, 7)
	sess.AudiencePCG = 20
	sess.Room = "sala multiuso"
	require.NoError(t, repo.Update(ctx, sess))

	fetched, err := repo.GetByID(ctx, sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "domingo", fetched.Weekday)
	assert.Equal(t, 21, fetched.Combined)
	assert.Equal(t, 22, fetched.Total)
	assert.Equal(t, domain.RoomMultiuso, fetched.Room)
}

func TestSessionRepo_UpdateMissing(t *testing.T) {
	repo, _ := sessionTestSetup(t)

	sess := testutil.NewTestSession("Fantasma", "06/01/2024")
	sess.ID = 42
	assert.ErrorIs(t, repo.Update(context.Background(), sess), ErrNotFound)
}

func TestSessionRepo_Delete(t *testing.T) {
	repo, _ := sessionTestSetup(t)
	ctx := context.Background()

	sess := testutil.NewTestSession("Circo", "06/01/2024")
	require.NoError(t, repo.Create(ctx, sess))
	require.NoError(t, repo.Delete(ctx, sess.ID))

	_, err := repo.GetByID(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, sess.ID), ErrNotFound)
}

func TestSessionRepo_DeleteByEvent(t *testing.T) {
	repo, _ := sessionTestSetup(t)
	ctx := context.Background()

	seedSessions(t, repo,
		testutil.NewTestSession("Circo", "06/01/2024"),
		testutil.NewTestSession("Circo", "07/01/2024"),
		testutil.NewTestSession("Ópera", "07/01/2024"),
	)

	n, err := repo.DeleteByEvent(ctx, "Circo")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Ópera"}, eventNames(all))
}

func TestSessionRepo_ListFilters(t *testing.T) {
	repo, _ := sessionTestSetup(t)
	ctx := context.Background()

	seedSessions(t, repo,
		testutil.NewTestSession("Concerto ABC Live", "10/02/2023", testutil.WithRoom(domain.RoomArena)),
		testutil.NewTestSession("Teatro Infantil", "11/02/2024", testutil.WithRoom(domain.RoomMultiuso)),
		testutil.NewTestSession("ÉPICO Musical", "12/03/2024", testutil.WithRoom(domain.RoomMezanino)),
	)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"no filter", Filter{}, []string{"Concerto ABC Live", "Teatro Infantil", "ÉPICO Musical"}},
		{"name case-insensitive", Filter{Name: "abc"}, []string{"Concerto ABC Live"}},
		{"name unicode fold", Filter{Name: "épico"}, []string{"ÉPICO Musical"}},
		{"room", Filter{Room: "Multiuso"}, []string{"Teatro Infantil"}},
		{"room all", Filter{Room: "all"}, []string{"Concerto ABC Live", "Teatro Infantil", "ÉPICO Musical"}},
		{"year", Filter{Year: 2024}, []string{"Teatro Infantil", "ÉPICO Musical"}},
		{"combined", Filter{Name: "o", Room: "Arena", Year: 2023}, []string{"Concerto ABC Live"}},
		{"no match", Filter{Year: 1999}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, eventNames(got))
		})
	}
}

func TestSessionRepo_LegacyRowsNormalised(t *testing.T) {
	repo, database := sessionTestSetup(t)
	ctx := context.Background()

	_, err := database.Exec(`INSERT INTO sessoes (dia_semana, data, nome_evento, sala, publico_pcg,
		publico_comerciario, publico_adversos, pcg_com, total, observacoes)
		VALUES ('sábado', '06/01/2024', 'Legado', 'Sala Multiuso', 1, 2, 3, 3, 6, NULL)`)
	require.NoError(t, err)

	got, err := repo.List(ctx, Filter{Room: "Multiuso"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.RoomMultiuso, got[0].Room)
	assert.Equal(t, "", got[0].Notes)
}

func TestSessionRepo_SkipsUnparseableDates(t *testing.T) {
	repo, database := sessionTestSetup(t)
	ctx := context.Background()

	seedSessions(t, repo, testutil.NewTestSession("Bom", "06/01/2024"))
	_, err := database.Exec(`INSERT INTO sessoes (data, nome_evento, sala) VALUES ('sem data', 'Ruim', 'Arena')`)
	require.NoError(t, err)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Bom"}, eventNames(all))
}

func TestSessionRepo_ListYears(t *testing.T) {
	repo, _ := sessionTestSetup(t)
	ctx := context.Background()

	years, err := repo.ListYears(ctx)
	require.NoError(t, err)
	assert.Empty(t, years)

	seedSessions(t, repo,
		testutil.NewTestSession("A", "06/01/2022"),
		testutil.NewTestSession("B", "06/01/2024"),
		testutil.NewTestSession("C", "07/05/2024"),
		testutil.NewTestSession("D", "06/01/2023"),
	)

	years, err = repo.ListYears(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2024, 2023, 2022}, years)
}

func TestSessionRepo_ListEventNames(t *testing.T) {
	repo, _ := sessionTestSetup(t)

	seedSessions(t, repo,
		testutil.NewTestSession("Circo", "06/01/2024"),
		testutil.NewTestSession("Ballet", "07/01/2024"),
		testutil.NewTestSession("Circo", "13/01/2024"),
		testutil.NewTestSession("Ballet", "07/01/2023"),
	)

	names, err := repo.ListEventNames(context.Background(), Filter{Year: 2024})
	require.NoError(t, err)
	assert.Equal(t, []string{"Ballet", "Circo"}, names)
}

func TestSessionRepo_CreateBatchInTransactionRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	uow := testutil.NewTestUoW(database)

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteSessionRepo(tx).CreateBatch(ctx, []*domain.Session{
			testutil.NewTestSession("Lote", "06/01/2024"),
			testutil.NewTestSession("Lote", "07/01/2024"),
		})
	})
	require.NoError(t, err)

	failing := &testutil.FailOnNthExecUoW{DB: database, FailOn: 2, Err: assert.AnError}
	err = failing.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteSessionRepo(tx).CreateBatch(ctx, []*domain.Session{
			testutil.NewTestSession("Falha", "06/01/2024"),
			testutil.NewTestSession("Falha", "07/01/2024"),
		})
	})
	require.ErrorIs(t, err, assert.AnError)

	all, err := NewSQLiteSessionRepo(database).ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Lote", "Lote"}, eventNames(all))
}

func TestSessionRepo_RejectsNegativeCounts(t *testing.T) {
	repo, database := sessionTestSetup(t)
	ctx := context.Background()

	bad := testutil.NewTestSession("Estouro", "08/01/2024", testutil.WithAudience(-9, 2, 0))
	require.ErrorIs(t, repo.Create(ctx, bad), domain.ErrInvalidCount)
	assert.Zero(t, bad.ID)

	uow := testutil.NewTestUoW(database)
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteSessionRepo(tx).CreateBatch(ctx, []*domain.Session{
			testutil.NewTestSession("Lote", "06/01/2024", testutil.WithAudience(1, 1, 1)),
			testutil.NewTestSession("Lote", "07/01/2024", testutil.WithAudience(1, -1, 1)),
		})
	})
	require.ErrorIs(t, err, domain.ErrInvalidCount)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	good := testutil.NewTestSession("Ok", "09/01/2024", testutil.WithAudience(1, 1, 1))
	require.NoError(t, repo.Create(ctx, good))
	good.AudienceAdverse = -5
	require.ErrorIs(t, repo.Update(ctx, good), domain.ErrInvalidCount)
	got, err := repo.GetByID(ctx, good.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Total)
}
