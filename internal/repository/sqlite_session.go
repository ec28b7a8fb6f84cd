package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/showmanager/internal/db"
	"github.com/alexanderramin/showmanager/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo on the sessoes table.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a new SQLiteSessionRepo. conn may be the
// shared *sql.DB or a transaction handed out by a UnitOfWork.
func NewSQLiteSessionRepo(conn db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: conn}
}

const sessionColumns = `id, dia_semana, data, nome_evento, sala, publico_pcg,
	publico_comerciario, publico_adversos, pcg_com, total, observacoes`

func (r *SQLiteSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	s.Room = domain.NormalizeRoom(string(s.Room))
	s.Recompute()
	if err := s.CheckCounts(); err != nil {
		return err
	}
	query := `INSERT INTO sessoes (dia_semana, data, nome_evento, sala, publico_pcg,
		publico_comerciario, publico_adversos, pcg_com, total, observacoes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		s.Weekday,
		s.DateString(),
		s.EventName,
		string(s.Room),
		s.AudiencePCG,
		s.AudienceCommercial,
		s.AudienceAdverse,
		s.Combined,
		s.Total,
		s.Notes,
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading session id: %w", err)
	}
	s.ID = id
	return nil
}

// CreateBatch inserts every session on the repo's connection. Callers that
// need all-or-nothing semantics build the repo on a transaction.
func (r *SQLiteSessionRepo) CreateBatch(ctx context.Context, sessions []*domain.Session) error {
	for i, s := range sessions {
		if err := r.Create(ctx, s); err != nil {
			return fmt.Errorf("batch row %d: %w", i+1, err)
		}
	}
	return nil
}

func (r *SQLiteSessionRepo) GetByID(ctx context.Context, id int64) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessoes WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanSession(row)
}

func (r *SQLiteSessionRepo) Update(ctx context.Context, s *domain.Session) error {
	s.Room = domain.NormalizeRoom(string(s.Room))
	s.Recompute()
	if err := s.CheckCounts(); err != nil {
		return err
	}
	query := `UPDATE sessoes SET dia_semana = ?, data = ?, nome_evento = ?, sala = ?,
		publico_pcg = ?, publico_comerciario = ?, publico_adversos = ?, pcg_com = ?,
		total = ?, observacoes = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		s.Weekday,
		s.DateString(),
		s.EventName,
		string(s.Room),
		s.AudiencePCG,
		s.AudienceCommercial,
		s.AudienceAdverse,
		s.Combined,
		s.Total,
		s.Notes,
		s.ID,
	)
	if err != nil {
		return fmt.Errorf("updating session: %w", err)
	}
	return requireAffected(res, s.ID)
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessoes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return requireAffected(res, id)
}

// DeleteByEvent removes every session recorded under eventName and reports
// how many rows went away.
func (r *SQLiteSessionRepo) DeleteByEvent(ctx context.Context, eventName string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessoes WHERE nome_evento = ?`, eventName)
	if err != nil {
		return 0, fmt.Errorf("deleting sessions of event %q: %w", eventName, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted sessions: %w", err)
	}
	return n, nil
}

func (r *SQLiteSessionRepo) ListAll(ctx context.Context) ([]*domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+sessionColumns+` FROM sessoes`)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}
	defer rows.Close()
	return r.scanSessions(rows)
}

// List returns the sessions matching f. Room and year are narrowed in SQL;
// the name match runs here because SQLite's LIKE only folds ASCII.
func (r *SQLiteSessionRepo) List(ctx context.Context, f Filter) ([]*domain.Session, error) {
	var (
		where []string
		args  []any
	)
	if !anyRoom(f.Room) {
		keys := domain.NormalizeRoom(f.Room).MatchKeys()
		where = append(where, `lower(trim(sala)) IN (`+placeholders(len(keys))+`)`)
		for _, k := range keys {
			args = append(args, k)
		}
	}
	if f.Year != 0 {
		where = append(where, `substr(data, 7, 4) = ?`)
		args = append(args, yearKey(f.Year))
	}

	query := `SELECT ` + sessionColumns + ` FROM sessoes`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("searching sessions: %w", err)
	}
	defer rows.Close()

	all, err := r.scanSessions(rows)
	if err != nil {
		return nil, err
	}
	match := nameMatcher(f.Name)
	sessions := all[:0]
	for _, s := range all {
		if match(s.EventName) {
			sessions = append(sessions, s)
		}
	}
	return sessions, nil
}

// ListYears returns the distinct years present in the store, newest first.
func (r *SQLiteSessionRepo) ListYears(ctx context.Context) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT substr(data, 7, 4) FROM sessoes`)
	if err != nil {
		return nil, fmt.Errorf("listing years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var raw sql.NullString
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning year: %w", err)
		}
		if y, ok := parseYearKey(nullString(raw)); ok {
			years = append(years, y)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating years: %w", err)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

// ListEventNames returns the distinct event names among the sessions that
// match f, sorted.
func (r *SQLiteSessionRepo) ListEventNames(ctx context.Context, f Filter) ([]string, error) {
	sessions, err := r.List(ctx, f)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var names []string
	for _, s := range sessions {
		if !seen[s.EventName] {
			seen[s.EventName] = true
			names = append(names, s.EventName)
		}
	}
	sort.Strings(names)
	return names, nil
}

type sessionRow struct {
	id                              int64
	weekday, date, name, room, note sql.NullString
	pcg, com, adv, combined, total  sql.NullInt64
}

func (row *sessionRow) dest() []any {
	return []any{
		&row.id, &row.weekday, &row.date, &row.name, &row.room,
		&row.pcg, &row.com, &row.adv, &row.combined, &row.total, &row.note,
	}
}

// scanSession scans a single session from a *sql.Row.
func (r *SQLiteSessionRepo) scanSession(row *sql.Row) (*domain.Session, error) {
	var raw sessionRow
	if err := row.Scan(raw.dest()...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}
	s, err := populateSession(&raw)
	if err != nil {
		return nil, fmt.Errorf("session %d: %w", raw.id, err)
	}
	return s, nil
}

// scanSessions scans multiple sessions, skipping rows whose stored date
// cannot be parsed.
func (r *SQLiteSessionRepo) scanSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		var raw sessionRow
		if err := rows.Scan(raw.dest()...); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		s, err := populateSession(&raw)
		if err != nil {
			continue
		}
		sessions = append(sessions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}
	return sessions, nil
}

// populateSession converts raw column values into a Session. Stored derived
// columns are kept as written; the weekday falls back to the date when empty.
func populateSession(raw *sessionRow) (*domain.Session, error) {
	date, err := domain.ParseDate(nullString(raw.date))
	if err != nil {
		return nil, err
	}
	s := &domain.Session{
		ID:                 raw.id,
		Date:               date,
		Weekday:            nullString(raw.weekday),
		EventName:          nullString(raw.name),
		Room:               domain.NormalizeRoom(nullString(raw.room)),
		AudiencePCG:        nullInt(raw.pcg),
		AudienceCommercial: nullInt(raw.com),
		AudienceAdverse:    nullInt(raw.adv),
		Combined:           nullInt(raw.combined),
		Total:              nullInt(raw.total),
		Notes:              nullString(raw.note),
	}
	if s.Weekday == "" {
		s.Weekday = domain.WeekdayName(date)
	}
	return s, nil
}

func requireAffected(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %d: %w", id, ErrNotFound)
	}
	return nil
}
