package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/showmanager/internal/app"
	"github.com/alexanderramin/showmanager/internal/db"
	"github.com/alexanderramin/showmanager/internal/domain"
	"github.com/alexanderramin/showmanager/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewSessionService(sessions repository.SessionRepo, uow db.UnitOfWork, observers ...UseCaseObserver) SessionService {
	return &sessionService{
		sessions: sessions,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Register expands the request into one session per matching date and
// writes them in a single transaction. Nothing is written when any part of
// the request is invalid.
func (s *sessionService) Register(ctx context.Context, req app.RegisterRequest) (resp *app.RegisterResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"event": req.EventName, "room": req.Room}
	defer func() { finishUseCase(ctx, s.observer, "register-sessions", startedAt, fields, err) }()

	sessions, err := expandRegister(req)
	if err != nil {
		return nil, err
	}
	fields["session_count"] = len(sessions)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteSessionRepo(tx).CreateBatch(ctx, sessions)
	})
	if err != nil {
		return nil, fmt.Errorf("registering sessions: %w", err)
	}
	return &app.RegisterResponse{Sessions: sessions}, nil
}

func expandRegister(req app.RegisterRequest) ([]*domain.Session, error) {
	req.EventName = strings.TrimSpace(req.EventName)
	if err := validateRequest(req, ErrInvalidInput); err != nil {
		return nil, err
	}
	room, err := domain.ParseRoom(req.Room)
	if err != nil {
		return nil, err
	}
	from, err := domain.ParseDate(req.From)
	if err != nil {
		return nil, fmt.Errorf("start date: %w", err)
	}
	to := from
	if strings.TrimSpace(req.To) != "" {
		if to, err = domain.ParseDate(req.To); err != nil {
			return nil, fmt.Errorf("end date: %w", err)
		}
	}
	if to.Before(from) {
		return nil, fmt.Errorf("end date %s is before start date %s: %w",
			domain.FormatDate(to), domain.FormatDate(from), domain.ErrInvalidDate)
	}

	days := req.Weekdays
	if len(days) == 0 {
		days = allWeekdays()
	}
	dates := domain.DatesOnWeekdays(from, to, days)
	if len(dates) == 0 {
		return nil, fmt.Errorf("%s to %s: %w", domain.FormatDate(from), domain.FormatDate(to), ErrNoSessionDates)
	}

	wanted := make(map[string]bool, len(dates))
	for _, d := range dates {
		wanted[domain.FormatDate(d)] = true
	}
	overrides := make(map[string]app.Audience, len(req.PerDate))
	for key, aud := range req.PerDate {
		d, err := domain.ParseDate(key)
		if err != nil {
			return nil, fmt.Errorf("audience override: %w", err)
		}
		if !wanted[domain.FormatDate(d)] {
			return nil, fmt.Errorf("audience override for %s: date is not in the selected range: %w", key, ErrInvalidInput)
		}
		overrides[domain.FormatDate(d)] = aud
	}

	sessions := make([]*domain.Session, 0, len(dates))
	for _, d := range dates {
		aud := req.Audience
		if o, ok := overrides[domain.FormatDate(d)]; ok {
			aud = o
		}
		sess := &domain.Session{
			Date:               d,
			EventName:          req.EventName,
			Room:               room,
			AudiencePCG:        aud.PCG,
			AudienceCommercial: aud.Commercial,
			AudienceAdverse:    aud.Adverse,
			Notes:              strings.TrimSpace(req.Notes),
		}
		sess.Recompute()
		if err := sess.Validate(); err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, nil
}

func (s *sessionService) Add(ctx context.Context, sess *domain.Session) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"event": sess.EventName}
	defer func() { finishUseCase(ctx, s.observer, "add-session", startedAt, fields, err) }()

	sess.Room = domain.NormalizeRoom(string(sess.Room))
	sess.Recompute()
	if err = sess.Validate(); err != nil {
		return err
	}
	if err = s.sessions.Create(ctx, sess); err != nil {
		return err
	}
	fields["id"] = sess.ID
	return nil
}

func (s *sessionService) Get(ctx context.Context, id int64) (*domain.Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *sessionService) Update(ctx context.Context, sess *domain.Session) (err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"id": sess.ID}
	defer func() { finishUseCase(ctx, s.observer, "update-session", startedAt, fields, err) }()

	sess.Room = domain.NormalizeRoom(string(sess.Room))
	sess.Recompute()
	if err = sess.Validate(); err != nil {
		return err
	}
	return s.sessions.Update(ctx, sess)
}

func (s *sessionService) Delete(ctx context.Context, id int64) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		finishUseCase(ctx, s.observer, "delete-session", startedAt, map[string]any{"id": id}, err)
	}()
	return s.sessions.Delete(ctx, id)
}

// DeleteEvent removes every session of eventName in one transaction.
func (s *sessionService) DeleteEvent(ctx context.Context, eventName string) (resp *app.DeleteEventResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"event": eventName}
	defer func() { finishUseCase(ctx, s.observer, "delete-event", startedAt, fields, err) }()

	if strings.TrimSpace(eventName) == "" {
		return nil, fmt.Errorf("event name is required: %w", ErrInvalidInput)
	}
	var n int64
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var txErr error
		n, txErr = repository.NewSQLiteSessionRepo(tx).DeleteByEvent(ctx, eventName)
		return txErr
	})
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("event %q: %w", eventName, repository.ErrNotFound)
	}
	fields["deleted"] = n
	return &app.DeleteEventResponse{EventName: eventName, Deleted: n}, nil
}

// Search returns the sessions matching filter, newest first.
func (s *sessionService) Search(ctx context.Context, filter app.SessionFilter) ([]*domain.Session, error) {
	f, err := repoFilter(filter)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessions.List(ctx, f)
	if err != nil {
		return nil, err
	}
	sortByDateDesc(sessions)
	return sessions, nil
}

func (s *sessionService) Years(ctx context.Context) ([]int, error) {
	return s.sessions.ListYears(ctx)
}

func (s *sessionService) EventNames(ctx context.Context, filter app.SessionFilter) ([]string, error) {
	f, err := repoFilter(filter)
	if err != nil {
		return nil, err
	}
	return s.sessions.ListEventNames(ctx, f)
}

func repoFilter(filter app.SessionFilter) (repository.Filter, error) {
	filter.Year = strings.TrimSpace(filter.Year)
	if err := validateRequest(filter, ErrInvalidYear); err != nil {
		return repository.Filter{}, err
	}
	year, err := parseYear(filter.Year)
	if err != nil {
		return repository.Filter{}, err
	}
	return repository.Filter{Name: filter.Name, Room: filter.Room, Year: year}, nil
}
