package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/showmanager/internal/domain"
)

// ErrNotFound is returned (wrapped) when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// Filter narrows a session search. Zero values match everything.
type Filter struct {
	// Name matches any event name containing it, ignoring case.
	Name string
	// Room matches the room exactly; "" and "all" match any room.
	Room string
	// Year matches the year of the session date; 0 matches any year.
	Year int
}

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	CreateBatch(ctx context.Context, sessions []*domain.Session) error
	GetByID(ctx context.Context, id int64) (*domain.Session, error)
	Update(ctx context.Context, s *domain.Session) error
	Delete(ctx context.Context, id int64) error
	DeleteByEvent(ctx context.Context, eventName string) (int64, error)
	ListAll(ctx context.Context) ([]*domain.Session, error)
	List(ctx context.Context, f Filter) ([]*domain.Session, error)
	ListYears(ctx context.Context) ([]int, error)
	ListEventNames(ctx context.Context, f Filter) ([]string, error)
}
