package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/deskcoach/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type SessionRepo interface {
	Append(ctx context.Context, s *domain.PostureSession) error
	GetByID(ctx context.Context, id string) (*domain.PostureSession, error)
	ListRecent(ctx context.Context, days int) ([]*domain.PostureSession, error)
}

type TotalsRepo interface {
	GetByDate(ctx context.Context, date string) (*domain.DailyTotals, error)
	Upsert(ctx context.Context, t *domain.DailyTotals) error
	ListRecent(ctx context.Context, days int) ([]*domain.DailyTotals, error)
}

type EventRepo interface {
	Append(ctx context.Context, e domain.SessionEvent) error
	ListRecent(ctx context.Context, days int) ([]domain.SessionEvent, error)
}

type SettingsRepo interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Upsert(ctx context.Context, s *domain.Settings) error
}
