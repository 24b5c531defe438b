package watchlist

import (
	"context"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=watchlist
type Repository interface {
	Insert(ctx context.Context, e *Entry) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	ListActive(ctx context.Context, now time.Time) ([]*Entry, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add puts a symbol on the watchlist with a forward expiry window.
// A live entry for the same symbol absorbs the add silently.
func (s *Service) Add(ctx context.Context, symbol string, now time.Time, window time.Duration) error {
	return s.repo.Insert(ctx, &Entry{
		Symbol:    symbol,
		AddedAt:   now,
		ExpiresAt: now.Add(window),
	})
}

// Sweep removes entries whose window has passed. It runs at the start
// of every poll cycle, before any ingestion.
func (s *Service) Sweep(ctx context.Context, now time.Time) (int64, error) {
	return s.repo.DeleteExpired(ctx, now)
}

func (s *Service) Active(ctx context.Context, now time.Time) ([]*Entry, error) {
	return s.repo.ListActive(ctx, now)
}
