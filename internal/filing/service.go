package filing

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=filing
type Repository interface {
	Exists(ctx context.Context, accessionNo string) (bool, error)
	CreateFiling(ctx context.Context, f *Filing) error
	CreateTransaction(ctx context.Context, tx *Transaction) error
	ListRecentFilings(ctx context.Context, limit int) ([]*Filing, error)
	ListRecentTransactions(ctx context.Context, limit int) ([]*Transaction, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Exists is the primary dedup gate: it must be consulted before any
// network work for a reference.
func (s *Service) Exists(ctx context.Context, accessionNo string) (bool, error) {
	return s.repo.Exists(ctx, accessionNo)
}

// Create persists a new filing. Returns ErrDuplicate when another
// writer got there first; callers treat that as a skip, not a fault.
func (s *Service) Create(ctx context.Context, f *Filing) error {
	return s.repo.CreateFiling(ctx, f)
}

// AddTransaction persists one scored transaction under its filing.
func (s *Service) AddTransaction(ctx context.Context, tx *Transaction) error {
	return s.repo.CreateTransaction(ctx, tx)
}

func (s *Service) Recent(ctx context.Context, limit int) ([]*Filing, error) {
	return s.repo.ListRecentFilings(ctx, limit)
}

func (s *Service) RecentTransactions(ctx context.Context, limit int) ([]*Transaction, error) {
	return s.repo.ListRecentTransactions(ctx, limit)
}
