package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/insiderwatch/internal/watchlist"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Insert adds the entry unless a row for the symbol already exists.
// ON CONFLICT DO NOTHING keeps the existing window untouched.
func (s *Store) Insert(ctx context.Context, e *watchlist.Entry) error {
	query := `
		INSERT INTO watchlist (symbol, added_at, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (symbol) DO NOTHING
	`

	if _, err := s.db.ExecContext(ctx, query, e.Symbol, e.AddedAt, e.ExpiresAt); err != nil {
		return fmt.Errorf("inserting watchlist entry: %w", err)
	}

	return nil
}

func (s *Store) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM watchlist WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("deleting expired watchlist entries: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting swept watchlist entries: %w", err)
	}

	return n, nil
}

func (s *Store) ListActive(ctx context.Context, now time.Time) ([]*watchlist.Entry, error) {
	query := `
		SELECT id, symbol, added_at, expires_at
		FROM watchlist
		WHERE expires_at > $1
		ORDER BY added_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("listing watchlist: %w", err)
	}
	defer rows.Close()

	var entries []*watchlist.Entry

	for rows.Next() {
		var e watchlist.Entry
		if err := rows.Scan(&e.ID, &e.Symbol, &e.AddedAt, &e.ExpiresAt); err != nil {
			return nil, fmt.Errorf("scanning watchlist entry: %w", err)
		}

		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating watchlist rows: %w", err)
	}

	return entries, nil
}
