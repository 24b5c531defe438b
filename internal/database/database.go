package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func New(connStr string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS filings (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	accession_no TEXT NOT NULL UNIQUE,
	cik TEXT,
	symbol TEXT,
	period_of_report TEXT,
	documents_url TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_filings_symbol ON filings (symbol);

CREATE TABLE IF NOT EXISTS transactions (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	filing_id UUID NOT NULL REFERENCES filings(id) ON DELETE CASCADE,
	transaction_code TEXT NOT NULL,
	transaction_date TEXT,
	shares DOUBLE PRECISION NOT NULL DEFAULT 0,
	price DOUBLE PRECISION NOT NULL DEFAULT 0,
	dollar_value DOUBLE PRECISION NOT NULL DEFAULT 0,
	owner_name TEXT,
	is_officer BOOLEAN NOT NULL DEFAULT FALSE,
	is_director BOOLEAN NOT NULL DEFAULT FALSE,
	officer_title TEXT,
	shares_after DOUBLE PRECISION,
	is_10b5_1_plan BOOLEAN NOT NULL DEFAULT FALSE,
	pct_adv DOUBLE PRECISION,
	score INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_transactions_filing_id ON transactions (filing_id);

CREATE TABLE IF NOT EXISTS watchlist (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	symbol TEXT NOT NULL UNIQUE,
	added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	expires_at TIMESTAMPTZ NOT NULL
);
`

// InitSchema creates the tables on startup if they do not exist yet.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}

	return nil
}
