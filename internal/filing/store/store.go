package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/MrJamesThe3rd/insiderwatch/internal/filing"
)

const uniqueViolation = "23505"

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) Exists(ctx context.Context, accessionNo string) (bool, error) {
	var exists bool

	query := `SELECT EXISTS (SELECT 1 FROM filings WHERE accession_no = $1)`
	if err := s.db.QueryRowContext(ctx, query, accessionNo).Scan(&exists); err != nil {
		return false, fmt.Errorf("checking filing existence: %w", err)
	}

	return exists, nil
}

func (s *Store) CreateFiling(ctx context.Context, f *filing.Filing) error {
	query := `
		INSERT INTO filings (accession_no, cik, symbol, period_of_report, documents_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		f.AccessionNo,
		nullable(f.CIK),
		nullable(f.Symbol),
		nullable(f.PeriodOfReport),
		f.DocumentsURL,
	).Scan(&f.ID, &f.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return filing.ErrDuplicate
		}

		return fmt.Errorf("creating filing: %w", err)
	}

	return nil
}

func (s *Store) CreateTransaction(ctx context.Context, tx *filing.Transaction) error {
	query := `
		INSERT INTO transactions (
			filing_id, transaction_code, transaction_date, shares, price,
			dollar_value, owner_name, is_officer, is_director, officer_title,
			shares_after, is_10b5_1_plan, pct_adv, score
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.FilingID,
		tx.Code,
		nullable(tx.Date),
		tx.Shares,
		tx.Price,
		tx.DollarValue,
		nullable(tx.OwnerName),
		tx.IsOfficer,
		tx.IsDirector,
		nullable(tx.OfficerTitle),
		tx.SharesAfter,
		tx.Is10b51Plan,
		tx.PctADV,
		tx.Score,
	).Scan(&tx.ID, &tx.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

const selectFilingColumns = `id, accession_no, cik, symbol, period_of_report, documents_url, created_at`

func scanFiling(s scanner) (*filing.Filing, error) {
	var f filing.Filing

	var cik, symbol, period sql.NullString

	if err := s.Scan(&f.ID, &f.AccessionNo, &cik, &symbol, &period, &f.DocumentsURL, &f.CreatedAt); err != nil {
		return nil, err
	}

	f.CIK = cik.String
	f.Symbol = symbol.String
	f.PeriodOfReport = period.String

	return &f, nil
}

func (s *Store) ListRecentFilings(ctx context.Context, limit int) ([]*filing.Filing, error) {
	query := `SELECT ` + selectFilingColumns + `
		FROM filings
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing filings: %w", err)
	}
	defer rows.Close()

	var filings []*filing.Filing

	for rows.Next() {
		f, err := scanFiling(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning filing: %w", err)
		}

		filings = append(filings, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating filing rows: %w", err)
	}

	return filings, nil
}

func (s *Store) ListRecentTransactions(ctx context.Context, limit int) ([]*filing.Transaction, error) {
	query := `SELECT
			id, filing_id, transaction_code, transaction_date, shares, price,
			dollar_value, owner_name, is_officer, is_director, officer_title,
			shares_after, is_10b5_1_plan, pct_adv, score, created_at
		FROM transactions
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*filing.Transaction

	for rows.Next() {
		var tx filing.Transaction

		var date, owner, title sql.NullString

		if err := rows.Scan(
			&tx.ID, &tx.FilingID, &tx.Code, &date, &tx.Shares, &tx.Price,
			&tx.DollarValue, &owner, &tx.IsOfficer, &tx.IsDirector, &title,
			&tx.SharesAfter, &tx.Is10b51Plan, &tx.PctADV, &tx.Score, &tx.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		tx.Date = date.String
		tx.OwnerName = owner.String
		tx.OfficerTitle = title.String

		txs = append(txs, &tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transaction rows: %w", err)
	}

	return txs, nil
}

// nullable stores empty strings as NULL.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
