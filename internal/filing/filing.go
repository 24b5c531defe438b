package filing

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrDuplicate is returned when a filing with the same accession
// number already exists. Duplicates are expected across poll cycles
// and across concurrent writers; the unique constraint on
// accession_no is the serialization point.
var ErrDuplicate = errors.New("filing: duplicate accession number")

// Filing is one ingested submission, keyed by its accession number.
// Filings are created once on first sighting and never mutated.
type Filing struct {
	ID             uuid.UUID
	AccessionNo    string
	CIK            string
	Symbol         string
	PeriodOfReport string
	DocumentsURL   string
	CreatedAt      time.Time
}

// Transaction is one scored non-derivative line item belonging to a
// filing. Derived fields (DollarValue, PctADV, Score) are snapshots
// computed at ingestion time and never recomputed.
type Transaction struct {
	ID           uuid.UUID
	FilingID     uuid.UUID
	Code         string
	Date         string
	Shares       float64
	Price        float64
	DollarValue  float64
	OwnerName    string
	IsOfficer    bool
	IsDirector   bool
	OfficerTitle string
	SharesAfter  *float64
	Is10b51Plan  bool
	PctADV       *float64
	Score        int
	CreatedAt    time.Time
}
