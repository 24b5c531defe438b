package status

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/insiderwatch/internal/filing"
)

type filingResponse struct {
	ID             uuid.UUID `json:"id"`
	AccessionNo    string    `json:"accession_no"`
	CIK            string    `json:"cik,omitempty"`
	Symbol         string    `json:"symbol,omitempty"`
	PeriodOfReport string    `json:"period_of_report,omitempty"`
	DocumentsURL   string    `json:"documents_url"`
	CreatedAt      time.Time `json:"created_at"`
}

type transactionResponse struct {
	ID           uuid.UUID `json:"id"`
	FilingID     uuid.UUID `json:"filing_id"`
	Code         string    `json:"transaction_code"`
	Date         string    `json:"transaction_date,omitempty"`
	Shares       float64   `json:"shares"`
	Price        float64   `json:"price"`
	DollarValue  float64   `json:"dollar_value"`
	OwnerName    string    `json:"owner_name,omitempty"`
	IsOfficer    bool      `json:"is_officer"`
	IsDirector   bool      `json:"is_director"`
	OfficerTitle string    `json:"officer_title,omitempty"`
	SharesAfter  *float64  `json:"shares_after,omitempty"`
	Is10b51Plan  bool      `json:"is_10b5_1_plan"`
	PctADV       *float64  `json:"pct_adv,omitempty"`
	Score        int       `json:"score"`
	CreatedAt    time.Time `json:"created_at"`
}

type watchlistResponse struct {
	Symbol    string    `json:"symbol"`
	AddedAt   time.Time `json:"added_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func toFilingResponse(f *filing.Filing) filingResponse {
	return filingResponse{
		ID:             f.ID,
		AccessionNo:    f.AccessionNo,
		CIK:            f.CIK,
		Symbol:         f.Symbol,
		PeriodOfReport: f.PeriodOfReport,
		DocumentsURL:   f.DocumentsURL,
		CreatedAt:      f.CreatedAt,
	}
}

func toTransactionResponse(tx *filing.Transaction) transactionResponse {
	return transactionResponse{
		ID:           tx.ID,
		FilingID:     tx.FilingID,
		Code:         tx.Code,
		Date:         tx.Date,
		Shares:       tx.Shares,
		Price:        tx.Price,
		DollarValue:  tx.DollarValue,
		OwnerName:    tx.OwnerName,
		IsOfficer:    tx.IsOfficer,
		IsDirector:   tx.IsDirector,
		OfficerTitle: tx.OfficerTitle,
		SharesAfter:  tx.SharesAfter,
		Is10b51Plan:  tx.Is10b51Plan,
		PctADV:       tx.PctADV,
		Score:        tx.Score,
	}
}
