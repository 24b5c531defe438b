// Package signal derives financial features and a heuristic score for
// one insider transaction.
package signal

import (
	"strings"

	"github.com/MrJamesThe3rd/insiderwatch/internal/form4"
)

// Config holds the scoring thresholds. Zero values score nothing out
// of the value/liquidity terms, so a Config must come from
// configuration, not be defaulted here.
type Config struct {
	MinDollarValue float64
	MinPctADV      float64
	PriorityTitles []string
	AlertThreshold int
}

// Features is the point-in-time derived view of one transaction.
// PctADV is nil when no positive ADV figure was available.
type Features struct {
	DollarValue float64
	PctADV      *float64
	Score       int
}

// Compute is a pure function of the transaction and one external
// liquidity figure (average daily dollar volume, nil when unknown).
// The score is a sum of independent signals, each evaluated
// unconditionally, so it is order-independent and may go negative.
func Compute(tx form4.Transaction, advUSD *float64, cfg Config) Features {
	dv := tx.Shares * tx.Price

	var pctADV *float64

	if advUSD != nil && *advUSD > 0 {
		pct := dv / *advUSD * 100
		pctADV = &pct
	}

	score := 0

	if tx.Code == form4.CodePurchase {
		score += 3
	}

	if tx.IsOfficer {
		score += 2
	}

	if hasPriorityTitle(tx.OfficerTitle, cfg.PriorityTitles) {
		score += 1
	}

	if dv >= cfg.MinDollarValue {
		score += 2
	}

	// A missing pct counts as zero for this comparison only.
	pct := 0.0
	if pctADV != nil {
		pct = *pctADV
	}

	if pct >= cfg.MinPctADV {
		score += 2
	}

	if tx.Is10b51Plan {
		score -= 2
	}

	return Features{DollarValue: dv, PctADV: pctADV, Score: score}
}

func hasPriorityTitle(title string, keywords []string) bool {
	lower := strings.ToLower(title)

	for _, kw := range keywords {
		if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}

	return false
}
