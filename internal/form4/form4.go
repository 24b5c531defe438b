// Package form4 parses SEC ownership documents (Form 4 XML) into a
// flat disclosure structure.
package form4

import "errors"

// ErrMalformed means the byte stream is not well-formed XML at all.
// Missing or unparsable individual fields degrade to zero values
// instead of failing the document.
var ErrMalformed = errors.New("form4: malformed ownership document")

// CodePurchase is the transaction code for an open-market purchase,
// the highest-signal transaction type.
const CodePurchase = "P"

// Transaction is one non-derivative transaction line item. The
// reporting-owner fields are copied from the document's first
// reportingOwner block; see Parse for the limitation.
type Transaction struct {
	Code        string
	Date        string
	Shares      float64
	Price       float64
	SharesAfter *float64
	Is10b51Plan bool

	OwnerName    string
	IsOfficer    bool
	IsDirector   bool
	OfficerTitle string
}

// Disclosure is the extracted content of one ownership document.
// Symbol, CIK and PeriodOfReport are empty when the document lacks
// them; that is legitimate, not an error.
type Disclosure struct {
	Symbol         string
	CIK            string
	PeriodOfReport string
	Transactions   []Transaction
}
