package form4

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Parse extracts issuer identity, reporting-owner role and the
// non-derivative transaction list from a raw ownership document.
//
// Queries run against local element names, so documents with and
// without the default namespace declaration resolve through the same
// paths. Derivative tables are ignored.
//
// Limitation: role and title are read from the first reportingOwner
// block only and applied to every line item, so co-filed documents
// with several distinct owners misattribute role and title. This
// mirrors upstream behavior and is deliberate.
func Parse(raw []byte) (*Disclosure, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, ErrMalformed
	}

	d := &Disclosure{
		Symbol:         firstText(root, "//issuer/issuerTradingSymbol"),
		CIK:            firstText(root, "//issuer/issuerCik"),
		PeriodOfReport: firstText(root, "//periodOfReport"),
	}

	var (
		ownerName    string
		isOfficer    bool
		isDirector   bool
		officerTitle string
	)

	if owner := root.FindElement("//reportingOwner"); owner != nil {
		ownerName = firstText(owner, ".//rptOwnerName")
		isOfficer = flagSet(firstText(owner, ".//reportingOwnerRelationship/isOfficer"))
		isDirector = flagSet(firstText(owner, ".//reportingOwnerRelationship/isDirector"))
		officerTitle = firstText(owner, ".//reportingOwnerRelationship/officerTitle")
	}

	footnotes := make(map[string]string)

	for _, fn := range root.FindElements("//footnote") {
		if id := fn.SelectAttrValue("id", ""); id != "" {
			footnotes[id] = strings.ToLower(strings.TrimSpace(fn.Text()))
		}
	}

	for _, table := range root.FindElements("//nonDerivativeTable") {
		for _, tx := range table.FindElements(".//nonDerivativeTransaction") {
			d.Transactions = append(d.Transactions, Transaction{
				Code:         firstText(tx, "transactionCoding/transactionCode"),
				Date:         firstText(tx, "transactionDate/value"),
				Shares:       parseFloat(firstText(tx, "transactionAmounts/transactionShares/value")),
				Price:        parseFloat(firstText(tx, "transactionAmounts/transactionPricePerShare/value")),
				SharesAfter:  parseFloatPtr(firstText(tx, "postTransactionAmounts/sharesOwnedFollowingTransaction/value")),
				Is10b51Plan:  referencesPlan(tx, footnotes),
				OwnerName:    ownerName,
				IsOfficer:    isOfficer,
				IsDirector:   isDirector,
				OfficerTitle: officerTitle,
			})
		}
	}

	return d, nil
}

// referencesPlan reports whether any footnote referenced by the line
// item, at any depth, mentions a 10b5-1 trading plan. Footnote text is
// lower-cased when collected, so the substring check is
// case-insensitive.
func referencesPlan(tx *etree.Element, footnotes map[string]string) bool {
	for _, ref := range tx.FindElements(".//footnoteId") {
		id := ref.SelectAttrValue("id", "")
		if id == "" {
			continue
		}

		if strings.Contains(footnotes[id], "10b5-1") {
			return true
		}
	}

	return false
}

func firstText(e *etree.Element, path string) string {
	el := e.FindElement(path)
	if el == nil {
		return ""
	}

	return strings.TrimSpace(el.Text())
}

func flagSet(s string) bool {
	return s == "1" || strings.EqualFold(s, "true")
}

func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return v
}

func parseFloatPtr(s string) *float64 {
	if s == "" {
		return nil
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}

	return &v
}
