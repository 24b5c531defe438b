// Package edgar talks to the SEC EDGAR endpoints: the current-filings
// Atom feed, per-filing directory listings and raw document retrieval.
package edgar

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrFeedUnavailable means the Atom feed could not be retrieved or
	// did not parse. It aborts the whole poll cycle.
	ErrFeedUnavailable = errors.New("edgar: feed unavailable")

	// ErrFetchFailed means a single document could not be retrieved.
	// It aborts only that filing's processing.
	ErrFetchFailed = errors.New("edgar: fetch failed")
)

// accessionPattern matches the SEC accession number embedded in a
// per-filing link, e.g. 0000320193-24-000123.
var accessionPattern = regexp.MustCompile(`\d{10}-\d{2}-\d{6}`)

// FilingReference is one candidate filing discovered from the feed.
// It lives only within a single poll cycle.
type FilingReference struct {
	AccessionNo  string
	DocumentsURL string
	DirectoryURL string
	Title        string
}

// directoryURL derives the filing's directory from its documents-page
// link by stripping the trailing "-index" segment:
// .../0000320193-25-000012-index.html -> .../0000320193-25-000012
func directoryURL(documentsURL string) string {
	i := strings.LastIndex(documentsURL, "-")
	if i < 0 {
		return documentsURL
	}

	return documentsURL[:i]
}
