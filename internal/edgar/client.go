package edgar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Client is the EDGAR HTTP client. EDGAR requires a descriptive
// User-Agent on every request and serves a JSON listing per filing
// directory at <dir>/index.json.
type Client struct {
	httpClient *http.Client
	feedParser *gofeed.Parser
	feedURL    string
	userAgent  string
}

func NewClient(feedURL, userAgent string) *Client {
	httpClient := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        50,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	fp := gofeed.NewParser()
	fp.Client = httpClient
	fp.UserAgent = userAgent

	return &Client{
		httpClient: httpClient,
		feedParser: fp,
		feedURL:    feedURL,
		userAgent:  userAgent,
	}
}

// Latest discovers up to limit filing references from the current
// filings feed, most recent first. Feed entries whose link carries no
// recognizable accession number are skipped; the feed also lists
// non-Form-4 submissions.
func (c *Client) Latest(ctx context.Context, limit int) ([]FilingReference, error) {
	feed, err := c.feedParser.ParseURLWithContext(c.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFeedUnavailable, err)
	}

	var refs []FilingReference

	for _, item := range feed.Items {
		if len(refs) >= limit {
			break
		}

		accession := accessionPattern.FindString(item.Link)
		if accession == "" {
			continue
		}

		refs = append(refs, FilingReference{
			AccessionNo:  accession,
			DocumentsURL: item.Link,
			DirectoryURL: directoryURL(item.Link),
			Title:        item.Title,
		})
	}

	return refs, nil
}

type directoryListing struct {
	Directory struct {
		Item []struct {
			Name string `json:"name"`
		} `json:"item"`
	} `json:"directory"`
}

// ownership document filename tokens, in preference order. Stylesheet,
// schema and summary files are never eligible.
var preferredTokens = []string{"ownership", "form4", "primary"}

func eligibleXML(name string) bool {
	if !strings.HasSuffix(name, ".xml") {
		return false
	}

	if strings.HasSuffix(name, "xsl.xml") || strings.HasSuffix(name, "xsd.xml") {
		return false
	}

	return name != "filingsummary.xml"
}

// ResolveDocument picks the one machine-readable ownership document in
// a filing directory: first any eligible .xml whose name contains a
// preferred token, else the first remaining eligible .xml, preserving
// listing order within each tier. Returns "" (not an error) when the
// directory is unreachable or holds nothing eligible.
func (c *Client) ResolveDocument(ctx context.Context, dirURL string) (string, error) {
	base := strings.TrimRight(dirURL, "/")

	body, err := c.get(ctx, base+"/index.json")
	if err != nil {
		return "", nil
	}

	var listing directoryListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return "", nil
	}

	var fallback string

	for _, item := range listing.Directory.Item {
		name := strings.ToLower(item.Name)
		if !eligibleXML(name) {
			continue
		}

		for _, token := range preferredTokens {
			if strings.Contains(name, token) {
				return base + "/" + item.Name, nil
			}
		}

		if fallback == "" {
			fallback = base + "/" + item.Name
		}
	}

	if fallback == "" {
		return "", nil
	}

	return fallback, nil
}

// FetchDocument retrieves the raw bytes of a resolved document.
func (c *Client) FetchDocument(ctx context.Context, url string) ([]byte, error) {
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	return body, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return io.ReadAll(resp.Body)
}
