// Package market looks up average daily dollar volume (ADV) from the
// Yahoo chart API.
package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const chartURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// Yahoo blocks generic clients (401/429) without a browser User-Agent.
const yahooUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

const (
	historyDays  = 60
	lookbackDays = 30
)

type ADVClient struct {
	httpClient *http.Client
	baseURL    string
	now        func() time.Time
}

func NewADVClient() *ADVClient {
	return &ADVClient{
		baseURL: chartURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        50,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		now: time.Now,
	}
}

// ADV returns the mean daily close*volume over the trailing 30 trading
// days, or nil when no data is available for any symbol variant. A nil
// result is expected for thinly covered or delisted symbols, not an
// error.
func (c *ADVClient) ADV(ctx context.Context, symbol string) (*float64, error) {
	for _, variant := range symbolVariants(symbol) {
		adv, err := c.fetchADV(ctx, variant)
		if err != nil {
			continue
		}

		if adv != nil {
			return adv, nil
		}
	}

	return nil, nil
}

// symbolVariants yields the ordered candidates tried for symbols with
// separator characters: verbatim, separator-to-dash (BRK.B -> BRK-B),
// the base token alone, and a dash inserted before a short trailing
// class suffix. The first variant that yields data wins.
func symbolVariants(symbol string) []string {
	symbol = strings.TrimSpace(symbol)

	variants := []string{symbol}

	seps := func(r rune) bool { return r == '.' || r == '/' || r == ' ' }

	if strings.ContainsFunc(symbol, seps) {
		dashed := strings.Map(func(r rune) rune {
			if seps(r) {
				return '-'
			}
			return r
		}, symbol)
		variants = append(variants, dashed)

		parts := strings.FieldsFunc(symbol, seps)
		if len(parts) > 1 {
			variants = append(variants, parts[0])

			if last := parts[len(parts)-1]; len(last) <= 2 {
				variants = append(variants, parts[0]+"-"+last)
			}
		}
	}

	seen := make(map[string]struct{}, len(variants))

	var out []string

	for _, v := range variants {
		if v == "" {
			continue
		}

		if _, dup := seen[v]; dup {
			continue
		}

		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close  []float64 `json:"close"`
					Volume []float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
	} `json:"chart"`
}

func (c *ADVClient) fetchADV(ctx context.Context, symbol string) (*float64, error) {
	now := c.now()
	period1 := now.AddDate(0, 0, -historyDays).Unix()
	period2 := now.Unix()

	u := c.baseURL + "/" + url.PathEscape(symbol) +
		"?interval=1d&period1=" + strconv.FormatInt(period1, 10) +
		"&period2=" + strconv.FormatInt(period2, 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", yahooUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, symbol)
	}

	var data chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}

	if len(data.Chart.Result) == 0 || len(data.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, nil
	}

	quote := data.Chart.Result[0].Indicators.Quote[0]

	n := len(quote.Close)
	if len(quote.Volume) < n {
		n = len(quote.Volume)
	}

	var dollarVolumes []float64

	for i := 0; i < n; i++ {
		dollarVolumes = append(dollarVolumes, quote.Close[i]*quote.Volume[i])
	}

	if len(dollarVolumes) > lookbackDays {
		dollarVolumes = dollarVolumes[len(dollarVolumes)-lookbackDays:]
	}

	if len(dollarVolumes) == 0 {
		return nil, nil
	}

	var sum float64
	for _, dv := range dollarVolumes {
		sum += dv
	}

	mean := sum / float64(len(dollarVolumes))

	return &mean, nil
}
