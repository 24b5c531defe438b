package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Discord posts alerts to a webhook URL as a single markdown message.
type Discord struct {
	webhookURL string
	userAgent  string
	httpClient *http.Client
}

func NewDiscord(webhookURL, userAgent string) *Discord {
	return &Discord{
		webhookURL: webhookURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

func (d *Discord) Notify(ctx context.Context, event Event) error {
	payload, err := json.Marshal(map[string]string{"content": formatMessage(event)})
	if err != nil {
		return fmt.Errorf("encoding webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("posting webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}

func formatMessage(event Event) string {
	pct := "n/a"
	if event.PctADV != nil {
		pct = fmt.Sprintf("%.1f", *event.PctADV)
	}

	title := event.OfficerTitle
	if title == "" {
		title = "n/a"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "**Insider Signal** %s\n", event.Symbol)
	fmt.Fprintf(&b, "- Code: %s  - $%.0f  - %%ADV: %s\n", event.Code, event.DollarValue, pct)
	fmt.Fprintf(&b, "- Officer: %t  - Title: %s  - Plan10b5-1: %t\n", event.IsOfficer, title, event.Is10b51Plan)
	fmt.Fprintf(&b, "- Link: %s\n", event.DocumentsURL)
	fmt.Fprintf(&b, "- Score: **%d**", event.Score)

	return b.String()
}
