package notify

import (
	"context"
	"fmt"

	gomail "gopkg.in/mail.v2"
)

type EmailConfig struct {
	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	From     string
	To       string
}

// Email sends one plain-text message per alert over SMTP.
type Email struct {
	cfg EmailConfig
}

func NewEmail(cfg EmailConfig) *Email {
	return &Email{cfg: cfg}
}

func (e *Email) Notify(_ context.Context, event Event) error {
	pct := "n/a"
	if event.PctADV != nil {
		pct = fmt.Sprintf("%.1f%%", *event.PctADV)
	}

	body := fmt.Sprintf(
		"Symbol: %s\nCode: %s\nDollar value: $%.0f\n%%ADV: %s\nOfficer: %t\nTitle: %s\n10b5-1 plan: %t\nScore: %d\n\nFiling: %s\n",
		event.Symbol,
		event.Code,
		event.DollarValue,
		pct,
		event.IsOfficer,
		event.OfficerTitle,
		event.Is10b51Plan,
		event.Score,
		event.DocumentsURL,
	)

	m := gomail.NewMessage()
	m.SetHeader("From", e.cfg.From)
	m.SetHeader("To", e.cfg.To)
	m.SetHeader("Subject", fmt.Sprintf("Insider Signal: %s (score %d)", event.Symbol, event.Score))
	m.SetBody("text/plain", body)

	dialer := gomail.NewDialer(e.cfg.SMTPHost, e.cfg.SMTPPort, e.cfg.SMTPUser, e.cfg.SMTPPass)

	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("sending alert email: %w", err)
	}

	return nil
}
