package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"insiderwatch"`
		Port int    `envconfig:"PORT" default:"0"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"insiderwatch"`
	}

	SEC struct {
		// EDGAR rejects requests without a descriptive User-Agent.
		UserAgent    string        `envconfig:"SEC_USER_AGENT" default:"your-email@example.com"`
		FeedURL      string        `envconfig:"SEC_FEED_URL" default:"https://www.sec.gov/cgi-bin/browse-edgar?action=getcurrent&type=4&owner=only&output=atom"`
		FeedLimit    int           `envconfig:"SEC_FEED_LIMIT" default:"60"`
		PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"60s"`
	}

	Scoring struct {
		MinDollarValue float64  `envconfig:"MIN_DOLLAR_VALUE" default:"250000"`
		MinPctADV      float64  `envconfig:"MIN_PCT_ADV" default:"10"`
		PriorityTitles []string `envconfig:"PRIORITY_TITLES" default:"ceo,cfo,chief executive,chief financial"`
		AlertThreshold int      `envconfig:"SCORE_ALERT_THRESHOLD" default:"6"`
	}

	Watchlist struct {
		Window time.Duration `envconfig:"WATCHLIST_WINDOW" default:"240h"`
	}

	Discord struct {
		WebhookURL string `envconfig:"DISCORD_WEBHOOK_URL"`
	}

	Email struct {
		Enabled  bool   `envconfig:"EMAIL_ENABLED" default:"false"`
		SMTPHost string `envconfig:"SMTP_HOST"`
		SMTPPort int    `envconfig:"SMTP_PORT" default:"587"`
		SMTPUser string `envconfig:"SMTP_USER"`
		SMTPPass string `envconfig:"SMTP_PASS"`
		From     string `envconfig:"EMAIL_FROM"`
		To       string `envconfig:"EMAIL_TO"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
