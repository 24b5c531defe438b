package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/insiderwatch/internal/config"
	"github.com/MrJamesThe3rd/insiderwatch/internal/database"
	"github.com/MrJamesThe3rd/insiderwatch/internal/edgar"
	"github.com/MrJamesThe3rd/insiderwatch/internal/filing"
	filingStore "github.com/MrJamesThe3rd/insiderwatch/internal/filing/store"
	iwHttp "github.com/MrJamesThe3rd/insiderwatch/internal/http"
	statusHandler "github.com/MrJamesThe3rd/insiderwatch/internal/http/status"
	"github.com/MrJamesThe3rd/insiderwatch/internal/ingest"
	"github.com/MrJamesThe3rd/insiderwatch/internal/market"
	"github.com/MrJamesThe3rd/insiderwatch/internal/notify"
	scoring "github.com/MrJamesThe3rd/insiderwatch/internal/signal"
	"github.com/MrJamesThe3rd/insiderwatch/internal/watchlist"
	watchlistStore "github.com/MrJamesThe3rd/insiderwatch/internal/watchlist/store"
)

func init() {
	godotenv.Load(".env")
}

func main() {
	alertAll := flag.Bool("alert-all", false, "Alert on every parsed transaction (diagnostics; no watchlist writes)")
	testAlert := flag.Bool("test-alert", false, "Send a simulated high-signal alert to the configured sinks and exit")
	once := flag.Bool("once", false, "Run a single poll cycle and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	sink := buildSink(cfg)

	if *testAlert {
		sendTestAlert(sink)
		return
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.InitSchema(ctx, db); err != nil {
		slog.Error("failed to initialize schema", "error", err)
		os.Exit(1)
	}

	var (
		filingService    = filing.NewService(filingStore.New(db))
		watchlistService = watchlist.NewService(watchlistStore.New(db))
		edgarClient      = edgar.NewClient(cfg.SEC.FeedURL, cfg.SEC.UserAgent)
		advClient        = market.NewADVClient()
	)

	coordinator := ingest.NewService(
		edgarClient,
		edgarClient,
		advClient,
		filingService,
		watchlistService,
		sink,
		ingest.Options{
			Scoring: scoring.Config{
				MinDollarValue: cfg.Scoring.MinDollarValue,
				MinPctADV:      cfg.Scoring.MinPctADV,
				PriorityTitles: cfg.Scoring.PriorityTitles,
				AlertThreshold: cfg.Scoring.AlertThreshold,
			},
			FeedLimit:       cfg.SEC.FeedLimit,
			WatchlistWindow: cfg.Watchlist.Window,
		},
	)

	if cfg.App.Port > 0 {
		go serveStatus(cfg.App.Port, filingService, watchlistService)
	}

	slog.Info("starting insiderwatch", "poll_interval", cfg.SEC.PollInterval, "alert_all", *alertAll)

	runCycle(ctx, coordinator, *alertAll)

	if *once {
		return
	}

	ticker := time.NewTicker(cfg.SEC.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("shutting down")
			return
		case <-ticker.C:
			runCycle(ctx, coordinator, *alertAll)
		}
	}
}

func runCycle(ctx context.Context, coordinator *ingest.Service, alertAll bool) {
	if err := coordinator.RunCycle(ctx, alertAll); err != nil && ctx.Err() == nil {
		slog.Error("poll cycle failed", "error", err)
	}
}

func buildSink(cfg *config.Config) notify.Notifier {
	var sinks notify.Multi

	if cfg.Discord.WebhookURL != "" {
		sinks = append(sinks, notify.NewDiscord(cfg.Discord.WebhookURL, cfg.SEC.UserAgent))
	}

	if cfg.Email.Enabled {
		sinks = append(sinks, notify.NewEmail(notify.EmailConfig{
			SMTPHost: cfg.Email.SMTPHost,
			SMTPPort: cfg.Email.SMTPPort,
			SMTPUser: cfg.Email.SMTPUser,
			SMTPPass: cfg.Email.SMTPPass,
			From:     cfg.Email.From,
			To:       cfg.Email.To,
		}))
	}

	return sinks
}

func sendTestAlert(sink notify.Notifier) {
	pctADV := 25.5

	event := notify.Event{
		Symbol:       "AAPL",
		Code:         "P",
		DollarValue:  500000,
		PctADV:       &pctADV,
		IsOfficer:    true,
		OfficerTitle: "Chief Executive Officer",
		Is10b51Plan:  false,
		DocumentsURL: "https://www.sec.gov/Archives/edgar/data/320193/000032019324000123/0000320193-24-000123-index.htm",
		Score:        8,
	}

	if err := sink.Notify(context.Background(), event); err != nil {
		slog.Error("test alert failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("Test alert sent.")
}

func serveStatus(port int, filings *filing.Service, watch *watchlist.Service) {
	router := iwHttp.New(statusHandler.NewHandler(filings, watch))

	addr := fmt.Sprintf(":%d", port)
	slog.Info("starting status server", "addr", addr)

	if err := http.ListenAndServe(addr, router); err != nil {
		slog.Error("status server failed", "error", err)
	}
}
