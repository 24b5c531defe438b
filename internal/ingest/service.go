// Package ingest runs the poll cycle: discover fresh filings, parse
// and score their transactions, persist them exactly once and decide
// what gets alerted and watchlisted.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/MrJamesThe3rd/insiderwatch/internal/edgar"
	"github.com/MrJamesThe3rd/insiderwatch/internal/filing"
	"github.com/MrJamesThe3rd/insiderwatch/internal/form4"
	"github.com/MrJamesThe3rd/insiderwatch/internal/notify"
	"github.com/MrJamesThe3rd/insiderwatch/internal/signal"
)

//go:generate mockgen -source=service.go -destination=deps_mock.go -package=ingest

type Feed interface {
	Latest(ctx context.Context, limit int) ([]edgar.FilingReference, error)
}

type DocumentSource interface {
	ResolveDocument(ctx context.Context, dirURL string) (string, error)
	FetchDocument(ctx context.Context, url string) ([]byte, error)
}

type LiquiditySource interface {
	ADV(ctx context.Context, symbol string) (*float64, error)
}

type FilingStore interface {
	Exists(ctx context.Context, accessionNo string) (bool, error)
	Create(ctx context.Context, f *filing.Filing) error
	AddTransaction(ctx context.Context, tx *filing.Transaction) error
}

type WatchlistStore interface {
	Sweep(ctx context.Context, now time.Time) (int64, error)
	Add(ctx context.Context, symbol string, now time.Time, window time.Duration) error
}

type Sink interface {
	Notify(ctx context.Context, event notify.Event) error
}

type Options struct {
	Scoring         signal.Config
	FeedLimit       int
	WatchlistWindow time.Duration
}

// Service is the ingestion coordinator. It assumes at most one
// concurrent invocation; re-entrancy is the scheduler's problem.
type Service struct {
	feed    Feed
	docs    DocumentSource
	market  LiquiditySource
	filings FilingStore
	watch   WatchlistStore
	sink    Sink
	opts    Options
	now     func() time.Time
}

func NewService(feed Feed, docs DocumentSource, market LiquiditySource, filings FilingStore, watch WatchlistStore, sink Sink, opts Options) *Service {
	return &Service{
		feed:    feed,
		docs:    docs,
		market:  market,
		filings: filings,
		watch:   watch,
		sink:    sink,
		opts:    opts,
		now:     time.Now,
	}
}

// RunCycle performs one poll cycle: sweep the watchlist, discover up
// to the configured number of references and process each in
// discovery order. It does not loop or retry; per-filing failures are
// logged and skipped, only feed unavailability aborts the cycle.
//
// With alertAll set, every parsed transaction is alerted and no
// watchlist entries are written (diagnostic mode).
func (s *Service) RunCycle(ctx context.Context, alertAll bool) error {
	swept, err := s.watch.Sweep(ctx, s.now())
	if err != nil {
		return fmt.Errorf("sweeping watchlist: %w", err)
	}

	if swept > 0 {
		slog.Info("swept expired watchlist entries", "count", swept)
	}

	refs, err := s.feed.Latest(ctx, s.opts.FeedLimit)
	if err != nil {
		return fmt.Errorf("discovering filings: %w", err)
	}

	slog.Info("discovered recent filing references", "count", len(refs))

	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.processReference(ctx, ref, alertAll)
	}

	return nil
}

// processReference carries one filing reference from dedup check to
// persisted, scored transactions. The dedup check runs before any
// network work.
func (s *Service) processReference(ctx context.Context, ref edgar.FilingReference, alertAll bool) {
	exists, err := s.filings.Exists(ctx, ref.AccessionNo)
	if err != nil {
		slog.Error("dedup check failed", "accession", ref.AccessionNo, "error", err)
		return
	}

	if exists {
		return
	}

	docURL, err := s.docs.ResolveDocument(ctx, ref.DirectoryURL)
	if err != nil {
		slog.Warn("document resolution failed", "accession", ref.AccessionNo, "error", err)
		return
	}

	if docURL == "" {
		return
	}

	raw, err := s.docs.FetchDocument(ctx, docURL)
	if err != nil {
		slog.Warn("document fetch failed", "accession", ref.AccessionNo, "error", err)
		return
	}

	disclosure, err := form4.Parse(raw)
	if err != nil {
		slog.Warn("skipping malformed disclosure", "accession", ref.AccessionNo, "error", err)
		return
	}

	// A disclosure with no resolvable ticker is not actionable.
	if disclosure.Symbol == "" {
		return
	}

	f := &filing.Filing{
		AccessionNo:    ref.AccessionNo,
		CIK:            disclosure.CIK,
		Symbol:         disclosure.Symbol,
		PeriodOfReport: disclosure.PeriodOfReport,
		DocumentsURL:   ref.DocumentsURL,
	}

	if err := s.filings.Create(ctx, f); err != nil {
		// Lost the race to a concurrent writer: someone else owns
		// this accession number now.
		if errors.Is(err, filing.ErrDuplicate) {
			return
		}

		slog.Error("failed to persist filing", "accession", ref.AccessionNo, "error", err)
		return
	}

	adv, err := s.market.ADV(ctx, disclosure.Symbol)
	if err != nil {
		slog.Warn("adv lookup failed", "symbol", disclosure.Symbol, "error", err)
		adv = nil
	}

	for _, tx := range disclosure.Transactions {
		s.processTransaction(ctx, f, tx, adv, alertAll)
	}
}

func (s *Service) processTransaction(ctx context.Context, f *filing.Filing, tx form4.Transaction, adv *float64, alertAll bool) {
	feats := signal.Compute(tx, adv, s.opts.Scoring)

	rec := &filing.Transaction{
		FilingID:     f.ID,
		Code:         tx.Code,
		Date:         tx.Date,
		Shares:       tx.Shares,
		Price:        tx.Price,
		DollarValue:  feats.DollarValue,
		OwnerName:    tx.OwnerName,
		IsOfficer:    tx.IsOfficer,
		IsDirector:   tx.IsDirector,
		OfficerTitle: tx.OfficerTitle,
		SharesAfter:  tx.SharesAfter,
		Is10b51Plan:  tx.Is10b51Plan,
		PctADV:       feats.PctADV,
		Score:        feats.Score,
	}

	if err := s.filings.AddTransaction(ctx, rec); err != nil {
		slog.Error("failed to persist transaction", "accession", f.AccessionNo, "error", err)
		return
	}

	shouldAlert := alertAll || (rec.Score >= s.opts.Scoring.AlertThreshold && rec.Code == form4.CodePurchase)
	if !shouldAlert {
		return
	}

	event := notify.Event{
		Symbol:       f.Symbol,
		Code:         rec.Code,
		DollarValue:  rec.DollarValue,
		PctADV:       rec.PctADV,
		IsOfficer:    rec.IsOfficer,
		OfficerTitle: rec.OfficerTitle,
		Is10b51Plan:  rec.Is10b51Plan,
		DocumentsURL: f.DocumentsURL,
		Score:        rec.Score,
	}

	// A lost alert for an already-ingested filing is unrecoverable by
	// retry, so sink failures must never unwind the committed rows.
	if err := s.sink.Notify(ctx, event); err != nil {
		slog.Error("notification failed", "symbol", f.Symbol, "error", err)
	}

	if !alertAll && rec.Code == form4.CodePurchase {
		if err := s.watch.Add(ctx, f.Symbol, s.now(), s.opts.WatchlistWindow); err != nil {
			slog.Error("watchlist add failed", "symbol", f.Symbol, "error", err)
		}
	}
}
