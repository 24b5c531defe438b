// Package status exposes a read-only diagnostic view of recent
// ingestion output and the active watchlist.
package status

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/insiderwatch/internal/filing"
	"github.com/MrJamesThe3rd/insiderwatch/internal/watchlist"
)

const defaultLimit = 50

type Handler struct {
	filings *filing.Service
	watch   *watchlist.Service
}

func NewHandler(filings *filing.Service, watch *watchlist.Service) *Handler {
	return &Handler{filings: filings, watch: watch}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/health", h.health)
	r.Get("/filings", h.listFilings)
	r.Get("/transactions", h.listTransactions)
	r.Get("/watchlist", h.listWatchlist)
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (h *Handler) listFilings(w http.ResponseWriter, r *http.Request) {
	filings, err := h.filings.Recent(r.Context(), limitParam(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	out := make([]filingResponse, 0, len(filings))
	for _, f := range filings {
		out = append(out, toFilingResponse(f))
	}

	writeJSON(w, out)
}

func (h *Handler) listTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.filings.RecentTransactions(r.Context(), limitParam(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	out := make([]transactionResponse, 0, len(txs))
	for _, tx := range txs {
		out = append(out, toTransactionResponse(tx))
	}

	writeJSON(w, out)
}

func (h *Handler) listWatchlist(w http.ResponseWriter, r *http.Request) {
	entries, err := h.watch.Active(r.Context(), time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	out := make([]watchlistResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, watchlistResponse{
			Symbol:    e.Symbol,
			AddedAt:   e.AddedAt,
			ExpiresAt: e.ExpiresAt,
		})
	}

	writeJSON(w, out)
}

func limitParam(r *http.Request) int {
	if s := r.URL.Query().Get("limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}

	return defaultLimit
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
