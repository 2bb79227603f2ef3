package http

import "github.com/go-chi/chi/v5"

// MountRoutes registers the report endpoints under the given router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/trial-balance", h.handleTrialBalance)
	r.With(h.rateLimit).Get("/trial-balance/export.csv", h.handleTrialBalanceCSV)
	r.Get("/profit-loss", h.handleProfitLoss)
	r.Get("/balance-sheet", h.handleBalanceSheet)
	r.Get("/day-book", h.handleDayBook)
	r.Get("/ledgers/{ledgerID}/statement", h.handleStatement)
	r.Get("/gst", h.handleGST)
}
