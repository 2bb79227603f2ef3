package http

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/google/uuid"

	"github.com/meridian-erp/meridian-erp/internal/platform/httpx"
	"github.com/meridian-erp/meridian-erp/internal/reports"
)

// Handler wires the report endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *reports.Service
	rateLimit func(http.Handler) http.Handler
}

// NewHandler constructs the report handler. CSV export is rate limited per
// client address.
func NewHandler(logger *slog.Logger, service *reports.Service) *Handler {
	limiter := httprate.Limit(10, time.Minute, httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return "ip:" + r.RemoteAddr, nil
		}
		return "ip:" + host, nil
	}))
	return &Handler{logger: logger, service: service, rateLimit: limiter}
}

const dateLayout = "2006-01-02"

func parseRange(r *http.Request) (reports.DateRange, error) {
	fromParam := strings.TrimSpace(r.URL.Query().Get("from"))
	toParam := strings.TrimSpace(r.URL.Query().Get("to"))
	if fromParam == "" || toParam == "" {
		return reports.DateRange{}, fmt.Errorf("from and to are required (format %s)", dateLayout)
	}
	from, err := time.Parse(dateLayout, fromParam)
	if err != nil {
		return reports.DateRange{}, fmt.Errorf("invalid from date: %s", fromParam)
	}
	to, err := time.Parse(dateLayout, toParam)
	if err != nil {
		return reports.DateRange{}, fmt.Errorf("invalid to date: %s", toParam)
	}
	if to.Before(from) {
		return reports.DateRange{}, fmt.Errorf("to precedes from")
	}
	return reports.DateRange{From: from, To: to}, nil
}

func rangeKey(prefix string, rng reports.DateRange) string {
	return prefix + ":" + rng.From.Format(dateLayout) + ":" + rng.To.Format(dateLayout)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, name, key string, build func(context.Context) (interface{}, error)) {
	out, err, _ := singleflightBuild(r.Context(), key, build)
	if err != nil {
		h.logger.Error(name, slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	httpx.JSON(w, http.StatusOK, out)
}

func (h *Handler) handleTrialBalance(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, "trial balance", "tb", func(ctx context.Context) (interface{}, error) {
		return h.service.TrialBalance(ctx)
	})
}

func (h *Handler) handleProfitLoss(w http.ResponseWriter, r *http.Request) {
	rng, err := parseRange(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	h.serve(w, r, "profit and loss", rangeKey("pl", rng), func(ctx context.Context) (interface{}, error) {
		return h.service.ProfitAndLoss(ctx, rng)
	})
}

func (h *Handler) handleBalanceSheet(w http.ResponseWriter, r *http.Request) {
	rng, err := parseRange(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	h.serve(w, r, "balance sheet", rangeKey("bs", rng), func(ctx context.Context) (interface{}, error) {
		return h.service.BalanceSheet(ctx, rng)
	})
}

func (h *Handler) handleDayBook(w http.ResponseWriter, r *http.Request) {
	dateParam := strings.TrimSpace(r.URL.Query().Get("date"))
	if dateParam == "" {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "date is required")
		return
	}
	day, err := time.Parse(dateLayout, dateParam)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid date: "+dateParam)
		return
	}
	h.serve(w, r, "day book", "daybook:"+dateParam, func(ctx context.Context) (interface{}, error) {
		return h.service.DayBook(ctx, day)
	})
}

func (h *Handler) handleStatement(w http.ResponseWriter, r *http.Request) {
	ledgerID, err := uuid.Parse(chi.URLParam(r, "ledgerID"))
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", "invalid ledger id")
		return
	}
	rng, err := parseRange(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	key := rangeKey("statement:"+ledgerID.String(), rng)
	h.serve(w, r, "account statement", key, func(ctx context.Context) (interface{}, error) {
		return h.service.AccountStatement(ctx, ledgerID, rng)
	})
}

func (h *Handler) handleGST(w http.ResponseWriter, r *http.Request) {
	rng, err := parseRange(r)
	if err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Validation Failed", err.Error())
		return
	}
	h.serve(w, r, "gst report", rangeKey("gst", rng), func(ctx context.Context) (interface{}, error) {
		return h.service.GST(ctx, rng)
	})
}
