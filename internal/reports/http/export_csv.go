package http

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/meridian-erp/meridian-erp/internal/platform/httpx"
	"github.com/meridian-erp/meridian-erp/internal/reports"
)

const (
	csvFlushEvery = 200
	csvBufferSize = 32 * 1024
)

type csvStreamer struct {
	buf          *bufio.Writer
	csv          *csv.Writer
	flushEvery   int
	pendingLines int
}

func newCSVStreamer(w io.Writer) *csvStreamer {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	writer := csv.NewWriter(buf)
	writer.UseCRLF = true
	return &csvStreamer{buf: buf, csv: writer, flushEvery: csvFlushEvery}
}

func (s *csvStreamer) writeComment(line string) error {
	if !strings.HasSuffix(line, "\r\n") {
		line = strings.TrimSuffix(line, "\n")
		line += "\r\n"
	}
	_, err := s.buf.WriteString(line)
	return err
}

func (s *csvStreamer) writeRow(row []string) error {
	if err := s.csv.Write(row); err != nil {
		return err
	}
	s.pendingLines++
	if s.flushEvery > 0 && s.pendingLines >= s.flushEvery {
		return s.Flush()
	}
	return nil
}

func (s *csvStreamer) Flush() error {
	s.csv.Flush()
	if err := s.csv.Error(); err != nil {
		return err
	}
	if err := s.buf.Flush(); err != nil {
		return err
	}
	s.pendingLines = 0
	return nil
}

func writeTrialBalanceCSV(w io.Writer, tb reports.TrialBalance, generatedAt time.Time) error {
	streamer := newCSVStreamer(w)
	if err := streamer.writeComment("# Report: Trial Balance"); err != nil {
		return err
	}
	if err := streamer.writeComment(fmt.Sprintf("# Generated: %s", generatedAt.Format(time.RFC3339))); err != nil {
		return err
	}
	if err := streamer.writeRow([]string{"Ledger", "Group", "Debit Total", "Credit Total", "Balance", "Type"}); err != nil {
		return err
	}
	for _, row := range tb.Rows {
		if err := streamer.writeRow([]string{
			row.LedgerName,
			string(row.Group),
			formatAmount(row.DebitTotal),
			formatAmount(row.CreditTotal),
			formatAmount(row.Balance),
			string(row.Type),
		}); err != nil {
			return err
		}
	}
	if err := streamer.writeRow([]string{"Totals", "", formatAmount(tb.TotalDebit), formatAmount(tb.TotalCredit), "", ""}); err != nil {
		return err
	}
	return streamer.Flush()
}

// amountPrinter groups digits the way spreadsheet users expect. The csv
// writer quotes fields containing commas, so the grouping is safe to parse.
var amountPrinter = message.NewPrinter(language.English)

func formatAmount(v float64) string {
	return amountPrinter.Sprintf("%.2f", v)
}

func (h *Handler) handleTrialBalanceCSV(w http.ResponseWriter, r *http.Request) {
	tb, err := h.service.TrialBalance(r.Context())
	if err != nil {
		h.logger.Error("trial balance export", slog.Any("error", err))
		httpx.Problem(w, http.StatusInternalServerError, "Internal Error", "")
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="trial-balance.csv"`)
	if err := writeTrialBalanceCSV(w, tb, time.Now().UTC()); err != nil {
		h.logger.Error("trial balance export write", slog.Any("error", err))
	}
}
