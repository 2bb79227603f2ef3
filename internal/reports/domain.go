// Package reports derives financial statements from the ledger registry and
// the voucher journal. Every builder is a pure function over already-fetched
// snapshots: no I/O, no hidden state, identical output for identical input.
package reports

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-erp/meridian-erp/internal/ledgers"
	"github.com/meridian-erp/meridian-erp/internal/vouchers"
)

// UnknownLedgerLabel is the display fallback for entries whose ledger has
// been deleted. Dangling references never raise an error.
const UnknownLedgerLabel = "Unknown"

// DateRange bounds a report period, inclusive on both calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Contains reports whether the date falls inside the range, comparing whole
// calendar days.
func (r DateRange) Contains(t time.Time) bool {
	d := dayOf(t)
	return !d.Before(dayOf(r.From)) && !d.After(dayOf(r.To))
}

// LedgerSummary is one ledger's contribution to a statement bucket.
type LedgerSummary struct {
	LedgerID   uuid.UUID     `json:"ledger_id"`
	LedgerName string        `json:"ledger_name"`
	Group      ledgers.Group `json:"group"`
	Balance    float64       `json:"balance"`
}

// ledgerTotals accumulates debit/credit movement per ledger.
type ledgerTotals struct {
	debit  float64
	credit float64
}

// seededTotals starts a ledger's totals from its opening balance: a positive
// opening seeds the debit side, a negative one seeds the credit side.
func seededTotals(opening float64) ledgerTotals {
	if opening >= 0 {
		return ledgerTotals{debit: opening}
	}
	return ledgerTotals{credit: -opening}
}

// accumulate folds every matching voucher entry into the per-ledger totals.
// A nil filter considers the full journal history.
func accumulate(ls []ledgers.Ledger, vs []vouchers.Voucher, include func(vouchers.Voucher) bool) map[uuid.UUID]ledgerTotals {
	totals := make(map[uuid.UUID]ledgerTotals, len(ls))
	for _, ledger := range ls {
		totals[ledger.ID] = seededTotals(ledger.OpeningBalance)
	}
	for _, voucher := range vs {
		if include != nil && !include(voucher) {
			continue
		}
		for _, entry := range voucher.Entries {
			t, ok := totals[entry.LedgerID]
			if !ok {
				continue
			}
			switch entry.Side {
			case vouchers.SideDebit:
				t.debit += entry.Amount
			case vouchers.SideCredit:
				t.credit += entry.Amount
			}
			totals[entry.LedgerID] = t
		}
	}
	return totals
}

// sortedLedgers returns a name-ordered copy so builder output is stable
// regardless of input order.
func sortedLedgers(ls []ledgers.Ledger) []ledgers.Ledger {
	out := make([]ledgers.Ledger, len(ls))
	copy(out, ls)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID.String() < out[j].ID.String()
	})
	return out
}
