package reports

import (
	"sort"

	"github.com/google/uuid"

	"github.com/meridian-erp/meridian-erp/internal/ledgers"
	"github.com/meridian-erp/meridian-erp/internal/vouchers"
)

// StatementRow is one journal hit against the ledger, carrying the running
// balance after the entry was applied.
type StatementRow struct {
	VoucherID     uuid.UUID          `json:"voucher_id"`
	VoucherNumber string             `json:"voucher_number"`
	VoucherType   vouchers.Type      `json:"voucher_type"`
	Date          string             `json:"date"`
	Narration     string             `json:"narration,omitempty"`
	Side          vouchers.EntrySide `json:"side"`
	Amount        float64            `json:"amount"`
	Balance       float64            `json:"balance"`
}

// AccountStatement reconstructs one ledger's activity over a period.
//
// OpeningBalance is fixed at zero: movement posted before the range start is
// not folded in. This mirrors the established report output and is kept
// deliberately; see the design notes before changing it.
type AccountStatement struct {
	LedgerID       uuid.UUID      `json:"ledger_id"`
	LedgerName     string         `json:"ledger_name"`
	From           string         `json:"from"`
	To             string         `json:"to"`
	OpeningBalance float64        `json:"opening_balance"`
	Transactions   []StatementRow `json:"transactions"`
	ClosingBalance float64        `json:"closing_balance"`
}

// BuildAccountStatement scans in-range vouchers in ascending date order and
// tracks a running balance: debits add, credits subtract.
func BuildAccountStatement(ledgerID uuid.UUID, ls []ledgers.Ledger, vs []vouchers.Voucher, rng DateRange) AccountStatement {
	result := AccountStatement{
		LedgerID:     ledgerID,
		LedgerName:   UnknownLedgerLabel,
		From:         rng.From.Format("2006-01-02"),
		To:           rng.To.Format("2006-01-02"),
		Transactions: []StatementRow{},
	}
	for _, ledger := range ls {
		if ledger.ID == ledgerID {
			result.LedgerName = ledger.Name
			break
		}
	}

	inRange := make([]vouchers.Voucher, 0, len(vs))
	for _, voucher := range vs {
		if rng.Contains(voucher.Date) {
			inRange = append(inRange, voucher)
		}
	}
	sort.SliceStable(inRange, func(i, j int) bool {
		return inRange[i].Date.Before(inRange[j].Date)
	})

	var balance float64
	for _, voucher := range inRange {
		for _, entry := range voucher.Entries {
			if entry.LedgerID != ledgerID {
				continue
			}
			if entry.Side == vouchers.SideDebit {
				balance += entry.Amount
			} else {
				balance -= entry.Amount
			}
			result.Transactions = append(result.Transactions, StatementRow{
				VoucherID:     voucher.ID,
				VoucherNumber: voucher.Number,
				VoucherType:   voucher.Type,
				Date:          voucher.Date.Format("2006-01-02"),
				Narration:     voucher.Narration,
				Side:          entry.Side,
				Amount:        entry.Amount,
				Balance:       balance,
			})
		}
	}
	result.ClosingBalance = balance
	return result
}
