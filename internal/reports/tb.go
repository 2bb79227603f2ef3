package reports

import (
	"github.com/google/uuid"

	"github.com/meridian-erp/meridian-erp/internal/ledgers"
	"github.com/meridian-erp/meridian-erp/internal/vouchers"
)

// BalanceType indicates which side a trial balance row closes on.
type BalanceType string

const (
	BalanceDebit  BalanceType = "DEBIT"
	BalanceCredit BalanceType = "CREDIT"
	BalanceZero   BalanceType = "ZERO"
)

// TrialBalanceRow is one ledger's position in the trial balance.
// Balance is the absolute net; Type carries the side.
type TrialBalanceRow struct {
	LedgerID    uuid.UUID     `json:"ledger_id"`
	LedgerName  string        `json:"ledger_name"`
	Group       ledgers.Group `json:"group"`
	DebitTotal  float64       `json:"debit_total"`
	CreditTotal float64       `json:"credit_total"`
	Balance     float64       `json:"balance"`
	Type        BalanceType   `json:"type"`
}

// TrialBalance lists every ledger's net debit/credit position.
type TrialBalance struct {
	Rows        []TrialBalanceRow `json:"rows"`
	TotalDebit  float64           `json:"total_debit"`
	TotalCredit float64           `json:"total_credit"`
}

// BuildTrialBalance folds the full journal history against the registry.
// No date filter applies here: the trial balance always considers every
// posted voucher, unlike the P&L and balance sheet.
func BuildTrialBalance(ls []ledgers.Ledger, vs []vouchers.Voucher) TrialBalance {
	ordered := sortedLedgers(ls)
	totals := accumulate(ordered, vs, nil)

	result := TrialBalance{Rows: make([]TrialBalanceRow, 0, len(ordered))}
	for _, ledger := range ordered {
		t := totals[ledger.ID]
		net := t.debit - t.credit
		row := TrialBalanceRow{
			LedgerID:    ledger.ID,
			LedgerName:  ledger.Name,
			Group:       ledger.Group,
			DebitTotal:  t.debit,
			CreditTotal: t.credit,
			Balance:     net,
			Type:        BalanceDebit,
		}
		switch {
		case net < 0:
			row.Balance = -net
			row.Type = BalanceCredit
		case net == 0:
			row.Type = BalanceZero
		}
		result.Rows = append(result.Rows, row)
		result.TotalDebit += t.debit
		result.TotalCredit += t.credit
	}
	return result
}
