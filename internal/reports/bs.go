package reports

import (
	"math"

	"github.com/meridian-erp/meridian-erp/internal/ledgers"
	"github.com/meridian-erp/meridian-erp/internal/vouchers"
)

// BalanceSheetSection lists the ledgers and total for one classification.
type BalanceSheetSection struct {
	Label   string          `json:"label"`
	Ledgers []LedgerSummary `json:"ledgers"`
	Total   float64         `json:"total"`
}

// BalanceSheet is the statement of assets against liabilities and capital.
// NetProfit is a placeholder kept at zero; it is not wired to the P&L result.
type BalanceSheet struct {
	From               string              `json:"from"`
	To                 string              `json:"to"`
	CurrentAssets      BalanceSheetSection `json:"current_assets"`
	FixedAssets        BalanceSheetSection `json:"fixed_assets"`
	Investments        BalanceSheetSection `json:"investments"`
	CurrentLiabilities BalanceSheetSection `json:"current_liabilities"`
	Loans              BalanceSheetSection `json:"loans"`
	Capital            BalanceSheetSection `json:"capital"`
	NetProfit          float64             `json:"net_profit"`
	TotalAssets        float64             `json:"total_assets"`
	TotalLiabilities   float64             `json:"total_liabilities"`
}

// BuildBalanceSheet computes each ledger's native balance (opening plus
// debits minus credits) over the inclusive range and routes it by group.
// Sundry debtors fold into current assets, sundry creditors into current
// liabilities. Liability and loan balances are reported as absolute values;
// capital keeps its native sign.
// Groups the statement does not route (cash, bank, income, expense) do not
// enter the sheet.
func BuildBalanceSheet(ls []ledgers.Ledger, vs []vouchers.Voucher, rng DateRange) BalanceSheet {
	ordered := sortedLedgers(ls)
	totals := accumulate(ordered, vs, func(v vouchers.Voucher) bool {
		return rng.Contains(v.Date)
	})

	result := BalanceSheet{
		From:               rng.From.Format("2006-01-02"),
		To:                 rng.To.Format("2006-01-02"),
		CurrentAssets:      BalanceSheetSection{Label: "Current Assets", Ledgers: []LedgerSummary{}},
		FixedAssets:        BalanceSheetSection{Label: "Fixed Assets", Ledgers: []LedgerSummary{}},
		Investments:        BalanceSheetSection{Label: "Investments", Ledgers: []LedgerSummary{}},
		CurrentLiabilities: BalanceSheetSection{Label: "Current Liabilities", Ledgers: []LedgerSummary{}},
		Loans:              BalanceSheetSection{Label: "Loans", Ledgers: []LedgerSummary{}},
		Capital:            BalanceSheetSection{Label: "Capital", Ledgers: []LedgerSummary{}},
	}

	add := func(section *BalanceSheetSection, summary LedgerSummary) {
		section.Ledgers = append(section.Ledgers, summary)
		section.Total += summary.Balance
	}

	for _, ledger := range ordered {
		t := totals[ledger.ID]
		native := t.debit - t.credit
		summary := LedgerSummary{
			LedgerID:   ledger.ID,
			LedgerName: ledger.Name,
			Group:      ledger.Group,
			Balance:    native,
		}
		switch ledger.Group {
		case ledgers.GroupCurrentAssets, ledgers.GroupSundryDebtors:
			add(&result.CurrentAssets, summary)
		case ledgers.GroupFixedAssets:
			add(&result.FixedAssets, summary)
		case ledgers.GroupInvestments:
			add(&result.Investments, summary)
		case ledgers.GroupCurrentLiabilities, ledgers.GroupSundryCreditors:
			summary.Balance = math.Abs(native)
			add(&result.CurrentLiabilities, summary)
		case ledgers.GroupLoans:
			summary.Balance = math.Abs(native)
			add(&result.Loans, summary)
		case ledgers.GroupCapitalAccount:
			add(&result.Capital, summary)
		}
	}

	result.TotalAssets = result.CurrentAssets.Total + result.FixedAssets.Total + result.Investments.Total
	result.TotalLiabilities = result.CurrentLiabilities.Total + result.Loans.Total + result.Capital.Total
	return result
}
