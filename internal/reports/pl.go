package reports

import (
	"github.com/meridian-erp/meridian-erp/internal/ledgers"
	"github.com/meridian-erp/meridian-erp/internal/vouchers"
)

// ProfitLossStatement buckets income and expense ledgers for a period.
// A ledger appears in its bucket only when its period balance is non-zero.
type ProfitLossStatement struct {
	From             string          `json:"from"`
	To               string          `json:"to"`
	DirectIncomes    []LedgerSummary `json:"direct_incomes"`
	DirectExpenses   []LedgerSummary `json:"direct_expenses"`
	IndirectIncomes  []LedgerSummary `json:"indirect_incomes"`
	IndirectExpenses []LedgerSummary `json:"indirect_expenses"`
	TotalRevenue     float64         `json:"total_revenue"`
	TotalExpenses    float64         `json:"total_expenses"`
	GrossProfit      float64         `json:"gross_profit"`
	NetProfit        float64         `json:"net_profit"`
}

// BuildProfitAndLoss restricts the journal to vouchers dated inside the
// inclusive range, seeds each ledger from its opening balance, and buckets
// the resulting balances. Income balances are credit minus debit; expense
// balances debit minus credit, so both sides read positive under normal
// posting. Sales and purchase accounts count as direct income and direct
// expense respectively.
func BuildProfitAndLoss(ls []ledgers.Ledger, vs []vouchers.Voucher, rng DateRange) ProfitLossStatement {
	ordered := sortedLedgers(ls)
	totals := accumulate(ordered, vs, func(v vouchers.Voucher) bool {
		return rng.Contains(v.Date)
	})

	result := ProfitLossStatement{
		From:             rng.From.Format("2006-01-02"),
		To:               rng.To.Format("2006-01-02"),
		DirectIncomes:    []LedgerSummary{},
		DirectExpenses:   []LedgerSummary{},
		IndirectIncomes:  []LedgerSummary{},
		IndirectExpenses: []LedgerSummary{},
	}

	var indirectIncome, indirectExpense float64
	for _, ledger := range ordered {
		t := totals[ledger.ID]
		summary := LedgerSummary{
			LedgerID:   ledger.ID,
			LedgerName: ledger.Name,
			Group:      ledger.Group,
		}
		switch ledger.Group {
		case ledgers.GroupDirectIncomes, ledgers.GroupSalesAccounts:
			summary.Balance = t.credit - t.debit
			if summary.Balance != 0 {
				result.DirectIncomes = append(result.DirectIncomes, summary)
				result.TotalRevenue += summary.Balance
			}
		case ledgers.GroupDirectExpenses, ledgers.GroupPurchaseAccounts:
			summary.Balance = t.debit - t.credit
			if summary.Balance != 0 {
				result.DirectExpenses = append(result.DirectExpenses, summary)
				result.TotalExpenses += summary.Balance
			}
		case ledgers.GroupIndirectIncomes:
			summary.Balance = t.credit - t.debit
			if summary.Balance != 0 {
				result.IndirectIncomes = append(result.IndirectIncomes, summary)
				indirectIncome += summary.Balance
			}
		case ledgers.GroupIndirectExpenses:
			summary.Balance = t.debit - t.credit
			if summary.Balance != 0 {
				result.IndirectExpenses = append(result.IndirectExpenses, summary)
				indirectExpense += summary.Balance
			}
		}
	}

	result.GrossProfit = result.TotalRevenue - result.TotalExpenses
	result.NetProfit = result.GrossProfit + indirectIncome - indirectExpense
	return result
}
