package invoicing

import "github.com/shopspring/decimal"

// Amounts holds the derived money fields of an invoice line.
type Amounts struct {
	TotalValue float64
	GSTAmount  float64
	GrandTotal float64
}

// ComputeAmounts derives the invoice totals with decimal arithmetic so that
// quantities like 0.1 at awkward rates do not drift. Each figure rounds to
// two places independently; the grand total is the sum of the rounded parts
// and therefore always equals total plus tax to the paisa.
func ComputeAmounts(quantity, rate, gstPercent float64) Amounts {
	qty := decimal.NewFromFloat(quantity)
	unit := decimal.NewFromFloat(rate)
	pct := decimal.NewFromFloat(gstPercent)

	total := qty.Mul(unit).Round(2)
	tax := total.Mul(pct).Div(decimal.NewFromInt(100)).Round(2)
	grand := total.Add(tax)

	return Amounts{
		TotalValue: total.InexactFloat64(),
		GSTAmount:  tax.InexactFloat64(),
		GrandTotal: grand.InexactFloat64(),
	}
}
