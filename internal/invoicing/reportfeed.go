package invoicing

import (
	"context"

	"github.com/meridian-erp/meridian-erp/internal/reports"
)

// TaxFeed exposes recorded invoices as tax lines for the GST summary.
type TaxFeed struct {
	repo Repository
}

func NewTaxFeed(repo Repository) *TaxFeed {
	return &TaxFeed{repo: repo}
}

func (f *TaxFeed) SalesTaxLines(ctx context.Context) ([]reports.TaxLine, error) {
	return f.lines(ctx, KindSale)
}

func (f *TaxFeed) PurchaseTaxLines(ctx context.Context) ([]reports.TaxLine, error) {
	return f.lines(ctx, KindPurchase)
}

func (f *TaxFeed) lines(ctx context.Context, kind Kind) ([]reports.TaxLine, error) {
	invoices, err := f.repo.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}
	out := make([]reports.TaxLine, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, reports.TaxLine{
			Date:         inv.Date,
			TaxableValue: inv.TotalValue,
			GSTAmount:    inv.GSTAmount,
		})
	}
	return out, nil
}
