package invoicing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/meridian-erp/meridian-erp/internal/ledgers"
	"github.com/meridian-erp/meridian-erp/internal/products"
	"github.com/meridian-erp/meridian-erp/internal/vouchers"
	_ "github.com/meridian-erp/meridian-erp/testing"
)

type memoryInvoiceRepo struct {
	invoices map[uuid.UUID]Invoice
}

func newMemoryInvoiceRepo() *memoryInvoiceRepo {
	return &memoryInvoiceRepo{invoices: make(map[uuid.UUID]Invoice)}
}

func (r *memoryInvoiceRepo) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &inv, nil
}

func (r *memoryInvoiceRepo) ListByKind(ctx context.Context, kind Kind) ([]Invoice, error) {
	var out []Invoice
	for _, inv := range r.invoices {
		if inv.Kind == kind {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *memoryInvoiceRepo) Create(ctx context.Context, invoice Invoice) error {
	r.invoices[invoice.ID] = invoice
	return nil
}

func (r *memoryInvoiceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.invoices[id]; !ok {
		return ErrNotFound
	}
	delete(r.invoices, id)
	return nil
}

type fakeCatalog struct {
	product *products.Product
	deltas  []float64
}

func (c *fakeCatalog) Get(ctx context.Context, id uuid.UUID) (*products.Product, error) {
	if c.product == nil || c.product.ID != id {
		return nil, products.ErrNotFound
	}
	return c.product, nil
}

func (c *fakeCatalog) AdjustStock(ctx context.Context, id uuid.UUID, delta float64) error {
	c.deltas = append(c.deltas, delta)
	return nil
}

type fakeFinder struct {
	byName map[string]*ledgers.Ledger
}

func (f *fakeFinder) GetByName(ctx context.Context, name string) (*ledgers.Ledger, error) {
	if l, ok := f.byName[name]; ok {
		return l, nil
	}
	return nil, ledgers.ErrNotFound
}

type fakePoster struct {
	created []vouchers.CreateVoucherRequest
	deleted []uuid.UUID
}

func (p *fakePoster) Create(ctx context.Context, req vouchers.CreateVoucherRequest) (*vouchers.Voucher, error) {
	p.created = append(p.created, req)
	debit, credit := req.Totals()
	return &vouchers.Voucher{
		ID:          uuid.New(),
		Type:        vouchers.Type(req.Type),
		Number:      "SLS-2403-0001",
		TotalDebit:  debit,
		TotalCredit: credit,
	}, nil
}

func (p *fakePoster) Delete(ctx context.Context, id uuid.UUID) error {
	p.deleted = append(p.deleted, id)
	return nil
}

func postingLedgers() *fakeFinder {
	mk := func(name string, group ledgers.Group) *ledgers.Ledger {
		return &ledgers.Ledger{ID: uuid.New(), Name: name, Group: group}
	}
	return &fakeFinder{byName: map[string]*ledgers.Ledger{
		SalesLedgerName:          mk(SalesLedgerName, ledgers.GroupSalesAccounts),
		PurchaseLedgerName:       mk(PurchaseLedgerName, ledgers.GroupPurchaseAccounts),
		GSTPayableLedgerName:     mk(GSTPayableLedgerName, ledgers.GroupCurrentLiabilities),
		GSTInputCreditLedgerName: mk(GSTInputCreditLedgerName, ledgers.GroupCurrentAssets),
		DebtorsLedgerName:        mk(DebtorsLedgerName, ledgers.GroupSundryDebtors),
		CreditorsLedgerName:      mk(CreditorsLedgerName, ledgers.GroupSundryCreditors),
	}}
}

func testProduct() *products.Product {
	return &products.Product{
		ID:           uuid.New(),
		Name:         "Steel Rod",
		SKU:          "ROD-12",
		Unit:         "kg",
		GSTPercent:   18,
		SaleRate:     100,
		PurchaseRate: 80,
		StockQty:     50,
	}
}

func TestRecordSale(t *testing.T) {
	repo := newMemoryInvoiceRepo()
	product := testProduct()
	catalog := &fakeCatalog{product: product}
	poster := &fakePoster{}
	svc := NewService(repo, catalog, postingLedgers(), poster, nil)

	invoice, err := svc.RecordSale(context.Background(), CreateInvoiceRequest{
		ProductID: product.ID,
		PartyName: "Acme Traders",
		Date:      "2024-03-15",
		Quantity:  10,
	})
	require.NoError(t, err)
	require.Equal(t, KindSale, invoice.Kind)
	require.Equal(t, 1000.0, invoice.TotalValue)
	require.Equal(t, 180.0, invoice.GSTAmount)
	require.Equal(t, 1180.0, invoice.GrandTotal)
	require.NotNil(t, invoice.VoucherID)

	require.Len(t, poster.created, 1)
	req := poster.created[0]
	require.Equal(t, string(vouchers.TypeSales), req.Type)
	debit, credit := req.Totals()
	require.Equal(t, 1180.0, debit)
	require.Equal(t, debit, credit)

	require.Equal(t, []float64{-10}, catalog.deltas)
}

func TestRecordPurchaseUsesPurchaseRateAndAddsStock(t *testing.T) {
	repo := newMemoryInvoiceRepo()
	product := testProduct()
	catalog := &fakeCatalog{product: product}
	poster := &fakePoster{}
	svc := NewService(repo, catalog, postingLedgers(), poster, nil)

	invoice, err := svc.RecordPurchase(context.Background(), CreateInvoiceRequest{
		ProductID: product.ID,
		PartyName: "Mehta Supplies",
		Date:      "2024-03-16",
		Quantity:  5,
	})
	require.NoError(t, err)
	require.Equal(t, KindPurchase, invoice.Kind)
	require.Equal(t, 80.0, invoice.Rate)
	require.Equal(t, 400.0, invoice.TotalValue)
	require.Equal(t, 72.0, invoice.GSTAmount)
	require.Equal(t, []float64{5}, catalog.deltas)
	require.Equal(t, string(vouchers.TypePurchase), poster.created[0].Type)
}

func TestRecordSaleRateOverride(t *testing.T) {
	product := testProduct()
	catalog := &fakeCatalog{product: product}
	svc := NewService(newMemoryInvoiceRepo(), catalog, postingLedgers(), &fakePoster{}, nil)

	rate := 90.0
	pct := 5.0
	invoice, err := svc.RecordSale(context.Background(), CreateInvoiceRequest{
		ProductID:  product.ID,
		PartyName:  "Acme Traders",
		Date:       "2024-03-15",
		Quantity:   2,
		Rate:       &rate,
		GSTPercent: &pct,
	})
	require.NoError(t, err)
	require.Equal(t, 180.0, invoice.TotalValue)
	require.Equal(t, 9.0, invoice.GSTAmount)
}

func TestRecordSaleMissingPostingLedger(t *testing.T) {
	product := testProduct()
	finder := postingLedgers()
	delete(finder.byName, SalesLedgerName)
	svc := NewService(newMemoryInvoiceRepo(), &fakeCatalog{product: product}, finder, &fakePoster{}, nil)

	_, err := svc.RecordSale(context.Background(), CreateInvoiceRequest{
		ProductID: product.ID,
		PartyName: "Acme Traders",
		Date:      "2024-03-15",
		Quantity:  1,
	})
	require.ErrorIs(t, err, ErrMissingLedger)
}

func TestRecordSaleUnknownProduct(t *testing.T) {
	svc := NewService(newMemoryInvoiceRepo(), &fakeCatalog{}, postingLedgers(), &fakePoster{}, nil)
	_, err := svc.RecordSale(context.Background(), CreateInvoiceRequest{
		ProductID: uuid.New(),
		PartyName: "Acme Traders",
		Date:      "2024-03-15",
		Quantity:  1,
	})
	require.ErrorIs(t, err, products.ErrNotFound)
}

func TestRecordValidation(t *testing.T) {
	product := testProduct()
	svc := NewService(newMemoryInvoiceRepo(), &fakeCatalog{product: product}, postingLedgers(), &fakePoster{}, nil)

	_, err := svc.RecordSale(context.Background(), CreateInvoiceRequest{
		ProductID: product.ID, PartyName: " ", Date: "2024-03-15", Quantity: 1,
	})
	require.ErrorIs(t, err, ErrEmptyParty)

	_, err = svc.RecordSale(context.Background(), CreateInvoiceRequest{
		ProductID: product.ID, PartyName: "Acme", Date: "15/03/2024", Quantity: 1,
	})
	require.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.RecordSale(context.Background(), CreateInvoiceRequest{
		ProductID: product.ID, PartyName: "Acme", Date: "2024-03-15", Quantity: 0,
	})
	require.ErrorIs(t, err, ErrNonPositiveQuantity)
}

func TestDeleteReversesStockAndVoucher(t *testing.T) {
	repo := newMemoryInvoiceRepo()
	product := testProduct()
	catalog := &fakeCatalog{product: product}
	poster := &fakePoster{}
	svc := NewService(repo, catalog, postingLedgers(), poster, nil)

	invoice, err := svc.RecordSale(context.Background(), CreateInvoiceRequest{
		ProductID: product.ID,
		PartyName: "Acme Traders",
		Date:      "2024-03-15",
		Quantity:  10,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), invoice.ID))
	require.Equal(t, []float64{-10, 10}, catalog.deltas)
	require.Len(t, poster.deleted, 1)
	require.Equal(t, *invoice.VoucherID, poster.deleted[0])

	_, err = svc.Get(context.Background(), invoice.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
