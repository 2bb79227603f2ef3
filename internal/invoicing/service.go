package invoicing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-erp/meridian-erp/internal/ledgers"
	"github.com/meridian-erp/meridian-erp/internal/products"
	internalShared "github.com/meridian-erp/meridian-erp/internal/shared"
	"github.com/meridian-erp/meridian-erp/internal/vouchers"
)

// Posting ledger names. The default chart seeds all of them; a business that
// renames one must keep a ledger under the same name for invoices to post.
const (
	SalesLedgerName          = "Sales A/c"
	PurchaseLedgerName       = "Purchase A/c"
	GSTPayableLedgerName     = "GST Payable"
	GSTInputCreditLedgerName = "GST Input Credit"
	DebtorsLedgerName        = "Sundry Debtors"
	CreditorsLedgerName      = "Sundry Creditors"
)

// ProductCatalog resolves and mutates traded items.
type ProductCatalog interface {
	Get(ctx context.Context, id uuid.UUID) (*products.Product, error)
	AdjustStock(ctx context.Context, id uuid.UUID, delta float64) error
}

// LedgerFinder resolves posting ledgers by display name.
type LedgerFinder interface {
	GetByName(ctx context.Context, name string) (*ledgers.Ledger, error)
}

// VoucherPoster appends and removes journal vouchers for recorded trades.
type VoucherPoster interface {
	Create(ctx context.Context, req vouchers.CreateVoucherRequest) (*vouchers.Voucher, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AuditPort records invoice mutations.
type AuditPort interface {
	Record(ctx context.Context, log internalShared.AuditLog) error
}

type Service struct {
	repo    Repository
	catalog ProductCatalog
	finder  LedgerFinder
	poster  VoucherPoster
	audit   AuditPort
	now     func() time.Time
}

func NewService(repo Repository, catalog ProductCatalog, finder LedgerFinder, poster VoucherPoster, audit AuditPort) *Service {
	return &Service{repo: repo, catalog: catalog, finder: finder, poster: poster, audit: audit, now: time.Now}
}

func (s *Service) WithNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) ListSales(ctx context.Context) ([]Invoice, error) {
	return s.repo.ListByKind(ctx, KindSale)
}

func (s *Service) ListPurchases(ctx context.Context) ([]Invoice, error) {
	return s.repo.ListByKind(ctx, KindPurchase)
}

// ledgerRef looks up a posting ledger by name. The party ledger falls back to
// the given control account when no ledger carries the party's name.
func (s *Service) ledgerRef(ctx context.Context, name string) (vouchers.LedgerRef, error) {
	ledger, err := s.finder.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, ledgers.ErrNotFound) {
			return vouchers.LedgerRef{}, fmt.Errorf("%w: %s", ErrMissingLedger, name)
		}
		return vouchers.LedgerRef{}, err
	}
	return vouchers.LedgerRef{ID: ledger.ID, Name: ledger.Name}, nil
}

func (s *Service) partyRef(ctx context.Context, partyName, controlAccount string) (vouchers.LedgerRef, error) {
	ledger, err := s.finder.GetByName(ctx, partyName)
	if err == nil {
		return vouchers.LedgerRef{ID: ledger.ID, Name: ledger.Name}, nil
	}
	if !errors.Is(err, ledgers.ErrNotFound) {
		return vouchers.LedgerRef{}, err
	}
	return s.ledgerRef(ctx, controlAccount)
}

// RecordSale stores a sales invoice, posts the matching sales voucher and
// decrements stock. The voucher debits the customer ledger when one exists
// under the party name, otherwise the debtors control account.
func (s *Service) RecordSale(ctx context.Context, req CreateInvoiceRequest) (*Invoice, error) {
	return s.record(ctx, KindSale, req)
}

// RecordPurchase mirrors RecordSale for incoming goods: the voucher credits
// the supplier side and stock increments.
func (s *Service) RecordPurchase(ctx context.Context, req CreateInvoiceRequest) (*Invoice, error) {
	return s.record(ctx, KindPurchase, req)
}

func (s *Service) record(ctx context.Context, kind Kind, req CreateInvoiceRequest) (*Invoice, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	product, err := s.catalog.Get(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	date, _ := time.Parse(DateLayout, req.Date)

	rate := product.SaleRate
	if kind == KindPurchase {
		rate = product.PurchaseRate
	}
	if req.Rate != nil {
		rate = *req.Rate
	}
	gstPercent := product.GSTPercent
	if req.GSTPercent != nil {
		gstPercent = *req.GSTPercent
	}
	amounts := ComputeAmounts(req.Quantity, rate, gstPercent)

	voucher, err := s.postVoucher(ctx, kind, req.PartyName, product.Name, date, req.Quantity, rate, gstPercent)
	if err != nil {
		return nil, err
	}

	invoice := Invoice{
		ID:          uuid.New(),
		Kind:        kind,
		ProductID:   product.ID,
		ProductName: product.Name,
		PartyName:   req.PartyName,
		Date:        date,
		Quantity:    req.Quantity,
		Rate:        rate,
		GSTPercent:  gstPercent,
		TotalValue:  amounts.TotalValue,
		GSTAmount:   amounts.GSTAmount,
		GrandTotal:  amounts.GrandTotal,
		VoucherID:   &voucher.ID,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, invoice); err != nil {
		_ = s.poster.Delete(ctx, voucher.ID)
		return nil, err
	}

	delta := -req.Quantity
	if kind == KindPurchase {
		delta = req.Quantity
	}
	if err := s.catalog.AdjustStock(ctx, product.ID, delta); err != nil {
		return nil, err
	}

	if s.audit != nil {
		action := "sale.record"
		if kind == KindPurchase {
			action = "purchase.record"
		}
		_ = s.audit.Record(ctx, internalShared.AuditLog{
			Action:   action,
			Entity:   "invoice",
			EntityID: invoice.ID.String(),
			Meta: map[string]any{
				"voucher": voucher.Number,
				"party":   invoice.PartyName,
				"grand":   invoice.GrandTotal,
			},
			At: s.now(),
		})
	}
	return &invoice, nil
}

func (s *Service) postVoucher(ctx context.Context, kind Kind, partyName, productName string, date time.Time, qty, rate, gstPercent float64) (*vouchers.Voucher, error) {
	var entries []vouchers.EntryInput
	var voucherType vouchers.Type
	var narration string

	switch kind {
	case KindSale:
		party, err := s.partyRef(ctx, partyName, DebtorsLedgerName)
		if err != nil {
			return nil, err
		}
		sales, err := s.ledgerRef(ctx, SalesLedgerName)
		if err != nil {
			return nil, err
		}
		gst, err := s.ledgerRef(ctx, GSTPayableLedgerName)
		if err != nil {
			return nil, err
		}
		party.Name = partyName
		entries = vouchers.SalesVoucherEntries(party, sales, gst, qty, rate, gstPercent)
		voucherType = vouchers.TypeSales
		narration = fmt.Sprintf("Sale of %s to %s", productName, partyName)
	case KindPurchase:
		party, err := s.partyRef(ctx, partyName, CreditorsLedgerName)
		if err != nil {
			return nil, err
		}
		purchase, err := s.ledgerRef(ctx, PurchaseLedgerName)
		if err != nil {
			return nil, err
		}
		gst, err := s.ledgerRef(ctx, GSTInputCreditLedgerName)
		if err != nil {
			return nil, err
		}
		party.Name = partyName
		entries = vouchers.PurchaseVoucherEntries(party, purchase, gst, qty, rate, gstPercent)
		voucherType = vouchers.TypePurchase
		narration = fmt.Sprintf("Purchase of %s from %s", productName, partyName)
	default:
		return nil, ErrInvalidKind
	}

	return s.poster.Create(ctx, vouchers.CreateVoucherRequest{
		Type:      string(voucherType),
		Date:      date.Format(vouchers.DateLayout),
		Narration: narration,
		PartyName: partyName,
		Entries:   entries,
	})
}

// Delete removes the invoice, reverses the stock movement and drops the
// linked voucher.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	invoice, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	delta := invoice.Quantity
	if invoice.Kind == KindPurchase {
		delta = -invoice.Quantity
	}
	if err := s.catalog.AdjustStock(ctx, invoice.ProductID, delta); err != nil && !errors.Is(err, products.ErrNotFound) {
		return err
	}
	if invoice.VoucherID != nil {
		if err := s.poster.Delete(ctx, *invoice.VoucherID); err != nil && !errors.Is(err, vouchers.ErrNotFound) {
			return err
		}
	}
	if s.audit != nil {
		_ = s.audit.Record(ctx, internalShared.AuditLog{
			Action:   "invoice.delete",
			Entity:   "invoice",
			EntityID: id.String(),
			At:       s.now(),
		})
	}
	return nil
}
