package reports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-erp/meridian-erp/internal/ledgers"
	"github.com/meridian-erp/meridian-erp/internal/vouchers"
)

// LedgerSource supplies the registry snapshot.
type LedgerSource interface {
	List(ctx context.Context) ([]ledgers.Ledger, error)
}

// VoucherSource supplies the journal snapshot.
type VoucherSource interface {
	List(ctx context.Context) ([]vouchers.Voucher, error)
}

// TradeSource supplies the invoice lines the GST summary consumes.
type TradeSource interface {
	SalesTaxLines(ctx context.Context) ([]TaxLine, error)
	PurchaseTaxLines(ctx context.Context) ([]TaxLine, error)
}

// Service fetches snapshots once per request and hands them to the pure
// builders. All I/O happens up front; a fetch failure is terminal for the
// whole report.
type Service struct {
	ledgers LedgerSource
	journal VoucherSource
	trade   TradeSource
	cache   *Cache
}

func NewService(ledgerSource LedgerSource, journal VoucherSource, trade TradeSource, cache *Cache) *Service {
	return &Service{ledgers: ledgerSource, journal: journal, trade: trade, cache: cache}
}

func (s *Service) snapshot(ctx context.Context) ([]ledgers.Ledger, []vouchers.Voucher, error) {
	ls, err := s.ledgers.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	vs, err := s.journal.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	return ls, vs, nil
}

func (s *Service) TrialBalance(ctx context.Context) (TrialBalance, error) {
	var out TrialBalance
	key, err := s.cache.BuildKey(ctx, "reports", "tb")
	if err != nil {
		return out, err
	}
	err = s.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (interface{}, error) {
		ls, vs, err := s.snapshot(ctx)
		if err != nil {
			return nil, err
		}
		return BuildTrialBalance(ls, vs), nil
	})
	return out, err
}

func (s *Service) ProfitAndLoss(ctx context.Context, rng DateRange) (ProfitLossStatement, error) {
	var out ProfitLossStatement
	key, err := s.cache.BuildKey(ctx, "reports", "pl", rng.From.Format("2006-01-02"), rng.To.Format("2006-01-02"))
	if err != nil {
		return out, err
	}
	err = s.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (interface{}, error) {
		ls, vs, err := s.snapshot(ctx)
		if err != nil {
			return nil, err
		}
		return BuildProfitAndLoss(ls, vs, rng), nil
	})
	return out, err
}

func (s *Service) BalanceSheet(ctx context.Context, rng DateRange) (BalanceSheet, error) {
	var out BalanceSheet
	key, err := s.cache.BuildKey(ctx, "reports", "bs", rng.From.Format("2006-01-02"), rng.To.Format("2006-01-02"))
	if err != nil {
		return out, err
	}
	err = s.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (interface{}, error) {
		ls, vs, err := s.snapshot(ctx)
		if err != nil {
			return nil, err
		}
		return BuildBalanceSheet(ls, vs, rng), nil
	})
	return out, err
}

func (s *Service) DayBook(ctx context.Context, day time.Time) (DayBook, error) {
	var out DayBook
	key, err := s.cache.BuildKey(ctx, "reports", "daybook", day.Format("2006-01-02"))
	if err != nil {
		return out, err
	}
	err = s.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (interface{}, error) {
		vs, err := s.journal.List(ctx)
		if err != nil {
			return nil, err
		}
		return BuildDayBook(vs, day), nil
	})
	return out, err
}

func (s *Service) AccountStatement(ctx context.Context, ledgerID uuid.UUID, rng DateRange) (AccountStatement, error) {
	var out AccountStatement
	key, err := s.cache.BuildKey(ctx, "reports", "statement", ledgerID.String(), rng.From.Format("2006-01-02"), rng.To.Format("2006-01-02"))
	if err != nil {
		return out, err
	}
	err = s.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (interface{}, error) {
		ls, vs, err := s.snapshot(ctx)
		if err != nil {
			return nil, err
		}
		return BuildAccountStatement(ledgerID, ls, vs, rng), nil
	})
	return out, err
}

func (s *Service) GST(ctx context.Context, rng DateRange) (GSTReport, error) {
	var out GSTReport
	key, err := s.cache.BuildKey(ctx, "reports", "gst", rng.From.Format("2006-01-02"), rng.To.Format("2006-01-02"))
	if err != nil {
		return out, err
	}
	err = s.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (interface{}, error) {
		sales, err := s.trade.SalesTaxLines(ctx)
		if err != nil {
			return nil, err
		}
		purchases, err := s.trade.PurchaseTaxLines(ctx)
		if err != nil {
			return nil, err
		}
		return BuildGSTReport(sales, purchases, rng), nil
	})
	return out, err
}
