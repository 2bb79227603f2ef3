package ledgers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	internalShared "github.com/meridian-erp/meridian-erp/internal/shared"
)

// AuditPort records master data mutations.
type AuditPort interface {
	Record(ctx context.Context, log internalShared.AuditLog) error
}

// JournalReader exposes the posted movement for one ledger. Implemented by the
// voucher journal; used only by the explicit balance recompute.
type JournalReader interface {
	LedgerMovement(ctx context.Context, ledgerID uuid.UUID) (debit float64, credit float64, err error)
}

type Service struct {
	repo    Repository
	journal JournalReader
	audit   AuditPort
	now     func() time.Time
}

func NewService(repo Repository, journal JournalReader, audit AuditPort) *Service {
	return &Service{repo: repo, journal: journal, audit: audit, now: time.Now}
}

func (s *Service) WithNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Ledger, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) GetByName(ctx context.Context, name string) (*Ledger, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *Service) List(ctx context.Context) ([]Ledger, error) {
	return s.repo.List(ctx)
}

// Create adds a ledger with the current balance initialised to the opening balance.
func (s *Service) Create(ctx context.Context, req CreateLedgerRequest) (*Ledger, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	now := s.now()
	ledger := Ledger{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(req.Name),
		Group:          Group(req.Group),
		OpeningBalance: req.OpeningBalance,
		CurrentBalance: req.OpeningBalance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Create(ctx, ledger); err != nil {
		return nil, err
	}
	return &ledger, nil
}

// Update merges the supplied fields. The current balance is never rederived
// from the journal here; an opening-balance edit leaves it untouched unless
// the request sets it explicitly.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateLedgerRequest) (*Ledger, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Group != nil {
		updates["group"] = Group(*req.Group)
	}
	if req.OpeningBalance != nil {
		updates["opening_balance"] = *req.OpeningBalance
	}
	if req.CurrentBalance != nil {
		updates["current_balance"] = *req.CurrentBalance
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, id)
}

// Delete removes the ledger. Voucher references are deliberately not checked;
// a dangling reference shows up as "Unknown" in reports.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.audit != nil {
		_ = s.audit.Record(ctx, internalShared.AuditLog{
			Action:   "ledger.delete",
			Entity:   "ledger",
			EntityID: id.String(),
			At:       s.now(),
		})
	}
	return nil
}

// SeedDefaultChartOfAccounts creates the standard chart for a new business.
// It is a no-op when the registry already holds any ledger.
func (s *Service) SeedDefaultChartOfAccounts(ctx context.Context, businessName string) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}
	entries := defaultChart(businessName)
	now := s.now()
	err = s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		for _, entry := range entries {
			ledger := Ledger{
				ID:             uuid.New(),
				Name:           entry.Name,
				Group:          entry.Group,
				OpeningBalance: entry.Opening,
				CurrentBalance: entry.Opening,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := repo.Create(ctx, ledger); err != nil {
				return fmt.Errorf("seed %q: %w", entry.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if s.audit != nil {
		_ = s.audit.Record(ctx, internalShared.AuditLog{
			Action:   "ledger.seed",
			Entity:   "chart_of_accounts",
			EntityID: businessName,
			Meta:     map[string]any{"ledgers": len(entries)},
			At:       now,
		})
	}
	return len(entries), nil
}

// RecomputeBalance derives the current balance from the opening balance plus
// the net posted movement and writes it back. This is the only path that
// reconciles the denormalized cache with the journal.
func (s *Service) RecomputeBalance(ctx context.Context, id uuid.UUID) (*Ledger, error) {
	if s.journal == nil {
		return nil, fmt.Errorf("ledgers: no journal reader configured")
	}
	ledger, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	debit, credit, err := s.journal.LedgerMovement(ctx, id)
	if err != nil {
		return nil, err
	}
	balance := ledger.OpeningBalance + debit - credit
	if err := s.repo.Update(ctx, id, map[string]interface{}{"current_balance": balance}); err != nil {
		return nil, err
	}
	ledger.CurrentBalance = balance
	return ledger, nil
}
