package vouchers

import (
	"context"
	"time"

	"github.com/google/uuid"

	internalShared "github.com/meridian-erp/meridian-erp/internal/shared"
)

// AuditPort records journal mutations.
type AuditPort interface {
	Record(ctx context.Context, log internalShared.AuditLog) error
}

// LedgerDirectory resolves ledger display names for denormalization. A failed
// lookup is not an error; the line simply carries no name and reports fall
// back to "Unknown".
type LedgerDirectory interface {
	LedgerName(ctx context.Context, id uuid.UUID) (string, bool)
}

// CacheInvalidator bumps derived report caches after a journal mutation.
type CacheInvalidator interface {
	Bump(ctx context.Context) error
}

type Service struct {
	repo      Repository
	directory LedgerDirectory
	audit     AuditPort
	caches    CacheInvalidator
	now       func() time.Time
}

func NewService(repo Repository, directory LedgerDirectory, audit AuditPort, caches CacheInvalidator) *Service {
	return &Service{repo: repo, directory: directory, audit: audit, caches: caches, now: time.Now}
}

func (s *Service) WithNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Voucher, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Voucher, error) {
	return s.repo.List(ctx)
}

// Create appends a balanced voucher atomically with its lines. The number is
// generated from the per-type sequence unless the request carries one.
func (s *Service) Create(ctx context.Context, req CreateVoucherRequest) (*Voucher, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	date, _ := time.Parse(DateLayout, req.Date)
	debit, credit := req.Totals()

	voucher := Voucher{
		ID:              uuid.New(),
		Type:            Type(req.Type),
		Number:          req.Number,
		Date:            date,
		ReferenceNumber: req.ReferenceNumber,
		Narration:       req.Narration,
		PartyName:       req.PartyName,
		TotalDebit:      debit,
		TotalCredit:     credit,
		CreatedAt:       s.now(),
	}
	for _, input := range req.Entries {
		entry := LedgerEntry{
			ID:          uuid.New(),
			VoucherID:   voucher.ID,
			LedgerID:    input.LedgerID,
			Amount:      input.Amount,
			Side:        EntrySide(input.Side),
			Description: input.Description,
		}
		if s.directory != nil {
			if name, ok := s.directory.LedgerName(ctx, input.LedgerID); ok {
				entry.LedgerName = name
			}
		}
		voucher.Entries = append(voucher.Entries, entry)
	}

	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		if voucher.Number == "" {
			count, err := repo.CountByType(ctx, voucher.Type)
			if err != nil {
				return err
			}
			voucher.Number = FormatNumber(voucher.Type, voucher.Date, count+1)
		}
		return repo.Create(ctx, voucher)
	})
	if err != nil {
		return nil, err
	}

	if s.caches != nil {
		_ = s.caches.Bump(ctx)
	}
	if s.audit != nil {
		_ = s.audit.Record(ctx, internalShared.AuditLog{
			Action:   "voucher.create",
			Entity:   "voucher",
			EntityID: voucher.ID.String(),
			Meta: map[string]any{
				"number": voucher.Number,
				"type":   voucher.Type,
				"debit":  voucher.TotalDebit,
			},
			At: s.now(),
		})
	}
	return &voucher, nil
}

// Delete removes the voucher and its lines wholesale. No reversal entry is
// generated.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.repo.WithTx(ctx, func(ctx context.Context, repo Repository) error {
		return repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	if s.caches != nil {
		_ = s.caches.Bump(ctx)
	}
	if s.audit != nil {
		_ = s.audit.Record(ctx, internalShared.AuditLog{
			Action:   "voucher.delete",
			Entity:   "voucher",
			EntityID: id.String(),
			At:       s.now(),
		})
	}
	return nil
}
