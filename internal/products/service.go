package products

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	internalShared "github.com/meridian-erp/meridian-erp/internal/shared"
)

// AuditPort records catalogue mutations.
type AuditPort interface {
	Record(ctx context.Context, log internalShared.AuditLog) error
}

type Service struct {
	repo  Repository
	audit AuditPort
	now   func() time.Time
}

func NewService(repo Repository, audit AuditPort) *Service {
	return &Service{repo: repo, audit: audit, now: time.Now}
}

func (s *Service) WithNow(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	now := s.now()
	product := Product{
		ID:           uuid.New(),
		Name:         req.Name,
		SKU:          req.SKU,
		Unit:         req.Unit,
		GSTPercent:   req.GSTPercent,
		SaleRate:     req.SaleRate,
		PurchaseRate: req.PurchaseRate,
		StockQty:     req.StockQty,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*Product, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, err
	}
	updates := make(map[string]interface{})
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		updates["name"] = name
	}
	if req.SKU != nil {
		updates["sku"] = strings.TrimSpace(*req.SKU)
	}
	if req.Unit != nil {
		updates["unit"] = strings.TrimSpace(*req.Unit)
	}
	if req.GSTPercent != nil {
		updates["gst_percent"] = *req.GSTPercent
	}
	if req.SaleRate != nil {
		updates["sale_rate"] = *req.SaleRate
	}
	if req.PurchaseRate != nil {
		updates["purchase_rate"] = *req.PurchaseRate
	}
	if req.StockQty != nil {
		updates["stock_qty"] = *req.StockQty
	}
	if len(updates) > 0 {
		if err := s.repo.Update(ctx, id, updates); err != nil {
			return nil, err
		}
	}
	return s.repo.Get(ctx, id)
}

// AdjustStock shifts the on-hand quantity. Sales pass a negative delta,
// purchases a positive one. Stock may go negative; small businesses often
// record the sale before the matching purchase entry.
func (s *Service) AdjustStock(ctx context.Context, id uuid.UUID, delta float64) error {
	return s.repo.AdjustStock(ctx, id, delta)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.audit != nil {
		_ = s.audit.Record(ctx, internalShared.AuditLog{
			Action:   "product.delete",
			Entity:   "product",
			EntityID: id.String(),
			At:       s.now(),
		})
	}
	return nil
}
