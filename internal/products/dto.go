package products

import "strings"

type CreateProductRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	SKU          string  `json:"sku" validate:"required,max=64"`
	Unit         string  `json:"unit" validate:"required,max=32"`
	GSTPercent   float64 `json:"gst_percent" validate:"gte=0,lte=100"`
	SaleRate     float64 `json:"sale_rate" validate:"gte=0"`
	PurchaseRate float64 `json:"purchase_rate" validate:"gte=0"`
	StockQty     float64 `json:"stock_qty" validate:"gte=0"`
}

func (r *CreateProductRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.SKU = strings.TrimSpace(r.SKU)
	r.Unit = strings.TrimSpace(r.Unit)
	if r.Name == "" {
		return ErrEmptyName
	}
	return nil
}

type UpdateProductRequest struct {
	Name         *string  `json:"name" validate:"omitempty,max=200"`
	SKU          *string  `json:"sku" validate:"omitempty,max=64"`
	Unit         *string  `json:"unit" validate:"omitempty,max=32"`
	GSTPercent   *float64 `json:"gst_percent" validate:"omitempty,gte=0,lte=100"`
	SaleRate     *float64 `json:"sale_rate" validate:"omitempty,gte=0"`
	PurchaseRate *float64 `json:"purchase_rate" validate:"omitempty,gte=0"`
	StockQty     *float64 `json:"stock_qty" validate:"omitempty,gte=0"`
}
