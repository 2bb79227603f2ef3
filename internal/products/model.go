package products

import (
	"time"

	"github.com/google/uuid"
)

// Product is a stock item that sales and purchases trade in. Rates carry the
// tax-exclusive unit price for each direction; GSTPercent is the tax rate
// applied when the item is invoiced.
type Product struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Unit         string    `json:"unit"`
	GSTPercent   float64   `json:"gst_percent"`
	SaleRate     float64   `json:"sale_rate"`
	PurchaseRate float64   `json:"purchase_rate"`
	StockQty     float64   `json:"stock_qty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
