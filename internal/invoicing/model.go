package invoicing

import (
	"time"

	"github.com/google/uuid"
)

// Kind separates outgoing sales from incoming purchases.
type Kind string

const (
	KindSale     Kind = "SALE"
	KindPurchase Kind = "PURCHASE"
)

func (k Kind) Valid() bool {
	return k == KindSale || k == KindPurchase
}

// Invoice is one single-product trade document. TotalValue is the
// tax-exclusive amount, GrandTotal the tax-inclusive one. VoucherID links the
// journal voucher posted when the invoice was recorded.
type Invoice struct {
	ID          uuid.UUID  `json:"id"`
	Kind        Kind       `json:"kind"`
	ProductID   uuid.UUID  `json:"product_id"`
	ProductName string     `json:"product_name"`
	PartyName   string     `json:"party_name"`
	Date        time.Time  `json:"date"`
	Quantity    float64    `json:"quantity"`
	Rate        float64    `json:"rate"`
	GSTPercent  float64    `json:"gst_percent"`
	TotalValue  float64    `json:"total_value"`
	GSTAmount   float64    `json:"gst_amount"`
	GrandTotal  float64    `json:"grand_total"`
	VoucherID   *uuid.UUID `json:"voucher_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
