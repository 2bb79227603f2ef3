package invoicing

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for invoice dates.
const DateLayout = "2006-01-02"

// CreateInvoiceRequest records one trade. Rate and GSTPercent default to the
// product's configured values when omitted.
type CreateInvoiceRequest struct {
	ProductID  uuid.UUID `json:"product_id" validate:"required"`
	PartyName  string    `json:"party_name" validate:"required,max=200"`
	Date       string    `json:"date" validate:"required"`
	Quantity   float64   `json:"quantity" validate:"required,gt=0"`
	Rate       *float64  `json:"rate" validate:"omitempty,gte=0"`
	GSTPercent *float64  `json:"gst_percent" validate:"omitempty,gte=0,lte=100"`
}

func (r *CreateInvoiceRequest) Validate() error {
	r.PartyName = strings.TrimSpace(r.PartyName)
	if r.PartyName == "" {
		return ErrEmptyParty
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return ErrInvalidDate
	}
	if r.Quantity <= 0 {
		return ErrNonPositiveQuantity
	}
	if r.Rate != nil && *r.Rate < 0 {
		return ErrNegativeRate
	}
	return nil
}
