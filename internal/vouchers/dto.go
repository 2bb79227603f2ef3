package vouchers

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire format for voucher dates.
const DateLayout = "2006-01-02"

// EntryInput describes one line of a voucher to create.
type EntryInput struct {
	LedgerID    uuid.UUID `json:"ledger_id" validate:"required"`
	Amount      float64   `json:"amount" validate:"required,gt=0"`
	Side        string    `json:"side" validate:"required,oneof=DEBIT CREDIT"`
	Description string    `json:"description,omitempty" validate:"omitempty,max=500"`
}

// CreateVoucherRequest groups fields required to append a voucher.
// Number is optional; when empty it is generated from the type sequence.
type CreateVoucherRequest struct {
	Type            string       `json:"type" validate:"required"`
	Number          string       `json:"number,omitempty" validate:"omitempty,max=50"`
	Date            string       `json:"date" validate:"required"`
	ReferenceNumber string       `json:"reference_number,omitempty" validate:"omitempty,max=100"`
	Narration       string       `json:"narration,omitempty" validate:"omitempty,max=1000"`
	PartyName       string       `json:"party_name,omitempty" validate:"omitempty,max=200"`
	Entries         []EntryInput `json:"entries" validate:"required,min=1,dive"`
}

// Validate enforces the balance precondition and enum membership. Violations
// abort the creation; nothing is silently corrected.
func (r CreateVoucherRequest) Validate() error {
	if !Type(r.Type).Valid() {
		return ErrInvalidType
	}
	if _, err := time.Parse(DateLayout, r.Date); err != nil {
		return ErrInvalidDate
	}
	if len(r.Entries) == 0 {
		return ErrNoEntries
	}
	var debit, credit float64
	for idx, entry := range r.Entries {
		if entry.Amount <= 0 {
			return fmt.Errorf("line %d: %w", idx, ErrNonPositiveAmount)
		}
		switch EntrySide(entry.Side) {
		case SideDebit:
			debit += entry.Amount
		case SideCredit:
			credit += entry.Amount
		default:
			return fmt.Errorf("line %d: %w", idx, ErrInvalidSide)
		}
	}
	if fmt.Sprintf("%.2f", debit) != fmt.Sprintf("%.2f", credit) {
		return ErrUnbalanced
	}
	return nil
}

// Totals sums the debit and credit sides of the request.
func (r CreateVoucherRequest) Totals() (debit, credit float64) {
	for _, entry := range r.Entries {
		if EntrySide(entry.Side) == SideDebit {
			debit += entry.Amount
		} else {
			credit += entry.Amount
		}
	}
	return debit, credit
}
