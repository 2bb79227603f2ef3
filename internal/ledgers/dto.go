package ledgers

import "strings"

// CreateLedgerRequest carries fields for a new ledger.
type CreateLedgerRequest struct {
	Name           string  `json:"name" validate:"required,max=200"`
	Group          string  `json:"group" validate:"required"`
	OpeningBalance float64 `json:"opening_balance"`
}

// Validate applies the checks the validator tags cannot express.
func (r CreateLedgerRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrEmptyName
	}
	if !Group(r.Group).Valid() {
		return ErrInvalidGroup
	}
	return nil
}

// UpdateLedgerRequest carries a partial edit. Nil fields are left untouched.
// CurrentBalance is only ever changed through an explicit edit or recompute.
type UpdateLedgerRequest struct {
	Name           *string  `json:"name,omitempty" validate:"omitempty,max=200"`
	Group          *string  `json:"group,omitempty"`
	OpeningBalance *float64 `json:"opening_balance,omitempty"`
	CurrentBalance *float64 `json:"current_balance,omitempty"`
}

// Validate checks the populated fields.
func (r UpdateLedgerRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return ErrEmptyName
	}
	if r.Group != nil && !Group(*r.Group).Valid() {
		return ErrInvalidGroup
	}
	return nil
}
