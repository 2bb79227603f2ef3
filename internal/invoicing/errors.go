package invoicing

import "errors"

var (
	ErrNotFound            = errors.New("invoice not found")
	ErrInvalidKind         = errors.New("invalid invoice kind")
	ErrInvalidDate         = errors.New("invalid invoice date")
	ErrNonPositiveQuantity = errors.New("quantity must be positive")
	ErrNegativeRate        = errors.New("rate must not be negative")
	ErrEmptyParty          = errors.New("party name is required")
	ErrMissingLedger       = errors.New("required posting ledger is missing")
)
