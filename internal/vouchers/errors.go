package vouchers

import "errors"

var (
	// ErrUnbalanced indicates total debit != total credit.
	ErrUnbalanced = errors.New("vouchers: entries must balance")
	// ErrNoEntries indicates a voucher without lines.
	ErrNoEntries = errors.New("vouchers: at least one entry required")
	// ErrNotFound indicates a missing voucher.
	ErrNotFound = errors.New("vouchers: voucher not found")
	// ErrInvalidType indicates a type outside the enumeration.
	ErrInvalidType = errors.New("vouchers: unknown voucher type")
	// ErrInvalidDate indicates an unparseable date.
	ErrInvalidDate = errors.New("vouchers: invalid date")
	// ErrNonPositiveAmount indicates a zero or negative line amount.
	ErrNonPositiveAmount = errors.New("vouchers: entry amount must be positive")
	// ErrInvalidSide indicates a line that is neither debit nor credit.
	ErrInvalidSide = errors.New("vouchers: entry side must be DEBIT or CREDIT")
)
