package ledgers

import "errors"

var (
	// ErrNotFound indicates a missing ledger.
	ErrNotFound = errors.New("ledgers: ledger not found")
	// ErrEmptyName indicates a blank display name.
	ErrEmptyName = errors.New("ledgers: name required")
	// ErrDuplicateName indicates the name is already taken.
	ErrDuplicateName = errors.New("ledgers: name already exists")
	// ErrInvalidGroup indicates the group is outside the fixed enumeration.
	ErrInvalidGroup = errors.New("ledgers: unknown group")
)
