package vouchers

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type enumerates the closed set of voucher types.
type Type string

const (
	TypePayment    Type = "PAYMENT"
	TypeReceipt    Type = "RECEIPT"
	TypeContra     Type = "CONTRA"
	TypeJournal    Type = "JOURNAL"
	TypeSales      Type = "SALES"
	TypePurchase   Type = "PURCHASE"
	TypeDebitNote  Type = "DEBIT_NOTE"
	TypeCreditNote Type = "CREDIT_NOTE"
)

var typePrefixes = map[Type]string{
	TypePayment:    "PYT",
	TypeReceipt:    "RCT",
	TypeContra:     "CON",
	TypeJournal:    "JNL",
	TypeSales:      "SLS",
	TypePurchase:   "PUR",
	TypeDebitNote:  "DBN",
	TypeCreditNote: "CRN",
}

// Valid reports whether the type belongs to the enumeration.
func (t Type) Valid() bool {
	_, ok := typePrefixes[t]
	return ok
}

// Prefix returns the three-letter voucher number prefix.
func (t Type) Prefix() string {
	return typePrefixes[t]
}

// EntrySide marks a line as debit or credit.
type EntrySide string

const (
	SideDebit  EntrySide = "DEBIT"
	SideCredit EntrySide = "CREDIT"
)

// LedgerEntry is one debit or credit line inside a voucher. LedgerName is
// denormalized for display; the ledger itself may since have been deleted.
type LedgerEntry struct {
	ID          uuid.UUID `json:"id"`
	VoucherID   uuid.UUID `json:"voucher_id"`
	LedgerID    uuid.UUID `json:"ledger_id"`
	LedgerName  string    `json:"ledger_name"`
	Amount      float64   `json:"amount"`
	Side        EntrySide `json:"side"`
	Description string    `json:"description,omitempty"`
}

// Voucher is one balanced journal transaction. Immutable once created;
// removal deletes the whole unit without a compensating entry.
type Voucher struct {
	ID              uuid.UUID     `json:"id"`
	Type            Type          `json:"type"`
	Number          string        `json:"number"`
	Date            time.Time     `json:"date"`
	ReferenceNumber string        `json:"reference_number,omitempty"`
	Narration       string        `json:"narration,omitempty"`
	PartyName       string        `json:"party_name,omitempty"`
	Entries         []LedgerEntry `json:"entries"`
	TotalDebit      float64       `json:"total_debit"`
	TotalCredit     float64       `json:"total_credit"`
	CreatedAt       time.Time     `json:"created_at"`
}

// FormatNumber renders the persisted voucher number format:
// {PREFIX}-{YY}{MM}-{NNNN} with the sequence scoped per voucher type.
func FormatNumber(t Type, date time.Time, sequence int) string {
	return fmt.Sprintf("%s-%s-%04d", t.Prefix(), date.Format("0601"), sequence)
}
