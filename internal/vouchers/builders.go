package vouchers

import (
	"math"

	"github.com/google/uuid"
)

// LedgerRef points at a ledger when building standard voucher lines.
type LedgerRef struct {
	ID   uuid.UUID
	Name string
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// SalesVoucherEntries produces the standard lines for a sales invoice:
// debit the customer for the grand total, credit the sales account for the
// subtotal, credit GST payable for the tax. The tax line is omitted for
// untaxed sales since zero-amount lines are rejected on creation.
func SalesVoucherEntries(customer, salesAccount, gstPayable LedgerRef, qty, rate, gstPercent float64) []EntryInput {
	subtotal := round2(qty * rate)
	tax := round2(subtotal * gstPercent / 100)
	grand := round2(subtotal + tax)
	entries := []EntryInput{
		{LedgerID: customer.ID, Amount: grand, Side: string(SideDebit), Description: "Sale to " + customer.Name},
		{LedgerID: salesAccount.ID, Amount: subtotal, Side: string(SideCredit)},
	}
	if tax > 0 {
		entries = append(entries, EntryInput{LedgerID: gstPayable.ID, Amount: tax, Side: string(SideCredit)})
	}
	return entries
}

// PurchaseVoucherEntries mirrors SalesVoucherEntries for the purchase side:
// debit purchases for the subtotal, debit GST input credit for the tax,
// credit the supplier for the grand total.
func PurchaseVoucherEntries(supplier, purchaseAccount, gstInputCredit LedgerRef, qty, rate, gstPercent float64) []EntryInput {
	subtotal := round2(qty * rate)
	tax := round2(subtotal * gstPercent / 100)
	grand := round2(subtotal + tax)
	entries := []EntryInput{
		{LedgerID: purchaseAccount.ID, Amount: subtotal, Side: string(SideDebit)},
	}
	if tax > 0 {
		entries = append(entries, EntryInput{LedgerID: gstInputCredit.ID, Amount: tax, Side: string(SideDebit)})
	}
	return append(entries, EntryInput{LedgerID: supplier.ID, Amount: grand, Side: string(SideCredit), Description: "Purchase from " + supplier.Name})
}
