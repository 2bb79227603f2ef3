package reports

import (
	"time"

	"github.com/google/uuid"

	"github.com/meridian-erp/meridian-erp/internal/vouchers"
)

// DayBookRow is the flat projection of one voucher in the day book.
type DayBookRow struct {
	VoucherID   uuid.UUID     `json:"voucher_id"`
	Type        vouchers.Type `json:"type"`
	Number      string        `json:"number"`
	PartyName   string        `json:"party_name,omitempty"`
	Narration   string        `json:"narration,omitempty"`
	TotalDebit  float64       `json:"total_debit"`
	TotalCredit float64       `json:"total_credit"`
}

// DayBook lists every voucher posted on one calendar day.
type DayBook struct {
	Date         string       `json:"date"`
	Transactions []DayBookRow `json:"transactions"`
	TotalDebit   float64      `json:"total_debit"`
	TotalCredit  float64      `json:"total_credit"`
}

// BuildDayBook selects vouchers whose date matches the given calendar day.
// A day with no vouchers yields an empty transaction list with zero totals.
func BuildDayBook(vs []vouchers.Voucher, day time.Time) DayBook {
	key := day.Format("2006-01-02")
	result := DayBook{Date: key, Transactions: []DayBookRow{}}
	for _, voucher := range vs {
		if voucher.Date.Format("2006-01-02") != key {
			continue
		}
		result.Transactions = append(result.Transactions, DayBookRow{
			VoucherID:   voucher.ID,
			Type:        voucher.Type,
			Number:      voucher.Number,
			PartyName:   voucher.PartyName,
			Narration:   voucher.Narration,
			TotalDebit:  voucher.TotalDebit,
			TotalCredit: voucher.TotalCredit,
		})
		result.TotalDebit += voucher.TotalDebit
		result.TotalCredit += voucher.TotalCredit
	}
	return result
}
