package reports

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-erp/meridian-erp/internal/ledgers"
	"github.com/meridian-erp/meridian-erp/internal/vouchers"
	_ "github.com/meridian-erp/meridian-erp/testing"
)

func mkLedger(name string, group ledgers.Group, opening float64) ledgers.Ledger {
	return ledgers.Ledger{ID: uuid.New(), Name: name, Group: group, OpeningBalance: opening}
}

func mkVoucher(t vouchers.Type, date time.Time, entries ...vouchers.LedgerEntry) vouchers.Voucher {
	v := vouchers.Voucher{ID: uuid.New(), Type: t, Number: "TEST", Date: date, Entries: entries}
	for _, e := range entries {
		if e.Side == vouchers.SideDebit {
			v.TotalDebit += e.Amount
		} else {
			v.TotalCredit += e.Amount
		}
	}
	return v
}

func debit(id uuid.UUID, amount float64) vouchers.LedgerEntry {
	return vouchers.LedgerEntry{ID: uuid.New(), LedgerID: id, Amount: amount, Side: vouchers.SideDebit}
}

func credit(id uuid.UUID, amount float64) vouchers.LedgerEntry {
	return vouchers.LedgerEntry{ID: uuid.New(), LedgerID: id, Amount: amount, Side: vouchers.SideCredit}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildTrialBalance(t *testing.T) {
	cash := mkLedger("Cash-in-Hand", ledgers.GroupCashInHand, 1000)
	capital := mkLedger("Capital", ledgers.GroupCapitalAccount, -1000)
	sales := mkLedger("Sales A/c", ledgers.GroupSalesAccounts, 0)
	ls := []ledgers.Ledger{sales, cash, capital}

	vs := []vouchers.Voucher{
		mkVoucher(vouchers.TypeReceipt, day(2024, 3, 5),
			debit(cash.ID, 500), credit(sales.ID, 500)),
	}

	tb := BuildTrialBalance(ls, vs)
	if tb.TotalDebit != tb.TotalCredit {
		t.Fatalf("trial balance out of balance: debit %v credit %v", tb.TotalDebit, tb.TotalCredit)
	}
	if tb.TotalDebit != 1500 {
		t.Fatalf("unexpected total debit: %v", tb.TotalDebit)
	}
	if len(tb.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(tb.Rows))
	}
	if tb.Rows[0].LedgerName != "Capital" {
		t.Fatalf("rows not sorted by name: first is %s", tb.Rows[0].LedgerName)
	}
	for _, row := range tb.Rows {
		switch row.LedgerName {
		case "Cash-in-Hand":
			if row.Balance != 1500 || row.Type != BalanceDebit {
				t.Fatalf("cash row: balance %v type %s", row.Balance, row.Type)
			}
		case "Capital":
			if row.Balance != 1000 || row.Type != BalanceCredit {
				t.Fatalf("capital row: balance %v type %s", row.Balance, row.Type)
			}
		case "Sales A/c":
			if row.Balance != 500 || row.Type != BalanceCredit {
				t.Fatalf("sales row: balance %v type %s", row.Balance, row.Type)
			}
		}
	}
}

func TestBuildTrialBalanceZeroRow(t *testing.T) {
	bank := mkLedger("Bank Account", ledgers.GroupBankAccounts, 0)
	tb := BuildTrialBalance([]ledgers.Ledger{bank}, nil)
	if len(tb.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(tb.Rows))
	}
	if tb.Rows[0].Type != BalanceZero || tb.Rows[0].Balance != 0 {
		t.Fatalf("zero-movement row: balance %v type %s", tb.Rows[0].Balance, tb.Rows[0].Type)
	}
}

func TestBuildTrialBalanceSkipsUnknownLedgerEntries(t *testing.T) {
	cash := mkLedger("Cash-in-Hand", ledgers.GroupCashInHand, 0)
	dangling := uuid.New()
	vs := []vouchers.Voucher{
		mkVoucher(vouchers.TypeJournal, day(2024, 1, 1),
			debit(cash.ID, 100), credit(dangling, 100)),
	}
	tb := BuildTrialBalance([]ledgers.Ledger{cash}, vs)
	if len(tb.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(tb.Rows))
	}
	if tb.TotalCredit != 0 {
		t.Fatalf("dangling entry leaked into totals: %v", tb.TotalCredit)
	}
}

func TestBuildProfitAndLoss(t *testing.T) {
	sales := mkLedger("Sales A/c", ledgers.GroupSalesAccounts, 0)
	freight := mkLedger("Freight Inward", ledgers.GroupDirectExpenses, 0)
	interest := mkLedger("Interest Income", ledgers.GroupIndirectIncomes, 0)
	rent := mkLedger("Rent", ledgers.GroupIndirectExpenses, 0)
	service := mkLedger("Service Income", ledgers.GroupDirectIncomes, 0)
	cash := mkLedger("Cash-in-Hand", ledgers.GroupCashInHand, 0)
	ls := []ledgers.Ledger{sales, freight, interest, rent, service, cash}

	rng := DateRange{From: day(2024, 4, 1), To: day(2024, 4, 30)}
	vs := []vouchers.Voucher{
		mkVoucher(vouchers.TypeSales, day(2024, 4, 10),
			debit(cash.ID, 1000), credit(sales.ID, 1000)),
		mkVoucher(vouchers.TypePayment, day(2024, 4, 12),
			debit(freight.ID, 200), credit(cash.ID, 200)),
		mkVoucher(vouchers.TypeReceipt, day(2024, 4, 15),
			debit(cash.ID, 50), credit(interest.ID, 50)),
		mkVoucher(vouchers.TypePayment, day(2024, 4, 20),
			debit(rent.ID, 100), credit(cash.ID, 100)),
		// Outside the range, must not count.
		mkVoucher(vouchers.TypeSales, day(2024, 5, 1),
			debit(cash.ID, 9999), credit(sales.ID, 9999)),
	}

	pl := BuildProfitAndLoss(ls, vs, rng)
	if pl.TotalRevenue != 1000 {
		t.Fatalf("expected revenue 1000 got %v", pl.TotalRevenue)
	}
	if pl.TotalExpenses != 200 {
		t.Fatalf("expected direct expenses 200 got %v", pl.TotalExpenses)
	}
	if pl.GrossProfit != 800 {
		t.Fatalf("expected gross profit 800 got %v", pl.GrossProfit)
	}
	if pl.NetProfit != 750 {
		t.Fatalf("expected net profit 750 got %v", pl.NetProfit)
	}
	// Service Income never moved, so it must not appear.
	if len(pl.DirectIncomes) != 1 {
		t.Fatalf("zero-balance ledger leaked into direct incomes: %d entries", len(pl.DirectIncomes))
	}
	if len(pl.IndirectIncomes) != 1 || pl.IndirectIncomes[0].Balance != 50 {
		t.Fatalf("unexpected indirect incomes: %+v", pl.IndirectIncomes)
	}
}

func TestBuildProfitAndLossDeterministic(t *testing.T) {
	sales := mkLedger("Sales A/c", ledgers.GroupSalesAccounts, 0)
	cash := mkLedger("Cash-in-Hand", ledgers.GroupCashInHand, 0)
	ls := []ledgers.Ledger{sales, cash}
	vs := []vouchers.Voucher{
		mkVoucher(vouchers.TypeSales, day(2024, 4, 10),
			debit(cash.ID, 750), credit(sales.ID, 750)),
	}
	rng := DateRange{From: day(2024, 4, 1), To: day(2024, 4, 30)}
	first := BuildProfitAndLoss(ls, vs, rng)
	second := BuildProfitAndLoss(ls, vs, rng)
	if first.TotalRevenue != second.TotalRevenue || first.NetProfit != second.NetProfit {
		t.Fatalf("builder is not deterministic: %+v vs %+v", first, second)
	}
}

func TestBuildBalanceSheet(t *testing.T) {
	debtors := mkLedger("Sundry Debtors", ledgers.GroupSundryDebtors, 0)
	gst := mkLedger("GST Payable", ledgers.GroupCurrentLiabilities, 0)
	capital := mkLedger("Capital", ledgers.GroupCapitalAccount, -1000)
	furniture := mkLedger("Furniture", ledgers.GroupFixedAssets, 1000)
	sales := mkLedger("Sales A/c", ledgers.GroupSalesAccounts, 0)
	ls := []ledgers.Ledger{debtors, gst, capital, furniture, sales}

	rng := DateRange{From: day(2024, 4, 1), To: day(2024, 4, 30)}
	vs := []vouchers.Voucher{
		mkVoucher(vouchers.TypeSales, day(2024, 4, 10),
			debit(debtors.ID, 1180), credit(sales.ID, 1000), credit(gst.ID, 180)),
	}

	bs := BuildBalanceSheet(ls, vs, rng)
	if bs.CurrentAssets.Total != 1180 {
		t.Fatalf("expected current assets 1180 got %v", bs.CurrentAssets.Total)
	}
	if bs.FixedAssets.Total != 1000 {
		t.Fatalf("expected fixed assets 1000 got %v", bs.FixedAssets.Total)
	}
	if bs.CurrentLiabilities.Total != 180 {
		t.Fatalf("expected current liabilities 180 got %v", bs.CurrentLiabilities.Total)
	}
	// Capital keeps its native (credit-negative) sign.
	if bs.Capital.Total != -1000 {
		t.Fatalf("expected capital -1000 got %v", bs.Capital.Total)
	}
	if bs.TotalAssets != 2180 {
		t.Fatalf("expected total assets 2180 got %v", bs.TotalAssets)
	}
	if bs.TotalLiabilities != -820 {
		t.Fatalf("expected total liabilities -820 got %v", bs.TotalLiabilities)
	}
	if bs.NetProfit != 0 {
		t.Fatalf("net profit placeholder must stay zero, got %v", bs.NetProfit)
	}
}

func TestBuildDayBook(t *testing.T) {
	cash := uuid.New()
	sales := uuid.New()
	vs := []vouchers.Voucher{
		mkVoucher(vouchers.TypeSales, day(2024, 4, 10), debit(cash, 500), credit(sales, 500)),
		mkVoucher(vouchers.TypeReceipt, day(2024, 4, 11), debit(cash, 100), credit(sales, 100)),
	}

	book := BuildDayBook(vs, day(2024, 4, 10))
	if len(book.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(book.Transactions))
	}
	if book.TotalDebit != 500 || book.TotalCredit != 500 {
		t.Fatalf("unexpected totals: %v/%v", book.TotalDebit, book.TotalCredit)
	}

	empty := BuildDayBook(vs, day(2024, 4, 12))
	if empty.Transactions == nil {
		t.Fatal("empty day must yield an empty slice, not nil")
	}
	if len(empty.Transactions) != 0 || empty.TotalDebit != 0 || empty.TotalCredit != 0 {
		t.Fatalf("expected empty day book, got %+v", empty)
	}
}

func TestBuildAccountStatement(t *testing.T) {
	cash := mkLedger("Cash-in-Hand", ledgers.GroupCashInHand, 2500)
	other := uuid.New()
	rng := DateRange{From: day(2024, 4, 1), To: day(2024, 4, 30)}
	vs := []vouchers.Voucher{
		mkVoucher(vouchers.TypeReceipt, day(2024, 4, 20), debit(cash.ID, 500), credit(other, 500)),
		mkVoucher(vouchers.TypePayment, day(2024, 4, 25), debit(other, 300), credit(cash.ID, 300)),
	}

	st := BuildAccountStatement(cash.ID, []ledgers.Ledger{cash}, vs, rng)
	if st.LedgerName != "Cash-in-Hand" {
		t.Fatalf("unexpected ledger name: %s", st.LedgerName)
	}
	if st.OpeningBalance != 0 {
		t.Fatalf("opening balance must be zero, got %v", st.OpeningBalance)
	}
	if len(st.Transactions) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(st.Transactions))
	}
	if st.Transactions[0].Balance != 500 {
		t.Fatalf("running balance after debit: %v", st.Transactions[0].Balance)
	}
	if st.Transactions[1].Balance != 200 {
		t.Fatalf("running balance after credit: %v", st.Transactions[1].Balance)
	}
	if st.ClosingBalance != 200 {
		t.Fatalf("closing balance: %v", st.ClosingBalance)
	}
}

func TestBuildAccountStatementUnknownLedger(t *testing.T) {
	rng := DateRange{From: day(2024, 4, 1), To: day(2024, 4, 30)}
	st := BuildAccountStatement(uuid.New(), nil, nil, rng)
	if st.LedgerName != UnknownLedgerLabel {
		t.Fatalf("expected %q fallback, got %s", UnknownLedgerLabel, st.LedgerName)
	}
	if st.Transactions == nil || len(st.Transactions) != 0 {
		t.Fatalf("expected empty transactions, got %+v", st.Transactions)
	}
}
