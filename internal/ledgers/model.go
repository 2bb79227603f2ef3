package ledgers

import (
	"time"

	"github.com/google/uuid"
)

// Group classifies a ledger inside the chart of accounts.
type Group string

const (
	GroupCurrentAssets      Group = "Current Assets"
	GroupFixedAssets        Group = "Fixed Assets"
	GroupInvestments        Group = "Investments"
	GroupBankAccounts       Group = "Bank Accounts"
	GroupCashInHand         Group = "Cash-in-Hand"
	GroupSundryDebtors      Group = "Sundry Debtors"
	GroupCurrentLiabilities Group = "Current Liabilities"
	GroupLoans              Group = "Loans (Liability)"
	GroupSundryCreditors    Group = "Sundry Creditors"
	GroupCapitalAccount     Group = "Capital Account"
	GroupSalesAccounts      Group = "Sales Accounts"
	GroupPurchaseAccounts   Group = "Purchase Accounts"
	GroupDirectIncomes      Group = "Direct Incomes"
	GroupIndirectIncomes    Group = "Indirect Incomes"
	GroupDirectExpenses     Group = "Direct Expenses"
	GroupIndirectExpenses   Group = "Indirect Expenses"
)

// Category places a group within a financial statement.
type Category string

const (
	CategoryAssets      Category = "ASSETS"
	CategoryLiabilities Category = "LIABILITIES"
	CategoryIncome      Category = "INCOME"
	CategoryExpense     Category = "EXPENSE"
	CategoryCapital     Category = "CAPITAL"
)

var groupCategories = map[Group]Category{
	GroupCurrentAssets:      CategoryAssets,
	GroupFixedAssets:        CategoryAssets,
	GroupInvestments:        CategoryAssets,
	GroupBankAccounts:       CategoryAssets,
	GroupCashInHand:         CategoryAssets,
	GroupSundryDebtors:      CategoryAssets,
	GroupCurrentLiabilities: CategoryLiabilities,
	GroupLoans:              CategoryLiabilities,
	GroupSundryCreditors:    CategoryLiabilities,
	GroupCapitalAccount:     CategoryCapital,
	GroupSalesAccounts:      CategoryIncome,
	GroupDirectIncomes:      CategoryIncome,
	GroupIndirectIncomes:    CategoryIncome,
	GroupPurchaseAccounts:   CategoryExpense,
	GroupDirectExpenses:     CategoryExpense,
	GroupIndirectExpenses:   CategoryExpense,
}

// Valid reports whether the group is part of the fixed enumeration.
func (g Group) Valid() bool {
	_, ok := groupCategories[g]
	return ok
}

// Category returns the statement category for the group.
func (g Group) Category() Category {
	return groupCategories[g]
}

// Groups lists every valid classification group.
func Groups() []Group {
	return []Group{
		GroupCurrentAssets,
		GroupFixedAssets,
		GroupInvestments,
		GroupBankAccounts,
		GroupCashInHand,
		GroupSundryDebtors,
		GroupCurrentLiabilities,
		GroupLoans,
		GroupSundryCreditors,
		GroupCapitalAccount,
		GroupSalesAccounts,
		GroupPurchaseAccounts,
		GroupDirectIncomes,
		GroupIndirectIncomes,
		GroupDirectExpenses,
		GroupIndirectExpenses,
	}
}

// Ledger models one account in the chart of accounts.
//
// OpeningBalance is signed: positive means debit-natured. CurrentBalance is a
// denormalized cache set on create/edit or by an explicit recompute; posting a
// voucher never touches it. Report builders derive balances from the journal
// independently.
type Ledger struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Group          Group     `json:"group"`
	OpeningBalance float64   `json:"opening_balance"`
	CurrentBalance float64   `json:"current_balance"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
