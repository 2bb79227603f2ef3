package ledgers

// seedEntry describes one ledger in the default chart of accounts.
type seedEntry struct {
	Name    string
	Group   Group
	Opening float64
}

// defaultChart returns the standard chart of accounts for a new business.
// Every classification group is represented at least once.
func defaultChart(businessName string) []seedEntry {
	capitalName := "Business Capital"
	if businessName != "" {
		capitalName = businessName + " Capital"
	}
	return []seedEntry{
		{Name: capitalName, Group: GroupCapitalAccount},
		{Name: "Cash-in-Hand", Group: GroupCashInHand},
		{Name: "Bank Account", Group: GroupBankAccounts},
		{Name: "Stock-in-Hand", Group: GroupCurrentAssets},
		{Name: "Sundry Debtors", Group: GroupSundryDebtors},
		{Name: "Sundry Creditors", Group: GroupSundryCreditors},
		{Name: "Furniture & Equipment", Group: GroupFixedAssets},
		{Name: "Investments", Group: GroupInvestments},
		{Name: "Bank Loan", Group: GroupLoans},

		{Name: "GST Payable", Group: GroupCurrentLiabilities},
		{Name: "CGST Payable", Group: GroupCurrentLiabilities},
		{Name: "SGST Payable", Group: GroupCurrentLiabilities},
		{Name: "IGST Payable", Group: GroupCurrentLiabilities},
		{Name: "GST Input Credit", Group: GroupCurrentAssets},

		{Name: "Sales A/c", Group: GroupSalesAccounts},
		{Name: "Purchase A/c", Group: GroupPurchaseAccounts},
		{Name: "Service Income", Group: GroupDirectIncomes},
		{Name: "Interest Income", Group: GroupIndirectIncomes},
		{Name: "Freight Inward", Group: GroupDirectExpenses},

		{Name: "Rent Expense", Group: GroupIndirectExpenses},
		{Name: "Salaries & Wages", Group: GroupIndirectExpenses},
		{Name: "Electricity Charges", Group: GroupIndirectExpenses},
		{Name: "Telephone & Internet", Group: GroupIndirectExpenses},
		{Name: "Printing & Stationery", Group: GroupIndirectExpenses},
		{Name: "Travelling Expenses", Group: GroupIndirectExpenses},
		{Name: "Repairs & Maintenance", Group: GroupIndirectExpenses},
		{Name: "Bank Charges", Group: GroupIndirectExpenses},
		{Name: "Miscellaneous Expenses", Group: GroupIndirectExpenses},
	}
}
