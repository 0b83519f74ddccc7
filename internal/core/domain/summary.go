package domain

import "github.com/shopspring/decimal"

// TransactionSummary aggregates a list of transactions. It is derived on demand
// and never persisted.
type TransactionSummary struct {
	Transactions       []Transaction              `json:"transactions"`
	TotalExpenses      decimal.Decimal            `json:"totalExpenses"`
	TotalIncome        decimal.Decimal            `json:"totalIncome"`
	NetAmount          decimal.Decimal            `json:"netAmount"` // Income minus expenses
	ExpensesByCategory map[string]decimal.Decimal `json:"expensesByCategory"`
}

// SummarizeTransactions computes totals and a per-category expense breakdown,
// keyed by category name.
func SummarizeTransactions(transactions []Transaction) TransactionSummary {
	totalExpenses := decimal.Zero
	totalIncome := decimal.Zero
	byCategory := make(map[string]decimal.Decimal)

	for _, txn := range transactions {
		if txn.IsIncome {
			totalIncome = totalIncome.Add(txn.Amount)
			continue
		}
		totalExpenses = totalExpenses.Add(txn.Amount)
		byCategory[txn.Category.Name] = byCategory[txn.Category.Name].Add(txn.Amount)
	}

	return TransactionSummary{
		Transactions:       transactions,
		TotalExpenses:      totalExpenses,
		TotalIncome:        totalIncome,
		NetAmount:          totalIncome.Sub(totalExpenses),
		ExpensesByCategory: byCategory,
	}
}
