package domain_test

import (
	"testing"

	"github.com/blackbox-se/obsidian_ekonomi/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeTransactions(t *testing.T) {
	mat := domain.Category{Name: "Mat", Emoji: "🍔"}
	hem := domain.Category{Name: "Hem", Emoji: "🏠"}

	txns := []domain.Transaction{
		{Amount: decimal.RequireFromString("150.0"), Category: mat},
		{Amount: decimal.RequireFromString("49.5"), Category: mat},
		{Amount: decimal.RequireFromString("1200"), Category: hem},
		{Amount: decimal.RequireFromString("25000"), Category: hem, IsIncome: true},
	}

	summary := domain.SummarizeTransactions(txns)

	assert.True(t, summary.TotalExpenses.Equal(decimal.RequireFromString("1399.5")), "total expenses: %s", summary.TotalExpenses)
	assert.True(t, summary.TotalIncome.Equal(decimal.RequireFromString("25000")), "total income: %s", summary.TotalIncome)
	assert.True(t, summary.NetAmount.Equal(decimal.RequireFromString("23600.5")), "net: %s", summary.NetAmount)
	assert.True(t, summary.ExpensesByCategory["Mat"].Equal(decimal.RequireFromString("199.5")))
	assert.True(t, summary.ExpensesByCategory["Hem"].Equal(decimal.RequireFromString("1200")))
	assert.NotContains(t, summary.ExpensesByCategory, "Lön", "income must not appear in the expense breakdown")
	assert.Len(t, summary.Transactions, 4)
}

func TestSummarizeTransactions_Empty(t *testing.T) {
	summary := domain.SummarizeTransactions(nil)

	assert.True(t, summary.TotalExpenses.IsZero())
	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.NetAmount.IsZero())
	assert.Empty(t, summary.ExpensesByCategory)
}
