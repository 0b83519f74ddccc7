package dto

import (
	"github.com/blackbox-se/obsidian_ekonomi/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to log a new transaction.
// Category accepts either a configured category name or its emoji; unknown
// values resolve to the catch-all category.
type CreateTransactionRequest struct {
	Amount            decimal.Decimal `json:"amount" binding:"required"`
	Category          string          `json:"category" binding:"required"`
	Description       string          `json:"description"`
	Date              string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Time              string          `json:"time" binding:"omitempty,datetime=15:04"`
	ReceiptSourcePath string          `json:"receiptSourcePath"`
	IsIncome          bool            `json:"isIncome"`
}

// RelocateReceiptRequest defines the data needed to move a receipt into the vault.
type RelocateReceiptRequest struct {
	SourcePath  string `json:"sourcePath" binding:"required"`
	Description string `json:"description"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	CategoryEmoji string          `json:"categoryEmoji"`
	Description   string          `json:"description"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	ReceiptPath   string          `json:"receiptPath,omitempty"`
	IsIncome      bool            `json:"isIncome"`
}

// SummaryResponse defines the data returned for a transaction summary.
type SummaryResponse struct {
	TotalExpenses      decimal.Decimal            `json:"totalExpenses"`
	TotalIncome        decimal.Decimal            `json:"totalIncome"`
	NetAmount          decimal.Decimal            `json:"netAmount"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expensesByCategory"`
	TransactionCount   int                        `json:"transactionCount"`
}

// CategoryResponse defines the data returned for a configured category.
type CategoryResponse struct {
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	Color     string `json:"color"`
	IsDefault bool   `json:"isDefault"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		Amount:        txn.Amount,
		Category:      txn.Category.Name,
		CategoryEmoji: txn.Category.Emoji,
		Description:   txn.Description,
		Date:          txn.Date.Format("2006-01-02"),
		Time:          txn.Time.String(),
		ReceiptPath:   txn.ReceiptPath,
		IsIncome:      txn.IsIncome,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ToSummaryResponse converts a domain.TransactionSummary to its response DTO.
func ToSummaryResponse(summary *domain.TransactionSummary) SummaryResponse {
	return SummaryResponse{
		TotalExpenses:      summary.TotalExpenses,
		TotalIncome:        summary.TotalIncome,
		NetAmount:          summary.NetAmount,
		ExpensesByCategory: summary.ExpensesByCategory,
		TransactionCount:   len(summary.Transactions),
	}
}

// ToListCategoryResponse converts configured categories to response DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		res[i] = CategoryResponse{Name: c.Name, Emoji: c.Emoji, Color: c.Color, IsDefault: c.IsDefault}
	}
	return res
}
