package services

import (
	"context"
	"time"

	"github.com/blackbox-se/obsidian_ekonomi/internal/core/domain"
	"github.com/blackbox-se/obsidian_ekonomi/internal/dto"
)

// TransactionReaderSvc defines read operations for vault transactions.
type TransactionReaderSvc interface {
	// ListTransactions retrieves transactions in the inclusive date range,
	// most recent first.
	ListTransactions(ctx context.Context, fromDate, toDate time.Time) ([]domain.Transaction, error)

	// SummarizeTransactions aggregates the transactions in the range.
	SummarizeTransactions(ctx context.Context, fromDate, toDate time.Time) (*domain.TransactionSummary, error)
}

// TransactionWriterSvc defines write operations for vault transactions.
type TransactionWriterSvc interface {
	// CreateTransaction validates the request and writes the entry to the vault.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// RelocateReceipt copies a receipt into the vault and returns its
	// vault-relative path, or an empty string when relocation fails.
	RelocateReceipt(ctx context.Context, sourcePath, description string) (string, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// CategoryReaderSvc exposes the configured category list.
type CategoryReaderSvc interface {
	ListCategories(ctx context.Context) []domain.Category
}
