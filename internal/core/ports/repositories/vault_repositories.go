package repositories

import (
	"context"
	"time"

	"github.com/blackbox-se/obsidian_ekonomi/internal/core/domain"
)

// VaultReader defines read operations against the markdown vault.
type VaultReader interface {
	// FindTransactionsByDateRange scans the vault for transactions between
	// fromDate and toDate inclusive, sorted by (date, time) descending.
	// Days that fail to read contribute nothing; the scan continues.
	FindTransactionsByDateRange(ctx context.Context, fromDate, toDate time.Time) ([]domain.Transaction, error)
}

// VaultWriter defines write operations against the markdown vault.
type VaultWriter interface {
	// SaveTransaction renders the transaction and inserts it at the correct
	// position in the vault file selected by the configured storage method.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// ReceiptRelocator copies receipt files into the vault so entries can embed them.
type ReceiptRelocator interface {
	// RelocateReceipt copies the file at sourcePath into the vault under a
	// templated name and returns the vault-relative path for embedding.
	RelocateReceipt(ctx context.Context, sourcePath, description string) (string, error)
}

// VaultRepositoryFacade combines all vault repository interfaces.
type VaultRepositoryFacade interface {
	VaultReader
	VaultWriter
	ReceiptRelocator
}
