package markdown

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/blackbox-se/obsidian_ekonomi/internal/apperrors"
	"github.com/blackbox-se/obsidian_ekonomi/internal/core/domain"
)

// VaultRepository is the markdown-file implementation of the vault ports.
// It performs synchronous, sequential file I/O and holds no mutable state
// beyond the immutable settings it was constructed with; callers serialize
// access from a single logical session.
type VaultRepository struct {
	settings  domain.VaultSettings
	resolver  *PathResolver
	formatter *EntryFormatter
	parser    *entryParser
	writer    *sectionWriter
	logger    *slog.Logger
	now       func() time.Time
}

// NewVaultRepository creates a VaultRepository for the given settings.
func NewVaultRepository(settings domain.VaultSettings, logger *slog.Logger) *VaultRepository {
	return &VaultRepository{
		settings:  settings,
		resolver:  NewPathResolver(settings),
		formatter: NewEntryFormatter(settings),
		parser:    newEntryParser(settings),
		writer:    newSectionWriter(settings),
		logger:    logger,
		now:       time.Now,
	}
}

// SaveTransaction renders the transaction and writes it into the vault file
// selected by the configured storage method.
func (r *VaultRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	if r.settings.VaultPath == "" {
		return apperrors.ErrVaultNotConfigured
	}

	path := r.resolver.ResolvePath(txn.Date)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create vault folder: %w", err)
	}

	var err error
	switch r.settings.StorageMethod {
	case domain.DedicatedEconNote:
		err = r.writer.writeEconNote(path, r.formatter.FormatEntry(txn), txn.Date)
	case domain.SeparateTransactions:
		err = r.writer.writeTransactionNote(path, txn)
	default:
		err = r.writer.writeDailyNote(path, r.formatter.FormatEntry(txn))
	}
	if err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}

	r.logger.Debug("Wrote transaction to vault", slog.String("path", path))
	return nil
}

// FindTransactionsByDateRange scans each day of the inclusive range and
// returns all recovered transactions sorted by (date, time) descending. A day
// whose file cannot be read is logged and skipped; the scan always runs to the
// end of the range.
func (r *VaultRepository) FindTransactionsByDateRange(ctx context.Context, fromDate, toDate time.Time) ([]domain.Transaction, error) {
	if r.settings.VaultPath == "" {
		return nil, apperrors.ErrVaultNotConfigured
	}

	transactions := []domain.Transaction{}
	for day := dayOf(fromDate); !day.After(dayOf(toDate)); day = day.AddDate(0, 0, 1) {
		dayTxns, err := r.readDay(day)
		if err != nil {
			r.logger.Error("Failed to read vault day, skipping",
				slog.String("date", day.Format("2006-01-02")),
				slog.String("error", err.Error()))
			continue
		}
		transactions = append(transactions, dayTxns...)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].At().After(transactions[j].At())
	})
	return transactions, nil
}

// readDay loads and parses a single day's note. A missing file contributes
// zero transactions. Separate-transaction notes resolve to a timestamped path
// that never names an existing file, so that storage method yields nothing
// here.
func (r *VaultRepository) readDay(day time.Time) ([]domain.Transaction, error) {
	path := r.resolver.ResolvePath(day)

	content, exists, err := readNote(path)
	if err != nil || !exists {
		return nil, err
	}
	return r.parser.parseContent(content, day), nil
}

// dayOf truncates an instant to its calendar day.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
