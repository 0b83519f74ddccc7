package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/blackbox-se/obsidian_ekonomi/internal/apperrors"
	"github.com/blackbox-se/obsidian_ekonomi/internal/core/domain"
	portsrepo "github.com/blackbox-se/obsidian_ekonomi/internal/core/ports/repositories"
	"github.com/blackbox-se/obsidian_ekonomi/internal/dto"
	"github.com/google/uuid"
)

// defaultLookbackDays is how far back a range read reaches when the caller
// gives no from date.
const defaultLookbackDays = 30

// TransactionService provides vault transaction operations on top of the
// vault repository.
type TransactionService struct {
	vaultRepo  portsrepo.VaultRepositoryFacade
	categories []domain.Category
	logger     *slog.Logger
	now        func() time.Time
}

// NewTransactionService creates a new TransactionService. The category list is
// the configured, ordered list whose last entry is the catch-all.
func NewTransactionService(vaultRepo portsrepo.VaultRepositoryFacade, categories []domain.Category, logger *slog.Logger) *TransactionService {
	return &TransactionService{
		vaultRepo:  vaultRepo,
		categories: categories,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateTransaction validates the request, fills in defaults, and writes the
// transaction to the vault. A receipt that fails to relocate is dropped with a
// warning; it never fails the write.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	now := s.now()
	date := now
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, req.Date)
		}
		date = parsed
	}

	timeOfDay := domain.TimeOfDayFrom(now)
	if req.Time != "" {
		parsed, err := time.Parse("15:04", req.Time)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid time %q", apperrors.ErrValidation, req.Time)
		}
		timeOfDay = domain.TimeOfDayFrom(parsed)
	}

	receiptPath := ""
	if req.ReceiptSourcePath != "" {
		relocated, err := s.vaultRepo.RelocateReceipt(ctx, req.ReceiptSourcePath, req.Description)
		if err != nil {
			s.logger.Warn("Receipt relocation failed, writing entry without receipt",
				slog.String("error", err.Error()))
		} else {
			receiptPath = relocated
		}
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Amount:        req.Amount,
		Category:      domain.ResolveCategory(s.categories, req.Category),
		Description:   req.Description,
		Date:          date,
		Time:          timeOfDay,
		ReceiptPath:   receiptPath,
		IsIncome:      req.IsIncome,
	}

	if err := s.vaultRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	return &txn, nil
}

// ListTransactions retrieves transactions in the inclusive range, most recent
// first. A zero toDate defaults to today; a zero fromDate defaults to
// defaultLookbackDays before toDate.
func (s *TransactionService) ListTransactions(ctx context.Context, fromDate, toDate time.Time) ([]domain.Transaction, error) {
	fromDate, toDate = s.defaultRange(fromDate, toDate)

	txns, err := s.vaultRepo.FindTransactionsByDateRange(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

// SummarizeTransactions aggregates the transactions in the inclusive range.
func (s *TransactionService) SummarizeTransactions(ctx context.Context, fromDate, toDate time.Time) (*domain.TransactionSummary, error) {
	txns, err := s.ListTransactions(ctx, fromDate, toDate)
	if err != nil {
		return nil, err
	}
	summary := domain.SummarizeTransactions(txns)
	return &summary, nil
}

// RelocateReceipt copies a receipt into the vault and returns its
// vault-relative path.
func (s *TransactionService) RelocateReceipt(ctx context.Context, sourcePath, description string) (string, error) {
	path, err := s.vaultRepo.RelocateReceipt(ctx, sourcePath, description)
	if err != nil {
		return "", fmt.Errorf("failed to relocate receipt: %w", err)
	}
	return path, nil
}

// ListCategories returns the configured category list.
func (s *TransactionService) ListCategories(ctx context.Context) []domain.Category {
	return s.categories
}

func (s *TransactionService) defaultRange(fromDate, toDate time.Time) (time.Time, time.Time) {
	if toDate.IsZero() {
		toDate = s.now()
	}
	if fromDate.IsZero() {
		fromDate = toDate.AddDate(0, 0, -defaultLookbackDays)
	}
	return fromDate, toDate
}
