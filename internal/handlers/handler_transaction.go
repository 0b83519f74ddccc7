package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/blackbox-se/obsidian_ekonomi/internal/apperrors"
	portssvc "github.com/blackbox-se/obsidian_ekonomi/internal/core/ports/services"
	"github.com/blackbox-se/obsidian_ekonomi/internal/dto"
	"github.com/blackbox-se/obsidian_ekonomi/internal/middleware"
	"github.com/gin-gonic/gin"
)

type TransactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func NewTransactionHandler(transactionService portssvc.TransactionSvcFacade) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransaction godoc
// @Summary Log a new transaction
// @Description Renders the transaction as markdown and writes it into the vault
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// ListTransactions godoc
// @Summary List transactions in a date range
// @Description Scans the vault day by day and returns entries most recent first
// @Tags transactions
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD), defaults to 30 days back"
// @Param   to query string false "End date (YYYY-MM-DD), defaults to today"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	fromDate, toDate, err := dateRangeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), fromDate, toDate)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// GetSummary godoc
// @Summary Summarize transactions in a date range
// @Description Totals expenses, income, net and a per-category expense breakdown
// @Tags transactions
// @Produce  json
// @Param   from query string false "Start date (YYYY-MM-DD), defaults to 30 days back"
// @Param   to query string false "End date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.SummaryResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /transactions/summary [get]
func (h *TransactionHandler) GetSummary(c *gin.Context) {
	fromDate, toDate, err := dateRangeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.transactionService.SummarizeTransactions(c.Request.Context(), fromDate, toDate)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// registerTransactionRoutes registers the transaction routes on the v1 group.
func registerTransactionRoutes(group *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	handler := NewTransactionHandler(transactionService)

	transactions := group.Group("/transactions")
	{
		transactions.POST("", handler.CreateTransaction)
		transactions.GET("", handler.ListTransactions)
		transactions.GET("/summary", handler.GetSummary)
	}
}

// dateRangeQuery parses the optional from/to query parameters. Zero values are
// returned for omitted parameters; the service applies its defaults.
func dateRangeQuery(c *gin.Context) (time.Time, time.Time, error) {
	var fromDate, toDate time.Time

	if from := c.Query("from"); from != "" {
		parsed, err := time.Parse("2006-01-02", from)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		fromDate = parsed
	}
	if to := c.Query("to"); to != "" {
		parsed, err := time.Parse("2006-01-02", to)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		toDate = parsed
	}
	return fromDate, toDate, nil
}

// respondStoreError maps service errors onto HTTP statuses.
func respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrVaultNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		logger := middleware.GetLoggerFromContext(c)
		logger.Error("Vault operation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
