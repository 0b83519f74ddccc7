package handlers

import (
	"net/http"

	portssvc "github.com/blackbox-se/obsidian_ekonomi/internal/core/ports/services"
	"github.com/blackbox-se/obsidian_ekonomi/internal/dto"
	"github.com/gin-gonic/gin"
)

type ReceiptHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func NewReceiptHandler(transactionService portssvc.TransactionSvcFacade) *ReceiptHandler {
	return &ReceiptHandler{transactionService: transactionService}
}

// RelocateReceipt godoc
// @Summary Copy a receipt file into the vault
// @Description Copies the source file under a templated name and returns the vault-relative path
// @Tags receipts
// @Accept  json
// @Produce  json
// @Param   receipt body dto.RelocateReceiptRequest true "Receipt source"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /receipts [post]
func (h *ReceiptHandler) RelocateReceipt(c *gin.Context) {
	var req dto.RelocateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	path, err := h.transactionService.RelocateReceipt(c.Request.Context(), req.SourcePath, req.Description)
	if err != nil {
		respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"receiptPath": path})
}

// registerReceiptRoutes registers the receipt routes on the v1 group.
func registerReceiptRoutes(group *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	handler := NewReceiptHandler(transactionService)
	group.POST("/receipts", handler.RelocateReceipt)
}
