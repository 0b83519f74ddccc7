package handlers

import (
	portssvc "github.com/blackbox-se/obsidian_ekonomi/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	transactionService portssvc.TransactionSvcFacade,
	categoryService portssvc.CategoryReaderSvc,
) {
	// Liveness route for the frontend to probe before syncing
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	v1 := r.Group("/api/v1")

	registerTransactionRoutes(v1, transactionService)
	registerCategoryRoutes(v1, categoryService)
	registerReceiptRoutes(v1, transactionService)
}
