package handlers

import (
	"net/http"

	portssvc "github.com/blackbox-se/obsidian_ekonomi/internal/core/ports/services"
	"github.com/blackbox-se/obsidian_ekonomi/internal/dto"
	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService portssvc.CategoryReaderSvc
}

func NewCategoryHandler(categoryService portssvc.CategoryReaderSvc) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories godoc
// @Summary List configured categories
// @Description Returns the ordered category list; the last entry is the catch-all
// @Tags categories
// @Produce  json
// @Success 200 {array} dto.CategoryResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories := h.categoryService.ListCategories(c.Request.Context())
	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// registerCategoryRoutes registers the category routes on the v1 group.
func registerCategoryRoutes(group *gin.RouterGroup, categoryService portssvc.CategoryReaderSvc) {
	handler := NewCategoryHandler(categoryService)
	group.GET("/categories", handler.ListCategories)
}
