package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "bolsillo/internal/errors"
	"bolsillo/internal/models"
	"bolsillo/internal/services"
)

// CategoryHandler handles category-stat requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories handles the retrieval of category usage stats
// @Summary     List categories
// @Description Get category usage counters ordered by count descending, optionally filtered by kind
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       kind query string false "Filter by transaction kind (income, expense)"
// @Success     200 {array} models.CategoryStat "Categories"
// @Failure     400 {object} ErrorResponse "Invalid kind"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	var kind *models.TransactionKind
	if v := c.Query("kind"); v != "" {
		k := models.TransactionKind(v)
		switch k {
		case models.TransactionKindIncome, models.TransactionKindExpense:
			kind = &k
		default:
			respondWithError(c, apperrors.ErrInvalidTransactionKind)
			return
		}
	}

	categories, err := h.categoryService.ListCategories(kind)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": categories})
}
