package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"bolsillo/internal/models"
	"bolsillo/internal/services"
)

// --- mock category service ---

type mockCategoryService struct {
	listCategoriesFn func(kind *models.TransactionKind) ([]models.CategoryStat, error)
}

func (m *mockCategoryService) ListCategories(kind *models.TransactionKind) ([]models.CategoryStat, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn(kind)
	}
	return []models.CategoryStat{}, nil
}

var _ services.CategoryServicer = (*mockCategoryService)(nil)

func setupCategoryRouter(handler *CategoryHandler) *gin.Engine {
	r := gin.New()
	r.GET("/categories", handler.ListCategories)
	return r
}

func TestCategoryHandler_ListCategories(t *testing.T) {
	t.Run("returns 200 with categories", func(t *testing.T) {
		catSvc := &mockCategoryService{
			listCategoriesFn: func(kind *models.TransactionKind) ([]models.CategoryStat, error) {
				return []models.CategoryStat{
					{ID: 1, Name: "Comida", Kind: models.TransactionKindExpense, Count: 12},
					{ID: 2, Name: "Salario", Kind: models.TransactionKindIncome, Count: 3},
				}, nil
			},
		}
		handler := NewCategoryHandler(catSvc)
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "GET", "/categories", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		cats := result["categories"].([]interface{})
		if len(cats) != 2 {
			t.Errorf("expected 2 categories, got %d", len(cats))
		}
		first := cats[0].(map[string]interface{})
		if first["name"] != "Comida" {
			t.Errorf("expected first category Comida, got %v", first["name"])
		}
	})

	t.Run("passes the kind filter to the service", func(t *testing.T) {
		var got *models.TransactionKind
		catSvc := &mockCategoryService{
			listCategoriesFn: func(kind *models.TransactionKind) ([]models.CategoryStat, error) {
				got = kind
				return []models.CategoryStat{}, nil
			},
		}
		handler := NewCategoryHandler(catSvc)
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "GET", "/categories?kind=income", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got == nil || *got != models.TransactionKindIncome {
			t.Errorf("expected kind income, got %v", got)
		}
	})

	t.Run("omitting kind passes nil", func(t *testing.T) {
		called := false
		catSvc := &mockCategoryService{
			listCategoriesFn: func(kind *models.TransactionKind) ([]models.CategoryStat, error) {
				called = true
				if kind != nil {
					t.Errorf("expected nil kind, got %v", *kind)
				}
				return []models.CategoryStat{}, nil
			},
		}
		handler := NewCategoryHandler(catSvc)
		r := setupCategoryRouter(handler)

		doRequest(r, "GET", "/categories", "")

		if !called {
			t.Fatal("expected service to be called")
		}
	})

	t.Run("returns 400 on invalid kind", func(t *testing.T) {
		handler := NewCategoryHandler(&mockCategoryService{})
		r := setupCategoryRouter(handler)

		rec := doRequest(r, "GET", "/categories?kind=transfer", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_TRANSACTION_KIND")
	})
}
