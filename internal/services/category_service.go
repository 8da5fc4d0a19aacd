package services

import (
	"gorm.io/gorm"

	apperrors "bolsillo/internal/errors"
	"bolsillo/internal/models"
)

// categoryService reads the denormalized category usage counters.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// ListCategories returns category stats ordered by usage count, most used
// first, optionally restricted to one transaction kind.
func (s *categoryService) ListCategories(kind *models.TransactionKind) ([]models.CategoryStat, error) {
	q := s.db.Model(&models.CategoryStat{})
	if kind != nil {
		q = q.Where("kind = ?", *kind)
	}

	var stats []models.CategoryStat
	if err := q.Order("count DESC").Find(&stats).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return stats, nil
}
