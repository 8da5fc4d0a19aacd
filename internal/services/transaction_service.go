package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "bolsillo/internal/errors"
	"bolsillo/internal/models"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db *gorm.DB

	// now is swappable so window-filter tests can pin the clock.
	now func() time.Time
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB) TransactionServicer {
	return &transactionService{db: db, now: time.Now}
}

// CreateTransaction validates the fields, inserts the transaction, and bumps
// the category usage counter. Both writes run inside one database transaction
// so a failed counter update can never leave a transaction row without its
// category stat.
func (s *transactionService) CreateTransaction(fields CreateTransactionFields) (*models.Transaction, error) {
	switch fields.Kind {
	case models.TransactionKindIncome, models.TransactionKindExpense:
	default:
		return nil, apperrors.ErrInvalidTransactionKind
	}
	if fields.AmountCents <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if fields.Category == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is required")
	}
	if fields.OccurredAt.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "date is required")
	}
	if fields.PaymentMethod == "" {
		fields.PaymentMethod = models.PaymentMethodCash
	}

	transaction := &models.Transaction{
		Kind:          fields.Kind,
		AmountCents:   fields.AmountCents,
		Category:      fields.Category,
		Description:   fields.Description,
		OccurredAt:    fields.OccurredAt,
		PaymentMethod: fields.PaymentMethod,
		Location:      fields.Location,
		ReceiptURL:    fields.ReceiptURL,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return upsertCategoryStat(tx, fields.Category, fields.Kind)
	})
	if err != nil {
		return nil, err
	}
	return transaction, nil
}

// upsertCategoryStat increments the usage counter for a category name,
// inserting it with count 1 when absent. The kind always reflects the kind
// the category was last used with.
func upsertCategoryStat(tx *gorm.DB, name string, kind models.TransactionKind) error {
	stat := models.CategoryStat{Name: name, Kind: kind, Count: 1}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"kind":  kind,
			"count": gorm.Expr("count + 1"),
		}),
	}).Create(&stat).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ListTransactions retrieves transactions, newest first, optionally limited
// to a trailing window over OccurredAt.
func (s *transactionService) ListTransactions(window ListWindow) ([]models.Transaction, error) {
	q := s.db.Model(&models.Transaction{})
	if cutoff, ok := window.Cutoff(s.now()); ok {
		q = q.Where("occurred_at >= ?", cutoff)
	}

	var transactions []models.Transaction
	if err := q.Order("occurred_at DESC, created_at DESC").Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// DeleteTransaction removes a transaction by id. Deleting an id that does not
// exist reports not-found and leaves the stored set unchanged, so a retried
// delete is safe. The category counter is deliberately not decremented; it
// counts creations, not live rows.
func (s *transactionService) DeleteTransaction(id uint) error {
	res := s.db.Delete(&models.Transaction{}, id)
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTransactionNotFound
	}
	return nil
}
