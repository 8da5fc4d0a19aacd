package services

import (
	"time"

	"bolsillo/internal/models"
)

// ListWindow restricts transaction listings to a trailing time window.
type ListWindow string

const (
	WindowAll   ListWindow = "all"
	WindowWeek  ListWindow = "week"
	WindowMonth ListWindow = "month"
	WindowYear  ListWindow = "year"
)

// Cutoff returns the earliest OccurredAt included by the window, relative to
// now. The second return is false for WindowAll (no cutoff).
func (w ListWindow) Cutoff(now time.Time) (time.Time, bool) {
	switch w {
	case WindowWeek:
		return now.AddDate(0, 0, -7), true
	case WindowMonth:
		return now.AddDate(0, -1, 0), true
	case WindowYear:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// CreateTransactionFields carries the validated fields for a new transaction.
type CreateTransactionFields struct {
	Kind          models.TransactionKind
	AmountCents   int64
	Category      string
	Description   string
	OccurredAt    time.Time
	PaymentMethod string
	Location      string
	ReceiptURL    string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(fields CreateTransactionFields) (*models.Transaction, error)
	ListTransactions(window ListWindow) ([]models.Transaction, error)
	DeleteTransaction(id uint) error
}

// CategoryServicer defines the contract for category-stat reads.
type CategoryServicer interface {
	ListCategories(kind *models.TransactionKind) ([]models.CategoryStat, error)
}
