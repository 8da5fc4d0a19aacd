package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"bolsillo/internal/models"

	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestTransaction inserts a transaction with the given kind, amount,
// and category, dated now.
func CreateTestTransaction(t *testing.T, db *gorm.DB, kind models.TransactionKind, amountCents int64, category string) *models.Transaction {
	t.Helper()
	return CreateTestTransactionAt(t, db, kind, amountCents, category, time.Now())
}

// CreateTestTransactionAt inserts a transaction attributed to the given date.
func CreateTestTransactionAt(t *testing.T, db *gorm.DB, kind models.TransactionKind, amountCents int64, category string, occurredAt time.Time) *models.Transaction {
	t.Helper()

	tx := &models.Transaction{
		Kind:          kind,
		AmountCents:   amountCents,
		Category:      category,
		Description:   fmt.Sprintf("test transaction %d", nextID()),
		OccurredAt:    occurredAt,
		PaymentMethod: models.PaymentMethodCash,
	}
	if err := db.Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return tx
}

// CreateTestCategoryStat inserts a category usage counter row.
func CreateTestCategoryStat(t *testing.T, db *gorm.DB, name string, kind models.TransactionKind, count int64) *models.CategoryStat {
	t.Helper()

	stat := &models.CategoryStat{Name: name, Kind: kind, Count: count}
	if err := db.Create(stat).Error; err != nil {
		t.Fatalf("failed to create test category stat: %v", err)
	}
	return stat
}
