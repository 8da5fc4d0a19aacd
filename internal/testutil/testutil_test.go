package testutil_test

import (
	"testing"

	"bolsillo/internal/models"
	"bolsillo/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	// Verify all tables exist by doing a simple count query on each model.
	var count int64
	for _, table := range []string{"transactions", "categories"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	tx := testutil.CreateTestTransaction(t, db, models.TransactionKindExpense, 1500, "Comida")
	if tx.ID == 0 {
		t.Fatal("transaction should have a non-zero ID")
	}
	if tx.AmountCents != 1500 {
		t.Errorf("expected amount 1500, got %d", tx.AmountCents)
	}

	stat := testutil.CreateTestCategoryStat(t, db, "Comida", models.TransactionKindExpense, 3)
	if stat.Count != 3 {
		t.Errorf("expected count 3, got %d", stat.Count)
	}
}
