package integration

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestTransactionLifecycle(t *testing.T) {
	app := setupApp(t)

	// Record a salary and two food purchases.
	app.createTransaction(t, "income", 150000, "Salario", "2026-01-02")
	app.createTransaction(t, "expense", 2500, "Comida", "2026-01-03")
	lastID := app.createTransaction(t, "expense", 4000, "Comida", "2026-01-05")

	// Listing returns all three, newest first.
	rec := app.request("GET", "/api/v1/transactions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
	}
	txs := parseJSON(t, rec)["transactions"].([]interface{})
	if len(txs) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txs))
	}
	first := txs[0].(map[string]interface{})
	if first["id"].(float64) != lastID {
		t.Errorf("expected most recent transaction first, got id %v", first["id"])
	}

	// The summary reflects totals and health.
	rec = app.request("GET", "/api/v1/transactions/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("summary failed: %d %s", rec.Code, rec.Body.String())
	}
	summary := parseJSON(t, rec)["summary"].(map[string]interface{})
	if summary["total_income_cents"].(float64) != 150000 {
		t.Errorf("expected income 150000, got %v", summary["total_income_cents"])
	}
	if summary["total_expenses_cents"].(float64) != 6500 {
		t.Errorf("expected expenses 6500, got %v", summary["total_expenses_cents"])
	}
	if summary["balance_cents"].(float64) != 143500 {
		t.Errorf("expected balance 143500, got %v", summary["balance_cents"])
	}
	if summary["status"] != "healthy" {
		t.Errorf("expected status healthy, got %v", summary["status"])
	}

	// Deleting a transaction removes it from the listing.
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/transactions/%.0f", lastID), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/api/v1/transactions", "")
	txs = parseJSON(t, rec)["transactions"].([]interface{})
	if len(txs) != 2 {
		t.Errorf("expected 2 transactions after delete, got %d", len(txs))
	}

	// Deleting again reports not found.
	rec = app.request("DELETE", fmt.Sprintf("/api/v1/transactions/%.0f", lastID), "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on repeated delete, got %d", rec.Code)
	}
}

func TestTransactionWindowFilter(t *testing.T) {
	app := setupApp(t)

	now := time.Now()
	recent := now.AddDate(0, 0, -3).Format(time.RFC3339)
	// 40 days back stays outside the month window whatever the calendar
	// month's length; -30 would slip inside it after a 31-day month.
	old := now.AddDate(0, 0, -40).Format(time.RFC3339)
	ancient := now.AddDate(-2, 0, 0).Format(time.RFC3339)

	app.createTransaction(t, "expense", 1000, "Comida", recent)
	app.createTransaction(t, "expense", 2000, "Transporte", old)
	app.createTransaction(t, "expense", 3000, "Salud", ancient)

	cases := []struct {
		filter string
		want   int
	}{
		{"week", 1},
		{"month", 1},
		{"year", 2},
		{"all", 3},
	}
	for _, tc := range cases {
		t.Run("filter "+tc.filter, func(t *testing.T) {
			rec := app.request("GET", "/api/v1/transactions?filter="+tc.filter, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("list failed: %d %s", rec.Code, rec.Body.String())
			}
			txs := parseJSON(t, rec)["transactions"].([]interface{})
			if len(txs) != tc.want {
				t.Errorf("expected %d transactions, got %d", tc.want, len(txs))
			}
		})
	}

	t.Run("invalid filter is rejected", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/transactions?filter=quarter", "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}

func TestTransactionValidation(t *testing.T) {
	app := setupApp(t)

	t.Run("rejected payload is echoed back", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/transactions",
			`{"kind":"expense","amount_cents":-500,"category":"Comida","occurred_at":"2026-01-05"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		received, ok := result["received"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected received payload in response, got: %v", result)
		}
		if received["category"] != "Comida" {
			t.Errorf("expected echoed category, got %v", received["category"])
		}
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		rec := app.request("POST", "/api/v1/transactions",
			`{"kind":"loan","amount_cents":500,"category":"Comida","occurred_at":"2026-01-05"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("nothing is persisted on rejection", func(t *testing.T) {
		rec := app.request("GET", "/api/v1/transactions", "")
		txs := parseJSON(t, rec)["transactions"].([]interface{})
		if len(txs) != 0 {
			t.Errorf("expected no transactions, got %d", len(txs))
		}
	})
}

func TestCategoryCounters(t *testing.T) {
	app := setupApp(t)

	app.createTransaction(t, "expense", 1000, "Comida", "2026-01-02")
	app.createTransaction(t, "expense", 2000, "Comida", "2026-01-03")
	app.createTransaction(t, "income", 50000, "Salario", "2026-01-04")

	rec := app.request("GET", "/api/v1/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list categories failed: %d %s", rec.Code, rec.Body.String())
	}
	cats := parseJSON(t, rec)["categories"].([]interface{})
	if len(cats) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(cats))
	}

	// Ordered by usage count descending.
	first := cats[0].(map[string]interface{})
	if first["name"] != "Comida" {
		t.Errorf("expected Comida first, got %v", first["name"])
	}
	if first["count"].(float64) != 2 {
		t.Errorf("expected count 2, got %v", first["count"])
	}

	// Kind filter narrows the listing.
	rec = app.request("GET", "/api/v1/categories?kind=income", "")
	cats = parseJSON(t, rec)["categories"].([]interface{})
	if len(cats) != 1 {
		t.Fatalf("expected 1 income category, got %d", len(cats))
	}
	if cats[0].(map[string]interface{})["name"] != "Salario" {
		t.Errorf("expected Salario, got %v", cats[0].(map[string]interface{})["name"])
	}
}
