// Package analysis computes derived views over a transaction set: totals,
// category and payment-method rollups, a daily timeline, the financial
// health status, and the formatted advice report. Every function is pure;
// callers fetch the transaction slice once and pass it in.
package analysis

import (
	"fmt"
	"sort"
	"time"

	"bolsillo/internal/models"
)

// CategoryTotal is the summed expense amount for one category.
type CategoryTotal struct {
	Name       string `json:"name"`
	TotalCents int64  `json:"total_cents"`
}

// MethodTotal is the summed amount (income and expense) for one payment method.
type MethodTotal struct {
	Method     string `json:"method"`
	TotalCents int64  `json:"total_cents"`
}

// TimelinePoint is one calendar-day bucket of the income/expense series.
type TimelinePoint struct {
	Label        string `json:"label"`
	IncomeCents  int64  `json:"income_cents"`
	ExpenseCents int64  `json:"expense_cents"`
}

// DefaultTopCategories is the number of categories shown in the expense chart.
const DefaultTopCategories = 6

// timelineBuckets caps the daily series at the most recent buckets.
const timelineBuckets = 10

// Totals sums transaction amounts by kind. Empty input yields zero for both.
func Totals(txns []models.Transaction) (incomeCents, expenseCents int64) {
	for _, t := range txns {
		switch t.Kind {
		case models.TransactionKindIncome:
			incomeCents += t.AmountCents
		case models.TransactionKindExpense:
			expenseCents += t.AmountCents
		}
	}
	return incomeCents, expenseCents
}

// CategoryRollup sums expense amounts per category. The result preserves the
// order categories are first encountered so that descending sorts can break
// ties deterministically.
func CategoryRollup(txns []models.Transaction) []CategoryTotal {
	index := make(map[string]int)
	var rollup []CategoryTotal
	for _, t := range txns {
		if t.Kind != models.TransactionKindExpense {
			continue
		}
		i, seen := index[t.Category]
		if !seen {
			i = len(rollup)
			index[t.Category] = i
			rollup = append(rollup, CategoryTotal{Name: t.Category})
		}
		rollup[i].TotalCents += t.AmountCents
	}
	return rollup
}

// TopCategories returns up to limit categories sorted by expense total,
// largest first. Categories with equal totals keep their encounter order.
// With no expense transactions the result is empty.
func TopCategories(txns []models.Transaction, limit int) []CategoryTotal {
	rollup := CategoryRollup(txns)
	sort.SliceStable(rollup, func(i, j int) bool {
		return rollup[i].TotalCents > rollup[j].TotalCents
	})
	if limit >= 0 && len(rollup) > limit {
		rollup = rollup[:limit]
	}
	return rollup
}

// AverageExpense returns the mean expense amount in cents. The second return
// is false when there are no expense transactions; callers must render a
// neutral value instead of dividing by zero.
func AverageExpense(txns []models.Transaction) (int64, bool) {
	var sum, count int64
	for _, t := range txns {
		if t.Kind == models.TransactionKindExpense {
			sum += t.AmountCents
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / count, true
}

// PaymentMethodRollup sums amounts of both kinds per payment method, in
// encounter order. Transactions without a payment method land in "other".
func PaymentMethodRollup(txns []models.Transaction) []MethodTotal {
	index := make(map[string]int)
	var rollup []MethodTotal
	for _, t := range txns {
		method := t.PaymentMethod
		if method == "" {
			method = models.PaymentMethodOther
		}
		i, seen := index[method]
		if !seen {
			i = len(rollup)
			index[method] = i
			rollup = append(rollup, MethodTotal{Method: method})
		}
		rollup[i].TotalCents += t.AmountCents
	}
	return rollup
}

// Timeline groups transactions into calendar-day buckets labelled by
// OccurredAt, accumulating income and expense independently, and keeps the
// last ten buckets in encounter order. Buckets are not re-sorted by date;
// callers wanting strict chronology must supply transactions in order.
func Timeline(txns []models.Transaction) []TimelinePoint {
	index := make(map[string]int)
	var series []TimelinePoint
	for _, t := range txns {
		label := DayLabel(t.OccurredAt)
		i, seen := index[label]
		if !seen {
			i = len(series)
			index[label] = i
			series = append(series, TimelinePoint{Label: label})
		}
		if t.Kind == models.TransactionKindIncome {
			series[i].IncomeCents += t.AmountCents
		} else {
			series[i].ExpenseCents += t.AmountCents
		}
	}
	if len(series) > timelineBuckets {
		series = series[len(series)-timelineBuckets:]
	}
	return series
}

// spanishMonths holds the es-SV short month names used for bucket labels.
var spanishMonths = [12]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// DayLabel formats a date as the Spanish day label used by the charts,
// e.g. "2 ene".
func DayLabel(t time.Time) string {
	return fmt.Sprintf("%d %s", t.Day(), spanishMonths[t.Month()-1])
}

// FormatCents renders a cent amount as a dollar string, e.g. 1550 -> "$15.50".
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("$%s%d.%02d", sign, cents/100, cents%100)
}
