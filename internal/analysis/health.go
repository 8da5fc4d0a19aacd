package analysis

import "bolsillo/internal/models"

// Status classifies the financial health derived from income and balance.
type Status string

const (
	StatusHealthy  Status = "healthy"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// FinancialSummary is the derived income/expense/balance/status snapshot.
// It is never persisted; it is recomputed from the transaction set on every
// read.
type FinancialSummary struct {
	TotalIncomeCents   int64  `json:"total_income_cents"`
	TotalExpensesCents int64  `json:"total_expenses_cents"`
	BalanceCents       int64  `json:"balance_cents"`
	Status             Status `json:"status"`
}

// ClassifyHealth derives the three-state status from income and balance.
// Zero income is always critical, which also keeps the ratio well-defined.
func ClassifyHealth(incomeCents, balanceCents int64) Status {
	if incomeCents == 0 {
		return StatusCritical
	}
	ratio := float64(balanceCents) / float64(incomeCents)
	if ratio >= 0.3 {
		return StatusHealthy
	}
	if ratio >= 0.1 {
		return StatusWarning
	}
	return StatusCritical
}

// Summarize computes the financial summary for a transaction set.
func Summarize(txns []models.Transaction) FinancialSummary {
	income, expenses := Totals(txns)
	balance := income - expenses
	return FinancialSummary{
		TotalIncomeCents:   income,
		TotalExpensesCents: expenses,
		BalanceCents:       balance,
		Status:             ClassifyHealth(income, balance),
	}
}
