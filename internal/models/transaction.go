package models

import "time"

// TransactionKind represents the kind of transaction
type TransactionKind string

const (
	TransactionKindIncome  TransactionKind = "income"
	TransactionKindExpense TransactionKind = "expense"
)

// Payment methods accepted on a transaction. A transaction with no payment
// method is stored with the default and rolled up under "other" when the
// stored value is empty.
const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
	PaymentMethodCrypto   = "crypto"
	PaymentMethodOther    = "other"
)

// Transaction represents one recorded income or expense event.
// Amounts are stored in integer cents to keep arithmetic exact.
type Transaction struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Kind          TransactionKind `gorm:"type:varchar(10);not null" json:"kind"`
	AmountCents   int64           `gorm:"type:bigint;not null" json:"amount_cents"`
	Category      string          `gorm:"type:varchar(100);not null" json:"category"`
	Description   string          `json:"description"`
	OccurredAt    time.Time       `gorm:"not null;index" json:"occurred_at"`
	PaymentMethod string          `gorm:"type:varchar(50)" json:"payment_method"`
	Location      string          `gorm:"type:varchar(200)" json:"location"`
	ReceiptURL    string          `json:"receipt_url"`
	CreatedAt     time.Time       `json:"created_at"`
}
