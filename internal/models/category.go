package models

// CategoryStat is a denormalized usage counter kept per distinct category
// name: the kind the category was last used with and how many transactions
// have been created under it. It is a convenience rollup, not authoritative;
// aggregation always recomputes category totals from the transactions table.
type CategoryStat struct {
	ID    uint            `gorm:"primaryKey" json:"id"`
	Name  string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Kind  TransactionKind `gorm:"type:varchar(10);not null" json:"kind"`
	Count int64           `gorm:"not null;default:0" json:"count"`
}

// TableName keeps the table name aligned with the migrations.
func (CategoryStat) TableName() string {
	return "categories"
}
