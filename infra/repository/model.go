package repository

import "time"

// Customer is a customer row. IDs are store-assigned, monotonically-unique
// numeric values (BIGSERIAL under postgres).
type Customer struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	Name     string    `gorm:"not null"`
	Surname  string    `gorm:"not null"`
	Address  string    `gorm:"not null"`
	Postcode string    `gorm:"not null"`
	Accounts []Account `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// Account is an account row. The foreign key to customers is the store-level
// backstop for the exists-then-insert window in the account-opening workflow.
type Account struct {
	ID            int64         `gorm:"primaryKey;autoIncrement"`
	Credit        float64       `gorm:"not null"`
	EstablishDate time.Time     `gorm:"not null"`
	CustomerID    int64         `gorm:"index;not null"`
	Transactions  []Transaction `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// Transaction is a transaction row.
type Transaction struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	Amount          float64   `gorm:"not null"`
	TransactionTime time.Time `gorm:"not null"`
	AccountID       int64     `gorm:"index;not null"`
}
