// Package model defines the domain types shared across the application.
package model

import "time"

// TransactionType distinguishes money entering from money leaving.
type TransactionType string

// Valid transaction types.
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single recorded income or expense event.
// Transactions are immutable once stored; the only mutation is deletion.
type Transaction struct {
	Date        time.Time
	Description string
	Category    string
	Type        TransactionType
	Amount      float64
	ID          int64
}
