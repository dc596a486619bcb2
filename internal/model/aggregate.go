package model

// Aggregate holds income, expense, and balance totals computed over a set
// of transactions. It is derived on demand and never persisted.
type Aggregate struct {
	Income  float64
	Expense float64
	Balance float64
}
