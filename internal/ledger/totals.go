package ledger

import (
	"time"

	"github.com/calebhart/fintrack/internal/model"
)

// Totals computes income, expense, and balance over the given
// transactions. An empty or nil slice yields all zeros.
func Totals(txns []model.Transaction) model.Aggregate {
	var agg model.Aggregate
	for _, txn := range txns {
		switch txn.Type {
		case model.TypeIncome:
			agg.Income += txn.Amount
		case model.TypeExpense:
			agg.Expense += txn.Amount
		}
	}
	agg.Balance = agg.Income - agg.Expense
	return agg
}

// TotalsForMonth computes totals over only the transactions falling in the
// same calendar month as the given date. The month key is the sole
// selection criterion; type and category are not considered when
// filtering.
func TotalsForMonth(txns []model.Transaction, month time.Time) model.Aggregate {
	key := MonthKey(month)
	var agg model.Aggregate
	for _, txn := range txns {
		if MonthKey(txn.Date) != key {
			continue
		}
		switch txn.Type {
		case model.TypeIncome:
			agg.Income += txn.Amount
		case model.TypeExpense:
			agg.Expense += txn.Amount
		}
	}
	agg.Balance = agg.Income - agg.Expense
	return agg
}
