package ledger

import (
	"time"

	"github.com/calebhart/fintrack/internal/model"
)

// DefaultWindow is the number of months shown in the rolling summary.
const DefaultWindow = 6

// MonthSummary is one month's aggregate within a rolling window.
type MonthSummary struct {
	Label string
	Key   string
	Month time.Time
	model.Aggregate
}

// LastNMonths returns exactly n consecutive months of aggregates, oldest
// first, ending at the anchor's month. Months with no transactions are
// included with zero-filled aggregates.
func LastNMonths(txns []model.Transaction, anchor time.Time, n int) []MonthSummary {
	base := MonthOf(anchor)
	window := make([]MonthSummary, 0, n)
	for i := n - 1; i >= 0; i-- {
		month := AddMonths(base, -i)
		window = append(window, MonthSummary{
			Label:     MonthLabel(month),
			Key:       MonthKey(month),
			Month:     month,
			Aggregate: TotalsForMonth(txns, month),
		})
	}
	return window
}
