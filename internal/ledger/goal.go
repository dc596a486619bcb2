package ledger

import (
	"math"

	"github.com/calebhart/fintrack/internal/model"
)

// Goal progress thresholds, in percent of the goal consumed. These are
// fixed policy constants; status is purely a function of the capped
// percentage and the zero-spend special case.
const (
	goalWarningPercent  = 70
	goalExceededPercent = 100
)

// EvaluateGoal computes how much of the monthly expense goal has been
// consumed. A goal of zero or less means no goal is configured and yields
// GoalNone with a zero percent.
func EvaluateGoal(monthExpense, goal float64) model.GoalProgress {
	if goal <= 0 {
		return model.GoalProgress{Status: model.GoalNone}
	}

	percent := math.Min(goalExceededPercent, monthExpense/goal*100)

	var status model.GoalStatus
	switch {
	case monthExpense == 0:
		status = model.GoalNoSpending
	case percent < goalWarningPercent:
		status = model.GoalOnTrack
	case percent < goalExceededPercent:
		status = model.GoalWarning
	default:
		status = model.GoalExceeded
	}

	return model.GoalProgress{Status: status, Percent: percent}
}
