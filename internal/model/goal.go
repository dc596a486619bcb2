package model

// GoalStatus classifies how the selected month's spending compares to the
// configured monthly goal.
type GoalStatus string

// Goal statuses, from unset through overspent.
const (
	GoalNone       GoalStatus = "none"
	GoalNoSpending GoalStatus = "no_spending"
	GoalOnTrack    GoalStatus = "on_track"
	GoalWarning    GoalStatus = "warning"
	GoalExceeded   GoalStatus = "exceeded"
)

// GoalProgress is the result of evaluating a month's expense total against
// the configured goal. Percent is capped to [0, 100] and is zero when no
// goal is configured.
type GoalProgress struct {
	Status  GoalStatus
	Percent float64
}
