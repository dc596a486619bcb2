package cli

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/calebhart/fintrack/internal/ledger"
	"github.com/calebhart/fintrack/internal/model"
)

// DefaultCurrency is the symbol used when ui.currency is not configured.
const DefaultCurrency = "₹"

// FormatAmount renders a monetary value with the currency symbol and two
// decimal places.
func FormatAmount(symbol string, amount float64) string {
	if symbol == "" {
		symbol = DefaultCurrency
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// RenderAggregate renders income/expense/balance totals as a titled box.
func RenderAggregate(title, symbol string, agg model.Aggregate) string {
	content := fmt.Sprintf("Income:  %s\nExpense: %s\nBalance: %s",
		IncomeStyle.Render(FormatAmount(symbol, agg.Income)),
		ExpenseStyle.Render(FormatAmount(symbol, agg.Expense)),
		BoldStyle.Render(FormatAmount(symbol, agg.Balance)))
	return RenderBox(title, content)
}

// RenderMonthTable renders a rolling window of month summaries as an
// aligned table, oldest month first.
func RenderMonthTable(symbol string, window []ledger.MonthSummary) string {
	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render("MONTH"),
		TableHeaderStyle.Render("INCOME"),
		TableHeaderStyle.Render("EXPENSE"),
		TableHeaderStyle.Render("BALANCE"))

	for _, month := range window {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			month.Label,
			FormatAmount(symbol, month.Income),
			FormatAmount(symbol, month.Expense),
			FormatAmount(symbol, month.Balance))
	}

	_ = w.Flush()
	return sb.String()
}

// GoalFeedbackText returns the unstyled one-line status message for a
// goal evaluation.
func GoalFeedbackText(progress model.GoalProgress) string {
	percent := int(math.Round(progress.Percent))
	switch progress.Status {
	case model.GoalNone:
		return "Set a monthly budget goal to track progress."
	case model.GoalNoSpending:
		return "No expenses this month."
	case model.GoalOnTrack:
		return fmt.Sprintf("Good — %d%% of goal used.", percent)
	case model.GoalWarning:
		return fmt.Sprintf("Warning — %d%% of goal used.", percent)
	case model.GoalExceeded:
		return fmt.Sprintf("Exceeded! %d%% of goal used.", percent)
	default:
		return ""
	}
}

// GoalFeedback renders the status message styled for terminal output.
func GoalFeedback(progress model.GoalProgress) string {
	text := GoalFeedbackText(progress)
	switch progress.Status {
	case model.GoalNone:
		return SubtleStyle.Render(text)
	case model.GoalNoSpending:
		return InfoStyle.Render(text)
	case model.GoalOnTrack:
		return SuccessStyle.Render(text)
	case model.GoalWarning:
		return WarningStyle.Render(text)
	case model.GoalExceeded:
		return ErrorStyle.Render(text)
	default:
		return text
	}
}

// RenderGoalProgress renders a goal evaluation as a text progress bar with
// the feedback line underneath.
func RenderGoalProgress(symbol string, goal, monthExpense float64, progress model.GoalProgress) string {
	if progress.Status == model.GoalNone {
		return GoalFeedback(progress)
	}

	const width = 30
	filled := int(progress.Percent / 100 * width)
	if filled > width {
		filled = width
	}

	barStyle := SuccessStyle
	switch progress.Status {
	case model.GoalWarning:
		barStyle = WarningStyle
	case model.GoalExceeded:
		barStyle = ErrorStyle
	}

	bar := barStyle.Render(strings.Repeat("█", filled)) +
		SubtleStyle.Render(strings.Repeat("░", width-filled))

	header := fmt.Sprintf("%s of %s",
		FormatAmount(symbol, monthExpense),
		FormatAmount(symbol, goal))

	return strings.Join([]string{header, bar, GoalFeedback(progress)}, "\n")
}
