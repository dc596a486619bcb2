package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/calebhart/fintrack/internal/ledger"
	"github.com/calebhart/fintrack/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		symbol string
		amount float64
		want   string
	}{
		{name: "default symbol", symbol: "", amount: 12.5, want: "₹12.50"},
		{name: "custom symbol", symbol: "$", amount: 1000, want: "$1000.00"},
		{name: "negative balance", symbol: "€", amount: -200.4, want: "€-200.40"},
		{name: "rounds to two decimals", symbol: "$", amount: 3.14159, want: "$3.14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatAmount(tt.symbol, tt.amount))
		})
	}
}

func TestGoalFeedback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		progress model.GoalProgress
		want     string
	}{
		{
			name:     "no goal prompts configuration",
			progress: model.GoalProgress{Status: model.GoalNone},
			want:     "Set a monthly budget goal",
		},
		{
			name:     "no spending",
			progress: model.GoalProgress{Status: model.GoalNoSpending},
			want:     "No expenses this month.",
		},
		{
			name:     "on track includes rounded percent",
			progress: model.GoalProgress{Status: model.GoalOnTrack, Percent: 49.6},
			want:     "Good — 50% of goal used.",
		},
		{
			name:     "warning",
			progress: model.GoalProgress{Status: model.GoalWarning, Percent: 85},
			want:     "Warning — 85% of goal used.",
		},
		{
			name:     "exceeded",
			progress: model.GoalProgress{Status: model.GoalExceeded, Percent: 100},
			want:     "Exceeded! 100% of goal used.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Contains(t, GoalFeedback(tt.progress), tt.want)
		})
	}
}

func TestRenderMonthTable(t *testing.T) {
	t.Parallel()

	window := ledger.LastNMonths(nil, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), 2)
	out := RenderMonthTable("$", window)

	assert.Contains(t, out, "January 2024")
	assert.Contains(t, out, "February 2024")
	assert.Contains(t, out, "$0.00")

	// Oldest month comes first.
	assert.Less(t, strings.Index(out, "January 2024"), strings.Index(out, "February 2024"))
}

func TestRenderGoalProgress_NoGoalShowsPromptOnly(t *testing.T) {
	t.Parallel()

	out := RenderGoalProgress("$", 0, 50, model.GoalProgress{Status: model.GoalNone})
	assert.Contains(t, out, "Set a monthly budget goal")
	assert.NotContains(t, out, "█")
}
