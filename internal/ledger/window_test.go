package ledger

import (
	"testing"
	"time"

	"github.com/calebhart/fintrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastNMonths_WindowShape(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	window := LastNMonths(nil, anchor, DefaultWindow)

	require.Len(t, window, 6)
	assert.Equal(t, "2024-01", window[0].Key)
	assert.Equal(t, "2024-06", window[5].Key)
	assert.Equal(t, MonthKey(anchor), window[len(window)-1].Key)

	// Oldest first, consecutive months.
	for i := 1; i < len(window); i++ {
		assert.Equal(t, AddMonths(window[i-1].Month, 1), window[i].Month)
	}
}

func TestLastNMonths_YearRollover(t *testing.T) {
	t.Parallel()

	anchor := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	window := LastNMonths(nil, anchor, 6)

	require.Len(t, window, 6)
	assert.Equal(t, "2023-09", window[0].Key)
	assert.Equal(t, "2023-12", window[3].Key)
	assert.Equal(t, "2024-01", window[4].Key)
	assert.Equal(t, "2024-02", window[5].Key)
}

func TestLastNMonths_ZeroFillsEmptyMonths(t *testing.T) {
	t.Parallel()

	txns := []model.Transaction{
		{ID: 1, Type: model.TypeIncome, Amount: 1000, Date: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Type: model.TypeExpense, Amount: 300, Date: time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)},
	}

	window := LastNMonths(txns, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC), 3)
	require.Len(t, window, 3)

	assert.Equal(t, model.Aggregate{Income: 1000, Balance: 1000}, window[0].Aggregate)
	assert.Equal(t, model.Aggregate{}, window[1].Aggregate)
	assert.Equal(t, model.Aggregate{Expense: 300, Balance: -300}, window[2].Aggregate)
}

func TestLastNMonths_AnchorWithNoTransactionsIsIncluded(t *testing.T) {
	t.Parallel()

	txns := []model.Transaction{
		{ID: 1, Type: model.TypeIncome, Amount: 50, Date: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}

	window := LastNMonths(txns, time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC), 2)
	require.Len(t, window, 2)
	assert.Equal(t, "2024-05", window[1].Key)
	assert.Equal(t, model.Aggregate{}, window[1].Aggregate)
}

func TestLastNMonths_Labels(t *testing.T) {
	t.Parallel()

	window := LastNMonths(nil, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), 2)
	require.Len(t, window, 2)
	assert.Equal(t, "December 2023", window[0].Label)
	assert.Equal(t, "January 2024", window[1].Label)
}
