package ledger

import (
	"testing"
	"time"

	"github.com/calebhart/fintrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewest(t *testing.T) {
	t.Parallel()

	txns := []model.Transaction{
		{ID: 2, Description: "second"},
		{ID: 5, Description: "fifth"},
		{ID: 1, Description: "first"},
	}

	got := Newest(txns)
	require.Len(t, got, 3)
	assert.Equal(t, int64(5), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, int64(1), got[2].ID)

	// Input order untouched.
	assert.Equal(t, int64(2), txns[0].ID)
}

func TestFilter(t *testing.T) {
	t.Parallel()

	now := time.Now()
	txns := []model.Transaction{
		{ID: 1, Type: model.TypeIncome, Description: "Monthly salary", Category: "Salary", Amount: 1000, Date: now},
		{ID: 2, Type: model.TypeExpense, Description: "Coffee beans", Category: "Food", Amount: 12, Date: now},
		{ID: 3, Type: model.TypeExpense, Description: "Train ticket", Category: "Transport", Amount: 30, Date: now},
	}

	income := model.TypeIncome
	expense := model.TypeExpense

	tests := []struct {
		name    string
		txnType *model.TransactionType
		query   string
		wantIDs []int64
	}{
		{
			name:    "no filter matches everything",
			wantIDs: []int64{1, 2, 3},
		},
		{
			name:    "income only",
			txnType: &income,
			wantIDs: []int64{1},
		},
		{
			name:    "expense only",
			txnType: &expense,
			wantIDs: []int64{2, 3},
		},
		{
			name:    "search matches description case-insensitively",
			query:   "COFFEE",
			wantIDs: []int64{2},
		},
		{
			name:    "search matches category",
			query:   "transport",
			wantIDs: []int64{3},
		},
		{
			name:    "type and search combine",
			txnType: &expense,
			query:   "salary",
			wantIDs: nil,
		},
		{
			name:    "whitespace-only query matches everything",
			query:   "   ",
			wantIDs: []int64{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Filter(txns, tt.txnType, tt.query)
			ids := make([]int64, 0, len(got))
			for _, txn := range got {
				ids = append(ids, txn.ID)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, ids)
				return
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
