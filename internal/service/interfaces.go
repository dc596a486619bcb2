// Package service defines the contracts between the command layer and the
// persistence layer.
package service

import (
	"context"

	"github.com/calebhart/fintrack/internal/model"
)

// TransactionFilter narrows the transactions returned by a list query.
// A nil Type matches both income and expense; Search is a case-insensitive
// substring match over description and category; Limit of zero means no
// limit.
type TransactionFilter struct {
	Type   *model.TransactionType
	Search string
	Limit  int
}

// Store is the persistence contract for the tracker. Implementations own
// the transaction collection and the settings; callers receive snapshots
// and must not assume shared state.
type Store interface {
	// Transaction operations. AddTransaction assigns the ID and returns
	// the stored record; DeleteTransaction of an unknown ID is a no-op.
	// ListTransactions returns a newest-first snapshot.
	AddTransaction(ctx context.Context, txn model.Transaction) (model.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]model.Transaction, error)

	// Settings. Goal returns zero when unset or unreadable; SetGoal
	// rejects negative or non-finite values. Theme returns "" when unset.
	Goal(ctx context.Context) (float64, error)
	SetGoal(ctx context.Context, amount float64) error
	Theme(ctx context.Context) (string, error)
	SetTheme(ctx context.Context, name string) error

	Close() error
}
