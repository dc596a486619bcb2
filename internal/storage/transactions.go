package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/calebhart/fintrack/internal/model"
	"github.com/calebhart/fintrack/internal/service"
)

// AddTransaction validates and inserts a transaction, returning the stored
// record with its assigned ID. IDs come from SQLite's AUTOINCREMENT
// rowid, so they are unique and monotonically increasing across the life
// of the database, which makes newest-first ordering by id stable.
func (s *SQLiteStore) AddTransaction(ctx context.Context, txn model.Transaction) (model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return model.Transaction{}, err
	}
	if err := validateTransaction(txn); err != nil {
		return model.Transaction{}, err
	}

	txn.Description = strings.TrimSpace(txn.Description)
	txn.Category = strings.TrimSpace(txn.Category)

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (type, description, category, amount, date)
		VALUES (?, ?, ?, ?, ?)
	`, string(txn.Type), txn.Description, txn.Category, txn.Amount, txn.Date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to get transaction id: %w", err)
	}

	txn.ID = id
	return txn, nil
}

// DeleteTransaction removes the transaction with the given ID. Deleting an
// ID that does not exist is not an error.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id int64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}
	return nil
}

// ListTransactions returns a newest-first snapshot of the stored
// transactions, optionally narrowed by the filter.
func (s *SQLiteStore) ListTransactions(ctx context.Context, filter service.TransactionFilter) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, type, description, category, amount, date
		FROM transactions
	`
	var conditions []string
	var args []any

	if filter.Type != nil {
		conditions = append(conditions, "type = ?")
		args = append(args, string(*filter.Type))
	}
	if q := strings.TrimSpace(filter.Search); q != "" {
		conditions = append(conditions, "(description LIKE ? COLLATE NOCASE OR category LIKE ? COLLATE NOCASE)")
		pattern := "%" + q + "%"
		args = append(args, pattern, pattern)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var txnType string
		if err := rows.Scan(&txn.ID, &txnType, &txn.Description, &txn.Category, &txn.Amount, &txn.Date); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txn.Type = model.TransactionType(txnType)
		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}
