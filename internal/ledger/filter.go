package ledger

import (
	"sort"
	"strings"

	"github.com/calebhart/fintrack/internal/model"
)

// Newest returns a copy of the transactions sorted newest-first by ID.
// IDs are assigned monotonically at creation, so this is creation order
// reversed. The input slice is not modified.
func Newest(txns []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(txns))
	copy(out, txns)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

// Filter returns the transactions matching the given type and search
// query. A nil txnType matches both types. The query is a case-insensitive
// substring match over description and category; an empty query matches
// everything. Order is preserved and the input is not modified.
func Filter(txns []model.Transaction, txnType *model.TransactionType, query string) []model.Transaction {
	query = strings.ToLower(strings.TrimSpace(query))

	var out []model.Transaction
	for _, txn := range txns {
		if txnType != nil && txn.Type != *txnType {
			continue
		}
		if query != "" {
			hay := strings.ToLower(txn.Description + " " + txn.Category)
			if !strings.Contains(hay, query) {
				continue
			}
		}
		out = append(out, txn)
	}
	return out
}
