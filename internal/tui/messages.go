package tui

import "github.com/calebhart/fintrack/internal/model"

// dataLoadedMsg carries a fresh snapshot of everything the dashboard
// renders. Transactions are newest-first.
type dataLoadedMsg struct {
	transactions []model.Transaction
	goal         float64
	theme        string
}

// transactionSavedMsg is emitted after a successful insert.
type transactionSavedMsg struct {
	transaction model.Transaction
}

// transactionDeletedMsg is emitted after a delete completes.
type transactionDeletedMsg struct {
	id int64
}

// goalSavedMsg is emitted after the monthly goal is written.
type goalSavedMsg struct {
	goal float64
}

// themeSavedMsg is emitted after the theme preference is persisted.
type themeSavedMsg struct {
	name string
}

// errMsg wraps any store failure so the dashboard can surface it.
type errMsg struct {
	err error
}

func (e errMsg) Error() string { return e.err.Error() }