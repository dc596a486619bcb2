package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calebhart/fintrack/internal/ledger"
	"github.com/calebhart/fintrack/internal/model"
	"github.com/calebhart/fintrack/internal/service"
)

func loadData(ctx context.Context, store service.Store) tea.Cmd {
	return func() tea.Msg {
		transactions, err := store.ListTransactions(ctx, service.TransactionFilter{})
		if err != nil {
			return errMsg{err: err}
		}
		goal, err := store.Goal(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		theme, err := store.Theme(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		// Stores return newest-first, but the dashboard does not rely
		// on that.
		return dataLoadedMsg{
			transactions: ledger.Newest(transactions),
			goal:         goal,
			theme:        theme,
		}
	}
}

func saveTransaction(ctx context.Context, store service.Store, txn model.Transaction) tea.Cmd {
	return func() tea.Msg {
		saved, err := store.AddTransaction(ctx, txn)
		if err != nil {
			return errMsg{err: err}
		}
		return transactionSavedMsg{transaction: saved}
	}
}

func deleteTransaction(ctx context.Context, store service.Store, id int64) tea.Cmd {
	return func() tea.Msg {
		if err := store.DeleteTransaction(ctx, id); err != nil {
			return errMsg{err: err}
		}
		return transactionDeletedMsg{id: id}
	}
}

func saveGoal(ctx context.Context, store service.Store, goal float64) tea.Cmd {
	return func() tea.Msg {
		if err := store.SetGoal(ctx, goal); err != nil {
			return errMsg{err: err}
		}
		return goalSavedMsg{goal: goal}
	}
}

func saveTheme(ctx context.Context, store service.Store, name string) tea.Cmd {
	return func() tea.Msg {
		if err := store.SetTheme(ctx, name); err != nil {
			return errMsg{err: err}
		}
		return themeSavedMsg{name: name}
	}
}