// Package tui implements the interactive dashboard: month navigation,
// summaries, the rolling six-month trend, goal tracking, and transaction
// entry, all backed by the same store the CLI commands use.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/calebhart/fintrack/internal/service"
)

// Config carries the dependencies for a dashboard session.
type Config struct {
	Store    service.Store
	Currency string
}

// Run starts the dashboard and blocks until the user quits or the
// context is canceled.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Store == nil {
		return fmt.Errorf("tui: store is required")
	}

	program := tea.NewProgram(
		NewModel(ctx, cfg.Store, cfg.Currency),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}