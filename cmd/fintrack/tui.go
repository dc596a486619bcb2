package main

import (
	"github.com/calebhart/fintrack/internal/tui"
	"github.com/spf13/cobra"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive dashboard",
		Long: `Open a full-screen dashboard showing all-time totals, the selected
month's totals, the six-month window, and goal progress. Use ←/→ to
navigate between months, 'a' to add a transaction, and 'd' to delete
the selected one.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			return tui.Run(ctx, tui.Config{
				Store:    store,
				Currency: currencySymbol(),
			})
		},
	}
}
