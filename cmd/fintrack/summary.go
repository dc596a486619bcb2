package main

import (
	"fmt"

	"github.com/calebhart/fintrack/internal/cli"
	"github.com/calebhart/fintrack/internal/ledger"
	"github.com/calebhart/fintrack/internal/service"
	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show all-time and monthly totals with goal progress",
		Long: `Show the all-time income/expense/balance totals, the totals for one
month, and progress against the monthly spending goal.

The month defaults to the current calendar month.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			month, err := resolveMonth(monthFlag)
			if err != nil {
				return err
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			transactions, err := store.ListTransactions(ctx, service.TransactionFilter{})
			if err != nil {
				return err
			}

			goal, err := store.Goal(ctx)
			if err != nil {
				return err
			}

			symbol := currencySymbol()
			allTime := ledger.Totals(transactions)
			monthly := ledger.TotalsForMonth(transactions, month)
			progress := ledger.EvaluateGoal(monthly.Expense, goal)

			fmt.Println(cli.RenderAggregate("All time", symbol, allTime))
			fmt.Println(cli.RenderAggregate(ledger.MonthLabel(month), symbol, monthly))
			fmt.Println(cli.RenderBox("Monthly goal",
				cli.RenderGoalProgress(symbol, goal, monthly.Expense, progress)))

			return nil
		},
	}

	cmd.Flags().StringVarP(&monthFlag, "month", "m", "", "month to summarize as YYYY-MM (default: current month)")

	return cmd
}
