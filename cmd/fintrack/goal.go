package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/calebhart/fintrack/internal/cli"
	"github.com/calebhart/fintrack/internal/ledger"
	"github.com/calebhart/fintrack/internal/service"
	"github.com/spf13/cobra"
)

func goalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goal [amount]",
		Short: "Show or set the monthly spending goal",
		Long: `Without an argument, show the configured monthly spending goal and
the current month's progress against it. With an amount, set the goal;
zero clears it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if len(args) == 1 {
				amount, parseErr := strconv.ParseFloat(args[0], 64)
				if parseErr != nil {
					return fmt.Errorf("invalid goal amount %q: %w", args[0], parseErr)
				}
				if err := store.SetGoal(ctx, amount); err != nil {
					return err
				}
				if amount == 0 {
					fmt.Println(cli.FormatSuccess("Monthly goal cleared"))
				} else {
					fmt.Println(cli.FormatSuccess("Monthly goal saved: " +
						cli.FormatAmount(currencySymbol(), amount)))
				}
				return nil
			}

			goal, err := store.Goal(ctx)
			if err != nil {
				return err
			}

			transactions, err := store.ListTransactions(ctx, service.TransactionFilter{})
			if err != nil {
				return err
			}

			month := ledger.MonthOf(time.Now())
			monthly := ledger.TotalsForMonth(transactions, month)
			progress := ledger.EvaluateGoal(monthly.Expense, goal)

			fmt.Println(cli.RenderBox("Monthly goal — "+ledger.MonthLabel(month),
				cli.RenderGoalProgress(currencySymbol(), goal, monthly.Expense, progress)))
			return nil
		},
	}
}
