package main

import (
	"fmt"

	"github.com/calebhart/fintrack/internal/cli"
	"github.com/calebhart/fintrack/internal/ledger"
	"github.com/calebhart/fintrack/internal/service"
	"github.com/spf13/cobra"
)

func monthsCmd() *cobra.Command {
	var (
		anchorFlag string
		n          int
	)

	cmd := &cobra.Command{
		Use:   "months",
		Short: "Show a rolling window of monthly totals",
		Long: `Show totals for the last N consecutive months ending at the anchor
month, oldest first. Months with no transactions appear with zeros.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if n < 1 {
				return fmt.Errorf("window size must be at least 1, got %d", n)
			}

			anchor, err := resolveMonth(anchorFlag)
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

			window := ledger.LastNMonths(transactions, anchor, n)
			fmt.Println(cli.FormatTitle(fmt.Sprintf("Last %d months", n)))
			fmt.Print(cli.RenderMonthTable(currencySymbol(), window))

			return nil
		},
	}

	cmd.Flags().StringVarP(&anchorFlag, "anchor", "m", "", "last month of the window as YYYY-MM (default: current month)")
	cmd.Flags().IntVarP(&n, "months", "n", ledger.DefaultWindow, "number of months in the window")

	return cmd
}
