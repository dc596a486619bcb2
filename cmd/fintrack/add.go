package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/calebhart/fintrack/internal/cli"
	"github.com/calebhart/fintrack/internal/model"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	var (
		txnType  string
		category string
		amount   float64
		dateStr  string
	)

	cmd := &cobra.Command{
		Use:   "add <description...>",
		Short: "Record an income or expense transaction",
		Long: `Record a transaction. The description is taken from the remaining
arguments, so quoting is optional.

Examples:
  # An expense (the default type)
  fintrack add --amount 4.50 --category Food morning coffee

  # An income with an explicit date
  fintrack add --type income --amount 2500 --date 2024-01-31 January salary`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			date := time.Now()
			if dateStr != "" {
				parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
				if err != nil {
					return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", dateStr, err)
				}
				date = parsed
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			stored, err := store.AddTransaction(ctx, model.Transaction{
				Type:        model.TransactionType(txnType),
				Description: strings.Join(args, " "),
				Category:    category,
				Amount:      amount,
				Date:        date,
			})
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s #%d: %s (%s)",
				stored.Type, stored.ID, stored.Description,
				cli.FormatAmount(currencySymbol(), stored.Amount))))
			return nil
		},
	}

	cmd.Flags().StringVarP(&txnType, "type", "t", string(model.TypeExpense), "transaction type (income, expense)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "category label")
	cmd.Flags().Float64VarP(&amount, "amount", "a", 0, "amount (positive)")
	cmd.Flags().StringVarP(&dateStr, "date", "d", "", "date as YYYY-MM-DD (default: today)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
