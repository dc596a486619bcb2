package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/calebhart/fintrack/internal/cli"
	"github.com/calebhart/fintrack/internal/model"
	"github.com/calebhart/fintrack/internal/service"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var (
		typeFilter string
		search     string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Browse transactions, newest first",
		Long: `List recorded transactions, newest first. The list can be narrowed
to one type and searched by substring over description and category.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			filter := service.TransactionFilter{Search: search, Limit: limit}
			switch typeFilter {
			case "", "all":
				// No type filter.
			case string(model.TypeIncome), string(model.TypeExpense):
				t := model.TransactionType(typeFilter)
				filter.Type = &t
			default:
				return fmt.Errorf("invalid type filter %q (want income, expense, or all)", typeFilter)
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			transactions, err := store.ListTransactions(ctx, filter)
			if err != nil {
				return err
			}

			if len(transactions) == 0 {
				fmt.Println(cli.InfoStyle.Render("No transactions found. Use 'fintrack add' to record one."))
				return nil
			}

			symbol := currencySymbol()
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				cli.TableHeaderStyle.Render("ID"),
				cli.TableHeaderStyle.Render("DATE"),
				cli.TableHeaderStyle.Render("TYPE"),
				cli.TableHeaderStyle.Render("CATEGORY"),
				cli.TableHeaderStyle.Render("DESCRIPTION"),
				cli.TableHeaderStyle.Render("AMOUNT"))

			for _, txn := range transactions {
				amount := cli.FormatAmount(symbol, txn.Amount)
				if txn.Type == model.TypeIncome {
					amount = cli.IncomeStyle.Render("+" + amount)
				} else {
					amount = cli.ExpenseStyle.Render("-" + amount)
				}

				category := txn.Category
				if category == "" {
					category = cli.SubtleStyle.Render("(none)")
				}

				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					txn.ID,
					txn.Date.Format("2006-01-02"),
					txn.Type,
					category,
					txn.Description,
					amount)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFilter, "type", "t", "all", "filter by type (income, expense, all)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "substring search over description and category")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of rows (0 = unlimited)")

	return cmd
}
