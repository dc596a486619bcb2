package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/calebhart/fintrack/internal/cli"
	"github.com/calebhart/fintrack/internal/model"
	"github.com/calebhart/fintrack/internal/ofx"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func importOFXCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import-ofx [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import transactions from OFX or QFX (Quicken) files exported from
your bank. Credits become income, debits become expenses.

Examples:
  # Import a single file
  fintrack import-ofx ~/Downloads/chase_jan_2024.qfx

  # Import everything in a directory
  fintrack import-ofx ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// Expand globs and collect all files
			var allFiles []string
			for _, pattern := range args {
				matches, err := filepath.Glob(pattern)
				if err != nil {
					return fmt.Errorf("invalid pattern %s: %w", pattern, err)
				}
				if len(matches) == 0 {
					// If no glob matches, check if it's a direct file
					if _, err := os.Stat(pattern); err == nil {
						allFiles = append(allFiles, pattern)
					} else {
						slog.Warn("No files found matching pattern", "pattern", pattern)
					}
				} else {
					allFiles = append(allFiles, matches...)
				}
			}

			if len(allFiles) == 0 {
				return fmt.Errorf("no files found to import")
			}

			parser := ofx.NewParser()
			var pending []model.Transaction
			fileResults := make(map[string]int)

			for _, filePath := range allFiles {
				f, err := os.Open(filePath)
				if err != nil {
					slog.Error("Failed to open file", "file", filePath, "error", err)
					continue
				}

				transactions, err := parser.ParseFile(ctx, f)
				_ = f.Close()
				if err != nil {
					slog.Error("Failed to parse OFX file", "file", filePath, "error", err)
					continue
				}

				if len(transactions) == 0 {
					slog.Warn("No transactions found in file", "file", filepath.Base(filePath))
					continue
				}

				fileResults[filepath.Base(filePath)] = len(transactions)
				pending = append(pending, transactions...)
			}

			if len(pending) == 0 {
				slog.Warn("No transactions found in any file")
				return nil
			}

			fmt.Println("\n📁 File import summary:")
			for file, count := range fileResults {
				fmt.Printf("  - %s: %d transactions\n", file, count)
			}

			if dryRun {
				fmt.Println(cli.FormatInfo(fmt.Sprintf("Dry run: %d transactions would be imported", len(pending))))
				return nil
			}

			store, err := initStore(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			bar := progressbar.NewOptions(len(pending),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Importing transactions..."))

			imported := 0
			skipped := 0
			for _, txn := range pending {
				if _, err := store.AddTransaction(ctx, txn); err != nil {
					// A statement row that fails validation (e.g. an empty
					// description) is skipped, not fatal.
					slog.Warn("Skipping transaction", "description", txn.Description, "error", err)
					skipped++
				} else {
					imported++
				}
				_ = bar.Add(1)
			}
			_ = bar.Finish()
			fmt.Println()

			msg := fmt.Sprintf("Imported %d transactions", imported)
			if skipped > 0 {
				msg += fmt.Sprintf(" (%d skipped)", skipped)
			}
			fmt.Println(cli.FormatSuccess(msg))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "preview import without saving")

	return cmd
}
