package main

import (
	"context"
	"fmt"
	"time"

	"github.com/calebhart/fintrack/internal/config"
	"github.com/calebhart/fintrack/internal/ledger"
	"github.com/calebhart/fintrack/internal/service"
	"github.com/calebhart/fintrack/internal/storage"
	"github.com/spf13/viper"
)

// initStore opens the database configured at database.path and brings its
// schema up to date.
func initStore(ctx context.Context) (service.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// currencySymbol returns the configured currency symbol.
func currencySymbol() string {
	return viper.GetString("ui.currency")
}

// resolveMonth parses an optional YYYY-MM flag value, defaulting to the
// current calendar month.
func resolveMonth(flag string) (time.Time, error) {
	if flag == "" {
		return ledger.MonthOf(time.Now()), nil
	}
	return ledger.ParseMonth(flag)
}
