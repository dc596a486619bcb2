package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
)

// Setting keys. The goal and the theme are stored as independent opaque
// values; a missing or unparseable value loads as the zero default and is
// never surfaced as an error.
const (
	settingGoal  = "monthly_goal"
	settingTheme = "theme"
)

// Goal returns the configured monthly expense goal, or zero when no goal
// is set or the stored value cannot be parsed.
func (s *SQLiteStore) Goal(ctx context.Context) (float64, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	raw, err := s.getSetting(ctx, settingGoal)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return 0, nil
	}

	goal, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Warn("Ignoring malformed goal setting", "value", raw, "error", err)
		return 0, nil
	}
	return goal, nil
}

// SetGoal stores the monthly expense goal. Zero clears the goal.
func (s *SQLiteStore) SetGoal(ctx context.Context, amount float64) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateGoal(amount); err != nil {
		return err
	}
	return s.setSetting(ctx, settingGoal, strconv.FormatFloat(amount, 'f', -1, 64))
}

// Theme returns the persisted theme preference, or "" when unset.
func (s *SQLiteStore) Theme(ctx context.Context) (string, error) {
	if err := validateContext(ctx); err != nil {
		return "", err
	}
	return s.getSetting(ctx, settingTheme)
}

// SetTheme persists the theme preference.
func (s *SQLiteStore) SetTheme(ctx context.Context, name string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(name, "name"); err != nil {
		return err
	}
	return s.setSetting(ctx, settingTheme, name)
}

func (s *SQLiteStore) getSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) setSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}
