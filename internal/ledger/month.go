// Package ledger implements the pure computations behind the tracker:
// month keys, aggregate totals, the rolling month window, and goal
// progress. Nothing in this package performs I/O or mutates its inputs.
package ledger

import (
	"fmt"
	"time"
)

// MonthKey maps a date to its canonical "YYYY-MM" grouping key. Two dates
// produce the same key iff they fall in the same calendar year and month;
// day and time of day are irrelevant. The year and month are read from the
// date's own location, so the time.Time's zone is authoritative for which
// month a boundary transaction lands in.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// MonthOf normalizes a date to the first instant of its calendar month.
func MonthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AddMonths returns the month n calendar months after (or before, for
// negative n) the given month, normalized to the first of the month.
// Year boundaries roll over: January minus one month is December of the
// previous year.
func AddMonths(month time.Time, n int) time.Time {
	y := month.Year()
	m := int(month.Month()) - 1 + n
	y += m / 12
	m %= 12
	if m < 0 {
		m += 12
		y--
	}
	return time.Date(y, time.Month(m+1), 1, 0, 0, 0, 0, month.Location())
}

// MonthLabel renders a human-readable month name, e.g. "January 2024".
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s %d", t.Month(), t.Year())
}

// ParseMonth parses a canonical "YYYY-MM" key into the first of that month
// in the local time zone.
func ParseMonth(key string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01", key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (want YYYY-MM): %w", key, err)
	}
	return t, nil
}
