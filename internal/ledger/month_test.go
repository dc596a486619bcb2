package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{
			name: "zero-pads single digit months",
			date: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			want: "2024-01",
		},
		{
			name: "double digit month",
			date: time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC),
			want: "2023-12",
		},
		{
			name: "day and time are irrelevant",
			date: time.Date(2024, time.June, 1, 0, 0, 1, 0, time.UTC),
			want: "2024-06",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MonthKey(tt.date))
		})
	}
}

func TestMonthKey_StableUnderTimeOfDay(t *testing.T) {
	t.Parallel()

	morning := time.Date(2024, time.March, 10, 8, 15, 0, 0, time.UTC)
	night := time.Date(2024, time.March, 10, 23, 45, 59, 0, time.UTC)
	assert.Equal(t, MonthKey(morning), MonthKey(night))
}

func TestMonthOf(t *testing.T) {
	t.Parallel()

	got := MonthOf(time.Date(2024, time.February, 29, 13, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestAddMonths(t *testing.T) {
	t.Parallel()

	jan := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		n     int
		want  time.Time
	}{
		{
			name:  "forward within year",
			start: jan,
			n:     3,
			want:  time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "january minus one rolls into previous december",
			start: jan,
			n:     -1,
			want:  time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "back more than a year",
			start: jan,
			n:     -13,
			want:  time.Date(2022, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "december plus one rolls into next january",
			start: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
			n:     1,
			want:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "zero is identity",
			start: jan,
			n:     0,
			want:  jan,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.n))
		})
	}
}

func TestMonthLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "January 2024", MonthLabel(time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "December 1999", MonthLabel(time.Date(1999, time.December, 1, 0, 0, 0, 0, time.UTC)))
}

func TestParseMonth(t *testing.T) {
	t.Parallel()

	got, err := ParseMonth("2024-06")
	require.NoError(t, err)
	assert.Equal(t, 2024, got.Year())
	assert.Equal(t, time.June, got.Month())
	assert.Equal(t, 1, got.Day())

	_, err = ParseMonth("June 2024")
	require.Error(t, err)
}
