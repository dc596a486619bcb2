package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCursor_NormalizesToFirstOfMonth(t *testing.T) {
	t.Parallel()

	c := NewCursor(time.Date(2024, time.June, 17, 15, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), c.Month())
}

func TestCursor_AdvanceAndRetreat(t *testing.T) {
	t.Parallel()

	c := NewCursor(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))

	got := c.Retreat()
	assert.Equal(t, time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC), got)

	got = c.Advance()
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), got)

	got = c.Advance()
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestCursor_UnboundedNavigation(t *testing.T) {
	t.Parallel()

	c := NewCursor(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))
	for range 30 {
		c.Retreat()
	}
	assert.Equal(t, time.Date(2021, time.July, 1, 0, 0, 0, 0, time.UTC), c.Month())

	for range 60 {
		c.Advance()
	}
	assert.Equal(t, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), c.Month())
}
