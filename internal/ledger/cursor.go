package ledger

import "time"

// Cursor tracks the month currently selected for detail views. It is the
// only stateful piece of the core: navigation moves it exactly one
// calendar month at a time, unbounded in both directions, and it is never
// persisted across sessions.
type Cursor struct {
	month time.Time
}

// NewCursor creates a cursor positioned on the given date's month.
func NewCursor(t time.Time) *Cursor {
	return &Cursor{month: MonthOf(t)}
}

// Month returns the currently selected month, normalized to its first day.
func (c *Cursor) Month() time.Time {
	return c.month
}

// Advance moves the cursor forward one calendar month and returns the new
// selection.
func (c *Cursor) Advance() time.Time {
	c.month = AddMonths(c.month, 1)
	return c.month
}

// Retreat moves the cursor back one calendar month and returns the new
// selection.
func (c *Cursor) Retreat() time.Time {
	c.month = AddMonths(c.month, -1)
	return c.month
}
