package storage

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoal_DefaultsToZero(t *testing.T) {
	store := createTestStore(t)

	goal, err := store.Goal(context.Background())
	require.NoError(t, err)
	assert.Zero(t, goal)
}

func TestGoal_RoundTrip(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SetGoal(ctx, 1500.50))

	goal, err := store.Goal(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1500.50, goal, 1e-9)

	// Updating overwrites.
	require.NoError(t, store.SetGoal(ctx, 2000))
	goal, err = store.Goal(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 2000, goal, 1e-9)

	// Zero clears the goal.
	require.NoError(t, store.SetGoal(ctx, 0))
	goal, err = store.Goal(ctx)
	require.NoError(t, err)
	assert.Zero(t, goal)
}

func TestSetGoal_RejectsInvalidValues(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	for _, amount := range []float64{-1, math.NaN(), math.Inf(1)} {
		err := store.SetGoal(ctx, amount)
		require.ErrorIs(t, err, ErrInvalidGoal)
	}
}

func TestGoal_MalformedValueDefaultsToZero(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	// Corrupt the stored value directly; loading must fall back to zero
	// rather than fail.
	require.NoError(t, store.setSetting(ctx, settingGoal, "not-a-number"))

	goal, err := store.Goal(ctx)
	require.NoError(t, err)
	assert.Zero(t, goal)
}

func TestTheme_RoundTrip(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	theme, err := store.Theme(ctx)
	require.NoError(t, err)
	assert.Empty(t, theme)

	require.NoError(t, store.SetTheme(ctx, "light"))

	theme, err = store.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, "light", theme)
}

func TestSetTheme_RejectsEmptyName(t *testing.T) {
	store := createTestStore(t)

	err := store.SetTheme(context.Background(), "  ")
	require.Error(t, err)
}
