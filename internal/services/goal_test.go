package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalService_AddAppendsInCreationOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testNow)
	goals := NewGoalService(f.goals())

	first, err := goals.AddGoal(ctx, "LOVE1", "Đi Đà Lạt", "")
	require.NoError(t, err)
	assert.Equal(t, 0, first.Progress)
	assert.False(t, first.IsCompleted)

	second, err := goals.AddGoal(ctx, "LOVE1", "Học nấu ăn", "2024-12-24")
	require.NoError(t, err)
	require.NotNil(t, second.TargetDate)

	list, err := goals.Goals(ctx, "LOVE1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestGoalService_AddValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testNow)
	goals := NewGoalService(f.goals())

	_, err := goals.AddGoal(ctx, "LOVE1", "  ", "")
	var v ErrValidation
	assert.ErrorAs(t, err, &v)

	_, err = goals.AddGoal(ctx, "LOVE1", "ok", "24/12/2024")
	assert.ErrorAs(t, err, &v)
}

func TestGoalService_CompletionDerivedFromProgress(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testNow)
	goals := NewGoalService(f.goals())

	goal, err := goals.AddGoal(ctx, "LOVE1", "invariant", "")
	require.NoError(t, err)

	// completed exactly when progress hits 100, for every value on the way
	for v := 0; v <= 100; v += 10 {
		updated, err := goals.UpdateProgress(ctx, "LOVE1", goal.ID, v)
		require.NoError(t, err)
		assert.Equal(t, v, updated.Progress)
		assert.Equal(t, v == 100, updated.IsCompleted)
	}

	// and flips back off when progress drops again
	updated, err := goals.UpdateProgress(ctx, "LOVE1", goal.ID, 99)
	require.NoError(t, err)
	assert.False(t, updated.IsCompleted)
}

func TestGoalService_ProgressClamped(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testNow)
	goals := NewGoalService(f.goals())

	goal, err := goals.AddGoal(ctx, "LOVE1", "clamp", "")
	require.NoError(t, err)

	updated, err := goals.UpdateProgress(ctx, "LOVE1", goal.ID, 150)
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Progress)
	assert.True(t, updated.IsCompleted)

	updated, err = goals.UpdateProgress(ctx, "LOVE1", goal.ID, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Progress)
	assert.False(t, updated.IsCompleted)
}

func TestGoalService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFixture(testNow)
	goals := NewGoalService(f.goals())

	goal, err := goals.AddGoal(ctx, "LOVE1", "bye", "")
	require.NoError(t, err)
	require.NoError(t, goals.DeleteGoal(ctx, "LOVE1", goal.ID))

	list, err := goals.Goals(ctx, "LOVE1")
	require.NoError(t, err)
	assert.Empty(t, list)

	assert.ErrorIs(t, goals.DeleteGoal(ctx, "LOVE1", goal.ID), ErrRecordNotFound)
	_, err = goals.UpdateProgress(ctx, "LOVE1", goal.ID, 10)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}
