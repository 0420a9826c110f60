package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
)

func TestAssignReplacesSlot(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	alice := f.register(t, "alice")
	first := createMeal(t, f, alice.ID, "Oatmeal")
	second := createMeal(t, f, alice.ID, "Granola")

	entry, err := f.plans.Assign(ctx, alice.ID, "2024-05-06", models.Breakfast, first.ID)
	require.NoError(t, err)

	again, err := f.plans.Assign(ctx, alice.ID, "2024-05-06", models.Breakfast, second.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, again.ID, "the slot keeps its entry")

	plan, err := f.plans.Range(ctx, alice.ID, "2024-05-06", "2024-05-06", false)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, second.ID, plan[0].Meal.ID)
	assert.True(t, plan[0].IsOwn)
}

func TestAssignValidation(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	alice := f.register(t, "alice")
	meal := createMeal(t, f, alice.ID, "Oatmeal")

	tests := []struct {
		name     string
		date     string
		mealType models.MealType
		mealID   string
	}{
		{"missing date", "", models.Lunch, meal.ID},
		{"bad date", "06/05/2024", models.Lunch, meal.ID},
		{"bad meal type", "2024-05-06", "brunch", meal.ID},
		{"missing meal", "2024-05-06", models.Lunch, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.plans.Assign(ctx, alice.ID, tt.date, tt.mealType, tt.mealID)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}

	_, err := f.plans.Assign(ctx, alice.ID, "2024-05-06", models.Lunch, "missing")
	assert.ErrorIs(t, err, ErrMealNotFound)
}

func TestRangeOrdersAndFilters(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	meal := createMeal(t, f, alice.ID, "Salad")
	bobMeal := createMeal(t, f, bob.ID, "Curry")

	mustAssign := func(userID, date string, mt models.MealType, mealID string) {
		_, err := f.plans.Assign(ctx, userID, date, mt, mealID)
		require.NoError(t, err)
	}
	mustAssign(alice.ID, "2024-05-07", models.Dinner, meal.ID)
	mustAssign(alice.ID, "2024-05-07", models.Breakfast, meal.ID)
	mustAssign(alice.ID, "2024-05-06", models.Lunch, meal.ID)
	mustAssign(alice.ID, "2024-05-20", models.Lunch, meal.ID)
	mustAssign(bob.ID, "2024-05-06", models.Lunch, bobMeal.ID)

	own, err := f.plans.Range(ctx, alice.ID, "2024-05-06", "2024-05-12", false)
	require.NoError(t, err)
	require.Len(t, own, 3)
	assert.Equal(t, "2024-05-06", own[0].Date)
	assert.Equal(t, models.Breakfast, own[1].MealType)
	assert.Equal(t, models.Dinner, own[2].MealType)

	all, err := f.plans.Range(ctx, alice.ID, "2024-05-06", "2024-05-12", true)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.False(t, all[0].IsOwn)
	assert.Equal(t, "bob", all[0].User.Username)
	assert.Equal(t, "Curry", all[0].Meal.Title)
	assert.True(t, all[1].IsOwn, "own entry sorts after others in the same slot")
	assert.Equal(t, all[0].Date, all[1].Date)
}

func TestRangeSkipsDeletedMeals(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	alice := f.register(t, "alice")
	kept := createMeal(t, f, alice.ID, "Soup")
	gone := createMeal(t, f, alice.ID, "Stew")

	_, err := f.plans.Assign(ctx, alice.ID, "2024-05-06", models.Lunch, kept.ID)
	require.NoError(t, err)
	_, err = f.plans.Assign(ctx, alice.ID, "2024-05-06", models.Dinner, gone.ID)
	require.NoError(t, err)
	require.NoError(t, f.meals.Delete(ctx, gone.ID, alice.ID))

	plan, err := f.plans.Range(ctx, alice.ID, "2024-05-01", "2024-05-31", false)
	require.NoError(t, err)
	require.Len(t, plan, 1)
	assert.Equal(t, kept.ID, plan[0].Meal.ID)

	count, err := f.store.MealPlans().Count(ctx, store.Query{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count, "entries are not cascaded on meal delete")
}

func TestRangeValidation(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.plans.Range(ctx, "u1", "yesterday", "2024-05-06", false)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = f.plans.Range(ctx, "u1", "2024-05-07", "2024-05-06", false)
	assert.ErrorAs(t, err, &verr)
}

func TestRemoveSlot(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	alice := f.register(t, "alice")
	bob := f.register(t, "bob")
	meal := createMeal(t, f, alice.ID, "Soup")

	_, err := f.plans.Assign(ctx, alice.ID, "2024-05-06", models.Lunch, meal.ID)
	require.NoError(t, err)

	deleted, err := f.plans.Remove(ctx, bob.ID, "2024-05-06", models.Lunch)
	require.NoError(t, err)
	assert.EqualValues(t, 0, deleted, "another user's slot is untouched")

	deleted, err = f.plans.Remove(ctx, alice.ID, "2024-05-06", models.Lunch)
	require.NoError(t, err)
	assert.EqualValues(t, 1, deleted)

	deleted, err = f.plans.Remove(ctx, alice.ID, "2024-05-06", models.Lunch)
	require.NoError(t, err)
	assert.EqualValues(t, 0, deleted)

	_, err = f.plans.Remove(ctx, alice.ID, "2024-05-06", "supper")
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestRemoveRejectsMalformedDate(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	alice := f.register(t, "alice")
	meal := createMeal(t, f, alice.ID, "Soup")

	_, err := f.plans.Assign(ctx, alice.ID, "2024-05-06", models.Lunch, meal.ID)
	require.NoError(t, err)

	for _, date := range []string{"06/05/2024", "2024-13-01", "2024-5-6", "tomorrow"} {
		_, err := f.plans.Remove(ctx, alice.ID, date, models.Lunch)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr, "date=%q", date)
		assert.Equal(t, "date", verr.Field)
	}

	n, err := f.store.MealPlans().Count(ctx, store.Where(store.ByUserID(alice.ID)))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n, "the planned slot survives")
}
