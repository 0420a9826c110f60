// Package storetest is a conformance suite every store backend must pass.
// Backends call Run from their own tests with a factory returning an empty
// store.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
)

// Factory returns an empty store. It registers its own cleanup on t.
type Factory func(t *testing.T) store.Store

var base = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

// Run executes the suite against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	tests := []struct {
		name string
		fn   func(t *testing.T, s store.Store)
	}{
		{"InsertThenFindOneByID", testInsertThenFindOne},
		{"FindOneMissing", testFindOneMissing},
		{"UsernameUnique", testUsernameUnique},
		{"UsernameUniqueConcurrent", testUsernameUniqueConcurrent},
		{"OwnerJoin", testOwnerJoin},
		{"SearchSetEquality", testSearchSetEquality},
		{"PaginationLaw", testPaginationLaw},
		{"PaginationTiesKeepInsertionOrder", testPaginationTies},
		{"UpdateOwnership", testUpdateOwnership},
		{"PartialUpdate", testPartialUpdate},
		{"DeleteIdempotent", testDeleteIdempotent},
		{"UnsupportedFilters", testUnsupportedFilters},
		{"CarbonaraScenario", testCarbonaraScenario},
		{"MealPlanUpsert", testMealPlanUpsert},
		{"MealPlanDateRange", testMealPlanDateRange},
		{"MealPlanDeleteSlot", testMealPlanDeleteSlot},
		{"Count", testCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fn(t, newStore(t))
		})
	}
}

func mustUser(t *testing.T, s store.Store, id, username string) models.User {
	t.Helper()
	u := models.User{ID: id, Username: username, Password: "hash", CreatedAt: base}
	_, err := s.Users().InsertOne(context.Background(), &u)
	require.NoError(t, err)
	return u
}

func mustMeal(t *testing.T, s store.Store, m models.Meal) models.Meal {
	t.Helper()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = base
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = m.CreatedAt
	}
	_, err := s.Meals().InsertOne(context.Background(), &m)
	require.NoError(t, err)
	return m
}

func ids(meals []models.Meal) []string {
	out := make([]string, 0, len(meals))
	for _, m := range meals {
		out = append(out, m.ID)
	}
	return out
}

func testInsertThenFindOne(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustUser(t, s, "u1", "alice")

	plain := mustMeal(t, s, models.Meal{
		ID: "m1", UserID: "u1", Title: "Toast", Ingredients: "bread", Instructions: "toast it",
	})
	got, err := s.Meals().FindOne(ctx, store.Where(store.ByID(plain.ID)))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "m1", got.ID)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "Toast", got.Title)
	assert.Equal(t, "bread", got.Ingredients)
	assert.Equal(t, "toast it", got.Instructions)
	assert.Nil(t, got.ImageURL)
	assert.NotNil(t, got.GalleryImages)
	assert.Empty(t, got.GalleryImages)
	assert.WithinDuration(t, plain.CreatedAt, got.CreatedAt, time.Millisecond)

	url := "https://cdn.example.com/full.jpg"
	full := mustMeal(t, s, models.Meal{
		ID: "m2", UserID: "u1", Title: "Pie", Ingredients: "apples", Instructions: "bake",
		ImageURL: &url, GalleryImages: []string{"g1.jpg", "g2.jpg"},
	})
	got, err = s.Meals().FindOne(ctx, store.Where(store.ByID(full.ID)))
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, url, *got.ImageURL)
	assert.Equal(t, []string{"g1.jpg", "g2.jpg"}, got.GalleryImages)

	u, err := s.Users().FindOne(ctx, store.Where(store.ByID("u1")))
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, "hash", u.Password)
}

func testFindOneMissing(t *testing.T, s store.Store) {
	ctx := context.Background()

	u, err := s.Users().FindOne(ctx, store.Where(store.ByUsername("nobody")))
	assert.NoError(t, err)
	assert.Nil(t, u)

	m, err := s.Meals().FindOne(ctx, store.Where(store.ByID("missing")))
	assert.NoError(t, err)
	assert.Nil(t, m)
}

func testUsernameUnique(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustUser(t, s, "u1", "alice")

	_, err := s.Users().InsertOne(ctx, &models.User{ID: "u2", Username: "alice", Password: "x", CreatedAt: base})
	assert.ErrorIs(t, err, store.ErrDuplicateUsername)
	assert.ErrorIs(t, err, store.ErrDuplicateKey)

	// Usernames are case-sensitive.
	_, err = s.Users().InsertOne(ctx, &models.User{ID: "u3", Username: "Alice", Password: "x", CreatedAt: base})
	assert.NoError(t, err)

	n, err := s.Users().Count(ctx, store.Where(store.ByUsername("alice")))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}

func testUsernameUniqueConcurrent(t *testing.T, s store.Store) {
	ctx := context.Background()
	const workers = 8

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		dupes     int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := models.User{ID: fmt.Sprintf("racer-%d", i), Username: "racer", Password: "x", CreatedAt: base}
			_, err := s.Users().InsertOne(ctx, &u)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, store.ErrDuplicateUsername):
				dupes++
			default:
				t.Errorf("unexpected insert error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, dupes)
}

func testOwnerJoin(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustUser(t, s, "u1", "alice")
	mustMeal(t, s, models.Meal{ID: "m1", UserID: "u1", Title: "Toast", Ingredients: "bread", Instructions: "toast"})

	got, err := s.Meals().Find(ctx, store.Query{}, store.All(store.NewestFirst))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].User)
	assert.Equal(t, "u1", got[0].User.ID)
	assert.Equal(t, "alice", got[0].User.Username)
}

func testSearchSetEquality(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustUser(t, s, "u1", "alice")
	mustUser(t, s, "u2", "bob")

	corpus := []models.Meal{
		{ID: "m1", UserID: "u1", Title: "Creamy PASTA", Ingredients: "cream", Instructions: "stir"},
		{ID: "m2", UserID: "u2", Title: "Soup", Ingredients: "pasta water, salt", Instructions: "simmer"},
		{ID: "m3", UserID: "u1", Title: "Omelette", Ingredients: "3 Eggs", Instructions: "whisk the eggs"},
		{ID: "m4", UserID: "u2", Title: "Rye bread", Ingredients: "100% rye flour", Instructions: "knead"},
		{ID: "m5", UserID: "u2", Title: "Big loaf", Ingredients: "1000 grams flour", Instructions: "Cook with pasta_water"},
		{ID: "m6", UserID: "u1", Title: "Salad", Ingredients: "greens", Instructions: "toss"},
		{ID: "m7", UserID: "u1", Title: "Chocolate ÉCLAIR", Ingredients: "CRÈME PÂTISSIÈRE", Instructions: "pipe"},
		{ID: "m8", UserID: "u2", Title: "Éclair au café", Ingredients: "choux", Instructions: "glaze with crème"},
	}
	for i, m := range corpus {
		m.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		mustMeal(t, s, m)
	}

	terms := []string{
		"pasta", "PASTA", "egg", "100%", "pasta_water", "a_w", "", "nothing-matches", "flour",
		"ÉCLAIR", "éclair", "Crème", "pâtissière", "CAFÉ",
	}
	for _, term := range terms {
		t.Run(fmt.Sprintf("term=%q", term), func(t *testing.T) {
			var want []string
			for _, m := range corpus {
				if store.TextSearch(term).Matches(m.Title, m.Ingredients, m.Instructions) {
					want = append(want, m.ID)
				}
			}

			got, err := s.Meals().Find(ctx, store.Where(store.TextSearch(term)), store.All(store.NewestFirst))
			require.NoError(t, err)
			assert.ElementsMatch(t, want, ids(got))
		})
	}

	got, err := s.Meals().Find(ctx, store.Where(store.TextSearch("pasta"), store.ByUserID("u2")), store.All(store.NewestFirst))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"m2", "m5"}, ids(got))

	for _, term := range []string{"ÉCLAIR", "éclair"} {
		got, err = s.Meals().Find(ctx, store.Where(store.TextSearch(term)), store.All(store.Unordered))
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"m7", "m8"}, ids(got), "term=%q", term)
	}
	got, err = s.Meals().Find(ctx, store.Where(store.TextSearch("crème")), store.All(store.Unordered))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"m7", "m8"}, ids(got))
}

func testPaginationLaw(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustUser(t, s, "u1", "alice")
	for i := 0; i < 5; i++ {
		mustMeal(t, s, models.Meal{
			ID:           fmt.Sprintf("m%d", i),
			UserID:       "u1",
			Title:        fmt.Sprintf("Meal %d", i),
			Ingredients:  "x",
			Instructions: "y",
			CreatedAt:    base.Add(time.Duration(i) * time.Hour),
		})
	}

	full, err := s.Meals().Find(ctx, store.Query{}, store.All(store.NewestFirst))
	require.NoError(t, err)
	require.Equal(t, []string{"m4", "m3", "m2", "m1", "m0"}, ids(full))

	oldest, err := s.Meals().Find(ctx, store.Query{}, store.All(store.OldestFirst))
	require.NoError(t, err)
	assert.Equal(t, []string{"m0", "m1", "m2", "m3", "m4"}, ids(oldest))

	for skip := 0; skip <= 6; skip++ {
		for limit := 0; limit <= 3; limit++ {
			got, err := s.Meals().Find(ctx, store.Query{}, store.Page{Order: store.NewestFirst, Offset: skip, Limit: limit})
			require.NoError(t, err)

			want := []string{}
			if skip < len(full) {
				end := skip + limit
				if end > len(full) {
					end = len(full)
				}
				want = ids(full[skip:end])
			}
			assert.Equal(t, want, ids(got), "skip=%d limit=%d", skip, limit)
		}
	}
}

// Rows sharing a createdAt come back in the order they were inserted, in
// either direction, regardless of how their ids sort.
func testPaginationTies(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustUser(t, s, "u-z", "zoe")
	mustUser(t, s, "u-a", "adam")
	mustMeal(t, s, models.Meal{ID: "zzz", UserID: "u-z", Title: "First", Ingredients: "x", Instructions: "y"})
	mustMeal(t, s, models.Meal{ID: "aaa", UserID: "u-z", Title: "Second", Ingredients: "x", Instructions: "y"})
	mustMeal(t, s, models.Meal{ID: "mmm", UserID: "u-z", Title: "Older", Ingredients: "x", Instructions: "y", CreatedAt: base.Add(-time.Hour)})

	first, err := s.Meals().Find(ctx, store.Query{}, store.Page{Order: store.NewestFirst, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"zzz"}, ids(first))

	newest, err := s.Meals().Find(ctx, store.Query{}, store.All(store.NewestFirst))
	require.NoError(t, err)
	assert.Equal(t, []string{"zzz", "aaa", "mmm"}, ids(newest))

	oldest, err := s.Meals().Find(ctx, store.Query{}, store.All(store.OldestFirst))
	require.NoError(t, err)
	assert.Equal(t, []string{"mmm", "zzz", "aaa"}, ids(oldest))

	second, err := s.Meals().Find(ctx, store.Query{}, store.Page{Order: store.NewestFirst, Offset: 1, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"aaa"}, ids(second))

	users, err := s.Users().Find(ctx, store.Query{}, store.All(store.OldestFirst))
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u-z", users[0].ID)
	assert.Equal(t, "u-a", users[1].ID)

	for _, e := range []*models.MealPlanEntry{
		plan("p-z", "u-z", "2024-01-02", models.Dinner, "zzz", base),
		plan("p-a", "u-z", "2024-01-01", models.Lunch, "aaa", base),
	} {
		_, err := s.MealPlans().Upsert(ctx, e)
		require.NoError(t, err)
	}
	// Replacing a slot keeps the entry's original position.
	_, err = s.MealPlans().Upsert(ctx, plan("p-z2", "u-z", "2024-01-02", models.Dinner, "aaa", base.Add(time.Minute)))
	require.NoError(t, err)

	entries, err := s.MealPlans().Find(ctx, store.Query{}, store.All(store.NewestFirst))
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "p-z", entries[0].ID)
	assert.Equal(t, "aaa", entries[0].MealID)
	assert.Equal(t, "p-a", entries[1].ID)
}

func testUpdateOwnership(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustUser(t, s, "a", "alice")
	mustUser(t, s, "b", "bob")
	mustMeal(t, s, models.Meal{ID: "m1", UserID: "b", Title: "Bob's stew", Ingredients: "beef", Instructions: "stew"})

	res, err := s.Meals().UpdateOne(ctx, "m1", "a", models.MealPatch{Title: "Stolen", UpdatedAt: base.Add(time.Hour)})
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.Matched)

	got, err := s.Meals().FindOne(ctx, store.Where(store.ByID("m1")))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Bob's stew", got.Title)
	assert.WithinDuration(t, base, got.UpdatedAt, time.Millisecond)

	res, err = s.Meals().UpdateOne(ctx, "missing", "b", models.MealPatch{Title: "x", UpdatedAt: base})
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.Matched)
}

func testPartialUpdate(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustUser(t, s, "u1", "alice")
	mustMeal(t, s, models.Meal{ID: "m1", UserID: "u1", Title: "Soup", Ingredients: "water", Instructions: "boil"})

	later := base.Add(time.Hour)
	res, err := s.Meals().UpdateOne(ctx, "m1", "u1", models.MealPatch{
		Title:         "Better soup",
		ImageURL:      "https://cdn.example.com/soup.jpg",
		GalleryImages: []string{"a.jpg"},
		UpdatedAt:     later,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Matched)

	got, err := s.Meals().FindOne(ctx, store.Where(store.ByID("m1"), store.ByUserID("u1")))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Better soup", got.Title)
	assert.Equal(t, "water", got.Ingredients)
	assert.Equal(t, "boil", got.Instructions)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, "https://cdn.example.com/soup.jpg", *got.ImageURL)
	assert.Equal(t, []string{"a.jpg"}, got.GalleryImages)
	assert.WithinDuration(t, later, got.UpdatedAt, time.Millisecond)
	assert.WithinDuration(t, base, got.CreatedAt, time.Millisecond)

	// Empty values never clear a field.
	_, err = s.Meals().UpdateOne(ctx, "m1", "u1", models.MealPatch{Title: "", UpdatedAt: later.Add(time.Hour)})
	require.NoError(t, err)
	got, err = s.Meals().FindOne(ctx, store.Where(store.ByID("m1")))
	require.NoError(t, err)
	assert.Equal(t, "Better soup", got.Title)
	assert.WithinDuration(t, later.Add(time.Hour), got.UpdatedAt, time.Millisecond)
}

func testDeleteIdempotent(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustUser(t, s, "u1", "alice")
	mustUser(t, s, "u2", "bob")
	mustMeal(t, s, models.Meal{ID: "m1", UserID: "u1", Title: "Toast", Ingredients: "bread", Instructions: "toast"})

	res, err := s.Meals().DeleteOne(ctx, "m1", "u2")
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.Deleted)

	res, err = s.Meals().DeleteOne(ctx, "m1", "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Deleted)

	res, err = s.Meals().DeleteOne(ctx, "m1", "u1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.Deleted)

	got, err := s.Meals().FindOne(ctx, store.Where(store.ByID("m1")))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func testUnsupportedFilters(t *testing.T, s store.Store) {
	ctx := context.Background()

	_, err := s.Users().Find(ctx, store.Where(store.TextSearch("x")), store.All(store.Unordered))
	assert.ErrorIs(t, err, store.ErrUnsupportedFilter)

	_, err = s.Meals().Find(ctx, store.Where(store.DateRange{Start: "2024-01-01", End: "2024-01-02"}), store.All(store.Unordered))
	assert.ErrorIs(t, err, store.ErrUnsupportedFilter)

	_, err = s.MealPlans().Find(ctx, store.Where(store.ByUsername("alice")), store.All(store.Unordered))
	assert.ErrorIs(t, err, store.ErrUnsupportedFilter)
}

func testCarbonaraScenario(t *testing.T, s store.Store) {
	ctx := context.Background()
	demo := mustUser(t, s, "demo-id", "demo")
	mustMeal(t, s, models.Meal{
		ID: "carbonara", UserID: demo.ID, Title: "Carbonara",
		Ingredients: "eggs\npasta", Instructions: "boil\nmix",
	})

	got, err := s.Meals().Find(ctx, store.Where(store.ByUserID(demo.ID)), store.All(store.NewestFirst))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Carbonara", got[0].Title)
}

func plan(id, userID, date string, mealType models.MealType, mealID string, at time.Time) *models.MealPlanEntry {
	return &models.MealPlanEntry{
		ID: id, UserID: userID, Date: date, MealType: mealType, MealID: mealID,
		CreatedAt: at, UpdatedAt: at,
	}
}

func testMealPlanUpsert(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustUser(t, s, "u1", "alice")

	first, err := s.MealPlans().Upsert(ctx, plan("p1", "u1", "2024-01-01", models.Dinner, "mealA", base))
	require.NoError(t, err)
	assert.Equal(t, "p1", first.ID)
	assert.False(t, first.Replaced)

	second, err := s.MealPlans().Upsert(ctx, plan("p2", "u1", "2024-01-01", models.Dinner, "mealB", base.Add(time.Minute)))
	require.NoError(t, err)
	assert.Equal(t, "p1", second.ID)
	assert.True(t, second.Replaced)

	got, err := s.MealPlans().Find(ctx,
		store.Where(store.ByUserID("u1"), store.DateRange{Start: "2024-01-01", End: "2024-01-01"}),
		store.All(store.Unordered))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "mealB", got[0].MealID)
	assert.Equal(t, models.Dinner, got[0].MealType)
	require.NotNil(t, got[0].User)
	assert.Equal(t, "alice", got[0].User.Username)

	// A different meal type is a different slot.
	_, err = s.MealPlans().Upsert(ctx, plan("p3", "u1", "2024-01-01", models.Lunch, "mealC", base))
	require.NoError(t, err)
	n, err := s.MealPlans().Count(ctx, store.Where(store.ByUserID("u1")))
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

func testMealPlanDateRange(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustUser(t, s, "u1", "alice")
	mustUser(t, s, "u2", "bob")

	entries := []*models.MealPlanEntry{
		plan("p1", "u1", "2024-01-14", models.Dinner, "m", base),
		plan("p2", "u1", "2024-01-15", models.Breakfast, "m", base),
		plan("p3", "u1", "2024-01-21", models.Lunch, "m", base),
		plan("p4", "u1", "2024-01-22", models.Dinner, "m", base),
		plan("p5", "u2", "2024-01-16", models.Dinner, "m", base),
	}
	for _, e := range entries {
		_, err := s.MealPlans().Upsert(ctx, e)
		require.NoError(t, err)
	}

	week := store.DateRange{Start: "2024-01-15", End: "2024-01-21"}

	own, err := s.MealPlans().Find(ctx, store.Where(store.ByUserID("u1"), week), store.All(store.Unordered))
	require.NoError(t, err)
	var ownIDs []string
	for _, e := range own {
		ownIDs = append(ownIDs, e.ID)
	}
	assert.ElementsMatch(t, []string{"p2", "p3"}, ownIDs)

	everyone, err := s.MealPlans().Find(ctx, store.Where(week), store.All(store.Unordered))
	require.NoError(t, err)
	var allIDs []string
	for _, e := range everyone {
		allIDs = append(allIDs, e.ID)
	}
	assert.ElementsMatch(t, []string{"p2", "p3", "p5"}, allIDs)
}

func testMealPlanDeleteSlot(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustUser(t, s, "u1", "alice")

	_, err := s.MealPlans().Upsert(ctx, plan("p1", "u1", "2024-01-01", models.Dinner, "m", base))
	require.NoError(t, err)

	slot := models.Slot{UserID: "u1", Date: "2024-01-01", MealType: models.Dinner}
	res, err := s.MealPlans().DeleteSlot(ctx, slot)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Deleted)

	res, err = s.MealPlans().DeleteSlot(ctx, slot)
	require.NoError(t, err)
	assert.EqualValues(t, 0, res.Deleted)

	// The slot can be filled again after removal.
	_, err = s.MealPlans().Upsert(ctx, plan("p2", "u1", "2024-01-01", models.Dinner, "m2", base))
	require.NoError(t, err)
}

func testCount(t *testing.T, s store.Store) {
	ctx := context.Background()
	mustUser(t, s, "u1", "alice")
	mustUser(t, s, "u2", "bob")
	mustMeal(t, s, models.Meal{ID: "m1", UserID: "u1", Title: "A", Ingredients: "x", Instructions: "y"})
	mustMeal(t, s, models.Meal{ID: "m2", UserID: "u2", Title: "B", Ingredients: "x", Instructions: "y"})

	n, err := s.Users().Count(ctx, store.Query{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = s.Meals().Count(ctx, store.Where(store.ByUserID("u2")))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
