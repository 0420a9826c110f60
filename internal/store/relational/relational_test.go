package relational

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
	"github.com/pageza/forkcast/backend/internal/store/storetest"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// Every connection to :memory: is a separate database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	s := New(db)
	require.NoError(t, s.Migrate(context.Background()))
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestSQLiteConformance(t *testing.T) {
	storetest.Run(t, func(t *testing.T) store.Store {
		return newSQLiteStore(t)
	})
}

func TestName(t *testing.T) {
	assert.Equal(t, "sqlite", newSQLiteStore(t).Name())
}

func TestMigrateIsRepeatable(t *testing.T) {
	s := newSQLiteStore(t)
	assert.NoError(t, s.Migrate(context.Background()))
}

func TestNullGalleryShapesToEmptyList(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	_, err := s.Users().InsertOne(ctx, &models.User{ID: "u1", Username: "alice", Password: "x", CreatedAt: time.Now()})
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, s.DB().Exec(
		"INSERT INTO meals (id, user_id, title, ingredients, instructions, image_url, gallery_images, created_at, updated_at) VALUES (?, ?, ?, ?, ?, NULL, '', ?, ?)",
		"legacy", "u1", "Legacy", "x", "y", now, now,
	).Error)

	got, err := s.Meals().FindOne(ctx, store.Where(store.ByID("legacy")))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.ImageURL)
	assert.Equal(t, []string{}, got.GalleryImages)
	require.NotNil(t, got.User)
	assert.Equal(t, "alice", got.User.Username)
}

func TestMigrateBackfillsSearchAndOrderColumns(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	_, err := s.Users().InsertOne(ctx, &models.User{ID: "u1", Username: "alice", Password: "x", CreatedAt: time.Now()})
	require.NoError(t, err)

	now := time.Now().UTC().Truncate(time.Millisecond)
	for _, id := range []string{"old-b", "old-a"} {
		require.NoError(t, s.DB().Exec(
			"INSERT INTO meals (id, user_id, title, ingredients, instructions, gallery_images, created_at, updated_at) VALUES (?, ?, ?, ?, ?, '[]', ?, ?)",
			id, "u1", "ÉCLAIR "+id, "choux", "bake", now, now,
		).Error)
	}

	found, err := s.Meals().Find(ctx, store.Where(store.TextSearch("éclair")), store.All(store.Unordered))
	require.NoError(t, err)
	assert.Empty(t, found)

	require.NoError(t, s.Migrate(ctx))

	found, err = s.Meals().Find(ctx, store.Where(store.TextSearch("éclair")), store.All(store.OldestFirst))
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "old-b", found[0].ID)
	assert.Equal(t, "old-a", found[1].ID)
}

func TestSearchFoldsNonASCIIOnUpdate(t *testing.T) {
	s := newSQLiteStore(t)
	ctx := context.Background()

	now := time.Now()
	_, err := s.Users().InsertOne(ctx, &models.User{ID: "u1", Username: "alice", Password: "x", CreatedAt: now})
	require.NoError(t, err)
	_, err = s.Meals().InsertOne(ctx, &models.Meal{
		ID: "m1", UserID: "u1", Title: "Toast", Ingredients: "bread", Instructions: "toast",
		GalleryImages: []string{}, CreatedAt: now, UpdatedAt: now,
	})
	require.NoError(t, err)

	_, err = s.Meals().UpdateOne(ctx, "m1", "u1", models.MealPatch{Title: "CRÈME BRÛLÉE", UpdatedAt: now})
	require.NoError(t, err)

	found, err := s.Meals().Find(ctx, store.Where(store.TextSearch("crème brûlée")), store.All(store.Unordered))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "m1", found[0].ID)

	found, err = s.Meals().Find(ctx, store.Where(store.TextSearch("toast")), store.All(store.Unordered))
	require.NoError(t, err)
	require.Len(t, found, 1, "instructions still match")
}

func TestShapeMealWithoutOwner(t *testing.T) {
	m := shapeMeal(mealRow{ID: "m1", UserID: "gone"})
	assert.Nil(t, m.User)
	assert.Equal(t, []string{}, m.GalleryImages)
}

func TestMealUpdatesFoldsSearchableText(t *testing.T) {
	now := time.Now()
	updates := mealUpdates(models.MealPatch{Title: "ÉCLAIR", UpdatedAt: now})
	assert.Equal(t, "ÉCLAIR", updates["title"])
	assert.Equal(t, "éclair", updates["title_fold"])
	assert.NotContains(t, updates, "ingredients_fold")
}

func TestMealUpdatesUsesColumnNames(t *testing.T) {
	now := time.Now()
	updates := mealUpdates(models.MealPatch{ImageURL: "a.jpg", GalleryImages: []string{"b.jpg"}, UpdatedAt: now})
	assert.Equal(t, map[string]interface{}{
		"image_url":      "a.jpg",
		"gallery_images": models.StringList{"b.jpg"},
		"updated_at":     now,
	}, updates)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.True(t, isUniqueViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.True(t, isUniqueViolation(errors.New("UNIQUE constraint failed: users.username")))
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
}
