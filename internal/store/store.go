// Package store defines the persistence contract shared by the memory,
// relational and MongoDB backends.
//
// Every backend accepts the same closed filter vocabulary (see Filter) and the
// same pagination request (see Page), and returns canonical documents from the
// models package. Given identical data, every backend returns the same set of
// documents for the same query.
package store

import (
	"context"

	"github.com/pageza/forkcast/backend/internal/models"
)

// Store groups the three collections of a backend.
type Store interface {
	Users() UserCollection
	Meals() MealCollection
	MealPlans() MealPlanCollection

	// Name identifies the backend in logs and health output.
	Name() string
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Migrator is implemented by backends that need schema or index setup.
type Migrator interface {
	Migrate(ctx context.Context) error
}

// UserCollection stores accounts. Usernames are unique: inserting a taken
// username fails with ErrDuplicateUsername.
type UserCollection interface {
	Find(ctx context.Context, q Query, page Page) ([]models.User, error)
	// FindOne returns nil without error when nothing matches.
	FindOne(ctx context.Context, q Query) (*models.User, error)
	InsertOne(ctx context.Context, u *models.User) (InsertResult, error)
	Count(ctx context.Context, q Query) (int64, error)
}

// MealCollection stores meals. Mutations are scoped to the owner: a
// non-matching (id, ownerID) pair reports zero counts rather than an error.
type MealCollection interface {
	Find(ctx context.Context, q Query, page Page) ([]models.Meal, error)
	FindOne(ctx context.Context, q Query) (*models.Meal, error)
	InsertOne(ctx context.Context, m *models.Meal) (InsertResult, error)
	UpdateOne(ctx context.Context, id, ownerID string, patch models.MealPatch) (UpdateResult, error)
	DeleteOne(ctx context.Context, id, ownerID string) (DeleteResult, error)
	Count(ctx context.Context, q Query) (int64, error)
}

// MealPlanCollection stores calendar entries keyed by (userId, date, mealType).
type MealPlanCollection interface {
	Find(ctx context.Context, q Query, page Page) ([]models.MealPlanEntry, error)
	// Upsert inserts e, or replaces the mealId of the entry already occupying
	// the same slot.
	Upsert(ctx context.Context, e *models.MealPlanEntry) (UpsertResult, error)
	DeleteSlot(ctx context.Context, slot models.Slot) (DeleteResult, error)
	Count(ctx context.Context, q Query) (int64, error)
}

// InsertResult reports the id of an inserted document.
type InsertResult struct {
	InsertedID string
}

// UpdateResult reports how many documents matched and changed.
type UpdateResult struct {
	Matched  int64
	Modified int64
}

// DeleteResult reports how many documents were removed.
type DeleteResult struct {
	Deleted int64
}

// UpsertResult reports the id of the entry now occupying the slot.
type UpsertResult struct {
	ID       string
	Replaced bool
}
