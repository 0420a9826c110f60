// Package memory implements the store contract on in-process slices. It is
// used for local development and as the reference backend in tests.
package memory

import (
	"context"
	"sync"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
)

// Store keeps all records in memory behind a single lock. Records are kept in
// insertion order, which breaks createdAt ties during pagination.
type Store struct {
	mu    sync.RWMutex
	users []models.User
	meals []models.Meal
	plans []models.MealPlanEntry
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

func (s *Store) Users() store.UserCollection         { return users{s} }
func (s *Store) Meals() store.MealCollection         { return meals{s} }
func (s *Store) MealPlans() store.MealPlanCollection { return mealPlans{s} }

func (s *Store) Name() string { return "memory" }

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Store) Close(context.Context) error { return nil }

// ownerRef resolves the owner reference for userID. Callers hold the lock.
func (s *Store) ownerRef(userID string) *models.UserRef {
	for i := range s.users {
		if s.users[i].ID == userID {
			return s.users[i].Ref()
		}
	}
	return nil
}
