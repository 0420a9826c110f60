package memory

import (
	"context"
	"time"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
)

type meals struct{ s *Store }

func matchMeal(m models.Meal, q store.Query) (bool, error) {
	for _, f := range q.Filters {
		switch f := f.(type) {
		case store.ByID:
			if m.ID != string(f) {
				return false, nil
			}
		case store.ByUserID:
			if m.UserID != string(f) {
				return false, nil
			}
		case store.TextSearch:
			if !f.Matches(m.Title, m.Ingredients, m.Instructions) {
				return false, nil
			}
		default:
			return false, store.UnsupportedFilter("meals", f)
		}
	}
	return true, nil
}

// filter returns shaped copies of the matching meals. Callers hold the lock.
func (c meals) filter(ctx context.Context, q store.Query) ([]models.Meal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []models.Meal
	for _, m := range c.s.meals {
		ok, err := matchMeal(m, q)
		if err != nil {
			return nil, err
		}
		if ok {
			shaped := m.Clone()
			shaped.User = c.s.ownerRef(m.UserID)
			out = append(out, shaped)
		}
	}
	return out, nil
}

func (c meals) Find(ctx context.Context, q store.Query, page store.Page) ([]models.Meal, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	matched, err := c.filter(ctx, q)
	if err != nil {
		return nil, err
	}
	return store.Paginate(matched, func(m models.Meal) time.Time { return m.CreatedAt }, page), nil
}

func (c meals) FindOne(ctx context.Context, q store.Query) (*models.Meal, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	matched, err := c.filter(ctx, q)
	if err != nil || len(matched) == 0 {
		return nil, err
	}
	return &matched[0], nil
}

func (c meals) InsertOne(ctx context.Context, m *models.Meal) (store.InsertResult, error) {
	if err := ctx.Err(); err != nil {
		return store.InsertResult{}, err
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	for _, existing := range c.s.meals {
		if existing.ID == m.ID {
			return store.InsertResult{}, store.ErrDuplicateKey
		}
	}
	stored := m.Clone()
	stored.User = nil
	stored.Normalize()
	c.s.meals = append(c.s.meals, stored)
	return store.InsertResult{InsertedID: m.ID}, nil
}

func (c meals) UpdateOne(ctx context.Context, id, ownerID string, patch models.MealPatch) (store.UpdateResult, error) {
	if err := ctx.Err(); err != nil {
		return store.UpdateResult{}, err
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	for i := range c.s.meals {
		if c.s.meals[i].ID == id && c.s.meals[i].UserID == ownerID {
			patch.Apply(&c.s.meals[i])
			return store.UpdateResult{Matched: 1, Modified: 1}, nil
		}
	}
	return store.UpdateResult{}, nil
}

func (c meals) DeleteOne(ctx context.Context, id, ownerID string) (store.DeleteResult, error) {
	if err := ctx.Err(); err != nil {
		return store.DeleteResult{}, err
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	for i := range c.s.meals {
		if c.s.meals[i].ID == id && c.s.meals[i].UserID == ownerID {
			c.s.meals = append(c.s.meals[:i], c.s.meals[i+1:]...)
			return store.DeleteResult{Deleted: 1}, nil
		}
	}
	return store.DeleteResult{}, nil
}

func (c meals) Count(ctx context.Context, q store.Query) (int64, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	matched, err := c.filter(ctx, q)
	return int64(len(matched)), err
}
