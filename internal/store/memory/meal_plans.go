package memory

import (
	"context"
	"time"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
)

type mealPlans struct{ s *Store }

func matchPlan(e models.MealPlanEntry, q store.Query) (bool, error) {
	for _, f := range q.Filters {
		switch f := f.(type) {
		case store.ByID:
			if e.ID != string(f) {
				return false, nil
			}
		case store.ByUserID:
			if e.UserID != string(f) {
				return false, nil
			}
		case store.DateRange:
			if !f.Contains(e.Date) {
				return false, nil
			}
		default:
			return false, store.UnsupportedFilter("meal_plans", f)
		}
	}
	return true, nil
}

func (c mealPlans) filter(ctx context.Context, q store.Query) ([]models.MealPlanEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []models.MealPlanEntry
	for _, e := range c.s.plans {
		ok, err := matchPlan(e, q)
		if err != nil {
			return nil, err
		}
		if ok {
			e.User = c.s.ownerRef(e.UserID)
			out = append(out, e)
		}
	}
	return out, nil
}

func (c mealPlans) Find(ctx context.Context, q store.Query, page store.Page) ([]models.MealPlanEntry, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	matched, err := c.filter(ctx, q)
	if err != nil {
		return nil, err
	}
	return store.Paginate(matched, func(e models.MealPlanEntry) time.Time { return e.CreatedAt }, page), nil
}

func (c mealPlans) Upsert(ctx context.Context, e *models.MealPlanEntry) (store.UpsertResult, error) {
	if err := ctx.Err(); err != nil {
		return store.UpsertResult{}, err
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	slot := e.Slot()
	for i := range c.s.plans {
		if c.s.plans[i].Slot() == slot {
			c.s.plans[i].MealID = e.MealID
			c.s.plans[i].UpdatedAt = e.UpdatedAt
			return store.UpsertResult{ID: c.s.plans[i].ID, Replaced: true}, nil
		}
	}
	stored := *e
	stored.User = nil
	c.s.plans = append(c.s.plans, stored)
	return store.UpsertResult{ID: e.ID}, nil
}

func (c mealPlans) DeleteSlot(ctx context.Context, slot models.Slot) (store.DeleteResult, error) {
	if err := ctx.Err(); err != nil {
		return store.DeleteResult{}, err
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	kept := c.s.plans[:0]
	var deleted int64
	for _, e := range c.s.plans {
		if e.Slot() == slot {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	c.s.plans = kept
	return store.DeleteResult{Deleted: deleted}, nil
}

func (c mealPlans) Count(ctx context.Context, q store.Query) (int64, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	matched, err := c.filter(ctx, q)
	return int64(len(matched)), err
}
