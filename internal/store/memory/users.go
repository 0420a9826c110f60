package memory

import (
	"context"
	"time"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
)

type users struct{ s *Store }

func matchUser(u models.User, q store.Query) (bool, error) {
	for _, f := range q.Filters {
		switch f := f.(type) {
		case store.ByID:
			if u.ID != string(f) {
				return false, nil
			}
		case store.ByUsername:
			if u.Username != string(f) {
				return false, nil
			}
		default:
			return false, store.UnsupportedFilter("users", f)
		}
	}
	return true, nil
}

func (c users) filter(ctx context.Context, q store.Query) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []models.User
	for _, u := range c.s.users {
		ok, err := matchUser(u, q)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (c users) Find(ctx context.Context, q store.Query, page store.Page) ([]models.User, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	matched, err := c.filter(ctx, q)
	if err != nil {
		return nil, err
	}
	return store.Paginate(matched, func(u models.User) time.Time { return u.CreatedAt }, page), nil
}

func (c users) FindOne(ctx context.Context, q store.Query) (*models.User, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	matched, err := c.filter(ctx, q)
	if err != nil || len(matched) == 0 {
		return nil, err
	}
	u := matched[0]
	return &u, nil
}

func (c users) InsertOne(ctx context.Context, u *models.User) (store.InsertResult, error) {
	if err := ctx.Err(); err != nil {
		return store.InsertResult{}, err
	}
	c.s.mu.Lock()
	defer c.s.mu.Unlock()

	for _, existing := range c.s.users {
		if existing.Username == u.Username {
			return store.InsertResult{}, store.ErrDuplicateUsername
		}
		if existing.ID == u.ID {
			return store.InsertResult{}, store.ErrDuplicateKey
		}
	}
	c.s.users = append(c.s.users, *u)
	return store.InsertResult{InsertedID: u.ID}, nil
}

func (c users) Count(ctx context.Context, q store.Query) (int64, error) {
	c.s.mu.RLock()
	defer c.s.mu.RUnlock()

	matched, err := c.filter(ctx, q)
	return int64(len(matched)), err
}
