package relational

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
)

type users struct{ db *gorm.DB }

func (c users) query(ctx context.Context, q store.Query) (*gorm.DB, error) {
	return translate(c.db.WithContext(ctx).Model(&userRow{}), "users", q)
}

func (c users) Find(ctx context.Context, q store.Query, page store.Page) ([]models.User, error) {
	tx, err := c.query(ctx, q)
	if err != nil {
		return nil, err
	}
	if page.Empty() {
		return []models.User{}, nil
	}

	var rows []userRow
	if err := paginate(tx, "users", page).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	out := make([]models.User, 0, len(rows))
	for _, r := range rows {
		out = append(out, shapeUser(r))
	}
	return out, nil
}

func (c users) FindOne(ctx context.Context, q store.Query) (*models.User, error) {
	tx, err := c.query(ctx, q)
	if err != nil {
		return nil, err
	}

	var row userRow
	if err := tx.Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	u := shapeUser(row)
	return &u, nil
}

func (c users) InsertOne(ctx context.Context, u *models.User) (store.InsertResult, error) {
	row := newUserRow(u)
	if err := c.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return store.InsertResult{}, store.ErrDuplicateUsername
		}
		return store.InsertResult{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return store.InsertResult{InsertedID: row.ID}, nil
}

func (c users) Count(ctx context.Context, q store.Query) (int64, error) {
	tx, err := c.query(ctx, q)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
