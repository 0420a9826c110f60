package relational

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
)

type meals struct{ db *gorm.DB }

func (c meals) query(ctx context.Context, q store.Query) (*gorm.DB, error) {
	return translate(c.db.WithContext(ctx).Model(&mealRow{}), "meals", q)
}

func ownedBy(id, ownerID string) []interface{} {
	return []interface{}{
		clause.Eq{Column: clause.Column{Table: "meals", Name: "id"}, Value: id},
		clause.Eq{Column: clause.Column{Table: "meals", Name: "user_id"}, Value: ownerID},
	}
}

func (c meals) Find(ctx context.Context, q store.Query, page store.Page) ([]models.Meal, error) {
	tx, err := c.query(ctx, q)
	if err != nil {
		return nil, err
	}
	if page.Empty() {
		return []models.Meal{}, nil
	}

	var rows []mealRow
	if err := paginate(tx, "meals", page).Preload("User").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find meals: %w", err)
	}
	out := make([]models.Meal, 0, len(rows))
	for _, r := range rows {
		out = append(out, shapeMeal(r))
	}
	return out, nil
}

func (c meals) FindOne(ctx context.Context, q store.Query) (*models.Meal, error) {
	tx, err := c.query(ctx, q)
	if err != nil {
		return nil, err
	}

	var row mealRow
	if err := tx.Preload("User").Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find meal: %w", err)
	}
	m := shapeMeal(row)
	return &m, nil
}

func (c meals) InsertOne(ctx context.Context, m *models.Meal) (store.InsertResult, error) {
	row := newMealRow(m)
	if err := c.db.WithContext(ctx).Omit(clause.Associations).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return store.InsertResult{}, store.ErrDuplicateKey
		}
		return store.InsertResult{}, fmt.Errorf("failed to insert meal: %w", err)
	}
	return store.InsertResult{InsertedID: row.ID}, nil
}

// UpdateOne writes the patch in a single UPDATE scoped to the owner.
func (c meals) UpdateOne(ctx context.Context, id, ownerID string, patch models.MealPatch) (store.UpdateResult, error) {
	conds := ownedBy(id, ownerID)
	result := c.db.WithContext(ctx).Model(&mealRow{}).Where(conds[0]).Where(conds[1]).Updates(mealUpdates(patch))
	if result.Error != nil {
		return store.UpdateResult{}, fmt.Errorf("failed to update meal: %w", result.Error)
	}
	return store.UpdateResult{Matched: result.RowsAffected, Modified: result.RowsAffected}, nil
}

func (c meals) DeleteOne(ctx context.Context, id, ownerID string) (store.DeleteResult, error) {
	conds := ownedBy(id, ownerID)
	result := c.db.WithContext(ctx).Where(conds[0]).Where(conds[1]).Delete(&mealRow{})
	if result.Error != nil {
		return store.DeleteResult{}, fmt.Errorf("failed to delete meal: %w", result.Error)
	}
	return store.DeleteResult{Deleted: result.RowsAffected}, nil
}

func (c meals) Count(ctx context.Context, q store.Query) (int64, error) {
	tx, err := c.query(ctx, q)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count meals: %w", err)
	}
	return n, nil
}
