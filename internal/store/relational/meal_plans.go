package relational

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
)

type mealPlans struct{ db *gorm.DB }

func (c mealPlans) query(ctx context.Context, q store.Query) (*gorm.DB, error) {
	return translate(c.db.WithContext(ctx).Model(&mealPlanRow{}), "meal_plans", q)
}

func slotConditions(slot models.Slot) []clause.Expression {
	return []clause.Expression{
		clause.Eq{Column: clause.Column{Table: "meal_plans", Name: "user_id"}, Value: slot.UserID},
		clause.Eq{Column: clause.Column{Table: "meal_plans", Name: "date"}, Value: slot.Date},
		clause.Eq{Column: clause.Column{Table: "meal_plans", Name: "meal_type"}, Value: string(slot.MealType)},
	}
}

func (c mealPlans) Find(ctx context.Context, q store.Query, page store.Page) ([]models.MealPlanEntry, error) {
	tx, err := c.query(ctx, q)
	if err != nil {
		return nil, err
	}
	if page.Empty() {
		return []models.MealPlanEntry{}, nil
	}

	var rows []mealPlanRow
	if err := paginate(tx, "meal_plans", page).Preload("User").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find meal plans: %w", err)
	}
	out := make([]models.MealPlanEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, shapeMealPlan(r))
	}
	return out, nil
}

// Upsert relies on the unique slot index: a conflicting insert rewrites the
// meal_id of the existing row instead.
func (c mealPlans) Upsert(ctx context.Context, e *models.MealPlanEntry) (store.UpsertResult, error) {
	row := newMealPlanRow(e)
	db := c.db.WithContext(ctx)

	err := db.Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}, {Name: "meal_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"meal_id", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return store.UpsertResult{}, fmt.Errorf("failed to upsert meal plan: %w", err)
	}

	var stored mealPlanRow
	if err := db.Clauses(clause.Where{Exprs: slotConditions(e.Slot())}).Take(&stored).Error; err != nil {
		return store.UpsertResult{}, fmt.Errorf("failed to reload meal plan: %w", err)
	}
	return store.UpsertResult{ID: stored.ID, Replaced: stored.ID != e.ID}, nil
}

func (c mealPlans) DeleteSlot(ctx context.Context, slot models.Slot) (store.DeleteResult, error) {
	result := c.db.WithContext(ctx).Clauses(clause.Where{Exprs: slotConditions(slot)}).Delete(&mealPlanRow{})
	if result.Error != nil {
		return store.DeleteResult{}, fmt.Errorf("failed to delete meal plan: %w", result.Error)
	}
	return store.DeleteResult{Deleted: result.RowsAffected}, nil
}

func (c mealPlans) Count(ctx context.Context, q store.Query) (int64, error) {
	tx, err := c.query(ctx, q)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count meal plans: %w", err)
	}
	return n, nil
}
