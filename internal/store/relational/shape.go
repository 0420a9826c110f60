package relational

import (
	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
)

// Rows come back with snake_case columns, a JSON-encoded gallery and an
// optionally preloaded owner. The functions below turn them into canonical
// documents. Shaping never fails.

func shapeUser(r userRow) models.User {
	return models.User{ID: r.ID, Username: r.Username, Password: r.Password, CreatedAt: r.CreatedAt}
}

func shapeOwner(r *userRow) *models.UserRef {
	if r == nil || r.ID == "" {
		return nil
	}
	return &models.UserRef{ID: r.ID, Username: r.Username}
}

func shapeMeal(r mealRow) models.Meal {
	m := models.Meal{
		ID:            r.ID,
		UserID:        r.UserID,
		Title:         r.Title,
		Ingredients:   r.Ingredients,
		Instructions:  r.Instructions,
		ImageURL:      r.ImageURL,
		GalleryImages: []string(r.GalleryImages),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
		User:          shapeOwner(r.User),
	}
	m.Normalize()
	return m
}

func shapeMealPlan(r mealPlanRow) models.MealPlanEntry {
	return models.MealPlanEntry{
		ID:        r.ID,
		UserID:    r.UserID,
		Date:      r.Date,
		MealType:  models.MealType(r.MealType),
		MealID:    r.MealID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		User:      shapeOwner(r.User),
	}
}

// mealColumns maps canonical patch fields to their column names.
var mealColumns = map[string]string{
	"title":         "title",
	"ingredients":   "ingredients",
	"instructions":  "instructions",
	"imageUrl":      "image_url",
	"galleryImages": "gallery_images",
	"updatedAt":     "updated_at",
}

// foldColumns holds the folded copy of each searchable column.
var foldColumns = map[string]string{
	"title":        "title_fold",
	"ingredients":  "ingredients_fold",
	"instructions": "instructions_fold",
}

func mealUpdates(patch models.MealPatch) map[string]interface{} {
	updates := make(map[string]interface{})
	for field, value := range patch.Fields() {
		if list, ok := value.([]string); ok {
			value = models.StringList(list)
		}
		updates[mealColumns[field]] = value
		if col, ok := foldColumns[field]; ok {
			if text, ok := value.(string); ok {
				updates[col] = store.Fold(text)
			}
		}
	}
	return updates
}
