package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
)

type userDoc struct {
	ID        string    `bson:"_id"`
	Username  string    `bson:"username"`
	Password  string    `bson:"password"`
	CreatedAt time.Time `bson:"createdAt"`
	Seq       int64     `bson:"seq"`
}

// mealDoc keeps a folded copy of each searchable field. Regex case
// insensitivity in MongoDB does not fold the same way as Go, so search runs
// against these instead.
type mealDoc struct {
	ID               string    `bson:"_id"`
	UserID           string    `bson:"userId"`
	Title            string    `bson:"title"`
	Ingredients      string    `bson:"ingredients"`
	Instructions     string    `bson:"instructions"`
	TitleFold        string    `bson:"titleFold"`
	IngredientsFold  string    `bson:"ingredientsFold"`
	InstructionsFold string    `bson:"instructionsFold"`
	ImageURL         *string   `bson:"imageUrl"`
	GalleryImages    []string  `bson:"galleryImages"`
	CreatedAt        time.Time `bson:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt"`
	Seq              int64     `bson:"seq"`
}

type mealPlanDoc struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"userId"`
	Date      string    `bson:"date"`
	MealType  string    `bson:"mealType"`
	MealID    string    `bson:"mealId"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
	Seq       int64     `bson:"seq"`
}

// foldFields maps each searchable field to its folded copy.
var foldFields = map[string]string{
	"title":        "titleFold",
	"ingredients":  "ingredientsFold",
	"instructions": "instructionsFold",
}

func newMealDoc(m *models.Meal, seq int64) mealDoc {
	doc := mealDoc{
		ID:               m.ID,
		UserID:           m.UserID,
		Title:            m.Title,
		Ingredients:      m.Ingredients,
		Instructions:     m.Instructions,
		TitleFold:        store.Fold(m.Title),
		IngredientsFold:  store.Fold(m.Ingredients),
		InstructionsFold: store.Fold(m.Instructions),
		GalleryImages:    m.GalleryImages,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		Seq:              seq,
	}
	if doc.GalleryImages == nil {
		doc.GalleryImages = []string{}
	}
	if m.ImageURL != nil && *m.ImageURL != "" {
		url := *m.ImageURL
		doc.ImageURL = &url
	}
	return doc
}

func (d userDoc) shape() models.User {
	return models.User{ID: d.ID, Username: d.Username, Password: d.Password, CreatedAt: d.CreatedAt}
}

func (d mealDoc) shape(owner *models.UserRef) models.Meal {
	m := models.Meal{
		ID:            d.ID,
		UserID:        d.UserID,
		Title:         d.Title,
		Ingredients:   d.Ingredients,
		Instructions:  d.Instructions,
		ImageURL:      d.ImageURL,
		GalleryImages: d.GalleryImages,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
		User:          owner,
	}
	m.Normalize()
	return m
}

func (d mealPlanDoc) shape(owner *models.UserRef) models.MealPlanEntry {
	return models.MealPlanEntry{
		ID:        d.ID,
		UserID:    d.UserID,
		Date:      d.Date,
		MealType:  models.MealType(d.MealType),
		MealID:    d.MealID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		User:      owner,
	}
}

// owners loads the owner references for ids in one round trip.
func owners(ctx context.Context, coll *mongo.Collection, ids []string) (map[string]*models.UserRef, error) {
	refs := make(map[string]*models.UserRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}

	cur, err := coll.Find(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: uniq(ids)}}}})
	if err != nil {
		return nil, fmt.Errorf("failed to load owners: %w", err)
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode owners: %w", err)
	}
	for _, d := range docs {
		refs[d.ID] = &models.UserRef{ID: d.ID, Username: d.Username}
	}
	return refs, nil
}

func uniq(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
