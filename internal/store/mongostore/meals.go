package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
)

type meals struct {
	coll  *mongo.Collection
	users *mongo.Collection
	seq   sequence
}

func ownedBy(id, ownerID string) bson.D {
	return bson.D{{Key: "_id", Value: id}, {Key: "userId", Value: ownerID}}
}

func (c meals) shapeAll(ctx context.Context, docs []mealDoc) ([]models.Meal, error) {
	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.UserID)
	}
	refs, err := owners(ctx, c.users, ids)
	if err != nil {
		return nil, err
	}
	out := make([]models.Meal, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.shape(refs[d.UserID]))
	}
	return out, nil
}

func (c meals) Find(ctx context.Context, q store.Query, page store.Page) ([]models.Meal, error) {
	filter, err := translate(mealsCollection, q)
	if err != nil {
		return nil, err
	}
	if page.Empty() {
		return []models.Meal{}, nil
	}

	cur, err := c.coll.Find(ctx, filter, findOptions(page))
	if err != nil {
		return nil, fmt.Errorf("failed to find meals: %w", err)
	}
	var docs []mealDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode meals: %w", err)
	}
	return c.shapeAll(ctx, docs)
}

func (c meals) FindOne(ctx context.Context, q store.Query) (*models.Meal, error) {
	filter, err := translate(mealsCollection, q)
	if err != nil {
		return nil, err
	}

	var doc mealDoc
	if err := c.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find meal: %w", err)
	}
	shaped, err := c.shapeAll(ctx, []mealDoc{doc})
	if err != nil {
		return nil, err
	}
	return &shaped[0], nil
}

func (c meals) InsertOne(ctx context.Context, m *models.Meal) (store.InsertResult, error) {
	seq, err := c.seq.next(ctx)
	if err != nil {
		return store.InsertResult{}, err
	}
	if _, err := c.coll.InsertOne(ctx, newMealDoc(m, seq)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.InsertResult{}, store.ErrDuplicateKey
		}
		return store.InsertResult{}, fmt.Errorf("failed to insert meal: %w", err)
	}
	return store.InsertResult{InsertedID: m.ID}, nil
}

func (c meals) UpdateOne(ctx context.Context, id, ownerID string, patch models.MealPatch) (store.UpdateResult, error) {
	res, err := c.coll.UpdateOne(ctx, ownedBy(id, ownerID), bson.D{{Key: "$set", Value: mealSet(patch)}})
	if err != nil {
		return store.UpdateResult{}, fmt.Errorf("failed to update meal: %w", err)
	}
	return store.UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

// mealSet turns a patch into a $set document, refreshing the folded copy of
// every searchable field it touches.
func mealSet(patch models.MealPatch) bson.M {
	set := bson.M{}
	for field, value := range patch.Fields() {
		set[field] = value
		if fold, ok := foldFields[field]; ok {
			if text, ok := value.(string); ok {
				set[fold] = store.Fold(text)
			}
		}
	}
	return set
}

func (c meals) DeleteOne(ctx context.Context, id, ownerID string) (store.DeleteResult, error) {
	res, err := c.coll.DeleteOne(ctx, ownedBy(id, ownerID))
	if err != nil {
		return store.DeleteResult{}, fmt.Errorf("failed to delete meal: %w", err)
	}
	return store.DeleteResult{Deleted: res.DeletedCount}, nil
}

func (c meals) Count(ctx context.Context, q store.Query) (int64, error) {
	filter, err := translate(mealsCollection, q)
	if err != nil {
		return 0, err
	}
	n, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count meals: %w", err)
	}
	return n, nil
}
