package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
)

type mealPlans struct {
	coll  *mongo.Collection
	users *mongo.Collection
	seq   sequence
}

func slotFilter(slot models.Slot) bson.D {
	return bson.D{
		{Key: "userId", Value: slot.UserID},
		{Key: "date", Value: slot.Date},
		{Key: "mealType", Value: string(slot.MealType)},
	}
}

func (c mealPlans) Find(ctx context.Context, q store.Query, page store.Page) ([]models.MealPlanEntry, error) {
	filter, err := translate(mealPlansCollection, q)
	if err != nil {
		return nil, err
	}
	if page.Empty() {
		return []models.MealPlanEntry{}, nil
	}

	cur, err := c.coll.Find(ctx, filter, findOptions(page))
	if err != nil {
		return nil, fmt.Errorf("failed to find meal plans: %w", err)
	}
	var docs []mealPlanDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode meal plans: %w", err)
	}

	ids := make([]string, 0, len(docs))
	for _, d := range docs {
		ids = append(ids, d.UserID)
	}
	refs, err := owners(ctx, c.users, ids)
	if err != nil {
		return nil, err
	}
	out := make([]models.MealPlanEntry, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.shape(refs[d.UserID]))
	}
	return out, nil
}

// Upsert sets the mealId of the slot, creating the entry when the slot is
// empty. Two concurrent first inserts can race on the unique slot index; the
// loser retries once and lands on the update path.
func (c mealPlans) Upsert(ctx context.Context, e *models.MealPlanEntry) (store.UpsertResult, error) {
	seq, err := c.seq.next(ctx)
	if err != nil {
		return store.UpsertResult{}, err
	}
	filter := slotFilter(e.Slot())
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "mealId", Value: e.MealID},
			{Key: "updatedAt", Value: e.UpdatedAt},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "_id", Value: e.ID},
			{Key: "createdAt", Value: e.CreatedAt},
			{Key: "seq", Value: seq},
		}},
	}
	opts := options.Update().SetUpsert(true)

	res, err := c.coll.UpdateOne(ctx, filter, update, opts)
	if mongo.IsDuplicateKeyError(err) {
		res, err = c.coll.UpdateOne(ctx, filter, update, opts)
	}
	if err != nil {
		return store.UpsertResult{}, fmt.Errorf("failed to upsert meal plan: %w", err)
	}

	if res.UpsertedCount > 0 {
		return store.UpsertResult{ID: e.ID}, nil
	}
	var stored mealPlanDoc
	if err := c.coll.FindOne(ctx, filter).Decode(&stored); err != nil {
		return store.UpsertResult{}, fmt.Errorf("failed to reload meal plan: %w", err)
	}
	return store.UpsertResult{ID: stored.ID, Replaced: true}, nil
}

func (c mealPlans) DeleteSlot(ctx context.Context, slot models.Slot) (store.DeleteResult, error) {
	res, err := c.coll.DeleteMany(ctx, slotFilter(slot))
	if err != nil {
		return store.DeleteResult{}, fmt.Errorf("failed to delete meal plan: %w", err)
	}
	return store.DeleteResult{Deleted: res.DeletedCount}, nil
}

func (c mealPlans) Count(ctx context.Context, q store.Query) (int64, error) {
	filter, err := translate(mealPlansCollection, q)
	if err != nil {
		return 0, err
	}
	n, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count meal plans: %w", err)
	}
	return n, nil
}
