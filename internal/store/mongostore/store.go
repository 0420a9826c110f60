// Package mongostore implements the store contract on MongoDB.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pageza/forkcast/backend/internal/store"
)

const (
	usersCollection     = "users"
	mealsCollection     = "meals"
	mealPlansCollection = "meal_plans"
)

// Store is a MongoDB-backed store. Document ids are stored in _id.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials uri, verifies the connection and returns a store using the
// named database.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return New(client, database), nil
}

// New wraps an existing client.
func New(client *mongo.Client, database string) *Store {
	return &Store{client: client, db: client.Database(database)}
}

func (s *Store) seq(name string) sequence {
	return sequence{coll: s.db.Collection(countersCollection), name: name}
}

func (s *Store) Users() store.UserCollection {
	return users{coll: s.db.Collection(usersCollection), seq: s.seq(usersCollection)}
}

func (s *Store) Meals() store.MealCollection {
	return meals{
		coll:  s.db.Collection(mealsCollection),
		users: s.db.Collection(usersCollection),
		seq:   s.seq(mealsCollection),
	}
}

func (s *Store) MealPlans() store.MealPlanCollection {
	return mealPlans{
		coll:  s.db.Collection(mealPlansCollection),
		users: s.db.Collection(usersCollection),
		seq:   s.seq(mealPlansCollection),
	}
}

func (s *Store) Name() string { return "mongo" }

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Drop removes the whole database.
func (s *Store) Drop(ctx context.Context) error {
	return s.db.Drop(ctx)
}

// Migrate creates the indexes the store relies on. The unique username and
// slot indexes back the duplicate and upsert semantics.
func (s *Store) Migrate(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true).SetName("idx_users_username")},
		},
		mealsCollection: {
			{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetName("idx_meals_user_id")},
			{Keys: bson.D{{Key: "createdAt", Value: -1}}, Options: options.Index().SetName("idx_meals_created_at")},
			{Keys: bson.D{{Key: "createdAt", Value: -1}, {Key: "seq", Value: 1}}, Options: options.Index().SetName("idx_meals_created_seq")},
		},
		mealPlansCollection: {
			{
				Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}, {Key: "mealType", Value: 1}},
				Options: options.Index().SetUnique(true).SetName("idx_meal_plans_slot"),
			},
		},
	}

	for name, specs := range indexes {
		if _, err := s.db.Collection(name).Indexes().CreateMany(ctx, specs); err != nil {
			return fmt.Errorf("failed to create indexes on %s: %w", name, err)
		}
	}
	return s.backfillFolds(ctx)
}

// backfillFolds writes the folded search fields of meals stored before
// those fields existed.
func (s *Store) backfillFolds(ctx context.Context) error {
	coll := s.db.Collection(mealsCollection)
	cur, err := coll.Find(ctx, bson.D{{Key: "titleFold", Value: bson.D{{Key: "$exists", Value: false}}}})
	if err != nil {
		return fmt.Errorf("failed to load meals for search backfill: %w", err)
	}
	var docs []mealDoc
	if err := cur.All(ctx, &docs); err != nil {
		return fmt.Errorf("failed to decode meals for search backfill: %w", err)
	}
	for _, d := range docs {
		set := bson.D{
			{Key: "titleFold", Value: store.Fold(d.Title)},
			{Key: "ingredientsFold", Value: store.Fold(d.Ingredients)},
			{Key: "instructionsFold", Value: store.Fold(d.Instructions)},
		}
		if _, err := coll.UpdateByID(ctx, d.ID, bson.D{{Key: "$set", Value: set}}); err != nil {
			return fmt.Errorf("failed to backfill search fields for meal %s: %w", d.ID, err)
		}
	}
	return nil
}
