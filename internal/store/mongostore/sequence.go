package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const countersCollection = "counters"

// sequence hands out increasing insertion numbers for one collection. The
// counter lives in a document of the counters collection keyed by name.
type sequence struct {
	coll *mongo.Collection
	name string
}

func (s sequence) next(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var counter struct {
		Value int64 `bson:"value"`
	}
	err := s.coll.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: s.name}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "value", Value: int64(1)}}}},
		opts,
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("failed to advance %s sequence: %w", s.name, err)
	}
	return counter.Value, nil
}
