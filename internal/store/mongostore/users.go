package mongostore

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
)

type users struct {
	coll *mongo.Collection
	seq  sequence
}

func (c users) Find(ctx context.Context, q store.Query, page store.Page) ([]models.User, error) {
	filter, err := translate(usersCollection, q)
	if err != nil {
		return nil, err
	}
	if page.Empty() {
		return []models.User{}, nil
	}

	cur, err := c.coll.Find(ctx, filter, findOptions(page))
	if err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	out := make([]models.User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.shape())
	}
	return out, nil
}

func (c users) FindOne(ctx context.Context, q store.Query) (*models.User, error) {
	filter, err := translate(usersCollection, q)
	if err != nil {
		return nil, err
	}

	var doc userDoc
	if err := c.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	u := doc.shape()
	return &u, nil
}

func (c users) InsertOne(ctx context.Context, u *models.User) (store.InsertResult, error) {
	seq, err := c.seq.next(ctx)
	if err != nil {
		return store.InsertResult{}, err
	}
	doc := userDoc{ID: u.ID, Username: u.Username, Password: u.Password, CreatedAt: u.CreatedAt, Seq: seq}
	if _, err := c.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return store.InsertResult{}, store.ErrDuplicateUsername
		}
		return store.InsertResult{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return store.InsertResult{InsertedID: u.ID}, nil
}

func (c users) Count(ctx context.Context, q store.Query) (int64, error) {
	filter, err := translate(usersCollection, q)
	if err != nil {
		return 0, err
	}
	n, err := c.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
