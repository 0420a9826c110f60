package mongostore

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pageza/forkcast/backend/internal/store"
)

var searchFields = []string{"titleFold", "ingredientsFold", "instructionsFold"}

// translate builds the BSON filter for q on the named collection.
func translate(collection string, q store.Query) (bson.D, error) {
	var conds []bson.D
	for _, f := range q.Filters {
		switch f := f.(type) {
		case store.ByID:
			conds = append(conds, bson.D{{Key: "_id", Value: string(f)}})
		case store.ByUserID:
			if collection == usersCollection {
				return nil, store.UnsupportedFilter(collection, f)
			}
			conds = append(conds, bson.D{{Key: "userId", Value: string(f)}})
		case store.ByUsername:
			if collection != usersCollection {
				return nil, store.UnsupportedFilter(collection, f)
			}
			conds = append(conds, bson.D{{Key: "username", Value: string(f)}})
		case store.TextSearch:
			if collection != mealsCollection {
				return nil, store.UnsupportedFilter(collection, f)
			}
			if f == "" {
				continue
			}
			pattern := regexp.QuoteMeta(store.Fold(string(f)))
			or := make(bson.A, 0, len(searchFields))
			for _, field := range searchFields {
				or = append(or, bson.D{{Key: field, Value: bson.D{{Key: "$regex", Value: pattern}}}})
			}
			conds = append(conds, bson.D{{Key: "$or", Value: or}})
		case store.DateRange:
			if collection != mealPlansCollection {
				return nil, store.UnsupportedFilter(collection, f)
			}
			conds = append(conds, bson.D{{Key: "date", Value: bson.D{
				{Key: "$gte", Value: f.Start},
				{Key: "$lte", Value: f.End},
			}}})
		default:
			return nil, store.UnsupportedFilter(collection, f)
		}
	}

	switch len(conds) {
	case 0:
		return bson.D{}, nil
	case 1:
		return conds[0], nil
	}
	and := make(bson.A, 0, len(conds))
	for _, c := range conds {
		and = append(and, c)
	}
	return bson.D{{Key: "$and", Value: and}}, nil
}

// findOptions maps a page to driver options. Ties on createdAt are broken
// by insertion order. Callers handle zero limits, which MongoDB reads as
// unlimited.
func findOptions(p store.Page) *options.FindOptions {
	opts := options.Find()
	switch p.Order {
	case store.NewestFirst:
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "seq", Value: 1}})
	case store.OldestFirst:
		opts.SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "seq", Value: 1}})
	}
	if p.Offset > 0 {
		opts.SetSkip(int64(p.Offset))
	}
	if p.Limit > 0 {
		opts.SetLimit(int64(p.Limit))
	}
	return opts
}
