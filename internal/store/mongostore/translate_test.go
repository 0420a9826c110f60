package mongostore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
)

func TestTranslateEmptyQuery(t *testing.T) {
	filter, err := translate(mealsCollection, store.Query{})
	require.NoError(t, err)
	assert.Equal(t, bson.D{}, filter)
}

func TestTranslateSingleFilter(t *testing.T) {
	filter, err := translate(usersCollection, store.Where(store.ByUsername("demo")))
	require.NoError(t, err)
	assert.Equal(t, bson.D{{Key: "username", Value: "demo"}}, filter)
}

func TestTranslateSearchQuotesRegex(t *testing.T) {
	filter, err := translate(mealsCollection, store.Where(store.TextSearch("1+1 (Easy)")))
	require.NoError(t, err)

	want := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "titleFold", Value: bson.D{{Key: "$regex", Value: `1\+1 \(easy\)`}}}},
		bson.D{{Key: "ingredientsFold", Value: bson.D{{Key: "$regex", Value: `1\+1 \(easy\)`}}}},
		bson.D{{Key: "instructionsFold", Value: bson.D{{Key: "$regex", Value: `1\+1 \(easy\)`}}}},
	}}}
	assert.Equal(t, want, filter)
}

func TestTranslateSearchFoldsNonASCII(t *testing.T) {
	filter, err := translate(mealsCollection, store.Where(store.TextSearch("ÉCLAIR")))
	require.NoError(t, err)

	or := filter[0].Value.(bson.A)
	assert.Equal(t, bson.D{{Key: "titleFold", Value: bson.D{{Key: "$regex", Value: "éclair"}}}}, or[0])
}

func TestNewMealDocFoldsSearchableText(t *testing.T) {
	doc := newMealDoc(&models.Meal{ID: "m1", Title: "ÉCLAIR", Ingredients: "Crème", Instructions: "BAKE"}, 7)
	assert.Equal(t, "ÉCLAIR", doc.Title)
	assert.Equal(t, "éclair", doc.TitleFold)
	assert.Equal(t, "crème", doc.IngredientsFold)
	assert.Equal(t, "bake", doc.InstructionsFold)
	assert.EqualValues(t, 7, doc.Seq)
	assert.Equal(t, []string{}, doc.GalleryImages)
}

func TestMealSetFoldsPatchedText(t *testing.T) {
	set := mealSet(models.MealPatch{Title: "CRÈME", ImageURL: "a.jpg"})
	assert.Equal(t, "CRÈME", set["title"])
	assert.Equal(t, "crème", set["titleFold"])
	assert.Equal(t, "a.jpg", set["imageUrl"])
	assert.NotContains(t, set, "ingredientsFold")
}

func TestTranslateCombinesWithAnd(t *testing.T) {
	filter, err := translate(mealPlansCollection, store.Where(
		store.ByUserID("u1"),
		store.DateRange{Start: "2024-01-01", End: "2024-01-07"},
	))
	require.NoError(t, err)

	want := bson.D{{Key: "$and", Value: bson.A{
		bson.D{{Key: "userId", Value: "u1"}},
		bson.D{{Key: "date", Value: bson.D{{Key: "$gte", Value: "2024-01-01"}, {Key: "$lte", Value: "2024-01-07"}}}},
	}}}
	assert.Equal(t, want, filter)
}

func TestTranslateRejectsUnsupported(t *testing.T) {
	_, err := translate(usersCollection, store.Where(store.ByUserID("u1")))
	assert.ErrorIs(t, err, store.ErrUnsupportedFilter)

	_, err = translate(mealsCollection, store.Where(store.DateRange{}))
	assert.ErrorIs(t, err, store.ErrUnsupportedFilter)
}

func TestFindOptions(t *testing.T) {
	opts := findOptions(store.Page{Order: store.NewestFirst, Offset: 5, Limit: 10})
	require.NotNil(t, opts.Skip)
	require.NotNil(t, opts.Limit)
	assert.EqualValues(t, 5, *opts.Skip)
	assert.EqualValues(t, 10, *opts.Limit)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}, {Key: "seq", Value: 1}}, opts.Sort)

	oldest := findOptions(store.All(store.OldestFirst))
	assert.Equal(t, bson.D{{Key: "createdAt", Value: 1}, {Key: "seq", Value: 1}}, oldest.Sort)

	unlimited := findOptions(store.All(store.Unordered))
	assert.Nil(t, unlimited.Limit)
	assert.Nil(t, unlimited.Sort)
}

func TestUniq(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, uniq([]string{"a", "b", "a"}))
}
