package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListScan(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan(nil))
	assert.Equal(t, StringList{}, l)

	require.NoError(t, l.Scan([]byte(`["a.jpg","b.jpg"]`)))
	assert.Equal(t, StringList{"a.jpg", "b.jpg"}, l)

	require.NoError(t, l.Scan("null"))
	assert.Equal(t, StringList{}, l)

	assert.Error(t, l.Scan(42))
	assert.Error(t, l.Scan("not json"))
}

func TestStringListValue(t *testing.T) {
	v, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringList{"x"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["x"]`, v)
}

func TestMealPatchApply(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	original := "old.jpg"
	m := Meal{
		Title:         "Soup",
		Ingredients:   "water",
		Instructions:  "boil",
		ImageURL:      &original,
		GalleryImages: []string{"g1"},
	}

	MealPatch{Title: "Better Soup", UpdatedAt: now}.Apply(&m)

	assert.Equal(t, "Better Soup", m.Title)
	assert.Equal(t, "water", m.Ingredients)
	assert.Equal(t, "boil", m.Instructions)
	assert.Equal(t, "old.jpg", *m.ImageURL)
	assert.Equal(t, []string{"g1"}, m.GalleryImages)
	assert.Equal(t, now, m.UpdatedAt)

	MealPatch{GalleryImages: []string{}, UpdatedAt: now}.Apply(&m)
	assert.Empty(t, m.GalleryImages)
	assert.NotNil(t, m.GalleryImages)
}

func TestMealPatchFields(t *testing.T) {
	now := time.Now()
	fields := MealPatch{Instructions: "stir", UpdatedAt: now}.Fields()
	assert.Equal(t, map[string]interface{}{"instructions": "stir", "updatedAt": now}, fields)
}

func TestMealNormalizeAndClone(t *testing.T) {
	empty := ""
	m := Meal{ImageURL: &empty}
	m.Normalize()
	assert.Nil(t, m.ImageURL)
	assert.Equal(t, []string{}, m.GalleryImages)

	url := "a.jpg"
	m.ImageURL = &url
	m.User = &UserRef{ID: "u1", Username: "alice"}
	c := m.Clone()
	*c.ImageURL = "changed"
	c.User.Username = "mallory"
	assert.Equal(t, "a.jpg", *m.ImageURL)
	assert.Equal(t, "alice", m.User.Username)
}

func TestMealType(t *testing.T) {
	assert.True(t, Breakfast.Valid())
	assert.True(t, Dinner.Valid())
	assert.False(t, MealType("brunch").Valid())
	assert.Less(t, Breakfast.Rank(), Lunch.Rank())
	assert.Less(t, Lunch.Rank(), Dinner.Rank())
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2024-01-15")
	assert.NoError(t, err)
	_, err = ParseDate("15/01/2024")
	assert.Error(t, err)
}
