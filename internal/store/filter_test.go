package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextSearchMatches(t *testing.T) {
	assert.True(t, TextSearch("PASTA").Matches("Creamy pasta", ""))
	assert.True(t, TextSearch("egg").Matches("", "3 Eggs", ""))
	assert.False(t, TextSearch("tofu").Matches("Carbonara", "eggs", "boil"))
	assert.True(t, TextSearch("").Matches("anything"))
	assert.True(t, TextSearch("ÉCLAIR").Matches("Chocolate éclair"))
	assert.True(t, TextSearch("crème").Matches("CRÈME BRÛLÉE"))
}

func TestFoldHandlesNonASCII(t *testing.T) {
	assert.Equal(t, "éclair", Fold("ÉCLAIR"))
	assert.Equal(t, "straße", Fold("STRAßE"))
	assert.Equal(t, Fold("Ωmega"), Fold("ωMEGA"))
}

func TestDateRangeContains(t *testing.T) {
	r := DateRange{Start: "2024-01-15", End: "2024-01-21"}
	assert.True(t, r.Contains("2024-01-15"))
	assert.True(t, r.Contains("2024-01-21"))
	assert.False(t, r.Contains("2024-01-22"))
	assert.False(t, r.Contains("2024-01-14"))
}

func TestQueryAndDoesNotAlias(t *testing.T) {
	base := Where(ByUserID("u1"))
	a := base.And(ByID("m1"))
	b := base.And(TextSearch("x"))
	assert.Len(t, base.Filters, 1)
	assert.Equal(t, ByID("m1"), a.Filters[1])
	assert.Equal(t, TextSearch("x"), b.Filters[1])
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now\\`, EscapeLike(`50% off_now\`))
}

func TestSentinels(t *testing.T) {
	assert.True(t, errors.Is(ErrDuplicateUsername, ErrDuplicateKey))
	err := UnsupportedFilter("users", TextSearch("x"))
	assert.True(t, errors.Is(err, ErrUnsupportedFilter))
	assert.Contains(t, err.Error(), "users")
}
