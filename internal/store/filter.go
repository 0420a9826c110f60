package store

import "strings"

// Filter is one predicate of a query. The set of filters is closed: every
// backend translates each of the types below or rejects it with
// ErrUnsupportedFilter.
type Filter interface {
	filter()
}

// ByID matches the document whose id equals the value.
type ByID string

// ByUserID matches documents owned by the user.
type ByUserID string

// ByUsername matches the user with exactly this username.
type ByUsername string

// TextSearch is a case-insensitive substring match over a meal's title,
// ingredients and instructions. An empty term matches every meal.
type TextSearch string

// DateRange matches meal plan entries with Start <= date <= End. Dates are
// YYYY-MM-DD strings, so lexical and chronological order agree.
type DateRange struct {
	Start string
	End   string
}

func (ByID) filter()       {}
func (ByUserID) filter()   {}
func (ByUsername) filter() {}
func (TextSearch) filter() {}
func (DateRange) filter()  {}

// Query is the conjunction of its filters. The zero Query matches everything.
type Query struct {
	Filters []Filter
}

// Where builds a query from filters.
func Where(filters ...Filter) Query {
	return Query{Filters: filters}
}

// And returns a copy of q with more filters.
func (q Query) And(filters ...Filter) Query {
	out := make([]Filter, 0, len(q.Filters)+len(filters))
	out = append(out, q.Filters...)
	out = append(out, filters...)
	return Query{Filters: out}
}

// Matches reports whether text contains the term, ignoring case.
func (t TextSearch) Matches(text ...string) bool {
	term := Fold(string(t))
	if term == "" {
		return true
	}
	for _, s := range text {
		if strings.Contains(Fold(s), term) {
			return true
		}
	}
	return false
}

// Contains reports whether date lies within the range, inclusive.
func (r DateRange) Contains(date string) bool {
	return date >= r.Start && date <= r.End
}

// Fold is the case folding every backend applies to searchable text. Stores
// that cannot fold Unicode themselves persist Fold of each searchable field
// next to the original and match against that.
func Fold(s string) string {
	return strings.ToLower(s)
}

// EscapeLike escapes the LIKE wildcards in term using backslash.
func EscapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}
