package store

import (
	"sort"
	"time"
)

// Order selects how results are sorted before pagination.
type Order int

const (
	// Unordered keeps the backend's natural order.
	Unordered Order = iota
	// NewestFirst sorts by createdAt descending.
	NewestFirst
	// OldestFirst sorts by createdAt ascending.
	OldestFirst
)

// NoLimit disables the limit of a Page.
const NoLimit = -1

// Page describes the slice of an ordered result set to return. Offsets past
// the end yield an empty result, as does a zero Limit.
type Page struct {
	Order  Order
	Offset int
	Limit  int
}

// All returns every result in the given order.
func All(order Order) Page {
	return Page{Order: order, Limit: NoLimit}
}

// Empty reports whether the page can never contain results.
func (p Page) Empty() bool {
	return p.Limit == 0
}

// Bounds clamps the page to a result set of length n and returns the
// half-open index range to keep.
func (p Page) Bounds(n int) (int, int) {
	start := p.Offset
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end := n
	if p.Limit >= 0 && start+p.Limit < end {
		end = start + p.Limit
	}
	return start, end
}

// Paginate orders items by createdAt according to p and returns the
// requested slice. Sorting is stable, so ties keep their input order. The
// input slice is not modified.
func Paginate[T any](items []T, createdAt func(T) time.Time, p Page) []T {
	if p.Empty() {
		return []T{}
	}

	ordered := make([]T, len(items))
	copy(ordered, items)

	switch p.Order {
	case NewestFirst:
		sort.SliceStable(ordered, func(i, j int) bool {
			return createdAt(ordered[i]).After(createdAt(ordered[j]))
		})
	case OldestFirst:
		sort.SliceStable(ordered, func(i, j int) bool {
			return createdAt(ordered[i]).Before(createdAt(ordered[j]))
		})
	}

	start, end := p.Bounds(len(ordered))
	return ordered[start:end]
}
