package relational

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pageza/forkcast/backend/internal/store"
)

// searchCondition matches against the folded copies written on insert and
// update. SQL LOWER folds only ASCII on SQLite, so folding stays in Go.
const searchCondition = "(title_fold LIKE ? ESCAPE '\\' OR ingredients_fold LIKE ? ESCAPE '\\' OR instructions_fold LIKE ? ESCAPE '\\')"

// translate turns the filters of q into WHERE conditions for the named
// table. Filters the table cannot express are rejected.
func translate(tx *gorm.DB, table string, q store.Query) (*gorm.DB, error) {
	for _, f := range q.Filters {
		switch f := f.(type) {
		case store.ByID:
			tx = tx.Where(clause.Eq{Column: clause.Column{Table: table, Name: "id"}, Value: string(f)})
		case store.ByUserID:
			if table == "users" {
				return nil, store.UnsupportedFilter(table, f)
			}
			tx = tx.Where(clause.Eq{Column: clause.Column{Table: table, Name: "user_id"}, Value: string(f)})
		case store.ByUsername:
			if table != "users" {
				return nil, store.UnsupportedFilter(table, f)
			}
			tx = tx.Where(clause.Eq{Column: clause.Column{Table: table, Name: "username"}, Value: string(f)})
		case store.TextSearch:
			if table != "meals" {
				return nil, store.UnsupportedFilter(table, f)
			}
			if f == "" {
				continue
			}
			pattern := "%" + store.EscapeLike(store.Fold(string(f))) + "%"
			tx = tx.Where(searchCondition, pattern, pattern, pattern)
		case store.DateRange:
			if table != "meal_plans" {
				return nil, store.UnsupportedFilter(table, f)
			}
			date := clause.Column{Table: table, Name: "date"}
			tx = tx.Where(clause.Gte{Column: date, Value: f.Start}).Where(clause.Lte{Column: date, Value: f.End})
		default:
			return nil, store.UnsupportedFilter(table, f)
		}
	}
	return tx, nil
}

// paginate applies the order, offset and limit of p. Ties on created_at are
// broken by insertion order in both directions.
func paginate(tx *gorm.DB, table string, p store.Page) *gorm.DB {
	createdAt := clause.Column{Table: table, Name: "created_at"}
	seq := clause.Column{Table: table, Name: "seq"}

	switch p.Order {
	case store.NewestFirst:
		tx = tx.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: createdAt, Desc: true},
			{Column: seq},
		}})
	case store.OldestFirst:
		tx = tx.Order(clause.OrderBy{Columns: []clause.OrderByColumn{
			{Column: createdAt},
			{Column: seq},
		}})
	}
	if p.Offset > 0 {
		tx = tx.Offset(p.Offset)
	}
	if p.Limit >= 0 {
		tx = tx.Limit(p.Limit)
	}
	return tx
}
