package relational

import (
	"context"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seqValue records insertion order. It is assigned by the database on
// insert and breaks created_at ties so every backend pages rows the way
// they were written.
type seqValue int64

// GormValue makes gorm insert the next sequence number instead of the Go
// value. Postgres draws from a per-table sequence; other dialects take the
// table maximum plus one, which is safe behind a single writer connection.
func (seqValue) GormValue(_ context.Context, db *gorm.DB) clause.Expr {
	table := db.Statement.Table
	if db.Dialector.Name() == "postgres" {
		return clause.Expr{SQL: fmt.Sprintf("nextval('%s')", seqName(table))}
	}
	return clause.Expr{
		SQL:  "(SELECT COALESCE(MAX(seq), 0) + 1 FROM ?)",
		Vars: []interface{}{clause.Table{Name: table}},
	}
}

// Scan reads NULL as zero for rows written before the column was numbered.
func (v *seqValue) Scan(src interface{}) error {
	switch n := src.(type) {
	case nil:
		*v = 0
	case int64:
		*v = seqValue(n)
	case []byte:
		parsed, err := strconv.ParseInt(string(n), 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seq %q: %w", n, err)
		}
		*v = seqValue(parsed)
	default:
		return fmt.Errorf("unsupported seq type %T", src)
	}
	return nil
}

func seqName(table string) string { return table + "_seq" }

// migrateSeq creates the backing sequence where the dialect has one and
// numbers rows written before the seq column existed.
func migrateSeq(tx *gorm.DB, table string) error {
	if tx.Dialector.Name() == "postgres" {
		if err := tx.Exec(fmt.Sprintf("CREATE SEQUENCE IF NOT EXISTS %s", seqName(table))).Error; err != nil {
			return fmt.Errorf("failed to create sequence for %s: %w", table, err)
		}
		backfill := fmt.Sprintf("UPDATE %s SET seq = nextval('%s') WHERE seq IS NULL", table, seqName(table))
		if err := tx.Exec(backfill).Error; err != nil {
			return fmt.Errorf("failed to number %s: %w", table, err)
		}
		return nil
	}
	if err := tx.Exec(fmt.Sprintf("UPDATE %s SET seq = rowid WHERE seq IS NULL", table)).Error; err != nil {
		return fmt.Errorf("failed to number %s: %w", table, err)
	}
	return nil
}
