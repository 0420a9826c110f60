// Package relational implements the store contract on gorm. It runs against
// Postgres in deployment and SQLite for local development and tests.
package relational

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/pageza/forkcast/backend/internal/store"
)

// Store is a gorm-backed store.
type Store struct {
	db *gorm.DB
}

// New wraps an open gorm connection. Call Migrate before first use on an
// empty database.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() store.UserCollection         { return users{s.db} }
func (s *Store) Meals() store.MealCollection         { return meals{s.db} }
func (s *Store) MealPlans() store.MealPlanCollection { return mealPlans{s.db} }

// Name reports the SQL dialect in use.
func (s *Store) Name() string { return s.db.Dialector.Name() }

// DB exposes the underlying connection.
func (s *Store) DB() *gorm.DB { return s.db }

// Migrate creates or updates the users, meals and meal_plans tables along
// with their unique indexes, then fills the seq and folded search columns
// of rows that predate them.
func (s *Store) Migrate(ctx context.Context) error {
	tx := s.db.WithContext(ctx)
	if err := tx.AutoMigrate(&userRow{}, &mealRow{}, &mealPlanRow{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	for _, table := range []string{"users", "meals", "meal_plans"} {
		if err := migrateSeq(tx, table); err != nil {
			return err
		}
	}
	return backfillFolds(tx)
}

// backfillFolds computes the folded search columns in Go for meals stored
// before those columns were added. Titles are never empty, so an empty
// title_fold marks a row that still needs them.
func backfillFolds(tx *gorm.DB) error {
	var rows []mealRow
	err := tx.Select("id", "title", "ingredients", "instructions").
		Where("title_fold = ''").
		Find(&rows).Error
	if err != nil {
		return fmt.Errorf("failed to load meals for search backfill: %w", err)
	}
	for _, r := range rows {
		err := tx.Model(&mealRow{}).Where("id = ?", r.ID).Updates(map[string]interface{}{
			"title_fold":        store.Fold(r.Title),
			"ingredients_fold":  store.Fold(r.Ingredients),
			"instructions_fold": store.Fold(r.Instructions),
		}).Error
		if err != nil {
			return fmt.Errorf("failed to backfill search columns for meal %s: %w", r.ID, err)
		}
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

// isUniqueViolation recognizes unique constraint errors from Postgres
// (lib/pq or gorm's translated error) and SQLite.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}
