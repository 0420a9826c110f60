package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
)

// PlannedMeal is a calendar entry with its meal resolved.
type PlannedMeal struct {
	models.MealPlanEntry
	Meal  *models.Meal `json:"meal"`
	IsOwn bool         `json:"isOwn"`
}

// MealPlanService manages users' meal calendars.
type MealPlanService struct {
	plans store.MealPlanCollection
	meals store.MealCollection
	log   *zap.Logger
	now   func() time.Time
}

func NewMealPlanService(st store.Store, log *zap.Logger) *MealPlanService {
	return &MealPlanService{
		plans: st.MealPlans(),
		meals: st.Meals(),
		log:   log.With(zap.String("component", "meal_plans")),
		now:   time.Now,
	}
}

// Range returns the entries between start and end inclusive, ordered by
// date and then through the day. With includeOthers, every user's entries
// are returned and the caller's own entry sorts last within a slot. Entries
// pointing at deleted meals are skipped.
func (s *MealPlanService) Range(ctx context.Context, userID, start, end string, includeOthers bool) ([]PlannedMeal, error) {
	if _, err := models.ParseDate(start); err != nil {
		return nil, invalid("startDate", err.Error())
	}
	if _, err := models.ParseDate(end); err != nil {
		return nil, invalid("endDate", err.Error())
	}
	if start > end {
		return nil, invalid("endDate", "endDate must not be before startDate")
	}

	q := store.Where(store.DateRange{Start: start, End: end})
	if !includeOthers {
		q = q.And(store.ByUserID(userID))
	}

	entries, err := s.plans.Find(ctx, q, store.All(store.OldestFirst))
	if err != nil {
		return nil, fmt.Errorf("failed to load meal plan: %w", err)
	}

	meals := make(map[string]*models.Meal)
	out := make([]PlannedMeal, 0, len(entries))
	for _, e := range entries {
		meal, ok := meals[e.MealID]
		if !ok {
			meal, err = s.meals.FindOne(ctx, store.Where(store.ByID(e.MealID)))
			if err != nil {
				return nil, fmt.Errorf("failed to load planned meal: %w", err)
			}
			meals[e.MealID] = meal
		}
		if meal == nil {
			s.log.Debug("skipping plan entry for deleted meal", zap.String("entry_id", e.ID), zap.String("meal_id", e.MealID))
			continue
		}
		withAuthor(meal)
		out = append(out, PlannedMeal{MealPlanEntry: e, Meal: meal, IsOwn: e.UserID == userID})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.MealType.Rank() != b.MealType.Rank() {
			return a.MealType.Rank() < b.MealType.Rank()
		}
		return !a.IsOwn && b.IsOwn
	})
	return out, nil
}

// Assign puts mealID into the caller's slot, replacing whatever was there.
func (s *MealPlanService) Assign(ctx context.Context, userID, date string, mealType models.MealType, mealID string) (*models.MealPlanEntry, error) {
	if date == "" || mealType == "" || mealID == "" {
		return nil, invalid("date", "Date, meal type, and meal ID are required")
	}
	if _, err := models.ParseDate(date); err != nil {
		return nil, invalid("date", err.Error())
	}
	if !mealType.Valid() {
		return nil, invalid("mealType", "Meal type must be breakfast, lunch, or dinner")
	}

	meal, err := s.meals.FindOne(ctx, store.Where(store.ByID(mealID)))
	if err != nil {
		return nil, fmt.Errorf("failed to get meal: %w", err)
	}
	if meal == nil {
		return nil, ErrMealNotFound
	}

	now := s.now().UTC()
	entry := &models.MealPlanEntry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      date,
		MealType:  mealType,
		MealID:    mealID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	res, err := s.plans.Upsert(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to save meal plan: %w", err)
	}
	entry.ID = res.ID

	s.log.Info("meal planned",
		zap.String("user_id", userID),
		zap.String("date", date),
		zap.String("meal_type", string(mealType)),
		zap.String("meal_id", mealID),
		zap.Bool("replaced", res.Replaced),
	)
	return entry, nil
}

// Remove clears the caller's slot and reports how many entries went away.
func (s *MealPlanService) Remove(ctx context.Context, userID, date string, mealType models.MealType) (int64, error) {
	if date == "" || mealType == "" {
		return 0, invalid("date", "Date and meal type are required")
	}
	if _, err := models.ParseDate(date); err != nil {
		return 0, invalid("date", err.Error())
	}
	if !mealType.Valid() {
		return 0, invalid("mealType", "Meal type must be breakfast, lunch, or dinner")
	}

	res, err := s.plans.DeleteSlot(ctx, models.Slot{UserID: userID, Date: date, MealType: mealType})
	if err != nil {
		return 0, fmt.Errorf("failed to remove meal plan: %w", err)
	}
	return res.Deleted, nil
}
