package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store"
	"github.com/pageza/forkcast/backend/internal/types"
)

const (
	DefaultMealPageSize = 20
	MaxMealPageSize     = 100
	unknownUser         = "Unknown User"
)

// ImageRemover deletes a stored image uploaded by ownerID. URLs the
// remover does not manage are left alone.
type ImageRemover interface {
	Delete(ctx context.Context, ownerID, url string) error
}

// ListMealsParams selects a page of the meal feed.
type ListMealsParams struct {
	UserID string
	Search string
	Skip   int
	Limit  int
}

// MealService handles meal business logic
type MealService struct {
	meals  store.MealCollection
	images ImageRemover
	log    *zap.Logger
	now    func() time.Time
}

func NewMealService(st store.Store, images ImageRemover, log *zap.Logger) *MealService {
	return &MealService{
		meals:  st.Meals(),
		images: images,
		log:    log.With(zap.String("component", "meals")),
		now:    time.Now,
	}
}

// List returns meals newest first, optionally restricted to one author and
// a search term.
func (s *MealService) List(ctx context.Context, p ListMealsParams) ([]models.Meal, error) {
	q := store.Query{}
	if p.UserID != "" {
		q = q.And(store.ByUserID(p.UserID))
	}
	if term := strings.TrimSpace(p.Search); term != "" {
		q = q.And(store.TextSearch(term))
	}

	page := store.Page{Order: store.NewestFirst, Offset: p.Skip, Limit: clampLimit(p.Limit)}
	if page.Offset < 0 {
		page.Offset = 0
	}

	meals, err := s.meals.Find(ctx, q, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list meals: %w", err)
	}
	if meals == nil {
		meals = []models.Meal{}
	}
	for i := range meals {
		withAuthor(&meals[i])
	}
	return meals, nil
}

// Get returns one meal.
func (s *MealService) Get(ctx context.Context, id string) (*models.Meal, error) {
	meal, err := s.meals.FindOne(ctx, store.Where(store.ByID(id)))
	if err != nil {
		return nil, fmt.Errorf("failed to get meal: %w", err)
	}
	if meal == nil {
		return nil, ErrMealNotFound
	}
	withAuthor(meal)
	return meal, nil
}

// Create stores a new meal for userID.
func (s *MealService) Create(ctx context.Context, userID string, req *types.CreateMealRequest) (*models.Meal, error) {
	if req.Title == "" || req.Ingredients == "" || req.Instructions == "" {
		return nil, invalid("title", "Title, ingredients, and instructions are required")
	}

	now := s.now().UTC()
	meal := &models.Meal{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         req.Title,
		Ingredients:   req.Ingredients,
		Instructions:  req.Instructions,
		GalleryImages: req.GalleryImages,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if req.ImageURL != "" {
		url := req.ImageURL
		meal.ImageURL = &url
	}
	meal.Normalize()

	if _, err := s.meals.InsertOne(ctx, meal); err != nil {
		return nil, fmt.Errorf("failed to create meal: %w", err)
	}
	s.log.Info("meal created", zap.String("meal_id", meal.ID), zap.String("user_id", userID))
	return s.Get(ctx, meal.ID)
}

// Update applies a partial update to a meal owned by userID.
func (s *MealService) Update(ctx context.Context, id, userID string, req *types.UpdateMealRequest) (*models.Meal, error) {
	patch := models.MealPatch{
		Title:         req.Title,
		Ingredients:   req.Ingredients,
		Instructions:  req.Instructions,
		ImageURL:      req.ImageURL,
		GalleryImages: req.GalleryImages,
		UpdatedAt:     s.now().UTC(),
	}

	res, err := s.meals.UpdateOne(ctx, id, userID, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update meal: %w", err)
	}
	if res.Matched == 0 {
		return nil, ErrMealNotFound
	}
	return s.Get(ctx, id)
}

// Delete removes a meal owned by userID together with its uploaded cover
// image.
func (s *MealService) Delete(ctx context.Context, id, userID string) error {
	meal, err := s.meals.FindOne(ctx, store.Where(store.ByID(id), store.ByUserID(userID)))
	if err != nil {
		return fmt.Errorf("failed to get meal: %w", err)
	}
	if meal == nil {
		return ErrMealNotFound
	}

	res, err := s.meals.DeleteOne(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}
	if res.Deleted == 0 {
		return ErrMealNotFound
	}

	s.removeImage(ctx, meal)
	s.log.Info("meal deleted", zap.String("meal_id", id), zap.String("user_id", userID))
	return nil
}

// Copy saves someone else's meal into userID's collection.
func (s *MealService) Copy(ctx context.Context, id, userID string) (*models.Meal, error) {
	source, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req := &types.CreateMealRequest{
		Title:         fmt.Sprintf("%s (from %s)", source.Title, source.User.Username),
		Ingredients:   source.Ingredients,
		Instructions:  source.Instructions,
		GalleryImages: source.GalleryImages,
	}
	if source.ImageURL != nil {
		req.ImageURL = *source.ImageURL
	}
	return s.Create(ctx, userID, req)
}

// removeImage drops the cover image of a deleted meal. Gallery images and
// images copied from other users are kept.
func (s *MealService) removeImage(ctx context.Context, meal *models.Meal) {
	if s.images == nil || meal.ImageURL == nil {
		return
	}
	if err := s.images.Delete(ctx, meal.UserID, *meal.ImageURL); err != nil {
		s.log.Warn("failed to delete meal image", zap.String("meal_id", meal.ID), zap.String("url", *meal.ImageURL), zap.Error(err))
	}
}

// withAuthor fills in a placeholder author for meals whose owner is gone.
func withAuthor(m *models.Meal) {
	if m.User == nil {
		m.User = &models.UserRef{Username: unknownUser}
	}
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultMealPageSize
	case limit > MaxMealPageSize:
		return MaxMealPageSize
	}
	return limit
}
