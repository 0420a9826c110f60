// Package seed loads the demo account and its sample meal.
package seed

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/service"
	"github.com/pageza/forkcast/backend/internal/store"
	"github.com/pageza/forkcast/backend/internal/types"
)

const (
	DemoUsername  = "demo"
	DemoPassword  = "password123"
	DemoMealTitle = "Demo Spaghetti Carbonara"
)

var demoMeal = types.CreateMealRequest{
	Title: DemoMealTitle,
	Ingredients: `400g spaghetti
200g pancetta or guanciale
4 large eggs
100g Pecorino Romano cheese
Black pepper to taste
Salt for pasta water`,
	Instructions: `1. Boil salted water and cook spaghetti according to package directions
2. While pasta cooks, dice pancetta and cook in a large pan until crispy
3. In a bowl, whisk together eggs, grated cheese, and black pepper
4. Reserve 1 cup pasta water before draining
5. Add hot pasta to the pan with pancetta
6. Remove from heat and quickly mix in egg mixture
7. Add pasta water gradually until creamy
8. Serve immediately with extra cheese and pepper`,
}

// Result reports what Run created.
type Result struct {
	User        *models.User
	UserCreated bool
	MealCreated bool
}

// Run creates the demo user and meal unless they already exist, so it is
// safe to run repeatedly.
func Run(ctx context.Context, st store.Store, auth *service.AuthService, meals *service.MealService, log *zap.Logger) (*Result, error) {
	res := &Result{}

	user, _, err := auth.Register(ctx, DemoUsername, DemoPassword)
	switch {
	case err == nil:
		res.UserCreated = true
	case errors.Is(err, service.ErrUsernameTaken):
		user, err = st.Users().FindOne(ctx, store.Where(store.ByUsername(DemoUsername)))
		if err != nil {
			return nil, fmt.Errorf("failed to look up demo user: %w", err)
		}
		if user == nil {
			return nil, errors.New("demo user vanished during seeding")
		}
	default:
		return nil, fmt.Errorf("failed to create demo user: %w", err)
	}
	res.User = user

	existing, err := meals.List(ctx, service.ListMealsParams{
		UserID: user.ID,
		Search: DemoMealTitle,
		Limit:  service.MaxMealPageSize,
	})
	if err != nil {
		return nil, err
	}
	for _, m := range existing {
		if m.Title == DemoMealTitle {
			log.Info("demo data already present", zap.String("user_id", user.ID))
			return res, nil
		}
	}

	req := demoMeal
	if _, err := meals.Create(ctx, user.ID, &req); err != nil {
		return nil, fmt.Errorf("failed to create demo meal: %w", err)
	}
	res.MealCreated = true

	log.Info("demo data seeded",
		zap.String("user_id", user.ID),
		zap.Bool("user_created", res.UserCreated),
	)
	return res, nil
}
