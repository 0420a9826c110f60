package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pageza/forkcast/backend/internal/models"
	"github.com/pageza/forkcast/backend/internal/store/memory"
)

// clock hands out strictly increasing timestamps.
type clock struct {
	t time.Time
}

func newClock() *clock {
	return &clock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

type fixture struct {
	store *memory.Store
	auth  *AuthService
	meals *MealService
	plans *MealPlanService
	clock *clock
}

func newFixture(t *testing.T, images ImageRemover) *fixture {
	t.Helper()
	st := memory.New()
	clk := newClock()

	f := &fixture{
		store: st,
		auth:  NewAuthService(st.Users(), "test-secret", time.Hour, zap.NewNop()).WithBcryptCost(bcrypt.MinCost),
		meals: NewMealService(st, images, zap.NewNop()),
		plans: NewMealPlanService(st, zap.NewNop()),
		clock: clk,
	}
	f.auth.now = clk.Now
	f.meals.now = clk.Now
	f.plans.now = clk.Now
	return f
}

func (f *fixture) register(t *testing.T, username string) *models.User {
	t.Helper()
	user, _, err := f.auth.Register(context.Background(), username, "password123")
	require.NoError(t, err)
	return user
}
