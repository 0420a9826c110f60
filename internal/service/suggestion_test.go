package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/internal/types"
)

func TestFormatPrompt(t *testing.T) {
	got := FormatPrompt(&types.SuggestionRequest{
		Prompt:      "Something quick",
		Ingredients: []string{"rice", "eggs"},
		Dietary:     "vegetarian",
		Cuisine:     "Korean",
		MealType:    "dinner",
	})
	want := "Something quick" +
		"\n\nIngredients I have available: rice, eggs" +
		"\n\nDietary requirements: vegetarian" +
		"\n\nPreferred cuisine: Korean" +
		"\n\nMeal type: dinner" +
		"\n\nPlease provide detailed, practical meal suggestions that I can actually cook."
	assert.Equal(t, want, got)

	assert.Equal(t,
		"Please suggest some meal ideas\n\nPlease provide detailed, practical meal suggestions that I can actually cook.",
		FormatPrompt(&types.SuggestionRequest{}))
}

type fakeCompletions struct {
	calls  atomic.Int32
	status int
	body   string
	last   ChatRequest
	auth   string
}

func (f *fakeCompletions) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)
	f.auth = r.Header.Get("Authorization")
	_ = json.NewDecoder(r.Body).Decode(&f.last)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = w.Write([]byte(f.body))
}

func newSuggestionService(t *testing.T, handler http.Handler, cache *redis.Client) *SuggestionService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewSuggestionService(SuggestionConfig{APIKey: "sk-test", APIURL: srv.URL, Model: "gpt-4o-mini"}, cache, zap.NewNop())
}

func TestSuggestCallsChatCompletions(t *testing.T) {
	fake := &fakeCompletions{
		status: http.StatusOK,
		body:   `{"choices":[{"message":{"role":"assistant","content":"1. Bibimbap"}}]}`,
	}
	svc := newSuggestionService(t, fake, nil)

	resp, err := svc.Suggest(context.Background(), &types.SuggestionRequest{Cuisine: "Korean"})
	require.NoError(t, err)
	assert.Equal(t, "1. Bibimbap", resp.Suggestions)
	assert.False(t, resp.Cached)

	assert.Equal(t, "Bearer sk-test", fake.auth)
	assert.Equal(t, "gpt-4o-mini", fake.last.Model)
	assert.Equal(t, 1000, fake.last.MaxTokens)
	assert.InDelta(t, 0.7, fake.last.Temperature, 1e-9)
	require.Len(t, fake.last.Messages, 2)
	assert.Equal(t, "system", fake.last.Messages[0].Role)
	assert.Contains(t, fake.last.Messages[1].Content, "Preferred cuisine: Korean")
}

func TestSuggestUsesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = cache.Close() })

	fake := &fakeCompletions{
		status: http.StatusOK,
		body:   `{"choices":[{"message":{"role":"assistant","content":"1. Tacos"}}]}`,
	}
	svc := newSuggestionService(t, fake, cache)
	req := &types.SuggestionRequest{Prompt: "taco night"}

	first, err := svc.Suggest(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := svc.Suggest(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, "1. Tacos", second.Suggestions)
	assert.EqualValues(t, 1, fake.calls.Load())

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.Greater(t, mr.TTL(keys[0]).Seconds(), 0.0)
}

func TestSuggestSurvivesCacheOutage(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = cache.Close() })
	mr.Close()

	fake := &fakeCompletions{
		status: http.StatusOK,
		body:   `{"choices":[{"message":{"role":"assistant","content":"1. Curry"}}]}`,
	}
	svc := newSuggestionService(t, fake, cache)

	resp, err := svc.Suggest(context.Background(), &types.SuggestionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "1. Curry", resp.Suggestions)
}

func TestSuggestReportsAPIError(t *testing.T) {
	fake := &fakeCompletions{
		status: http.StatusUnauthorized,
		body:   `{"error":{"message":"Incorrect API key provided"}}`,
	}
	svc := newSuggestionService(t, fake, nil)

	_, err := svc.Suggest(context.Background(), &types.SuggestionRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestSuggestEmptyAnswer(t *testing.T) {
	fake := &fakeCompletions{status: http.StatusOK, body: `{"choices":[]}`}
	svc := newSuggestionService(t, fake, nil)

	resp, err := svc.Suggest(context.Background(), &types.SuggestionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "No suggestions available", resp.Suggestions)
}

func TestSuggestDisabledWithoutKey(t *testing.T) {
	svc := NewSuggestionService(SuggestionConfig{}, nil, zap.NewNop())
	assert.False(t, svc.Enabled())

	_, err := svc.Suggest(context.Background(), &types.SuggestionRequest{})
	assert.ErrorIs(t, err, ErrSuggestionsUnavailable)
}
