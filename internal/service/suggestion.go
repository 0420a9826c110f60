package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/internal/types"
)

const (
	suggestionCachePrefix = "meal_suggestions:"
	suggestionCacheTTL    = time.Hour
	noSuggestions         = "No suggestions available"
)

const suggestionSystemPrompt = `You are a culinary expert AI assistant for Forkcast, a meal planning app. Your role is to suggest delicious, creative meal ideas based on user preferences, dietary restrictions, available ingredients, or desired cuisines.

Please provide 3-5 specific meal suggestions in a clear, organized format. For each suggestion, include:
- Meal name
- Brief description (1-2 sentences)
- Key ingredients
- Estimated cooking time
- Difficulty level (Easy/Medium/Hard)

Format your response as a numbered list with clear sections for each meal.`

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of a chat completions call.
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

// ChatResponse is the subset of a chat completions answer we read.
type ChatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// SuggestionConfig configures the chat completions client.
type SuggestionConfig struct {
	APIKey string
	APIURL string
	Model  string
}

// SuggestionService asks a language model for meal ideas. Answers are cached
// in Redis when a client is given.
type SuggestionService struct {
	cfg    SuggestionConfig
	client *http.Client
	cache  *redis.Client
	log    *zap.Logger
}

func NewSuggestionService(cfg SuggestionConfig, cache *redis.Client, log *zap.Logger) *SuggestionService {
	return &SuggestionService{
		cfg:    cfg,
		client: &http.Client{Timeout: 60 * time.Second},
		cache:  cache,
		log:    log.With(zap.String("component", "suggestions")),
	}
}

// Enabled reports whether an API key is configured.
func (s *SuggestionService) Enabled() bool {
	return s.cfg.APIKey != ""
}

// Suggest returns meal ideas for the request.
func (s *SuggestionService) Suggest(ctx context.Context, req *types.SuggestionRequest) (*types.SuggestionResponse, error) {
	if !s.Enabled() {
		return nil, ErrSuggestionsUnavailable
	}

	prompt := FormatPrompt(req)
	key := suggestionCachePrefix + hashPrompt(s.cfg.Model, prompt)

	if cached, ok := s.cached(ctx, key); ok {
		return &types.SuggestionResponse{Suggestions: cached, Cached: true}, nil
	}

	answer, err := s.complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate meal suggestions: %w", err)
	}

	if s.cache != nil && answer != noSuggestions {
		if err := s.cache.Set(ctx, key, answer, suggestionCacheTTL).Err(); err != nil {
			s.log.Warn("failed to cache suggestions", zap.Error(err))
		}
	}
	return &types.SuggestionResponse{Suggestions: answer}, nil
}

func (s *SuggestionService) cached(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	val, err := s.cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("suggestion cache lookup failed", zap.Error(err))
		}
		return "", false
	}
	return val, true
}

func (s *SuggestionService) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(ChatRequest{
		Model: s.cfg.Model,
		Messages: []Message{
			{Role: "system", Content: suggestionSystemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   1000,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.APIURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)

	start := time.Now()
	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var result ChatResponse
	decodeErr := json.Unmarshal(raw, &result)

	if resp.StatusCode != http.StatusOK {
		msg := "Failed to get AI response"
		if decodeErr == nil && result.Error != nil && result.Error.Message != "" {
			msg = result.Error.Message
		}
		s.log.Error("chat completion failed", zap.Int("status", resp.StatusCode), zap.String("message", msg))
		return "", errors.New(msg)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("failed to decode response: %w", decodeErr)
	}

	s.log.Debug("chat completion finished", zap.Duration("latency", time.Since(start)))
	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return noSuggestions, nil
	}
	return result.Choices[0].Message.Content, nil
}

// FormatPrompt turns a suggestion request into the user message.
func FormatPrompt(req *types.SuggestionRequest) string {
	var b strings.Builder
	if req.Prompt != "" {
		b.WriteString(req.Prompt)
	} else {
		b.WriteString("Please suggest some meal ideas")
	}

	if len(req.Ingredients) > 0 {
		fmt.Fprintf(&b, "\n\nIngredients I have available: %s", strings.Join(req.Ingredients, ", "))
	}
	if req.Dietary != "" {
		fmt.Fprintf(&b, "\n\nDietary requirements: %s", req.Dietary)
	}
	if req.Cuisine != "" {
		fmt.Fprintf(&b, "\n\nPreferred cuisine: %s", req.Cuisine)
	}
	if req.MealType != "" {
		fmt.Fprintf(&b, "\n\nMeal type: %s", req.MealType)
	}
	b.WriteString("\n\nPlease provide detailed, practical meal suggestions that I can actually cook.")
	return b.String()
}

func hashPrompt(model, prompt string) string {
	sum := sha256.Sum256([]byte(model + "\x00" + prompt))
	return hex.EncodeToString(sum[:])
}
