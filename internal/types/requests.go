package types

import "github.com/pageza/forkcast/backend/internal/models"

// CredentialsRequest is the body of register and login calls.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// CreateMealRequest represents the request body for posting a meal
type CreateMealRequest struct {
	Title         string   `json:"title"`
	Ingredients   string   `json:"ingredients"`
	Instructions  string   `json:"instructions"`
	ImageURL      string   `json:"imageUrl"`
	GalleryImages []string `json:"galleryImages"`
}

// UpdateMealRequest is a partial update: empty fields are left untouched and
// an absent galleryImages keeps the current gallery.
type UpdateMealRequest struct {
	Title         string   `json:"title"`
	Ingredients   string   `json:"ingredients"`
	Instructions  string   `json:"instructions"`
	ImageURL      string   `json:"imageUrl"`
	GalleryImages []string `json:"galleryImages"`
}

// MealPlanRequest assigns a meal to a calendar slot.
type MealPlanRequest struct {
	Date     string `json:"date"`
	MealType string `json:"mealType"`
	MealID   string `json:"mealId"`
}

// MealPlanSlotRequest identifies the slot to clear.
type MealPlanSlotRequest struct {
	Date     string `json:"date"`
	MealType string `json:"mealType"`
}

// SuggestionRequest describes what the user wants ideas for.
type SuggestionRequest struct {
	Prompt      string   `json:"prompt"`
	Ingredients []string `json:"ingredients"`
	Dietary     string   `json:"dietary"`
	Cuisine     string   `json:"cuisine"`
	MealType    string   `json:"mealType"`
}

// SuggestionResponse carries the model's free-form answer.
type SuggestionResponse struct {
	Suggestions string `json:"suggestions"`
	Cached      bool   `json:"cached"`
}

// UploadResponse describes a stored image.
type UploadResponse struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}
