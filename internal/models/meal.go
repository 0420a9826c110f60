package models

import "time"

// Meal is a recipe posted by a user.
type Meal struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Title         string    `json:"title"`
	Ingredients   string    `json:"ingredients"`
	Instructions  string    `json:"instructions"`
	ImageURL      *string   `json:"imageUrl"`
	GalleryImages []string  `json:"galleryImages"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	User          *UserRef  `json:"user"`
}

// Normalize fills the defaults every stored meal is expected to carry.
func (m *Meal) Normalize() {
	if m.GalleryImages == nil {
		m.GalleryImages = []string{}
	}
	if m.ImageURL != nil && *m.ImageURL == "" {
		m.ImageURL = nil
	}
}

// Clone returns a deep copy of m.
func (m Meal) Clone() Meal {
	out := m
	if m.ImageURL != nil {
		url := *m.ImageURL
		out.ImageURL = &url
	}
	if m.GalleryImages != nil {
		out.GalleryImages = append([]string{}, m.GalleryImages...)
	}
	if m.User != nil {
		ref := *m.User
		out.User = &ref
	}
	return out
}

// MealPatch is a partial update of a meal. Empty strings and a nil gallery
// leave the stored value untouched; UpdatedAt is always written.
type MealPatch struct {
	Title         string
	Ingredients   string
	Instructions  string
	ImageURL      string
	GalleryImages []string
	UpdatedAt     time.Time
}

// Apply writes the set fields of p onto m.
func (p MealPatch) Apply(m *Meal) {
	if p.Title != "" {
		m.Title = p.Title
	}
	if p.Ingredients != "" {
		m.Ingredients = p.Ingredients
	}
	if p.Instructions != "" {
		m.Instructions = p.Instructions
	}
	if p.ImageURL != "" {
		url := p.ImageURL
		m.ImageURL = &url
	}
	if p.GalleryImages != nil {
		m.GalleryImages = append([]string{}, p.GalleryImages...)
	}
	m.UpdatedAt = p.UpdatedAt
}

// Fields returns the patch as a column/value map keyed by the canonical
// camelCase field names.
func (p MealPatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{"updatedAt": p.UpdatedAt}
	if p.Title != "" {
		fields["title"] = p.Title
	}
	if p.Ingredients != "" {
		fields["ingredients"] = p.Ingredients
	}
	if p.Instructions != "" {
		fields["instructions"] = p.Instructions
	}
	if p.ImageURL != "" {
		fields["imageUrl"] = p.ImageURL
	}
	if p.GalleryImages != nil {
		fields["galleryImages"] = append([]string{}, p.GalleryImages...)
	}
	return fields
}
