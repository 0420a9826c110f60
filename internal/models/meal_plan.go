package models

import (
	"fmt"
	"time"
)

// MealType is the slot of the day a meal is planned for.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
	Dinner    MealType = "dinner"
)

// DateLayout is the calendar date format used by meal plans.
const DateLayout = "2006-01-02"

// Valid reports whether t is one of the known meal types.
func (t MealType) Valid() bool {
	switch t {
	case Breakfast, Lunch, Dinner:
		return true
	}
	return false
}

// Rank orders meal types through the day.
func (t MealType) Rank() int {
	switch t {
	case Breakfast:
		return 0
	case Lunch:
		return 1
	case Dinner:
		return 2
	}
	return 3
}

// MealPlanEntry places a meal in one user's calendar slot.
type MealPlanEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Date      string    `json:"date"`
	MealType  MealType  `json:"mealType"`
	MealID    string    `json:"mealId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	User      *UserRef  `json:"user"`
}

// Slot returns the identity of the calendar cell e occupies.
func (e MealPlanEntry) Slot() Slot {
	return Slot{UserID: e.UserID, Date: e.Date, MealType: e.MealType}
}

// Slot identifies a meal plan entry: at most one entry exists per slot.
type Slot struct {
	UserID   string
	Date     string
	MealType MealType
}

// ParseDate validates a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}
