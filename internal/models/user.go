package models

import "time"

// User is a registered account. Password holds the bcrypt hash and is never
// serialized.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserRef is the owner reference embedded in meals and meal plan entries.
type UserRef struct {
	ID       string `json:"id,omitempty"`
	Username string `json:"username"`
}

// Ref returns the public reference for u.
func (u *User) Ref() *UserRef {
	if u == nil {
		return nil
	}
	return &UserRef{ID: u.ID, Username: u.Username}
}
