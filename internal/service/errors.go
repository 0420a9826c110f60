package service

import (
	"errors"
	"fmt"
)

var (
	ErrUsernameTaken          = errors.New("username already exists")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
	ErrMealNotFound           = errors.New("meal not found")
	ErrSuggestionsUnavailable = errors.New("meal suggestions are not configured")
	ErrUploadsUnavailable     = errors.New("image uploads are not configured")
)

// ValidationError reports a rejected input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
