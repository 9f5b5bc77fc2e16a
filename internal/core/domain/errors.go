package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrAccountNotFound     = errors.New("account not found")
	ErrEmailTaken          = errors.New("an account with this email already exists")
	ErrSuperAdminProtected = errors.New("cannot delete super-admin account")
	ErrBootstrapClosed     = errors.New("initial account already exists")
	ErrTooManyAttempts     = errors.New("too many failed login attempts")

	ErrNotFound          = errors.New("document not found")
	ErrDuplicateDocument = errors.New("document already exists")
	ErrCategoryExists    = errors.New("category already exists")
)

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for field.
func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
