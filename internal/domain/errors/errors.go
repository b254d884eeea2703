package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrMasterNotFound = errors.New("master not found")
	ErrOrderNotFound  = errors.New("order not found")

	ErrAlreadyExists = errors.New("already exists")

	// ErrMasterBusy rejects an assignment against a master whose
	// availability flag is already taken by another open order.
	ErrMasterBusy = errors.New("master is busy")

	ErrOrderNotCompleted = errors.New("order is not completed")
	ErrOrderUnpriced     = errors.New("order has no price")
	ErrPaymentUnchanged  = errors.New("payment already in requested state")

	ErrInvalidLanguage = errors.New("invalid language")
	ErrEmptyName       = errors.New("name must not be empty")
)

// ValidationError reports required fields missing from a request.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// NewValidation builds a ValidationError for the given field names.
func NewValidation(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// AsValidation reports whether err carries field-level validation detail.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
