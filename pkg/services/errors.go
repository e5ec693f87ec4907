package services

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup that matched nothing. The API layer maps it
// to 404; everything else in the service layer treats it as a normal result.
var ErrNotFound = errors.New("entity not found")

// ValidationError reports client input the service refused. The API layer
// maps it to 400 with the message passed through.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// NewValidationError builds a ValidationError for one named field.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
