package match

import (
	"errors"
	"fmt"
)

// ValidationError reports a bad match setup or settings value.
type ValidationError struct {
	// Field names the offending input (e.g. "win_at", "team_a.player1").
	Field string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// IsValidationError returns true if err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
