package utils

import (
	"fmt"
	"strings"
)

// ============================================================================
// STANDARDIZED ERROR HELPERS
// ============================================================================

// ErrorWrapper provides standardized error handling patterns
type ErrorWrapper struct {
	context string
}

// NewErrorWrapper creates a new error wrapper with context
func NewErrorWrapper(context string) *ErrorWrapper {
	return &ErrorWrapper{context: context}
}

// Wrapf wraps an error with context and formatting
func (e *ErrorWrapper) Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", e.context, message, err)
}

// Failf creates a new error with context and formatting
func (e *ErrorWrapper) Failf(format string, args ...any) error {
	message := fmt.Sprintf(format, args...)
	return Errorf("%s: %s", e.context, message)
}

// ============================================================================
// STANDARDIZED VALIDATION HELPERS
// ============================================================================

// ValidateRequired checks that a string field is present
func ValidateRequired(fieldName string, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("required field '%s' cannot be empty", fieldName)
	}
	return nil
}

// ValidateOneOf checks if value is one of the allowed values
func ValidateOneOf(fieldName string, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("field '%s' must be one of %v, got '%s'", fieldName, allowed, value)
}
