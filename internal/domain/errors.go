package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrUpstream      = errors.New("upstream error")
	ErrConfiguration = errors.New("configuration error")
)

// FieldError describes a validation error for a specific field. Message is a
// predicate that reads after the field name, e.g. "is required".
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Field + " " + e.Errors[0].Message
	}
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + " " + fe.Message
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// UpstreamError reports a failed call to an external service. Status carries
// the upstream status text and is safe to show to callers.
type UpstreamError struct {
	Service    string
	StatusCode int
	Status     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s API error: %s", strings.ToUpper(e.Service), e.Status)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// ConfigurationError reports a missing credential or connection setting.
// Remedy is an actionable hint for the operator.
type ConfigurationError struct {
	Setting string
	Remedy  string
}

func (e *ConfigurationError) Error() string {
	if e.Remedy == "" {
		return fmt.Sprintf("%s is not set", e.Setting)
	}
	return fmt.Sprintf("%s is not set. %s", e.Setting, e.Remedy)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }
