package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrNoActiveSession         = errors.New("no active session")

	ErrNotOwner = errors.New("record belongs to another account")

	ErrInvalidJobStatus    = errors.New("invalid job status")
	ErrInvalidTriageAnswer = errors.New("triage answer must be \"yes\" or \"no\"")
)

// ValidationError carries per-field validation messages produced by the
// credential validator. The handler layer serialises Fields verbatim into
// the error response body.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(parts)

	return "validation failed: " + strings.Join(parts, "; ")
}

// NewValidationError wraps a non-empty field-to-message map in a
// *ValidationError.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
