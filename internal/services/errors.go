package services

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds surfaced by the service layer. Handlers map these to transport
// status codes; anything else is treated as an internal failure.
var (
	// ErrNotFound covers both a missing product and a product owned by a
	// different caller, so callers cannot probe for other users' IDs.
	ErrNotFound = errors.New("product not found")

	// ErrUnauthorized means no caller identity could be resolved.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrStorage is an opaque repository failure. The underlying cause is
	// logged at the service boundary and never surfaced to callers.
	ErrStorage = errors.New("storage failure")
)

// ValidationError reports per-field input violations. It is returned before
// any persistence is attempted.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
