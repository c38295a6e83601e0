package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps them to
// HTTP status codes and user-facing messages.
var (
	// ErrGenerationFailed indicates the completion service failed while
	// generating a new text. The underlying cause is logged server-side
	// and never attached to this error.
	ErrGenerationFailed = errors.New("text generation failed")

	// ErrImprovementFailed indicates the completion service failed while
	// improving an existing text.
	ErrImprovementFailed = errors.New("text improvement failed")

	// ErrNotConfigured indicates the service was asked to operate without
	// its completion gateway. Configuration is a process-wide precondition
	// checked before any outbound call.
	ErrNotConfigured = errors.New("generation service not configured")
)

// ValidationError reports which request fields failed eager validation.
// Fields maps a field name to a short description of the problem.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface, listing offending fields in a
// stable order.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

// newValidationError returns nil when no fields failed.
func newValidationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
