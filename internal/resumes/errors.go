package resumes

import (
	"fmt"
	"strings"
)

const (
	ErrorCodeValidation = "validation_error"
	ErrorCodeExternal   = "external_service_error"
	ErrorCodeInternal   = "internal_error"
)

// MissingRequiredMessage is shown when name or job title is absent.
const MissingRequiredMessage = "Please enter at least name and target job title."

// FieldError names one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError rejects a request before any external call is made.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Messages returns the user-facing messages, one per distinct text.
func (e *ValidationError) Messages() []string {
	seen := map[string]bool{}
	var out []string
	for _, f := range e.Fields {
		if !seen[f.Message] {
			seen[f.Message] = true
			out = append(out, f.Message)
		}
	}
	return out
}

// ExternalServiceError wraps a failed generator call.
type ExternalServiceError struct {
	Err error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("text generation failed: %v", e.Err)
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}
