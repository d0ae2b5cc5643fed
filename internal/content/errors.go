package content

import (
	"fmt"
	"strings"
)

// ConnectivityError represents a network-level failure reaching the
// generation service. It is distinguished from generic service errors so the
// user gets actionable guidance.
type ConnectivityError struct {
	Cause error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("connection error: check your internet connection and API key. Details: %v", e.Cause)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Cause
}

// ServiceError represents any non-connectivity failure from the generation
// service (quota, malformed request, provider-side errors).
type ServiceError struct {
	Cause error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("API error: %v", e.Cause)
}

func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// ParseError represents a response that is not valid JSON.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// FieldError represents a single validation failure at a specific field or section
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a structurally parseable payload that is missing
// or malformed in one or more required fields.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, fe := range e.Errors {
		sb.WriteString(fmt.Sprintf(" '%s' %s;", fe.Field, fe.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ExhaustedError is returned when every generation attempt failed parsing or
// validation. It carries the last failure reason plus a truncated excerpt of
// the offending raw response for diagnosis.
type ExhaustedError struct {
	Attempts   int
	Cause      error
	RawSnippet string
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("content generation failed after %d attempts: %v\nRaw: %s", e.Attempts, e.Cause, e.RawSnippet)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Cause
}

// classifyCallError maps a generation service error to the connectivity or
// service class by inspecting its text. Best-effort: the underlying SDK does
// not expose a stable error taxonomy.
func classifyCallError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "connection") || strings.Contains(msg, "network") || strings.Contains(msg, "dial") {
		return &ConnectivityError{Cause: err}
	}
	return &ServiceError{Cause: err}
}
