package errors

import (
	"fmt"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// InputNotFoundType is returned when the input path does not exist
	InputNotFoundType ErrorType = "INPUT_NOT_FOUND"
	// InputReadType is returned when the input exists but cannot be read
	InputReadType ErrorType = "INPUT_READ"
	// InvalidJSONType is returned when the input is not well-formed JSON
	InvalidJSONType ErrorType = "INVALID_JSON"
	// InvalidRootShapeType is returned when the JSON root is not an object
	InvalidRootShapeType ErrorType = "INVALID_ROOT_SHAPE"
	// OutputWriteType is returned when the destination cannot be written
	OutputWriteType ErrorType = "OUTPUT_WRITE"
	// ConfigErrorType represents CLI settings errors
	ConfigErrorType ErrorType = "CONFIG"
)

// ConversionError is the base error type for all application errors
type ConversionError struct {
	Type        ErrorType
	Message     string
	Context     map[string]interface{}
	Cause       error
	Suggestions []string
}

// Error returns the human-readable message. The message already carries the
// relevant path or cause, so context and suggestions are only logged in verbose mode.
func (e *ConversionError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause error
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a ConversionError of the same type
func (e *ConversionError) Is(target error) bool {
	if targetErr, ok := target.(*ConversionError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// WithContext adds context information to the error
func (e *ConversionError) WithContext(key string, value interface{}) *ConversionError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// WithSuggestion adds a suggestion to help resolve the error
func (e *ConversionError) WithSuggestion(suggestion string) *ConversionError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// InputNotFound creates an error for a missing input path
func InputNotFound(path string) *ConversionError {
	return &ConversionError{
		Type:    InputNotFoundType,
		Message: fmt.Sprintf("Input JSON not found: %s", path),
	}
}

// InputReadError creates an error for an input that exists but cannot be read
func InputReadError(cause error) *ConversionError {
	return &ConversionError{
		Type:    InputReadType,
		Message: fmt.Sprintf("Failed to read input: %v", cause),
		Cause:   cause,
	}
}

// InvalidJSON creates an error carrying the parser diagnostic
func InvalidJSON(cause error) *ConversionError {
	return &ConversionError{
		Type:    InvalidJSONType,
		Message: fmt.Sprintf("Invalid JSON: %v", cause),
		Cause:   cause,
	}
}

// InvalidRootShape creates an error for a JSON root that is not an object.
// kind names what was found instead (array, string, null, ...).
func InvalidRootShape(kind string) *ConversionError {
	return &ConversionError{
		Type:    InvalidRootShapeType,
		Message: "Unexpected JSON root structure (expected object).",
		Context: map[string]interface{}{"found": kind},
	}
}

// OutputWriteError creates an error for a failed write of the script
func OutputWriteError(cause error) *ConversionError {
	return &ConversionError{
		Type:    OutputWriteType,
		Message: fmt.Sprintf("Failed to write output: %v", cause),
		Cause:   cause,
	}
}

// ConfigError creates a new configuration error
func ConfigError(message string) *ConversionError {
	return &ConversionError{
		Type:    ConfigErrorType,
		Message: message,
	}
}

// ConfigErrorWithCause creates a new configuration error with a cause
func ConfigErrorWithCause(message string, cause error) *ConversionError {
	return &ConversionError{
		Type:    ConfigErrorType,
		Message: fmt.Sprintf("%s: %v", message, cause),
		Cause:   cause,
	}
}

// IsErrorType checks if an error is of a specific type
func IsErrorType(err error, errorType ErrorType) bool {
	if convErr, ok := err.(*ConversionError); ok {
		return convErr.Type == errorType
	}
	return false
}

// GetErrorType returns the error type of an error, or empty string if not a ConversionError
func GetErrorType(err error) ErrorType {
	if convErr, ok := err.(*ConversionError); ok {
		return convErr.Type
	}
	return ""
}

// FormatErrorForUser formats an error for stderr as "Error: <message>"
func FormatErrorForUser(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v\n", err)
}
