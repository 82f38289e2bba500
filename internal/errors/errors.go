// Package errors provides a lightweight structured error type (DeckError)
// for category-based classification and exit-code mapping in the CLI.
package errors

import (
	"fmt"
)

// ErrorCategory represents the category of a deckctl error for classification
type ErrorCategory string

const (
	// User-facing configuration and input errors
	CategoryConfig     ErrorCategory = "config"
	CategoryValidation ErrorCategory = "validation"

	// External tool delegation errors
	CategoryToolchain ErrorCategory = "toolchain"
	CategoryInstall   ErrorCategory = "install"
	CategoryExport    ErrorCategory = "export"

	// Local state errors
	CategoryFileSystem ErrorCategory = "filesystem"

	// Runtime and infrastructure errors
	CategoryRuntime  ErrorCategory = "runtime"
	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates how critical an error is
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution
	SeverityError   ErrorSeverity = "error"   // Error, but not fatal
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
	SeverityInfo    ErrorSeverity = "info"    // Informational, no impact
)

// DeckError is a structured error with category, severity, and context
type DeckError struct {
	Category ErrorCategory `json:"category"`
	Severity ErrorSeverity `json:"severity"`
	Message  string        `json:"message"`
	Cause    error         `json:"cause,omitempty"`
	Context  ContextFields `json:"context,omitempty"`
}

// ContextFields carries structured context for DeckError
type ContextFields map[string]any

// Error implements the error interface
func (e *DeckError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Category, e.Severity, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Category, e.Severity, e.Message)
}

// Unwrap implements error unwrapping for Go 1.13+ error handling
func (e *DeckError) Unwrap() error {
	return e.Cause
}

// WithContext adds context information to the error
func (e *DeckError) WithContext(key string, value any) *DeckError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new DeckError
func New(category ErrorCategory, severity ErrorSeverity, message string) *DeckError {
	return &DeckError{
		Category: category,
		Severity: severity,
		Message:  message,
	}
}

// Wrap creates a new DeckError that wraps an existing error
func Wrap(err error, category ErrorCategory, severity ErrorSeverity, message string) *DeckError {
	return &DeckError{
		Category: category,
		Severity: severity,
		Message:  message,
		Cause:    err,
	}
}

// ConfigError creates a new configuration error
func ConfigError(message string) *DeckError {
	return &DeckError{
		Category: CategoryConfig,
		Severity: SeverityError,
		Message:  message,
	}
}

// ValidationError creates a new validation error (invalid usage or failed checks)
func ValidationError(message string) *DeckError {
	return &DeckError{
		Category: CategoryValidation,
		Severity: SeverityWarning,
		Message:  message,
	}
}

// IsCategory checks if an error belongs to a specific category
func IsCategory(err error, category ErrorCategory) bool {
	if de, ok := err.(*DeckError); ok {
		return de.Category == category
	}
	return false
}

// GetCategory extracts the category from an error, or returns CategoryInternal if not a DeckError
func GetCategory(err error) ErrorCategory {
	if de, ok := err.(*DeckError); ok {
		return de.Category
	}
	return CategoryInternal
}
