package errors

import (
	"fmt"
)

// UnknownThemeError reports a theme identifier outside the supported set.
// Resolution fails fast with this error instead of producing empty classes.
type UnknownThemeError struct {
	Theme string
}

// NewUnknownThemeError constructs an UnknownThemeError.
func NewUnknownThemeError(theme string) error {
	return &UnknownThemeError{Theme: theme}
}

func (e *UnknownThemeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Theme == "" {
		return "unknown theme: no theme configured"
	}
	return fmt.Sprintf("unknown theme: %q", e.Theme)
}

// AmbiguousThemeOverrideError describes a call that forced more than one
// theme at once. It is recoverable: Chosen wins and the error is only logged.
type AmbiguousThemeOverrideError struct {
	Chosen  string
	Ignored string
}

// NewAmbiguousThemeOverrideError constructs an AmbiguousThemeOverrideError.
func NewAmbiguousThemeOverrideError(chosen, ignored string) error {
	return &AmbiguousThemeOverrideError{Chosen: chosen, Ignored: ignored}
}

func (e *AmbiguousThemeOverrideError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("ambiguous theme override: both %s and %s forced, using %s", e.Chosen, e.Ignored, e.Chosen)
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
