package model

import (
	"fmt"
	"strings"
)

// ValidationError carries the full ordered list of rule violations found in
// an invoice before rendering.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invoice validation failed: %s", strings.Join(e.Violations, "; "))
}

// NewValidationError creates a validation error from a list of violations
func NewValidationError(violations []string) *ValidationError {
	return &ValidationError{Violations: violations}
}

// RenderError represents an unexpected failure while producing the document.
// It is fatal for the request; no partial document is returned.
type RenderError struct {
	Stage   string
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render failed [%s]: %s (%v)", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("render failed [%s]: %s", e.Stage, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a new render error
func NewRenderError(stage, message string, cause error) *RenderError {
	return &RenderError{
		Stage:   stage,
		Message: message,
		Cause:   cause,
	}
}
