// Package errors provides custom error types for the vitalsync system.
// These errors enable programmatic error checking and keep failure
// visibility a first-class return value throughout the sync pipeline.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's chain matches target.
// It's an alias for the standard library errors.Is.
var Is = errors.Is

// Common sentinel errors for the vitalsync system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrCredentialRequired indicates that a credential is required but not provided
	ErrCredentialRequired = errors.New("credential required")

	// ErrCredentialInvalid indicates that a provided credential was rejected
	ErrCredentialInvalid = errors.New("credential invalid")

	// ErrProviderUnavailable indicates that a collaborator is temporarily unavailable
	ErrProviderUnavailable = errors.New("provider unavailable")

	// ErrRateLimited indicates that an API rate limit has been exceeded
	ErrRateLimited = errors.New("rate limited")
)

// AuthenticationError represents an authentication failure against one of
// the external collaborators. Authentication failures are fatal to a run.
type AuthenticationError struct {
	Service string // "garmin" or "notion"
	Method  string // "password", "token"
	Message string
	Err     error
}

// Error implements the error interface
func (e *AuthenticationError) Error() string {
	if e.Service != "" {
		return fmt.Sprintf("authentication error for %s (%s): %s", e.Service, e.Method, e.Message)
	}
	return fmt.Sprintf("authentication error (%s): %s", e.Method, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrCredentialRequired || target == ErrCredentialInvalid
}

// APIError represents an error response from a collaborator API
type APIError struct {
	Service    string
	StatusCode int
	Message    string
	Endpoint   string
	Err        error
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error from %s (status %d): %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error from %s: %s", e.Service, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *APIError) Is(target error) bool {
	switch {
	case e.StatusCode == 401 || e.StatusCode == 403:
		return target == ErrCredentialInvalid
	case e.StatusCode == 429:
		return target == ErrRateLimited
	case e.StatusCode >= 500:
		return target == ErrProviderUnavailable
	}
	return false
}

// NewAPIError creates a new APIError
func NewAPIError(service string, statusCode int, message string) *APIError {
	return &APIError{
		Service:    service,
		StatusCode: statusCode,
		Message:    message,
	}
}

// ConfigError represents a configuration error. Configuration is validated
// once before any day is processed; a ConfigError halts the run.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// SyncError represents a failure scoped to a single day of the run.
// Days fail independently; a SyncError never aborts subsequent days.
type SyncError struct {
	Day string // the calendar date as YYYY-MM-DD
	Op  string // "fetch", "map", "locate", "create", "update"
	Err error
}

// Error implements the error interface
func (e *SyncError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("sync error for %s during %s: %v", e.Day, e.Op, e.Err)
	}
	return fmt.Sprintf("sync error for %s: %v", e.Day, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError creates a new SyncError
func NewSyncError(day, op string, err error) *SyncError {
	return &SyncError{Day: day, Op: op, Err: err}
}

// ParseError represents a failure decoding a collaborator payload
type ParseError struct {
	Format  string // "json"
	Subject string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s %s: %v", e.Format, e.Subject, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, subject string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, Subject: subject, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAuth checks if an error is related to credentials or authentication
func IsAuth(err error) bool {
	return errors.Is(err, ErrCredentialRequired) || errors.Is(err, ErrCredentialInvalid)
}

// IsRateLimited checks if an error indicates API rate limiting
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}
