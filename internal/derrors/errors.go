// Package derrors provides custom error types for texcomplete.
// Each type carries a stable code so callers can branch on the failure kind
// without matching on message text.
package derrors

import (
	"errors"
	"fmt"
)

// TexError is the base interface for all texcomplete errors
type TexError interface {
	error
	// Code returns a unique error code for programmatic error handling
	Code() string
}

// baseError provides common functionality for all texcomplete errors
type baseError struct {
	code    string
	message string
	cause   error
}

func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

func (e *baseError) Code() string {
	return e.code
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// ResourceError reports a word list or template that could not be opened
type ResourceError struct {
	baseError
	Name string
}

// NewResourceError creates a new resource-unavailable error
func NewResourceError(name string, message string, cause error) *ResourceError {
	return &ResourceError{
		baseError: baseError{
			code:    "RESOURCE_ERROR",
			message: message,
			cause:   cause,
		},
		Name: name,
	}
}

// ReadError reports an I/O failure while draining an opened resource
type ReadError struct {
	baseError
	Name string
	Line int // last line read successfully
}

// NewReadError creates a new mid-stream read error
func NewReadError(name string, line int, cause error) *ReadError {
	return &ReadError{
		baseError: baseError{
			code:    "READ_ERROR",
			message: fmt.Sprintf("failed to read %s after line %d", name, line),
			cause:   cause,
		},
		Name: name,
		Line: line,
	}
}

// ConfigurationError represents errors in configuration files
type ConfigurationError struct {
	baseError
	Path string
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(path string, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{
			code:    "CONFIG_ERROR",
			message: message,
			cause:   cause,
		},
		Path: path,
	}
}

// ValidationError represents errors during validation
type ValidationError struct {
	baseError
	Field string
}

// NewValidationError creates a new validation error
func NewValidationError(field string, message string, cause error) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			code:    "VALIDATION_ERROR",
			message: message,
			cause:   cause,
		},
		Field: field,
	}
}

// NotFoundError represents errors when a resource is not found
type NotFoundError struct {
	baseError
	Resource string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, message string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			code:    "NOT_FOUND",
			message: message,
			cause:   nil,
		},
		Resource: resource,
	}
}

// DownloadError represents a failed remote word list fetch
type DownloadError struct {
	baseError
	URL string
}

// NewDownloadError creates a new download error
func NewDownloadError(url string, message string, cause error) *DownloadError {
	return &DownloadError{
		baseError: baseError{
			code:    "DOWNLOAD_ERROR",
			message: message,
			cause:   cause,
		},
		URL: url,
	}
}

// CodeOf returns the code of the first TexError in err's chain, or "" if none
func CodeOf(err error) string {
	var te TexError
	if errors.As(err, &te) {
		return te.Code()
	}
	return ""
}

// IsNotFound reports whether err wraps a NotFoundError
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
