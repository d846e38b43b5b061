package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryFileAccess      = "file_access"
	categoryInternal        = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

const (
	exitCodeFailure = 1
	exitCodeUsage   = 2
)

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInvalidArgument,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: 400,
	}
}

// NewFileAccessError creates a new ServiceError with category file_access.
// Input files live next to the server process, so clients see a 500.
func NewFileAccessError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryFileAccess,
		Code:           code,
		Message:        message,
		Cause:          cause,
		HttpStatusCode: 500,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInternal,
		Code:           code,
		Message:        "internal server error",
		Cause:          cause,
		HttpStatusCode: 500,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category       string // invalid_argument, file_access or internal
	Code           string // service-owned stable code (e.g. DATE_1000)
	Message        string // user-facing, human-readable
	Cause          error  // wrapped underlying error
	HttpStatusCode int    // HTTP status code
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}

func (e *ServiceError) IsInvalidArgument() bool {
	return e.Category == categoryInvalidArgument
}

// ExitCode maps the error category to a process exit status.
func (e *ServiceError) ExitCode() int {
	if e.IsInvalidArgument() {
		return exitCodeUsage
	}
	return exitCodeFailure
}

// ExitCode returns the exit status for any error: 0 for nil, the category
// mapping for service errors and 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if svcErr, ok := AsServiceError(err); ok {
		return svcErr.ExitCode()
	}
	return exitCodeFailure
}
