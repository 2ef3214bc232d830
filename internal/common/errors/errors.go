// Package errors provides standardized error handling for the enrollment API.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Enrollment errors. All of these are caller-input errors: returned
// synchronously, never retried, never fatal to the process.
const (
	ErrCodeActivityNotFound         ErrorCode = "ACTIVITY_NOT_FOUND"
	ErrCodeStudentAlreadyRegistered ErrorCode = "STUDENT_ALREADY_REGISTERED"
	ErrCodeStudentNotRegistered     ErrorCode = "STUDENT_NOT_REGISTERED"
	ErrCodeInvalidInput             ErrorCode = "INVALID_INPUT"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// ==========================
// 2. Error Constructors
// ==========================

// NewActivityNotFoundError creates a non-retryable unknown-activity error.
func NewActivityNotFoundError(activityName string) *StandardError {
	return &StandardError{
		Code:      ErrCodeActivityNotFound,
		Message:   "Activity not found",
		Details:   fmt.Sprintf("activity: %s", activityName),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAlreadyRegisteredError creates a non-retryable duplicate-signup error.
func NewAlreadyRegisteredError(activityName, email string) *StandardError {
	return &StandardError{
		Code:      ErrCodeStudentAlreadyRegistered,
		Message:   "Student is already signed up",
		Details:   fmt.Sprintf("activity: %s, email: %s", activityName, email),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotRegisteredError creates a non-retryable absent-participant error.
func NewNotRegisteredError(activityName, email string) *StandardError {
	return &StandardError{
		Code:      ErrCodeStudentNotRegistered,
		Message:   "Student is not signed up for this activity",
		Details:   fmt.Sprintf("activity: %s, email: %s", activityName, email),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidInputError creates a non-retryable malformed-request error.
func NewInvalidInputError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidInput,
		Message:   "Invalid request input",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. HTTP Mapping
// ==========================

// HTTPStatusMapping maps internal error codes to HTTP status codes.
var HTTPStatusMapping = map[ErrorCode]int{
	ErrCodeActivityNotFound:         http.StatusNotFound,
	ErrCodeStudentAlreadyRegistered: http.StatusBadRequest,
	ErrCodeStudentNotRegistered:     http.StatusBadRequest,
	ErrCodeInvalidInput:             http.StatusBadRequest,
}

// HTTPStatus returns the status code for an error code, falling back to
// 500 for anything outside the known taxonomy.
func HTTPStatus(code ErrorCode) int {
	if status, ok := HTTPStatusMapping[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// ==========================
// 4. Utility Functions
// ==========================

// AsStandardError unwraps err into a *StandardError if possible.
func AsStandardError(err error) (*StandardError, bool) {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr, true
	}
	return nil, false
}

// IsCode reports whether err is a StandardError with the given code.
func IsCode(err error, code ErrorCode) bool {
	if stdErr, ok := AsStandardError(err); ok {
		return stdErr.Code == code
	}
	return false
}
