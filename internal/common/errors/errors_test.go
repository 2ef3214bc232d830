package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name            string
		err             *StandardError
		expectedCode    ErrorCode
		expectedMessage string
	}{
		{
			name:            "activity not found",
			err:             NewActivityNotFoundError("Chess Club"),
			expectedCode:    ErrCodeActivityNotFound,
			expectedMessage: "Activity not found",
		},
		{
			name:            "already registered",
			err:             NewAlreadyRegisteredError("Chess Club", "michael@mergington.edu"),
			expectedCode:    ErrCodeStudentAlreadyRegistered,
			expectedMessage: "Student is already signed up",
		},
		{
			name:            "not registered",
			err:             NewNotRegisteredError("Chess Club", "ghost@mergington.edu"),
			expectedCode:    ErrCodeStudentNotRegistered,
			expectedMessage: "Student is not signed up for this activity",
		},
		{
			name:            "invalid input",
			err:             NewInvalidInputError("email query parameter is required"),
			expectedCode:    ErrCodeInvalidInput,
			expectedMessage: "Invalid request input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, tt.err.Code)
			assert.Equal(t, tt.expectedMessage, tt.err.Message)
			assert.False(t, tt.err.Retryable, "caller-input errors are never retryable")
			assert.False(t, tt.err.Timestamp.IsZero())
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrCodeActivityNotFound))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrCodeStudentAlreadyRegistered))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrCodeStudentNotRegistered))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(ErrCodeInvalidInput))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus("UNKNOWN_CODE"))
}

func TestAsStandardError(t *testing.T) {
	stdErr := NewActivityNotFoundError("X")

	unwrapped, ok := AsStandardError(fmt.Errorf("register failed: %w", stdErr))
	require.True(t, ok)
	assert.Equal(t, ErrCodeActivityNotFound, unwrapped.Code)

	_, ok = AsStandardError(fmt.Errorf("plain error"))
	assert.False(t, ok)
}

func TestIsCode(t *testing.T) {
	err := NewNotRegisteredError("Chess Club", "x@mergington.edu")

	assert.True(t, IsCode(err, ErrCodeStudentNotRegistered))
	assert.False(t, IsCode(err, ErrCodeActivityNotFound))
	assert.False(t, IsCode(fmt.Errorf("plain"), ErrCodeStudentNotRegistered))
}
