package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "not found", err: ErrNotFound, expected: http.StatusNotFound},
		{name: "wrapped not found", err: fmt.Errorf("profile backend: %w", ErrNotFound), expected: http.StatusNotFound},
		{name: "unauthorized", err: ErrUnauthorized, expected: http.StatusUnauthorized},
		{name: "invalid input", err: ErrInvalidInput, expected: http.StatusBadRequest},
		{name: "rate limit", err: ErrRateLimitExceeded, expected: http.StatusTooManyRequests},
		{name: "unavailable", err: ErrUnavailable, expected: http.StatusServiceUnavailable},
		{name: "app error code wins", err: New(http.StatusConflict, "duplicate", ErrBadRequest), expected: http.StatusConflict},
		{name: "store failure", err: errors.New("connection refused"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapErrorToStatus(tt.err))
		})
	}
}

func TestAppError_Message(t *testing.T) {
	err := New(http.StatusBadRequest, "", ErrInvalidInput)
	assert.Equal(t, "invalid input", err.Error())
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = New(http.StatusBadRequest, "slug is required", nil)
	assert.Equal(t, "slug is required", err.Error())
}
