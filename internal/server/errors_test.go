package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/jonathan/jobmatch/internal/integrations"
	"github.com/jonathan/jobmatch/internal/session"
	"github.com/jonathan/jobmatch/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestErrValidation(t *testing.T) {
	err := &ErrValidation{Field: "changes", Message: "at least one change is required"}
	assert.Equal(t, "validation error: changes - at least one change is required", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	invalid := types.DefaultRequirement()
	invalid.JobType.Major = ""

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "ErrSessionNotFound",
			err:      &session.ErrSessionNotFound{ID: uuid.New()},
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped ErrSessionNotFound",
			err:      fmt.Errorf("apply: %w", &session.ErrSessionNotFound{ID: uuid.New()}),
			expected: http.StatusNotFound,
		},
		{
			name:     "ErrUnknownField",
			err:      &types.ErrUnknownField{Field: "dependentStatus"},
			expected: http.StatusBadRequest,
		},
		{
			name:     "ValidationErrors",
			err:      invalid.Validate(),
			expected: http.StatusBadRequest,
		},
		{
			name:     "ErrNotConfigured",
			err:      &integrations.ErrNotConfigured{Integration: integrations.NameSearch},
			expected: http.StatusServiceUnavailable,
		},
		{
			name:     "Unknown error",
			err:      assert.AnError,
			expected: http.StatusInternalServerError,
		},
		{
			name:     "Nil error",
			err:      nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestValidationMessage(t *testing.T) {
	req := types.DefaultRequirement()
	req.WorkHours.Start = "nine"

	msg := validationMessage(req.Validate())
	assert.Contains(t, msg, "Invalid requirement: ")
	assert.Contains(t, msg, "JobRequirement.WorkHours.Start")
	assert.Contains(t, msg, `"datetime"`)

	assert.Equal(t, assert.AnError.Error(), validationMessage(assert.AnError))
}
