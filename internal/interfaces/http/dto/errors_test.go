package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected int
	}{
		{"not found", ErrCodeNotFound, http.StatusNotFound},
		{"already exists", ErrCodeAlreadyExists, http.StatusConflict},
		{"unauthorized", ErrCodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", ErrCodeForbidden, http.StatusForbidden},
		{"invalid state", ErrCodeInvalidState, http.StatusUnprocessableEntity},
		{"business rule", ErrCodeBusinessRule, http.StatusUnprocessableEntity},
		{"validation", ErrCodeValidation, http.StatusBadRequest},
		{"payload too large", ErrCodePayloadTooLarge, http.StatusRequestEntityTooLarge},
		{"rate limited", ErrCodeRateLimited, http.StatusTooManyRequests},
		{"unknown code falls back to 500", "ERR_SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("APPLICATION_NOT_FOUND"))
	assert.Equal(t, ErrCodeAlreadyExists, NormalizeErrorCode("OFFICE_EXISTS"))
	assert.Equal(t, ErrCodeInvalidState, NormalizeErrorCode("INVALID_STATUS"))
	assert.Equal(t, ErrCodeUnauthorized, NormalizeErrorCode("INVALID_CREDENTIALS"))
	assert.Equal(t, ErrCodeBusinessRule, NormalizeErrorCode("LAST_DIRECTOR"))
	assert.Equal(t, ErrCodePayloadTooLarge, NormalizeErrorCode("PHOTO_TOO_LARGE"))

	// Already normalized or unknown codes pass through
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode(ErrCodeNotFound))
	assert.Equal(t, "CUSTOM_CODE", NormalizeErrorCode("CUSTOM_CODE"))
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "Application not found", "req-123")

	assert.False(t, resp.Success)
	assert.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "Application not found", resp.Error.Message)
	assert.Equal(t, "req-123", resp.Error.RequestID)
}

func TestNewValidationErrorResponse(t *testing.T) {
	details := []ValidationDetail{
		{Field: "student_number", Message: "This field is required"},
		{Field: "email", Message: "Invalid email format"},
	}

	resp := NewValidationErrorResponse("Request validation failed", "req-456", details)

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "req-456", resp.Error.RequestID)
	assert.Len(t, resp.Error.Details, 2)
	assert.Equal(t, "student_number", resp.Error.Details[0].Field)
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a", "b"}, 45, 2, 20)

	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Meta)
	assert.Equal(t, int64(45), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.Page)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
