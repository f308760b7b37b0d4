package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationRequired is used when a required field is missing
	ErrCodeValidationRequired = "ERR_VALIDATION_REQUIRED"
	// ErrCodeValidationFormat is used when a field has invalid format
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
	// ErrCodeValidationRange is used when a value is out of range
	ErrCodeValidationRange = "ERR_VALIDATION_RANGE"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the user lacks permission
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeBusinessRule is used for generic business rule violations
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodePayloadTooLarge is used when an upload exceeds the size limit
	ErrCodePayloadTooLarge = "ERR_PAYLOAD_TOO_LARGE"
)

// Rate limiting error codes
const (
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "ERR_RATE_LIMITED"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeValidationRequired: http.StatusBadRequest,
	ErrCodeValidationFormat:   http.StatusBadRequest,
	ErrCodeValidationRange:    http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	// Resource errors
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidState: http.StatusUnprocessableEntity,
	ErrCodeBusinessRule: http.StatusUnprocessableEntity,

	// Input errors
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodePayloadTooLarge: http.StatusRequestEntityTooLarge,

	// Rate limiting -> 429 Too Many Requests
	ErrCodeRateLimited: http.StatusTooManyRequests,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain-level error codes raised by the
// application services to the standardized API error codes
var DomainErrorCodeMapping = map[string]string{
	// Not found
	"NOT_FOUND":             ErrCodeNotFound,
	"APPLICATION_NOT_FOUND": ErrCodeNotFound,
	"OFFICE_NOT_FOUND":      ErrCodeNotFound,
	"USER_NOT_FOUND":        ErrCodeNotFound,
	"UPLOAD_NOT_FOUND":      ErrCodeNotFound,

	// Duplicates
	"OFFICE_EXISTS":        ErrCodeAlreadyExists,
	"USERNAME_TAKEN":       ErrCodeAlreadyExists,
	"ALREADY_EXISTS":       ErrCodeAlreadyExists,
	"CONCURRENCY_CONFLICT": ErrCodeConflict,

	// Invalid input
	"INVALID_INPUT":           ErrCodeInvalidInput,
	"INVALID_APPLICATION_ID":  ErrCodeInvalidInput,
	"INVALID_STUDENT_NUMBER":  ErrCodeInvalidInput,
	"INVALID_NAME":            ErrCodeInvalidInput,
	"INVALID_EMAIL":           ErrCodeInvalidInput,
	"INVALID_COURSE":          ErrCodeInvalidInput,
	"INVALID_KIND":            ErrCodeInvalidInput,
	"INVALID_FILE_NAME":       ErrCodeInvalidInput,
	"INVALID_OFFICE_NAME":     ErrCodeInvalidInput,
	"INVALID_TOTAL_SLOTS":     ErrCodeInvalidInput,
	"INVALID_LATITUDE":        ErrCodeInvalidInput,
	"INVALID_LONGITUDE":       ErrCodeInvalidInput,
	"INVALID_TITLE":           ErrCodeInvalidInput,
	"INVALID_BODY":            ErrCodeInvalidInput,
	"INVALID_MESSAGE":         ErrCodeInvalidInput,
	"INVALID_PRIORITY":        ErrCodeInvalidInput,
	"INVALID_USERNAME":        ErrCodeInvalidInput,
	"INVALID_PASSWORD":        ErrCodeInvalidInput,
	"INVALID_ROLE":            ErrCodeInvalidInput,
	"INVALID_DOCUMENT_TYPE":   ErrCodeInvalidInput,
	"INVALID_DOCUMENT":        ErrCodeInvalidInput,
	"INVALID_STORAGE_KEY":     ErrCodeInvalidInput,
	"INVALID_PREVIOUS_OFFICE": ErrCodeInvalidInput,
	"INVALID_WINDOW":          ErrCodeInvalidInput,
	"INVALID_EXPIRY":          ErrCodeInvalidInput,
	"INVALID_DUE_DATE":        ErrCodeInvalidInput,
	"INVALID_DATE":            ErrCodeInvalidInput,
	"INVALID_PHOTO":           ErrCodeInvalidInput,
	"DISALLOWED_CONTENT_TYPE": ErrCodeInvalidInput,
	"PASSWORD_TOO_SHORT":      ErrCodeInvalidInput,
	"VALIDATION_ERROR":        ErrCodeValidation,
	"BAD_REQUEST":             ErrCodeBadRequest,

	// Size limits
	"DOCUMENT_TOO_LARGE": ErrCodePayloadTooLarge,
	"PHOTO_TOO_LARGE":    ErrCodePayloadTooLarge,

	// Workflow and business rules
	"INVALID_STATUS": ErrCodeInvalidState,
	"INVALID_STATE":  ErrCodeInvalidState,
	"LAST_DIRECTOR":  ErrCodeBusinessRule,

	// Authentication
	"UNAUTHORIZED":        ErrCodeUnauthorized,
	"INVALID_CREDENTIALS": ErrCodeUnauthorized,
	"ACCOUNT_DEACTIVATED": ErrCodeForbidden,
	"FORBIDDEN":           ErrCodeForbidden,
	"TOKEN_EXPIRED":       ErrCodeTokenExpired,
	"TOKEN_INVALID":       ErrCodeTokenInvalid,
	"TOKEN_REVOKED":       ErrCodeTokenInvalid,
	"TOKEN_MAX_REFRESH":   ErrCodeTokenInvalid,
	"TOKEN_ERROR":         ErrCodeTokenInvalid,

	// Infrastructure failures surfaced to the client
	"UPLOAD_URL_FAILED":    ErrCodeInternal,
	"STORAGE_CHECK_FAILED": ErrCodeInternal,
	"PHOTO_ENCODE_FAILED":  ErrCodeInternal,
	"PHOTO_UPLOAD_FAILED":  ErrCodeInternal,
	"INTERNAL_ERROR":       ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to the standardized format
// If the code is already in the new format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
