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
	// ErrCodeInvalidCategory is used for unknown or reserved expense categories
	ErrCodeInvalidCategory = "ERR_INVALID_CATEGORY"
	// ErrCodeInvalidDate is used for malformed dates
	ErrCodeInvalidDate = "ERR_INVALID_DATE"
	// ErrCodeInvalidPeriod is used for unrecognized period selectors
	ErrCodeInvalidPeriod = "ERR_INVALID_PERIOD"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeStaffNotFound is used when the staff directory has no such member
	ErrCodeStaffNotFound = "ERR_STAFF_NOT_FOUND"
)

// Business rule error codes
const (
	// ErrCodeUnsupportedPaymentModel is used for unknown compensation models
	ErrCodeUnsupportedPaymentModel = "ERR_UNSUPPORTED_PAYMENT_MODEL"
	// ErrCodeStaffNotPayable is used when recording a payment to a non-payroll account
	ErrCodeStaffNotPayable = "ERR_STAFF_NOT_PAYABLE"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// Upstream error codes
const (
	// ErrCodeUpstreamUnavailable is used when a collaborator service cannot be reached
	ErrCodeUpstreamUnavailable = "ERR_UPSTREAM_UNAVAILABLE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeInvalidCategory: http.StatusBadRequest,
	ErrCodeInvalidDate:     http.StatusBadRequest,
	ErrCodeInvalidPeriod:   http.StatusBadRequest,

	// Resource errors -> 404 Not Found
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeStaffNotFound: http.StatusNotFound,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeUnsupportedPaymentModel: http.StatusUnprocessableEntity,
	ErrCodeStaffNotPayable:         http.StatusUnprocessableEntity,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,

	// Upstream errors -> 503 Service Unavailable
	ErrCodeUpstreamUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to the API's standardized codes
var DomainErrorCodeMapping = map[string]string{
	"VALIDATION_ERROR":          ErrCodeValidation,
	"INVALID_CATEGORY":          ErrCodeInvalidCategory,
	"INVALID_DATE":              ErrCodeInvalidDate,
	"INVALID_PERIOD":            ErrCodeInvalidPeriod,
	"INVALID_INPUT":             ErrCodeInvalidInput,
	"NOT_FOUND":                 ErrCodeNotFound,
	"STAFF_NOT_FOUND":           ErrCodeStaffNotFound,
	"UNSUPPORTED_PAYMENT_MODEL": ErrCodeUnsupportedPaymentModel,
	"STAFF_NOT_PAYABLE":         ErrCodeStaffNotPayable,
	"UPSTREAM_UNAVAILABLE":      ErrCodeUpstreamUnavailable,
	"DATABASE_ERROR":            ErrCodeInternal,
	"INTERNAL_ERROR":            ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to the standardized format
// If the code is already in the new format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
