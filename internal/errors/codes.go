package errors

import "net/http"

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidAction ErrorCode = "VALIDATION_006"
	ValidationInvalidPage   ErrorCode = "VALIDATION_007"
)

// Transaction feed error codes (FEED_*)
const (
	FeedUnavailable ErrorCode = "FEED_001"
	FeedCircuitOpen ErrorCode = "FEED_002"
	FeedNotLoaded   ErrorCode = "FEED_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

type codeInfo struct {
	message string
	status  int
}

// registry holds the default message and HTTP status of every code
var registry = map[ErrorCode]codeInfo{
	ValidationGeneral:       {"Validation failed", http.StatusBadRequest},
	ValidationRequiredField: {"Required field is missing", http.StatusBadRequest},
	ValidationInvalidFormat: {"Invalid field format", http.StatusBadRequest},
	ValidationOutOfRange:    {"Field value is out of allowed range", http.StatusBadRequest},
	ValidationInvalidDate:   {"Invalid date format", http.StatusBadRequest},
	ValidationInvalidAction: {"Invalid filter action", http.StatusBadRequest},
	ValidationInvalidPage:   {"Invalid page or page size", http.StatusBadRequest},

	FeedUnavailable: {"Transaction feed is unavailable", http.StatusBadGateway},
	FeedCircuitOpen: {"Transaction feed is temporarily disabled after repeated failures", http.StatusServiceUnavailable},
	FeedNotLoaded:   {"Transaction feed has not been loaded yet", http.StatusServiceUnavailable},

	SystemInternalError:      {"An unexpected error occurred. Please contact support with trace ID", http.StatusInternalServerError},
	SystemDatabaseError:      {"Database connection error", http.StatusInternalServerError},
	SystemServiceUnavailable: {"Service temporarily unavailable", http.StatusServiceUnavailable},
	SystemUnexpectedError:    {"An unexpected error occurred", http.StatusInternalServerError},
	SystemRateLimitExceeded:  {"Rate limit exceeded. Please try again later", http.StatusTooManyRequests},
	SystemRouteNotFound:      {"Resource not found", http.StatusNotFound},
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if info, ok := registry[code]; ok {
		return info.message
	}
	return "An error occurred"
}

// GetHTTPStatus returns the HTTP status for code. Unknown codes are 500s.
func GetHTTPStatus(code ErrorCode) int {
	if info, ok := registry[code]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}
