package errors

import "net/http"

// ErrorCode identifies a failure in the JSON error body. Codes are stable:
// retired codes are never reused.
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Client selector error codes (SELECTOR_*)
const (
	SelectorClosed          ErrorCode = "SELECTOR_001"
	SelectorClienteNotFound ErrorCode = "SELECTOR_002"
	SelectorInvalidID       ErrorCode = "SELECTOR_003"
	SelectorSessionMissing  ErrorCode = "SELECTOR_004"
)

// Remote backend error codes (BACKEND_*)
const (
	BackendComodatosUnavailable ErrorCode = "BACKEND_002"
	BackendCircuitOpen          ErrorCode = "BACKEND_003"
)

const (
	ResourceNotFound ErrorCode = "RESOURCE_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

type codeInfo struct {
	message string
	status  int
}

var registry = map[ErrorCode]codeInfo{
	ValidationGeneral:       {"Validation failed", http.StatusBadRequest},
	ValidationInvalidFormat: {"Invalid field format", http.StatusBadRequest},
	ValidationOutOfRange:    {"Field value is out of allowed range", http.StatusBadRequest},

	SelectorClosed:          {"Client selector is not open or is still loading", http.StatusConflict},
	SelectorClienteNotFound: {"Client is not part of the current list", http.StatusUnprocessableEntity},
	SelectorInvalidID:       {"Invalid client ID format", http.StatusBadRequest},
	SelectorSessionMissing:  {"Selector session not found", http.StatusNotFound},

	BackendComodatosUnavailable: {"Error al cargar los comodatos", http.StatusBadGateway},
	BackendCircuitOpen:          {"Backend temporarily unavailable", http.StatusServiceUnavailable},

	ResourceNotFound: {"Resource not found", http.StatusNotFound},

	SystemInternalError:      {"An unexpected error occurred. Please contact support with trace ID", http.StatusInternalServerError},
	SystemDatabaseError:      {"Database connection error", http.StatusInternalServerError},
	SystemServiceUnavailable: {"Service temporarily unavailable", http.StatusServiceUnavailable},
	SystemUnexpectedError:    {"An unexpected error occurred", http.StatusInternalServerError},
	SystemRateLimitExceeded:  {"Rate limit exceeded. Please try again later", http.StatusTooManyRequests},
}

// GetErrorMessage returns the default message for code, or a generic one
// for unregistered codes.
func GetErrorMessage(code ErrorCode) string {
	if info, ok := registry[code]; ok {
		return info.message
	}
	return "An error occurred"
}

// GetHTTPStatus returns the status a response carrying code is sent with.
// Unregistered codes are server errors.
func GetHTTPStatus(code ErrorCode) int {
	if info, ok := registry[code]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}
