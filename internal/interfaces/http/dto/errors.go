package dto

import (
	"net/http"
	"strings"
)

// ErrorResponse is the wire format for all error bodies.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates an error response with the given message
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// GetHTTPStatus maps a domain error code to an HTTP status code.
// The API surface deliberately uses a small set of statuses; anything
// that is not a lookup miss, auth failure, or permission problem is
// reported as a bad request.
func GetHTTPStatus(code string) int {
	switch code {
	case "NOT_FOUND":
		return http.StatusNotFound
	case "UNAUTHORIZED", "INVALID_CREDENTIALS", "ACCOUNT_DEACTIVATED":
		return http.StatusUnauthorized
	case "FORBIDDEN":
		return http.StatusForbidden
	case "ALREADY_EXISTS", "INSUFFICIENT_STOCK", "EMPTY_CART",
		"PRODUCT_GONE":
		return http.StatusBadRequest
	default:
		// Validation and uniqueness failures from the domain layer all
		// carry an INVALID_ or DUPLICATE_ code; every one of them is the
		// caller's fault.
		if strings.HasPrefix(code, "INVALID_") || strings.HasPrefix(code, "DUPLICATE_") {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	}
}
