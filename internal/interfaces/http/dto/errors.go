package dto

import (
	"net/http"
	"strings"
)

// General error codes used by the HTTP layer itself
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
)

// errorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed fall back by prefix: INVALID_* and EMPTY_* are bad
// requests, everything else is an internal error.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeNotFound:   http.StatusNotFound,
	"ALREADY_EXISTS":  http.StatusConflict,

	// Auth
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,

	// Business rule violations
	"INVALID_STATE":       http.StatusUnprocessableEntity,
	"ENTRY_LINKED":        http.StatusUnprocessableEntity,
	"SUPPLIER_REFERENCED": http.StatusUnprocessableEntity,
	"DEFAULT_CATEGORY":    http.StatusUnprocessableEntity,
	"CONFIGURATION_ERROR": http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for a domain error code
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") || strings.HasPrefix(code, "EMPTY_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
