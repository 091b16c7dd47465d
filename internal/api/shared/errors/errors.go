package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/offline-pay/token-ledger/internal/domain"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeStaleState       ErrorCode = "stale_state"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeArchived         ErrorCode = "archived"
	ErrCodeRateLimited      ErrorCode = "rate_limited"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeUnavailable   ErrorCode = "unavailable"
)

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Details: strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeUnauthorized,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeForbidden,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewRateLimitedError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeRateLimited,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// Status returns the HTTP status of an error code
func (c ErrorCode) Status() int {
	switch c {
	case ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeValidationFailed:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeStaleState, ErrCodeConflict:
		return http.StatusConflict
	case ErrCodeArchived:
		return http.StatusGone
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// FromError maps an API, merge or store error onto an HTTP status and API error.
// Internal errors never leak their message.
func FromError(err error) (int, *APIError) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code.Status(), apiErr
	}

	if errors.Is(err, domain.ErrTokenAlreadyExists) || errors.Is(err, domain.ErrDeviceAlreadyExists) {
		return http.StatusConflict, &APIError{Code: ErrCodeConflict, Message: "Already exists", Details: err.Error()}
	}

	switch domain.KindOf(err) {
	case domain.KindAuthentication:
		return http.StatusUnauthorized, &APIError{Code: ErrCodeUnauthorized, Message: "Report authentication failed"}
	case domain.KindStaleState:
		return http.StatusConflict, &APIError{Code: ErrCodeStaleState, Message: "Reported counter is behind the ledger", Details: err.Error()}
	case domain.KindConflict:
		return http.StatusConflict, &APIError{Code: ErrCodeConflict, Message: "Reported value contradicts a confirmed transaction", Details: err.Error()}
	case domain.KindUnknownToken:
		return http.StatusNotFound, &APIError{Code: ErrCodeNotFound, Message: "Token not found", Details: err.Error()}
	case domain.KindArchivedToken:
		return http.StatusGone, &APIError{Code: ErrCodeArchived, Message: "Token archived", Details: err.Error()}
	case domain.KindInvalid:
		return http.StatusBadRequest, &APIError{Code: ErrCodeValidationFailed, Message: "Validation failed", Details: err.Error()}
	case domain.KindTransient:
		return http.StatusServiceUnavailable, &APIError{Code: ErrCodeUnavailable, Message: "Ledger is busy, retry later"}
	default:
		return http.StatusInternalServerError, &APIError{Code: ErrCodeInternalError, Message: "Internal server error"}
	}
}
