package dto

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mtlprog/goodwill/internal/domain"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// MapDomainError maps domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code string, message string) {
	message = err.Error()

	switch {
	// Valuation errors
	case errors.Is(err, domain.ErrValuationNotFound):
		return http.StatusNotFound, "VALUATION_NOT_FOUND", message
	case errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest, "INVALID_REQUEST", message

	// Validation errors
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message
	case errors.Is(err, domain.ErrInvalidKind):
		return http.StatusUnprocessableEntity, "VALIDATION_ERROR", message

	// Infrastructure errors; the cause stays in the logs
	case errors.Is(err, domain.ErrDatabaseUnavailable):
		slog.Warn("request failed, database unavailable", "error", err)
		return http.StatusServiceUnavailable, "DATABASE_UNAVAILABLE", domain.ErrDatabaseUnavailable.Error()

	default:
		slog.Error("unmapped domain error returned to client",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
		)
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}
}
