// Package httputil provides HTTP utility functions for request and response handling.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/panvault/internal/errors"
)

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// errorMapping is the transport form of one error kind.
type errorMapping struct {
	status  int
	code    string
	message string // empty means the error text is exposed
}

// mapError maps an error to its transport form by kind. Only validation errors expose
// their text; every other kind uses a fixed message so internals never leak.
func mapError(err error) errorMapping {
	switch apperrors.KindOf(err) {
	case apperrors.ErrIntegrity:
		return errorMapping{http.StatusUnprocessableEntity, "integrity_error", "Stored data failed an integrity check"}
	case apperrors.ErrUnauthorized:
		return errorMapping{http.StatusUnauthorized, "unauthorized", "Authentication is required"}
	case apperrors.ErrForbidden:
		return errorMapping{http.StatusForbidden, "forbidden", "You don't have permission to access this resource"}
	case apperrors.ErrInvalidInput:
		return errorMapping{http.StatusUnprocessableEntity, "invalid_input", ""}
	case apperrors.ErrNotFound:
		return errorMapping{http.StatusNotFound, "not_found", "The requested resource was not found"}
	case apperrors.ErrConflict:
		return errorMapping{http.StatusConflict, "conflict", "A conflict occurred with existing data"}
	case apperrors.ErrStorage:
		return errorMapping{http.StatusServiceUnavailable, "storage_unavailable", "Storage is temporarily unavailable"}
	default:
		return errorMapping{http.StatusInternalServerError, "internal_error", "An internal error occurred"}
	}
}

// HandleErrorGin maps domain errors to HTTP status codes and writes a JSON response.
// Server-side failures are logged at ERROR, caller mistakes at WARN.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	mapping := mapError(err)
	message := mapping.message
	if message == "" {
		message = err.Error()
	}

	if logger != nil {
		attrs := []any{
			slog.Int("status_code", mapping.status),
			slog.String("error_code", mapping.code),
			slog.Any("error", err),
		}
		switch {
		case apperrors.Is(err, apperrors.ErrIntegrity):
			logger.Error("request failed", append(attrs, slog.Bool("security_event", true))...)
		case mapping.status >= http.StatusInternalServerError:
			logger.Error("request failed", attrs...)
		default:
			logger.Warn("request failed", attrs...)
		}
	}

	c.JSON(mapping.status, ErrorResponse{Error: mapping.code, Message: message})
}

// HandleBadRequestGin writes a 400 Bad Request response for malformed JSON or parameters using Gin.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("bad request", slog.Any("error", err))
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "bad_request",
		Message: err.Error(),
	})
}

// HandleValidationErrorGin writes a 422 Unprocessable Entity response for validation errors using Gin.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("validation failed", slog.Any("error", err))
	}

	c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}
