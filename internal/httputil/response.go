// Package httputil maps domain errors onto JSON error responses and parses request parameters.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	apperrors "github.com/allisson/ordersaga/internal/errors"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

type errorMapping struct {
	kind    error
	status  int
	label   string
	message string
}

// errorMappings is checked in order; the first kind matched by errors.Is wins.
var errorMappings = []errorMapping{
	{apperrors.ErrInvalidInput, http.StatusUnprocessableEntity, "invalid_input", ""},
	{apperrors.ErrNotFound, http.StatusNotFound, "not_found", "The requested resource was not found"},
	{apperrors.ErrConflict, http.StatusConflict, "conflict", "The request conflicts with the current state"},
	{apperrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized", "Authentication is required"},
	{apperrors.ErrForbidden, http.StatusForbidden, "forbidden", "You don't have permission to access this resource"},
	{apperrors.ErrUnavailable, http.StatusServiceUnavailable, "service_unavailable", "A downstream dependency is unavailable, please retry"},
}

var internalErrorMapping = errorMapping{
	status:  http.StatusInternalServerError,
	label:   "internal_error",
	message: "An internal error occurred",
}

// HandleErrorGin writes the response for a use-case error. Known kinds keep their
// message, and coded errors also expose their machine-readable code. Anything else is
// reported as an opaque 500.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	if err == nil {
		return
	}

	mapping := lo.FindOrElse(errorMappings, internalErrorMapping, func(m errorMapping) bool {
		return apperrors.Is(err, m.kind)
	})

	response := ErrorResponse{Error: mapping.label, Message: mapping.message}
	if mapping.status != http.StatusInternalServerError {
		if code := apperrors.Code(err); code != "" || mapping.message == "" {
			response.Code = code
			response.Message = err.Error()
		}
	}

	if logger != nil {
		level := slog.LevelWarn
		if mapping.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		logger.Log(c, level, "request failed",
			slog.Int("status_code", mapping.status),
			slog.String("error_code", mapping.label),
			slog.Any("error", err),
		)
	}

	c.JSON(mapping.status, response)
}

// HandleBadRequestGin writes a 400 for malformed JSON or path parameters.
func HandleBadRequestGin(c *gin.Context, err error, logger *slog.Logger) {
	writeClientError(c, http.StatusBadRequest, "bad_request", err, logger)
}

// HandleValidationErrorGin writes a 422 for request bodies that fail validation.
func HandleValidationErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	writeClientError(c, http.StatusUnprocessableEntity, "validation_error", err, logger)
}

func writeClientError(c *gin.Context, status int, label string, err error, logger *slog.Logger) {
	if logger != nil {
		logger.Warn("rejected request", slog.String("error_code", label), slog.Any("error", err))
	}
	c.JSON(status, ErrorResponse{Error: label, Message: err.Error()})
}
