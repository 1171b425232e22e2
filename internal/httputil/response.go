// Package httputil contains helpers to deliver http responses.
package httputil

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/clinicops/admin-api/internal/auth/domain"
	"github.com/clinicops/admin-api/internal/errors"
)

// ErrorResponse is the response format for http errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// MessageResponse is the response format for simple confirmation payloads.
type MessageResponse struct {
	Message string `json:"message"`
}

// HandleErrorGin translates application errors into http responses. Internal
// detail never reaches the client: unknown errors collapse to a generic 500
// and credential failures collapse to a single 401 body.
func HandleErrorGin(c *gin.Context, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, authDomain.ErrInvalidCredentials):
		makeErrorResponseGin(c, "invalid_credentials", "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, errors.ErrInvalidInput):
		makeErrorResponseGin(c, "invalid_input", err.Error(), http.StatusBadRequest)
	case errors.Is(err, errors.ErrConflict):
		makeErrorResponseGin(c, "already_exists", "The resource already exists", http.StatusBadRequest)
	case errors.Is(err, errors.ErrUnauthorized):
		makeErrorResponseGin(c, "unauthorized", "Authentication is required", http.StatusUnauthorized)
	case errors.Is(err, errors.ErrForbidden):
		makeErrorResponseGin(c, "forbidden", "Access to this resource is forbidden", http.StatusForbidden)
	case errors.Is(err, errors.ErrNotFound):
		makeErrorResponseGin(c, "not_found", "The resource was not found", http.StatusNotFound)
	default:
		if logger != nil {
			logger.Error("internal server error", "error", err)
		}
		makeErrorResponseGin(c, "internal_server_error", "An internal error occurred", http.StatusInternalServerError)
	}
}

// HandleBadRequestGin reports a malformed request body.
func HandleBadRequestGin(c *gin.Context) {
	makeErrorResponseGin(c, "invalid_request_body", "The request body is invalid", http.StatusBadRequest)
}

func makeErrorResponseGin(c *gin.Context, errorType, message string, statusCode int) {
	c.JSON(statusCode, ErrorResponse{Error: errorType, Message: message, Code: statusCode})
}
