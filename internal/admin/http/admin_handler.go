// Package http provides HTTP handlers for administrator account operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicops/admin-api/internal/admin/http/dto"
	authUseCase "github.com/clinicops/admin-api/internal/auth/usecase"
	"github.com/clinicops/admin-api/internal/httputil"
	customValidation "github.com/clinicops/admin-api/internal/validation"
)

// AdminHandler handles administrator account HTTP requests.
type AdminHandler struct {
	authUseCase authUseCase.UseCase
	logger      *slog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(authUseCase authUseCase.UseCase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// AuthenticateHandler verifies administrator credentials and issues a session token.
// POST /api/admin/authenticate
func (h *AdminHandler) AuthenticateHandler(c *gin.Context) {
	var req dto.AuthenticateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, err := h.authUseCase.Authenticate(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.AuthenticateResponse{
		Message: "Authentication successful",
		Token:   token,
	})
}

// RegisterHandler creates an administrator account, reviving a soft-deleted
// record with the same user id when one exists.
// POST /api/admin/register
func (h *AdminHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	identity, err := h.authUseCase.RegisterOrReactivate(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapIdentityToRegisterResponse(identity))
}

// DeleteHandler soft-deletes an administrator account.
// DELETE /api/admin/:user_id
func (h *AdminHandler) DeleteHandler(c *gin.Context) {
	userID := c.Param("user_id")

	if err := h.authUseCase.Deactivate(c.Request.Context(), userID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, httputil.MessageResponse{Message: "Admin deleted successfully"})
}
