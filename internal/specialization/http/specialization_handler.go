// Package http provides HTTP handlers for specialization operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicops/admin-api/internal/httputil"
	"github.com/clinicops/admin-api/internal/specialization/http/dto"
	"github.com/clinicops/admin-api/internal/specialization/usecase"
	customValidation "github.com/clinicops/admin-api/internal/validation"
)

// SpecializationHandler handles specialization HTTP requests.
type SpecializationHandler struct {
	useCase usecase.UseCase
	logger  *slog.Logger
}

// NewSpecializationHandler creates a new SpecializationHandler.
func NewSpecializationHandler(useCase usecase.UseCase, logger *slog.Logger) *SpecializationHandler {
	return &SpecializationHandler{
		useCase: useCase,
		logger:  logger,
	}
}

// ListHandler returns all specializations.
// GET /api/specializations
func (h *SpecializationHandler) ListHandler(c *gin.Context) {
	specializations, err := h.useCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapSpecializationsToResponse(specializations))
}

// CreateHandler creates a specialization.
// POST /api/specializations
func (h *SpecializationHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateSpecializationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	specialization, err := h.useCase.Create(c.Request.Context(), req.Name)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapSpecializationToResponse(specialization))
}

// DeleteHandler removes a specialization.
// DELETE /api/specializations/:id
func (h *SpecializationHandler) DeleteHandler(c *gin.Context) {
	if err := h.useCase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, httputil.MessageResponse{Message: "Specialization deleted successfully"})
}
