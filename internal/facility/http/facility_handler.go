// Package http provides HTTP handlers for facility operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clinicops/admin-api/internal/facility/http/dto"
	"github.com/clinicops/admin-api/internal/facility/usecase"
	"github.com/clinicops/admin-api/internal/httputil"
	customValidation "github.com/clinicops/admin-api/internal/validation"
)

// FacilityHandler handles facility HTTP requests.
type FacilityHandler struct {
	useCase usecase.UseCase
	logger  *slog.Logger
}

// NewFacilityHandler creates a new FacilityHandler.
func NewFacilityHandler(useCase usecase.UseCase, logger *slog.Logger) *FacilityHandler {
	return &FacilityHandler{
		useCase: useCase,
		logger:  logger,
	}
}

// ListHandler returns all facilities.
// GET /api/facilities
func (h *FacilityHandler) ListHandler(c *gin.Context) {
	facilities, err := h.useCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapFacilitiesToResponse(facilities))
}

// GetByIDHandler returns one facility by id.
// GET /api/facilities/:id
func (h *FacilityHandler) GetByIDHandler(c *gin.Context) {
	facility, err := h.useCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapFacilityToResponse(facility))
}

// GetByNameHandler returns one facility by name.
// GET /api/facilities/name/:name
func (h *FacilityHandler) GetByNameHandler(c *gin.Context) {
	facility, err := h.useCase.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapFacilityToResponse(facility))
}

// CreateHandler creates a facility.
// POST /api/facilities
func (h *FacilityHandler) CreateHandler(c *gin.Context) {
	req, ok := h.bindAndValidate(c)
	if !ok {
		return
	}

	facility, err := h.useCase.Create(c.Request.Context(), dto.ToFacilityInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusCreated, dto.MapFacilityToResponse(facility))
}

// UpdateByIDHandler updates a facility matched by id.
// PUT /api/facilities/:id
func (h *FacilityHandler) UpdateByIDHandler(c *gin.Context) {
	req, ok := h.bindAndValidate(c)
	if !ok {
		return
	}

	facility, err := h.useCase.UpdateByID(c.Request.Context(), c.Param("id"), dto.ToFacilityInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapFacilityToResponse(facility))
}

// UpdateByNameHandler updates a facility matched by name.
// PUT /api/facilities/name/:name
func (h *FacilityHandler) UpdateByNameHandler(c *gin.Context) {
	req, ok := h.bindAndValidate(c)
	if !ok {
		return
	}

	facility, err := h.useCase.UpdateByName(c.Request.Context(), c.Param("name"), dto.ToFacilityInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapFacilityToResponse(facility))
}

// DeleteByIDHandler removes a facility by id.
// DELETE /api/facilities/:id
func (h *FacilityHandler) DeleteByIDHandler(c *gin.Context) {
	if err := h.useCase.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, httputil.MessageResponse{Message: "Facility deleted successfully"})
}

// DeleteByNameHandler removes a facility by name.
// DELETE /api/facilities/name/:name
func (h *FacilityHandler) DeleteByNameHandler(c *gin.Context) {
	if err := h.useCase.DeleteByName(c.Request.Context(), c.Param("name")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, httputil.MessageResponse{Message: "Facility deleted successfully"})
}

func (h *FacilityHandler) bindAndValidate(c *gin.Context) (dto.FacilityRequest, bool) {
	var req dto.FacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c)
		return req, false
	}
	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return req, false
	}
	return req, true
}
