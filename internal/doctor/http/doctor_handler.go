// Package http provides HTTP handlers for doctor operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authUseCase "github.com/clinicops/admin-api/internal/auth/usecase"
	"github.com/clinicops/admin-api/internal/doctor/http/dto"
	"github.com/clinicops/admin-api/internal/doctor/usecase"
	"github.com/clinicops/admin-api/internal/httputil"
	customValidation "github.com/clinicops/admin-api/internal/validation"
)

// DoctorHandler handles doctor HTTP requests. Doctor login runs through the
// same authentication service as administrators, over the doctor credential
// store keyed by email.
type DoctorHandler struct {
	useCase     usecase.UseCase
	authUseCase authUseCase.UseCase
	logger      *slog.Logger
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(useCase usecase.UseCase, authUseCase authUseCase.UseCase, logger *slog.Logger) *DoctorHandler {
	return &DoctorHandler{
		useCase:     useCase,
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// ListHandler returns all active doctors.
// GET /api/doctors
func (h *DoctorHandler) ListHandler(c *gin.Context) {
	doctors, err := h.useCase.List(c.Request.Context())
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapDoctorsToResponse(doctors))
}

// GetByIDHandler returns one active doctor by id.
// GET /api/doctors/:id
func (h *DoctorHandler) GetByIDHandler(c *gin.Context) {
	doctor, err := h.useCase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapDoctorToResponse(doctor))
}

// GetByNameHandler returns one active doctor by name.
// GET /api/doctors/name/:name
func (h *DoctorHandler) GetByNameHandler(c *gin.Context) {
	doctor, err := h.useCase.GetByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, dto.MapDoctorToResponse(doctor))
}

// CreateHandler registers a doctor, reviving a soft-deleted record that holds
// the same email.
// POST /api/doctors
func (h *DoctorHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	doctor, err := h.useCase.Create(c.Request.Context(), dto.ToCreateInput(req))
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusCreated, dto.MapDoctorToResponse(doctor))
}

// UpdateByIDHandler updates a doctor matched by id.
// PUT /api/doctors/:id
func (h *DoctorHandler) UpdateByIDHandler(c *gin.Context) {
	req, ok := h.bindUpdate(c)
	if !ok {
		return
	}

	if err := h.useCase.UpdateByID(c.Request.Context(), c.Param("id"), dto.ToUpdateInput(req)); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, httputil.MessageResponse{Message: "Doctor updated successfully"})
}

// UpdateByNameHandler updates a doctor matched by name.
// PUT /api/doctors/name/:name
func (h *DoctorHandler) UpdateByNameHandler(c *gin.Context) {
	req, ok := h.bindUpdate(c)
	if !ok {
		return
	}

	if err := h.useCase.UpdateByName(c.Request.Context(), c.Param("name"), dto.ToUpdateInput(req)); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, httputil.MessageResponse{Message: "Doctor updated successfully"})
}

// DeleteByIDHandler soft-deletes a doctor by id.
// DELETE /api/doctors/:id
func (h *DoctorHandler) DeleteByIDHandler(c *gin.Context) {
	if err := h.useCase.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, httputil.MessageResponse{Message: "Doctor deleted successfully"})
}

// DeleteByNameHandler soft-deletes a doctor by name.
// DELETE /api/doctors/name/:name
func (h *DoctorHandler) DeleteByNameHandler(c *gin.Context) {
	if err := h.useCase.DeleteByName(c.Request.Context(), c.Param("name")); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	c.JSON(http.StatusOK, httputil.MessageResponse{Message: "Doctor deleted successfully"})
}

// AuthenticateHandler verifies doctor credentials and issues a session token.
// POST /api/doctors/authenticate
func (h *DoctorHandler) AuthenticateHandler(c *gin.Context) {
	var req dto.AuthenticateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c)
		return
	}
	if err := req.Validate(); err != nil {
		httputil.HandleErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, err := h.authUseCase.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.AuthenticateDoctorResponse{
		Message: "Authentication successful",
		Token:   token,
	})
}

func (h *DoctorHandler) bindUpdate(c *gin.Context) (dto.UpdateDoctorRequest, bool) {
	var req dto.UpdateDoctorRequest
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
