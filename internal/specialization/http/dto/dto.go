// Package dto provides data transfer objects for specialization HTTP handlers.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/clinicops/admin-api/internal/specialization/domain"
	customValidation "github.com/clinicops/admin-api/internal/validation"
)

// CreateSpecializationRequest carries the fields for creating a specialization.
type CreateSpecializationRequest struct {
	Name string `json:"name"`
}

// Validate checks the creation fields.
func (r *CreateSpecializationRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 128),
		),
	)
}

// SpecializationResponse represents a specialization in API responses.
type SpecializationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// MapSpecializationToResponse converts a domain specialization to an API response.
func MapSpecializationToResponse(specialization *domain.Specialization) SpecializationResponse {
	return SpecializationResponse{
		ID:   specialization.ID.Hex(),
		Name: specialization.Name,
	}
}

// MapSpecializationsToResponse converts a list of specializations.
func MapSpecializationsToResponse(specializations []*domain.Specialization) []SpecializationResponse {
	responses := make([]SpecializationResponse, 0, len(specializations))
	for _, specialization := range specializations {
		responses = append(responses, MapSpecializationToResponse(specialization))
	}
	return responses
}
