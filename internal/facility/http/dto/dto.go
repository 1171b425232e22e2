// Package dto provides data transfer objects for facility HTTP handlers.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/clinicops/admin-api/internal/facility/domain"
	"github.com/clinicops/admin-api/internal/facility/usecase"
	customValidation "github.com/clinicops/admin-api/internal/validation"
)

// RoomRequest is a room entry in a facility payload.
type RoomRequest struct {
	ID              int      `json:"id"`
	Specializations []string `json:"specializations"`
}

// FacilityRequest carries the writable facility fields for create and update.
type FacilityRequest struct {
	Name  string        `json:"name"`
	Rooms []RoomRequest `json:"rooms"`
}

// Validate checks the facility payload.
func (r *FacilityRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 256),
		),
		validation.Field(&r.Rooms, validation.Required, validation.Length(1, 0)),
	)
}

// ToFacilityInput converts the request to a use case input.
func ToFacilityInput(r FacilityRequest) usecase.FacilityInput {
	rooms := make([]domain.Room, 0, len(r.Rooms))
	for _, room := range r.Rooms {
		rooms = append(rooms, domain.Room{
			ID:              room.ID,
			Specializations: room.Specializations,
		})
	}
	return usecase.FacilityInput{Name: r.Name, Rooms: rooms}
}

// FacilityResponse represents a facility in API responses.
type FacilityResponse struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Rooms []domain.Room `json:"rooms"`
}

// MapFacilityToResponse converts a domain facility to an API response.
func MapFacilityToResponse(facility *domain.Facility) FacilityResponse {
	return FacilityResponse{
		ID:    facility.ID.Hex(),
		Name:  facility.Name,
		Rooms: facility.Rooms,
	}
}

// MapFacilitiesToResponse converts a list of facilities.
func MapFacilitiesToResponse(facilities []*domain.Facility) []FacilityResponse {
	responses := make([]FacilityResponse, 0, len(facilities))
	for _, facility := range facilities {
		responses = append(responses, MapFacilityToResponse(facility))
	}
	return responses
}
