// Package dto provides data transfer objects for doctor HTTP handlers.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/clinicops/admin-api/internal/doctor/domain"
	"github.com/clinicops/admin-api/internal/doctor/usecase"
	customValidation "github.com/clinicops/admin-api/internal/validation"
)

// CreateDoctorRequest carries the fields for registering a doctor.
type CreateDoctorRequest struct {
	Name       string   `json:"name"`
	Specialty  []string `json:"specialty"`
	Email      string   `json:"email"`
	Degree     string   `json:"degree"`
	Experience string   `json:"experience"`
	Password   string   `json:"password"`
}

// Validate checks the registration fields. Every field is required.
func (r *CreateDoctorRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Specialty, validation.Required, validation.Length(1, 0)),
		validation.Field(&r.Email, validation.Required, customValidation.Email),
		validation.Field(&r.Degree, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Experience, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Password, validation.Required),
	)
}

// ToCreateInput converts the request to a use case input.
func ToCreateInput(r CreateDoctorRequest) usecase.CreateInput {
	return usecase.CreateInput{
		Name:       r.Name,
		Specialty:  r.Specialty,
		Email:      r.Email,
		Degree:     r.Degree,
		Experience: r.Experience,
		Password:   r.Password,
	}
}

// UpdateDoctorRequest carries the fields for updating a doctor. Password is
// optional and replaces the stored bundle when present.
type UpdateDoctorRequest struct {
	Name       string   `json:"name"`
	Specialty  []string `json:"specialty"`
	Email      string   `json:"email"`
	Degree     string   `json:"degree"`
	Experience string   `json:"experience"`
	Password   string   `json:"password"`
}

// Validate checks the update fields.
func (r *UpdateDoctorRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Specialty, validation.Required, validation.Length(1, 0)),
		validation.Field(&r.Email, validation.Required, customValidation.Email),
		validation.Field(&r.Degree, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Experience, validation.Required, customValidation.NotBlank),
	)
}

// ToUpdateInput converts the request to a use case input.
func ToUpdateInput(r UpdateDoctorRequest) usecase.UpdateInput {
	return usecase.UpdateInput{
		Name:       r.Name,
		Specialty:  r.Specialty,
		Email:      r.Email,
		Degree:     r.Degree,
		Experience: r.Experience,
		Password:   r.Password,
	}
}

// AuthenticateDoctorRequest carries doctor login credentials.
type AuthenticateDoctorRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks that both credential fields are present.
func (r *AuthenticateDoctorRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, customValidation.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// AuthenticateDoctorResponse is returned on a successful doctor login.
type AuthenticateDoctorResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// DoctorResponse represents a doctor in API responses. The password bundle is
// never included.
type DoctorResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Specialty  []string `json:"specialty"`
	Email      string   `json:"email"`
	Degree     string   `json:"degree"`
	Experience string   `json:"experience"`
}

// MapDoctorToResponse converts a domain doctor to an API response.
func MapDoctorToResponse(doctor *domain.Doctor) DoctorResponse {
	return DoctorResponse{
		ID:         doctor.ID.Hex(),
		Name:       doctor.Name,
		Specialty:  doctor.Specialty,
		Email:      doctor.Email,
		Degree:     doctor.Degree,
		Experience: doctor.Experience,
	}
}

// MapDoctorsToResponse converts a list of doctors.
func MapDoctorsToResponse(doctors []*domain.Doctor) []DoctorResponse {
	responses := make([]DoctorResponse, 0, len(doctors))
	for _, doctor := range doctors {
		responses = append(responses, MapDoctorToResponse(doctor))
	}
	return responses
}
